package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/creditdesk/credit-service/internal/models"
	"github.com/gorilla/mux"
)

// Any status a caller puts in the body is ignored, the lifecycle always
// starts at IN_PROGRESS.
type creditRequest struct {
	ClientID     int64    `json:"client_id" validate:"required"`
	Amount       float64  `json:"amount" validate:"required,gt=0"`
	Duration     int      `json:"duration" validate:"required,gt=0"`
	InterestRate *float64 `json:"interest_rate" validate:"omitempty,gte=0"`
}

type personalCreditRequest struct {
	creditRequest
	Reason string `json:"reason" validate:"required"`
}

type professionalCreditRequest struct {
	creditRequest
	Reason      string `json:"reason" validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`
}

type realEstateCreditRequest struct {
	creditRequest
	PropertyType    string  `json:"property_type" validate:"required,oneof=APARTMENT HOUSE LAND COMMERCIAL OTHER"`
	PropertyAddress string  `json:"property_address" validate:"required"`
	PropertyValue   float64 `json:"property_value" validate:"required,gt=0"`
}

// CreatePersonalCredit handles a personal credit request
func (h *Handler) CreatePersonalCredit(w http.ResponseWriter, r *http.Request) {
	var req personalCreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validateRequest(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	credit, err := h.svc.CreatePersonalCredit(req.ClientID, req.Amount, req.Duration, req.InterestRate, req.Reason)
	h.respondCreatedCredit(w, credit, err)
}

// CreateProfessionalCredit handles a professional credit request
func (h *Handler) CreateProfessionalCredit(w http.ResponseWriter, r *http.Request) {
	var req professionalCreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validateRequest(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	credit, err := h.svc.CreateProfessionalCredit(req.ClientID, req.Amount, req.Duration, req.InterestRate, req.Reason, req.CompanyName)
	h.respondCreatedCredit(w, credit, err)
}

// CreateRealEstateCredit handles a real estate credit request
func (h *Handler) CreateRealEstateCredit(w http.ResponseWriter, r *http.Request) {
	var req realEstateCreditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validateRequest(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	credit, err := h.svc.CreateRealEstateCredit(req.ClientID, req.Amount, req.Duration, req.InterestRate,
		models.PropertyType(req.PropertyType), req.PropertyAddress, req.PropertyValue)
	h.respondCreatedCredit(w, credit, err)
}

// respondCreatedCredit writes the created credit. A missing client is a bad
// request here, not a 404: the credit route itself exists.
func (h *Handler) respondCreatedCredit(w http.ResponseWriter, credit *models.Credit, err error) {
	if errors.Is(err, models.ErrClientNotFound) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, credit)
}

// ListCredits returns all credits
func (h *Handler) ListCredits(w http.ResponseWriter, r *http.Request) {
	credits, err := h.svc.ListCredits()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, credits)
}

// GetCredit returns one credit by id
func (h *Handler) GetCredit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid credit ID")
		return
	}

	credit, err := h.svc.GetCreditByID(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, credit)
}

// ApproveCredit transitions a credit to ACCEPTED
func (h *Handler) ApproveCredit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid credit ID")
		return
	}

	credit, err := h.svc.ApproveCredit(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, credit)
}

// RejectCredit transitions a credit to REJECTED
func (h *Handler) RejectCredit(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid credit ID")
		return
	}

	credit, err := h.svc.RejectCredit(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, credit)
}

// ListCreditsByClient returns all credits of one client
func (h *Handler) ListCreditsByClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := pathID(r, "clientId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client ID")
		return
	}

	credits, err := h.svc.ListCreditsByClient(clientID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, credits)
}

// ListCreditsByStatus returns all credits with the given status
func (h *Handler) ListCreditsByStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := models.ParseCreditStatus(mux.Vars(r)["status"])
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid credit status")
		return
	}

	credits, err := h.svc.ListCreditsByStatus(status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, credits)
}

// TotalAcceptedAmount returns the total amount of all accepted credits
func (h *Handler) TotalAcceptedAmount(w http.ResponseWriter, r *http.Request) {
	total, err := h.svc.TotalAcceptedAmount()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]float64{"total_accepted_amount": total})
}

// CreditStatisticsByStatus returns per-variant sums for one status
func (h *Handler) CreditStatisticsByStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := models.ParseCreditStatus(mux.Vars(r)["status"])
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid credit status")
		return
	}

	stats, err := h.svc.CreditStatisticsByStatus(status)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, stats)
}
