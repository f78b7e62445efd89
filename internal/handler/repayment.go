package handler

import (
	"net/http"
	"strconv"

	"github.com/creditdesk/credit-service/internal/models"
	"github.com/gorilla/mux"
)

// repaymentParams reads the creditId and amount query parameters shared by
// both repayment creation routes
func repaymentParams(r *http.Request) (int64, float64, string) {
	creditID, err := strconv.ParseInt(r.URL.Query().Get("creditId"), 10, 64)
	if err != nil {
		return 0, 0, "invalid creditId parameter"
	}
	amount, err := strconv.ParseFloat(r.URL.Query().Get("amount"), 64)
	if err != nil {
		return 0, 0, "invalid amount parameter"
	}
	if amount <= 0 {
		return 0, 0, "amount must be greater than 0"
	}
	return creditID, amount, ""
}

// CreateMonthlyRepayment records a monthly payment
func (h *Handler) CreateMonthlyRepayment(w http.ResponseWriter, r *http.Request) {
	creditID, amount, problem := repaymentParams(r)
	if problem != "" {
		respondError(w, http.StatusBadRequest, problem)
		return
	}

	repayment, err := h.svc.CreateMonthlyRepayment(creditID, amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, repayment)
}

// CreateEarlyRepayment records an early repayment
func (h *Handler) CreateEarlyRepayment(w http.ResponseWriter, r *http.Request) {
	creditID, amount, problem := repaymentParams(r)
	if problem != "" {
		respondError(w, http.StatusBadRequest, problem)
		return
	}

	repayment, err := h.svc.CreateEarlyRepayment(creditID, amount)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, repayment)
}

// ListRepaymentsByCredit returns all repayments of one credit
func (h *Handler) ListRepaymentsByCredit(w http.ResponseWriter, r *http.Request) {
	creditID, err := pathID(r, "creditId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid credit ID")
		return
	}

	repayments, err := h.svc.ListRepaymentsByCredit(creditID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, repayments)
}

// ListRepaymentsByType returns all repayments of the given type
func (h *Handler) ListRepaymentsByType(w http.ResponseWriter, r *http.Request) {
	t, ok := models.ParseRepaymentType(mux.Vars(r)["type"])
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid repayment type")
		return
	}

	repayments, err := h.svc.ListRepaymentsByType(t)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, repayments)
}

// TotalRepaidAmount returns the sum of all repayments of one credit
func (h *Handler) TotalRepaidAmount(w http.ResponseWriter, r *http.Request) {
	creditID, err := pathID(r, "creditId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid credit ID")
		return
	}

	total, err := h.svc.TotalRepaidAmount(creditID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"creditId":    creditID,
		"totalRepaid": total,
	})
}

// RemainingAmount returns the estimated amount still owed on one credit
func (h *Handler) RemainingAmount(w http.ResponseWriter, r *http.Request) {
	creditID, err := pathID(r, "creditId")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid credit ID")
		return
	}

	remaining, err := h.svc.RemainingAmount(creditID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"creditId":        creditID,
		"remainingAmount": remaining,
	})
}

// DeleteRepayment removes a repayment
func (h *Handler) DeleteRepayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid repayment ID")
		return
	}

	deleted, err := h.svc.DeleteRepayment(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, models.ErrRepaymentNotFound.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
