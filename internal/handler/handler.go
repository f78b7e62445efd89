package handler

import (
	"net/http"

	"github.com/creditdesk/credit-service/internal/service"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Handler wires the HTTP surface to the service layer
type Handler struct {
	svc      *service.Service
	rates    service.RateProvider
	validate *validator.Validate
}

// NewHandler initializes a new handler
func NewHandler(svc *service.Service, rates service.RateProvider) *Handler {
	return &Handler{
		svc:      svc,
		rates:    rates,
		validate: validator.New(),
	}
}

// RegisterRoutes mounts all routes on the router. Everything under /api is
// protected by the given auth middleware except authentication itself and
// the key-rate endpoint.
func (h *Handler) RegisterRoutes(r *mux.Router, auth func(http.Handler) http.Handler) {
	// Public routes
	r.HandleFunc("/api/auth/register", h.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", h.Login).Methods("POST")
	r.HandleFunc("/api/rates/key", h.GetKeyRate).Methods("GET")

	// Protected routes
	api := r.PathPrefix("/api").Subrouter()
	api.Use(auth)

	// Clients
	api.HandleFunc("/clients", h.ListClients).Methods("GET")
	api.HandleFunc("/clients", h.CreateClient).Methods("POST")
	api.HandleFunc("/clients/search", h.SearchClients).Methods("GET")
	api.HandleFunc("/clients/email/{email}", h.GetClientByEmail).Methods("GET")
	api.HandleFunc("/clients/{id}", h.GetClient).Methods("GET")
	api.HandleFunc("/clients/{id}", h.UpdateClient).Methods("PUT")
	api.HandleFunc("/clients/{id}", h.DeleteClient).Methods("DELETE")

	// Credits
	api.HandleFunc("/credits", h.ListCredits).Methods("GET")
	api.HandleFunc("/credits/personal", h.CreatePersonalCredit).Methods("POST")
	api.HandleFunc("/credits/professional", h.CreateProfessionalCredit).Methods("POST")
	api.HandleFunc("/credits/real-estate", h.CreateRealEstateCredit).Methods("POST")
	api.HandleFunc("/credits/statistics/total-accepted", h.TotalAcceptedAmount).Methods("GET")
	api.HandleFunc("/credits/statistics/by-status/{status}", h.CreditStatisticsByStatus).Methods("GET")
	api.HandleFunc("/credits/client/{clientId}", h.ListCreditsByClient).Methods("GET")
	api.HandleFunc("/credits/status/{status}", h.ListCreditsByStatus).Methods("GET")
	api.HandleFunc("/credits/{id}", h.GetCredit).Methods("GET")
	api.HandleFunc("/credits/{id}/approve", h.ApproveCredit).Methods("PUT")
	api.HandleFunc("/credits/{id}/reject", h.RejectCredit).Methods("PUT")

	// Repayments
	api.HandleFunc("/repayments/monthly", h.CreateMonthlyRepayment).Methods("POST")
	api.HandleFunc("/repayments/early", h.CreateEarlyRepayment).Methods("POST")
	api.HandleFunc("/repayments/credit/{creditId}", h.ListRepaymentsByCredit).Methods("GET")
	api.HandleFunc("/repayments/type/{type}", h.ListRepaymentsByType).Methods("GET")
	api.HandleFunc("/repayments/total/{creditId}", h.TotalRepaidAmount).Methods("GET")
	api.HandleFunc("/repayments/remaining/{creditId}", h.RemainingAmount).Methods("GET")
	api.HandleFunc("/repayments/{id}", h.DeleteRepayment).Methods("DELETE")
}

// GetKeyRate returns the current key rate used to price credits
func (h *Handler) GetKeyRate(w http.ResponseWriter, r *http.Request) {
	rate, err := h.rates.KeyRate()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to get key rate")
		return
	}
	respondJSON(w, http.StatusOK, map[string]float64{"key_rate": rate})
}
