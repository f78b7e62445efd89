package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/creditdesk/credit-service/internal/models"
	"github.com/gorilla/mux"
)

type clientRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// CreateClient handles client registration
func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validateRequest(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	client, err := h.svc.CreateClient(req.Name, req.Email)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, client)
}

// ListClients returns all clients
func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.svc.ListClients()
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, clients)
}

// GetClient returns one client by id
func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client ID")
		return
	}

	client, err := h.svc.GetClientByID(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

// GetClientByEmail returns one client by email
func (h *Handler) GetClientByEmail(w http.ResponseWriter, r *http.Request) {
	client, err := h.svc.GetClientByEmail(mux.Vars(r)["email"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

// SearchClients returns clients matching the name query parameter
func (h *Handler) SearchClients(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		respondError(w, http.StatusBadRequest, "name query parameter is required")
		return
	}

	clients, err := h.svc.SearchClientsByName(name)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, clients)
}

// UpdateClient updates name and email of an existing client
func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client ID")
		return
	}

	var req clientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validateRequest(req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	client, err := h.svc.UpdateClient(&models.Client{ID: id, Name: req.Name, Email: req.Email})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, client)
}

// DeleteClient removes a client
func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client ID")
		return
	}

	deleted, err := h.svc.DeleteClient(id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if !deleted {
		respondError(w, http.StatusNotFound, models.ErrClientNotFound.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
