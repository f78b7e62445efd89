package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/creditdesk/credit-service/internal/models"
	"github.com/go-playground/validator/v10"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError maps domain errors to HTTP status codes
func respondServiceError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	respondError(w, status, message)
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrClientNotFound),
		errors.Is(err, models.ErrCreditNotFound),
		errors.Is(err, models.ErrRepaymentNotFound),
		errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrCreditNotAccepted),
		errors.Is(err, models.ErrCreditFinalized):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrEmailTaken),
		errors.Is(err, models.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// validateRequest validates a DTO and flattens validation errors into one
// message
func (h *Handler) validateRequest(dto interface{}) error {
	err := h.validate.Struct(dto)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	var messages []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required":
			messages = append(messages, "field "+e.Field()+" is required")
		case "gt":
			messages = append(messages, "field "+e.Field()+" must be greater than "+e.Param())
		case "gte":
			messages = append(messages, "field "+e.Field()+" must be at least "+e.Param())
		case "email":
			messages = append(messages, "field "+e.Field()+" must be a valid email")
		case "oneof":
			messages = append(messages, "field "+e.Field()+" must be one of: "+e.Param())
		default:
			messages = append(messages, "field "+e.Field()+" is invalid")
		}
	}
	return errors.New(strings.Join(messages, "; "))
}
