package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"daily-diet-api/internal/middleware"
	"daily-diet-api/internal/models"
	"daily-diet-api/internal/validation"

	"github.com/rs/zerolog/log"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	respondJSON(w, statusCode, ErrorResponse{Error: message})
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

// respondServiceError maps known errors to their status codes. Anything
// unexpected is logged and reported as a 500 without leaking details.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	var ve *validation.Error
	switch {
	case errors.As(err, &ve):
		respondError(w, ve.Error(), http.StatusBadRequest)
	case errors.Is(err, models.ErrMealNotFound):
		respondError(w, "Meal not found", http.StatusNotFound)
	case errors.Is(err, models.ErrUnauthenticated):
		respondError(w, models.ErrUnauthenticated.Error(), http.StatusUnauthorized)
	default:
		log.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Str("user_id", middleware.GetUserID(r.Context())).
			Msg(msg)
		respondError(w, "internal server error", http.StatusInternalServerError)
	}
}
