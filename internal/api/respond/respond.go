// Package respond centralizes JSON response encoding and the error body
// shapes the API exposes.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// MessageResponse is the body for confirmations and not-found errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationResponse carries per-field failure reasons for a 400.
type ValidationResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// ServerErrorResponse is the body for generation and storage failures.
type ServerErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// WriteMessage writes a 200 confirmation body.
func WriteMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// WriteNotFound writes a 404 Not Found response
func WriteNotFound(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusNotFound, MessageResponse{Message: message})
}

// WriteValidation writes a 400 with the per-field reason map.
func WriteValidation(w http.ResponseWriter, message string, fields map[string][]string) {
	WriteJSON(w, http.StatusBadRequest, ValidationResponse{Message: message, Errors: fields})
}

// WriteServerError writes a 500 with a human-readable message plus the
// underlying error text.
func WriteServerError(w http.ResponseWriter, message string, err error) {
	body := ServerErrorResponse{Message: message}
	if err != nil {
		body.Error = err.Error()
	}
	WriteJSON(w, http.StatusInternalServerError, body)
}
