package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/mock-interview/internal/feedback"
	"github.com/jonathan/mock-interview/internal/store"
)

// HTTPStatus maps pipeline errors to response codes. Anything unrecognized
// is a server fault.
func HTTPStatus(err error) int {
	var invalidInput *feedback.InvalidInputError
	if errors.As(err, &invalidInput) {
		return http.StatusBadRequest
	}
	var validation validator.ValidationErrors
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}
	var notFound *store.SessionNotFoundError
	if errors.As(err, &notFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// errorResponse writes a JSON error body with the given status.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// jsonResponse writes a JSON body with the given status.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
