package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/rider974/CDA-fil-rouge-sub000/internal/repository"
	"github.com/rider974/CDA-fil-rouge-sub000/internal/service"
)

// ErrorResponse is the uniform failure body.
type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteSuccess(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// WriteServiceError translates typed service/repository errors into HTTP
// statuses: not-found 404, conflict 409, validation 400, anything else is
// logged and reported as a generic 500.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case repository.IsNotFound(err):
		WriteError(w, err.Error(), http.StatusNotFound)
	case repository.IsConflict(err):
		WriteError(w, err.Error(), http.StatusConflict)
	case repository.IsInvalid(err):
		WriteError(w, err.Error(), http.StatusBadRequest)
	case service.IsValidation(err):
		WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("internal error: %v", err)
		WriteError(w, "Internal server error", http.StatusInternalServerError)
	}
}
