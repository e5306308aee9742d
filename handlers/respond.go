package handlers

import (
	"encoding/json"
	"log"
	"net/http"
)

// errorResponse is the wire shape for all failures: a human-readable message
// plus the offending field name when one can be identified.
type errorResponse struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Message: message})
}

func writeFieldError(w http.ResponseWriter, message, field string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Message: message, Field: field})
}

// writeInternalError logs the cause and returns a generic body so store
// internals never leak to the client.
func writeInternalError(w http.ResponseWriter, err error) {
	log.Printf("Internal error: %v", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
