// Package handler implements the REST API surface: request validation,
// authorization-scoped delegation to storage, and JSON response shaping.
package handler

import (
	"encoding/json"
	"net/http"
)

// writeJSON serializes v to the response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteError writes the standard failure envelope: a human-readable message
// and nothing else. No stack traces or internals reach the client.
func WriteError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
