// Package respond provides shared JSON response utilities for the proxy
// handlers.
package respond

import (
	"encoding/json"
	"net/http"
)

// errorBody is the proxy's error envelope. Details carries an upstream
// error payload when one exists; Message carries a transport error string.
// Callers distinguish proxy errors (this envelope) from provider errors
// (passed through verbatim with the provider's own status code).
type errorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
	Message string `json:"message,omitempty"`
}

// WriteError sends {"error": msg} with the given status.
func WriteError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorBody{Error: msg})
}

// WriteErrorDetail sends {"error": msg, "details": details}.
func WriteErrorDetail(w http.ResponseWriter, status int, msg string, details any) {
	writeJSON(w, status, errorBody{Error: msg, Details: details})
}

// WriteErrorMessage sends {"error": msg, "message": message}.
func WriteErrorMessage(w http.ResponseWriter, status int, msg, message string) {
	writeJSON(w, status, errorBody{Error: msg, Message: message})
}

// WriteJSONObject marshals a Go value to JSON and writes it.
func WriteJSONObject(w http.ResponseWriter, status int, v interface{}) {
	writeJSON(w, status, v)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
