// Package response provides helpers for sending consistent JSON responses.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the body of every error returned by the API.
// Details is optional and carries the underlying error text.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// RespondJSON writes data as JSON with the given status code.
// A nil data or a 204 status writes headers only.
// Encoding errors are logged; the status has already been sent by then.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil || status == http.StatusNoContent {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode JSON response: %v", err)
	}
}

// RespondError writes an ErrorResponse with the given status code.
//
// Example:
//
//	response.RespondError(w, http.StatusNotFound, "calculator session not found", err.Error())
func RespondError(w http.ResponseWriter, status int, message string, details any) {
	RespondJSON(w, status, ErrorResponse{
		Error:   message,
		Details: details,
	})
}
