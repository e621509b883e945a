// Package handlers implements the HTTP endpoints for the DomainScout
// server.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/domainscout/domainscout/internal/server/middleware"
)

// errorEnvelope is the JSON body returned for every error response.
type errorEnvelope struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// nolint:errcheck // response already committed
	json.NewEncoder(w).Encode(body)
}

// RespondError writes a JSON error envelope.
func RespondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	envelope := errorEnvelope{Error: message}
	if r != nil {
		envelope.RequestID = middleware.GetRequestID(r.Context())
	}
	respondJSON(w, status, envelope)
}
