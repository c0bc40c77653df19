package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// errorEnvelope is the uniform error payload.
type errorEnvelope struct {
	Error string `json:"error"`
}

// jsonResponse writes a JSON payload with the given status.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

// errorResponse writes a JSON error envelope with the given status.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, errorEnvelope{Error: message})
}
