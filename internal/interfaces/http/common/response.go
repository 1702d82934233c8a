package common

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// WriteJSON serializes payload to JSON with status and logs on failure.
func WriteJSON(logger zerolog.Logger, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error().Err(err).Msg("failed to encode JSON response")
	}
}

// Message is the body shape used for structured error and not-found replies.
type Message struct {
	Message string `json:"message"`
}

// StoreError forwards a store failure's text as the response body.
type StoreError struct {
	Error string `json:"error"`
}
