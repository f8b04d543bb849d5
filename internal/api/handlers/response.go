package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// errorPayload is the machine-readable body of a rejected request.
type errorPayload struct {
	Error string `json:"error"`
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(errorPayload{Error: message}); err != nil {
		log.Error().Err(err).Msg("Failed to encode error response")
	}
}
