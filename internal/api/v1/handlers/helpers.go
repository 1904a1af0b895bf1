package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

const (
	methodNotAllowedMessage = "Method not allowed. Use GET."
	missingAccessKeyMessage = "Missing API key. Set WEATHERSTACK_KEY or VITE_WEATHERSTACK_KEY environment variable."
)

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithErrorDetails(w http.ResponseWriter, code int, message string, details interface{}) {
	respondWithJSON(w, code, ErrorResponse{Error: message, Details: details})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

// respondWithRawJSON writes body unchanged; body must already be valid JSON.
func respondWithRawJSON(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}
