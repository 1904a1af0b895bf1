package handlers

import "net/http"

// GetMarineWeather accepts either query or a lat/lon pair.
func (h *WeatherHandler) GetMarineWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, methodNotAllowedMessage)
		return
	}

	params := bindMarineParams(r.URL.Query())
	if msg, ok := validateParams(params, marineMessages); !ok {
		respondWithError(w, http.StatusBadRequest, msg)
		return
	}

	h.forward(w, r, marineMode, params.upstreamParams())
}
