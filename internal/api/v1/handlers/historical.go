package handlers

import "net/http"

func (h *WeatherHandler) GetHistoricalWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, methodNotAllowedMessage)
		return
	}

	params := bindHistoricalParams(r.URL.Query())
	if msg, ok := validateParams(params, historicalMessages); !ok {
		respondWithError(w, http.StatusBadRequest, msg)
		return
	}

	h.forward(w, r, historicalMode, params.upstreamParams())
}
