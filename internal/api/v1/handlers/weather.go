package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"ulascansenturk/weather-glass/internal/db/requestlog"
	"ulascansenturk/weather-glass/internal/weatherstack"
)

type mode struct {
	name     string
	endpoint weatherstack.Endpoint
	failure  string
}

var (
	currentMode    = mode{name: "current", endpoint: weatherstack.EndpointCurrent, failure: "Failed to fetch weather data"}
	historicalMode = mode{name: "historical", endpoint: weatherstack.EndpointHistorical, failure: "Failed to fetch historical weather data"}
	marineMode     = mode{name: "marine", endpoint: weatherstack.EndpointMarine, failure: "Failed to fetch marine weather data"}
)

type WeatherHandler struct {
	upstream   weatherstack.Client
	accessKey  string
	requestLog requestlog.Repository
}

// NewWeatherHandler builds the proxy handlers. requestLog may be nil, in which
// case nothing is recorded.
func NewWeatherHandler(upstream weatherstack.Client, accessKey string, requestLog requestlog.Repository) *WeatherHandler {
	return &WeatherHandler{
		upstream:   upstream,
		accessKey:  accessKey,
		requestLog: requestLog,
	}
}

func (h *WeatherHandler) GetCurrentWeather(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, methodNotAllowedMessage)
		return
	}

	params := bindCurrentParams(r.URL.Query())
	if msg, ok := validateParams(params, currentMessages); !ok {
		respondWithError(w, http.StatusBadRequest, msg)
		return
	}

	h.forward(w, r, currentMode, params.upstreamParams())
}

func (h *WeatherHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

func (h *WeatherHandler) forward(w http.ResponseWriter, r *http.Request, m mode, params url.Values) {
	logger := hlog.FromRequest(r)

	accessKey, err := weatherstack.ValidAccessKey(h.accessKey)
	if err != nil {
		logger.Error().Err(err).Str("mode", m.name).Msg("refusing to forward request")
		respondWithError(w, http.StatusInternalServerError, missingAccessKeyMessage)
		return
	}

	entry := &requestlog.ProxyRequest{
		RequestID: RequestIDFromContext(r.Context()),
		Mode:      m.name,
		Location:  params.Get("query"),
	}
	defer h.logRequest(logger, entry)

	params.Set(weatherstack.ParamAccessKey, accessKey)

	// The upstream call runs to completion even if the caller disconnects.
	resp, err := h.upstream.Fetch(context.WithoutCancel(r.Context()), m.endpoint, params)
	if err != nil {
		logger.Error().Err(err).Str("mode", m.name).Msg("weatherstack request failed")
		entry.ResponseStatus = http.StatusInternalServerError
		respondWithErrorDetails(w, http.StatusInternalServerError, m.failure, err.Error())
		return
	}
	entry.UpstreamStatus = resp.StatusCode

	if env, ok := weatherstack.DecodeErrorEnvelope(resp.Body); ok {
		entry.ResponseStatus = http.StatusBadRequest
		entry.ErrorCode = env.Error.Code
		entry.ErrorType = env.Error.Type
		entry.PlanLimited = weatherstack.IsPlanLimitation(env.Error)

		logger.Warn().
			Str("mode", m.name).
			Int("code", env.Error.Code).
			Str("type", env.Error.Type).
			Bool("plan_limited", entry.PlanLimited).
			Msg("weatherstack rejected request")
		respondWithRawJSON(w, http.StatusBadRequest, env.Raw)
		return
	}

	if !resp.OK() {
		logger.Warn().Str("mode", m.name).Int("status", resp.StatusCode).Msg("weatherstack returned an error status")
		entry.ResponseStatus = resp.StatusCode
		respondWithErrorDetails(w, resp.StatusCode, fmt.Sprintf("Weatherstack API error: %d", resp.StatusCode), string(resp.Body))
		return
	}

	if !json.Valid(resp.Body) {
		logger.Error().Str("mode", m.name).Msg("weatherstack returned malformed JSON")
		entry.ResponseStatus = http.StatusInternalServerError
		respondWithErrorDetails(w, http.StatusInternalServerError, m.failure, "weatherstack returned malformed JSON")
		return
	}

	entry.ResponseStatus = http.StatusOK
	respondWithRawJSON(w, http.StatusOK, resp.Body)
}

func (h *WeatherHandler) logRequest(logger *zerolog.Logger, entry *requestlog.ProxyRequest) {
	if h.requestLog == nil {
		return
	}

	go func() {
		if err := h.requestLog.LogProxyRequest(entry); err != nil {
			logger.Error().Err(err).Str("mode", entry.Mode).Msg("failed to log proxy request")
		}
	}()
}
