package weatherclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"ulascansenturk/weather-glass/internal/weatherstack"
)

const DefaultBaseURL = "http://localhost:3000"

// DetectCallerIP asks Weatherstack to resolve the location from the caller's IP.
const DetectCallerIP = "fetch:ip"

const (
	routeCurrent    = "/api/weather"
	routeHistorical = "/api/historical"
	routeMarine     = "/api/marine"
)

const (
	networkErrorMessage     = "Network error while contacting Weatherstack."
	parseErrorMessage       = "Failed to parse API response JSON."
	providerErrorMessage    = "Weatherstack error."
	invalidCoordinatesError = "Please enter valid numeric latitude and longitude."
)

var errNullBody = errors.New("response body is JSON null")

// Outcome is the result of one request. Data is set only when OK is true.
type Outcome struct {
	OK      bool
	Data    weatherstack.Payload
	Message string
	Details any
}

func failure(message string, details any) Outcome {
	return Outcome{Message: message, Details: details}
}

// MarineQuery selects a marine location. Location wins when non-blank,
// otherwise Lat and Lon are sent as "lat,lon".
type MarineQuery struct {
	Location string
	Lat      float64
	Lon      float64
	Tide     bool
}

type WeatherClient interface {
	GetCurrentWeather(ctx context.Context, query string) Outcome
	GetHistoricalWeather(ctx context.Context, query, date string, hourly bool) Outcome
	GetMarineWeather(ctx context.Context, q MarineQuery) Outcome
	GetHTTPClient() *http.Client
}

type client struct {
	baseURL string
	units   weatherstack.UnitSystem
	client  *http.Client
}

// NewClient talks to the proxy at baseURL. An empty baseURL means DefaultBaseURL.
func NewClient(baseURL string, units weatherstack.UnitSystem) WeatherClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		units:   units,
		client:  &http.Client{},
	}
}

func (c *client) GetHTTPClient() *http.Client {
	return c.client
}

func (c *client) GetCurrentWeather(ctx context.Context, query string) Outcome {
	params := url.Values{}
	params.Set("query", query)
	return c.request(ctx, routeCurrent, params)
}

func (c *client) GetHistoricalWeather(ctx context.Context, query, date string, hourly bool) Outcome {
	params := url.Values{}
	params.Set("query", query)
	params.Set("historical_date", date)
	params.Set("hourly", boolFlag(hourly))
	params.Set("interval", "1")
	return c.request(ctx, routeHistorical, params)
}

func (c *client) GetMarineWeather(ctx context.Context, q MarineQuery) Outcome {
	query := strings.TrimSpace(q.Location)
	if query == "" {
		if !finite(q.Lat) || !finite(q.Lon) {
			return failure(invalidCoordinatesError, nil)
		}
		query = formatCoordinate(q.Lat) + "," + formatCoordinate(q.Lon)
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("tide", boolFlag(q.Tide))
	return c.request(ctx, routeMarine, params)
}

func (c *client) request(ctx context.Context, route string, params url.Values) Outcome {
	if c.units != "" {
		params.Set("units", string(c.units))
	}

	logger := zerolog.Ctx(ctx)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+route+"?"+params.Encode(), nil)
	if err != nil {
		return failure(networkErrorMessage, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Debug().Err(err).Str("route", route).Msg("proxy request failed")
		return failure(networkErrorMessage, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(networkErrorMessage, err)
	}

	outcome := classify(resp.StatusCode, raw)
	logger.Debug().
		Str("route", route).
		Int("status", resp.StatusCode).
		Bool("ok", outcome.OK).
		Msg("proxy request completed")

	return outcome
}

// classify maps a proxy reply to an Outcome. Order matters: a decodable
// envelope is reported before the HTTP status is considered.
func classify(status int, raw []byte) Outcome {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return failure(parseErrorMessage, err)
	}
	if body == nil {
		return failure(parseErrorMessage, errNullBody)
	}

	if proxyErr, ok := body["error"]; ok {
		if _, hasSuccess := body["success"]; !hasSuccess {
			return failure(proxyErrorMessage(proxyErr), body["details"])
		}
	}

	if env, ok := weatherstack.DecodeErrorEnvelope(raw); ok {
		if weatherstack.IsPlanLimitation(env.Error) {
			return failure(PlanLimitationMessage(env.Error), body["error"])
		}

		message := env.Error.Info
		if message == "" {
			message = providerErrorMessage
		}
		return failure(message, body["error"])
	}

	if status < 200 || status > 299 {
		return failure(fmt.Sprintf("HTTP error (%d).", status), body)
	}

	return Outcome{OK: true, Data: weatherstack.Payload(body)}
}

// PlanLimitationMessage is the user-facing text for a plan-limited error.
func PlanLimitationMessage(e weatherstack.ErrorDetail) string {
	return "Plan Limitation: " + e.Info + "\n\n" + weatherstack.PlanRemediation(e)
}

func proxyErrorMessage(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func formatCoordinate(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
