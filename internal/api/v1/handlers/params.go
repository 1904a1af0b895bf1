package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"ulascansenturk/weather-glass/internal/weatherstack"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("query")
	})
	return v
}

// Only presence is checked here. Date format, coordinate ranges and unit codes
// are validated by Weatherstack.
type currentParams struct {
	Query string `query:"query" validate:"required"`
	Units string `query:"units"`
}

type historicalParams struct {
	Query          string  `query:"query" validate:"required"`
	HistoricalDate string  `query:"historical_date" validate:"required"`
	Hourly         *string `query:"hourly"`
	Interval       *string `query:"interval"`
	Units          string  `query:"units"`
}

type marineParams struct {
	Query string  `query:"query" validate:"required"`
	Tide  *string `query:"tide"`
	Units string  `query:"units"`
}

var (
	currentMessages = map[string]string{
		"query": `Missing or invalid "query" parameter`,
	}
	historicalMessages = map[string]string{
		"query":           `Missing or invalid "query" parameter`,
		"historical_date": `Missing or invalid "historical_date" parameter (format: YYYY-MM-DD)`,
	}
	marineMessages = map[string]string{
		"query": `Missing or invalid "query" parameter (or provide both "lat" and "lon")`,
	}
)

func bindCurrentParams(q url.Values) currentParams {
	return currentParams{
		Query: strings.TrimSpace(singleParam(q, "query")),
		Units: singleParam(q, "units"),
	}
}

func bindHistoricalParams(q url.Values) historicalParams {
	return historicalParams{
		Query:          strings.TrimSpace(singleParam(q, "query")),
		HistoricalDate: strings.TrimSpace(singleParam(q, "historical_date")),
		Hourly:         optionalParam(q, "hourly"),
		Interval:       optionalParam(q, "interval"),
		Units:          singleParam(q, "units"),
	}
}

// bindMarineParams composes "lat,lon" only when query is absent or empty and
// both coordinates are non-blank; a whitespace-only query is kept and rejected
// by validation.
func bindMarineParams(q url.Values) marineParams {
	query := singleParam(q, "query")
	lat := strings.TrimSpace(singleParam(q, "lat"))
	lon := strings.TrimSpace(singleParam(q, "lon"))
	if query == "" && lat != "" && lon != "" {
		query = lat + "," + lon
	}

	return marineParams{
		Query: strings.TrimSpace(query),
		Tide:  optionalParam(q, "tide"),
		Units: singleParam(q, "units"),
	}
}

func (p currentParams) upstreamParams() url.Values {
	params := url.Values{}
	params.Set("query", p.Query)
	params.Set("units", unitsOrDefault(p.Units))
	return params
}

func (p historicalParams) upstreamParams() url.Values {
	params := url.Values{}
	params.Set("query", p.Query)
	params.Set("historical_date", p.HistoricalDate)
	params.Set("units", unitsOrDefault(p.Units))
	if p.Hourly != nil {
		params.Set("hourly", flagValue(*p.Hourly))
	}
	if p.Interval != nil {
		params.Set("interval", *p.Interval)
	}
	return params
}

func (p marineParams) upstreamParams() url.Values {
	params := url.Values{}
	params.Set("query", p.Query)
	params.Set("units", unitsOrDefault(p.Units))
	if p.Tide != nil {
		params.Set("tide", flagValue(*p.Tide))
	}
	return params
}

// validateParams returns the client-facing message for the first missing field.
func validateParams(params interface{}, messages map[string]string) (string, bool) {
	err := validate.Struct(params)
	if err == nil {
		return "", true
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		if msg, ok := messages[fieldErrs[0].Field()]; ok {
			return msg, false
		}
		return fmt.Sprintf("Missing or invalid %q parameter", fieldErrs[0].Field()), false
	}

	return err.Error(), false
}

// singleParam treats a repeated parameter as invalid and returns "".
func singleParam(q url.Values, name string) string {
	values := q[name]
	if len(values) != 1 {
		return ""
	}
	return values[0]
}

func optionalParam(q url.Values, name string) *string {
	if !q.Has(name) {
		return nil
	}
	value := strings.Join(q[name], ",")
	return &value
}

func flagValue(raw string) string {
	if raw == "true" || raw == "1" {
		return "1"
	}
	return "0"
}

func unitsOrDefault(units string) string {
	if units == "" {
		return string(weatherstack.UnitsMetric)
	}
	return units
}
