package main

import (
	"bytes"
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ulascansenturk/weather-glass/config"
	"ulascansenturk/weather-glass/internal/weatherclient"
	"ulascansenturk/weather-glass/internal/weatherstack"
)

func TestParseFlags(t *testing.T) {
	conf := &config.Config{ProxyBaseURL: "http://proxy:3000", Units: weatherstack.UnitsScientific}

	opts, err := parseFlags([]string{"-mode=marine", "-lat=1.5", "-lon=2", "-tide"}, conf)
	require.NoError(t, err)
	assert.Equal(t, "marine", opts.mode)
	assert.Equal(t, 1.5, opts.lat)
	assert.True(t, opts.tide)
	assert.Equal(t, "http://proxy:3000", opts.proxy)
	assert.Equal(t, "s", opts.units)

	opts, err = parseFlags(nil, conf)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(opts.lat))
	assert.True(t, opts.hourly)

	_, err = parseFlags([]string{"-mode=forecast"}, conf)
	assert.Error(t, err)
}

func TestRunCurrent(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"location":{"name":"New York","country":"United States of America"},"current":{"temperature":55,"weather_descriptions":["Sunny"]}}`))
	}))
	defer proxy.Close()

	var out bytes.Buffer
	client := weatherclient.NewClient(proxy.URL, weatherstack.UnitsFahrenheit)

	code := run(context.Background(), client, options{mode: "current", query: "New York", units: "f"}, &out)

	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "requires Free plan")
	assert.Contains(t, out.String(), "Location: New York, United States of America")
	assert.Contains(t, out.String(), "Temperature: 55 °F")
	assert.Contains(t, out.String(), "Conditions: Sunny")
}

func TestRunPlanLimitation(t *testing.T) {
	proxy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"error":{"code":603,"type":"historical_queries_not_supported_on_plan","info":"Your current subscription plan does not support historical weather data."}}`))
	}))
	defer proxy.Close()

	var out bytes.Buffer
	client := weatherclient.NewClient(proxy.URL, weatherstack.UnitsMetric)

	code := run(context.Background(), client, options{mode: "historical", query: "London", date: "2015-01-21"}, &out)

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "requires Standard plan")
	assert.Contains(t, out.String(), "Plan Limitation")
	assert.Contains(t, out.String(), "Standard plan or higher")
}
