// Command weatherctl queries the proxy from a terminal.
//
// Usage:
//
//	weatherctl -mode=current -query="New York"
//	weatherctl -mode=current -query=fetch:ip
//	weatherctl -mode=historical -query=London -date=2015-01-21 -hourly=false
//	weatherctl -mode=marine -lat=36.7783 -lon=-119.4179 -tide
//
// PROXY_BASE_URL and WEATHERSTACK_UNITS are read from the environment or a
// .env file in the working directory.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-glass/config"
	"ulascansenturk/weather-glass/internal/weatherclient"
	"ulascansenturk/weather-glass/internal/weatherstack"
)

var modeEndpoints = map[string]weatherstack.Endpoint{
	"current":    weatherstack.EndpointCurrent,
	"historical": weatherstack.EndpointHistorical,
	"marine":     weatherstack.EndpointMarine,
}

type options struct {
	mode   string
	query  string
	date   string
	hourly bool
	lat    float64
	lon    float64
	tide   bool
	proxy  string
	units  string
	raw    bool
}

func main() {
	_ = godotenv.Load()

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	opts, err := parseFlags(os.Args[1:], conf)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	client := weatherclient.NewClient(opts.proxy, weatherstack.ParseUnitSystem(opts.units))
	os.Exit(run(context.Background(), client, opts, os.Stdout))
}

func parseFlags(args []string, conf *config.Config) (options, error) {
	var opts options

	fs := flag.NewFlagSet("weatherctl", flag.ContinueOnError)
	fs.StringVar(&opts.mode, "mode", "current", "current, historical or marine")
	fs.StringVar(&opts.query, "query", "", "location: city, coordinates, postal code or "+weatherclient.DetectCallerIP)
	fs.StringVar(&opts.date, "date", "", "historical date (YYYY-MM-DD)")
	fs.BoolVar(&opts.hourly, "hourly", true, "include hourly historical data")
	fs.Float64Var(&opts.lat, "lat", math.NaN(), "marine latitude")
	fs.Float64Var(&opts.lon, "lon", math.NaN(), "marine longitude")
	fs.BoolVar(&opts.tide, "tide", false, "include marine tide data")
	fs.StringVar(&opts.proxy, "proxy", conf.ProxyBaseURL, "proxy base URL")
	fs.StringVar(&opts.units, "units", string(conf.Units), "m, f or s")
	fs.BoolVar(&opts.raw, "raw", false, "print the full JSON payload")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if _, ok := modeEndpoints[opts.mode]; !ok {
		return options{}, fmt.Errorf("unknown mode %q", opts.mode)
	}

	return opts, nil
}

func run(ctx context.Context, client weatherclient.WeatherClient, opts options, out io.Writer) int {
	fmt.Fprintf(out, "%s weather (requires %s plan)\n", opts.mode, weatherstack.RequiredPlan(modeEndpoints[opts.mode]))

	var outcome weatherclient.Outcome
	switch opts.mode {
	case "historical":
		outcome = client.GetHistoricalWeather(ctx, opts.query, opts.date, opts.hourly)
	case "marine":
		outcome = client.GetMarineWeather(ctx, weatherclient.MarineQuery{
			Location: opts.query,
			Lat:      opts.lat,
			Lon:      opts.lon,
			Tide:     opts.tide,
		})
	default:
		outcome = client.GetCurrentWeather(ctx, opts.query)
	}

	if !outcome.OK {
		fmt.Fprintln(out, "Error: "+outcome.Message)
		if outcome.Details != nil {
			fmt.Fprintf(out, "Details: %v\n", outcome.Details)
		}
		return 1
	}

	if opts.raw {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(outcome.Data); err != nil {
			log.Error().Err(err).Msg("failed to encode payload")
			return 1
		}
		return 0
	}

	printSummary(out, outcome.Data, weatherstack.ParseUnitSystem(opts.units))
	return 0
}

func printSummary(out io.Writer, data weatherstack.Payload, units weatherstack.UnitSystem) {
	if loc := data.Location(); loc != nil {
		parts := []string{}
		for _, key := range []string{"name", "region", "country"} {
			if s, ok := loc[key].(string); ok && s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			fmt.Fprintf(out, "Location: %s\n", strings.Join(parts, ", "))
		}
		if lt, ok := loc["localtime"].(string); ok && lt != "" {
			fmt.Fprintf(out, "Local time: %s\n", lt)
		}
	}

	if current := data.Current(); current != nil {
		if t, ok := current["temperature"]; ok {
			fmt.Fprintf(out, "Temperature: %v %s\n", t, units.Label())
		}
		if desc, ok := current["weather_descriptions"].([]any); ok && len(desc) > 0 {
			fmt.Fprintf(out, "Conditions: %v\n", desc[0])
		}
	}

	for date, day := range data.Historical() {
		if d, ok := day.(map[string]any); ok {
			fmt.Fprintf(out, "%s: min %v, max %v, avg %v %s\n", date, d["mintemp"], d["maxtemp"], d["avgtemp"], units.Label())
		}
	}

	if data.Marine() != nil || data.Forecast() != nil {
		fmt.Fprintln(out, "Marine data received (use -raw for the full payload)")
	}
	if data.Tides() != nil {
		fmt.Fprintln(out, "Tide data received")
	}
}
