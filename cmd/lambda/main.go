package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-glass/config"
	"ulascansenturk/weather-glass/internal/api/v1/handlers"
	"ulascansenturk/weather-glass/internal/serverless"
	"ulascansenturk/weather-glass/internal/weatherstack"
)

// The Lambda build serves the same routes as cmd/server without the request
// log; each invocation is independent.
func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || conf.LogLevel == "" {
		logLevel = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()

	upstream := weatherstack.NewClient(conf.WeatherstackBaseURL)
	handler := handlers.NewWeatherHandler(upstream, conf.WeatherstackKey, nil)

	proxy := serverless.NewHandler(handlers.NewRouter(handler, logger))

	logger.Info().Msg("lambda handler initialized")
	lambda.Start(proxy.Handle)
}
