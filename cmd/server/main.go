package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/klauspost/compress/gzhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-glass/config"
	"ulascansenturk/weather-glass/internal/api/v1/handlers"
	"ulascansenturk/weather-glass/internal/db/requestlog"
	"ulascansenturk/weather-glass/internal/weatherstack"
)

func main() {
	conf, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := newLogger(conf)

	ctx, mainCtxStop := context.WithCancel(context.Background())

	if _, keyErr := weatherstack.ValidAccessKey(conf.WeatherstackKey); keyErr != nil {
		logger.Warn().Err(keyErr).Msg("requests will be rejected until WEATHERSTACK_KEY is set")
	}

	var requestLog requestlog.Repository
	if conf.RequestLogEnabled {
		db, dbErr := requestlog.Open(conf.Database())
		if dbErr != nil {
			logger.Fatal().Err(dbErr).Msg("failed to initialize database")
		}
		requestLog = requestlog.NewRepository(db)
	}

	upstream := weatherstack.NewClient(conf.WeatherstackBaseURL)
	handler := handlers.NewWeatherHandler(upstream, conf.WeatherstackKey, requestLog)

	httpServer := &http.Server{
		Addr:              conf.ServerAddress,
		Handler:           gzhttp.GzipHandler(handlers.NewRouter(handler, logger)),
		ReadHeaderTimeout: conf.HTTPTimeoutDuration(),
	}

	handleSignals(ctx, mainCtxStop, func() {
		shutdownErr := httpServer.Shutdown(ctx)
		if shutdownErr != nil {
			logger.Fatal().Err(shutdownErr).Msg("server shutdown failed")
		}
	})

	logger.Info().Msgf("started server on %s", conf.ServerAddress)

	serverErr := httpServer.ListenAndServe()
	if serverErr != nil && !errors.Is(serverErr, http.ErrServerClosed) {
		logger.Err(serverErr).Msg("server stopped")
		mainCtxStop()
	}
	<-ctx.Done()
}

func newLogger(conf *config.Config) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil || conf.LogLevel == "" {
		logLevel = zerolog.InfoLevel
	}

	return zerolog.New(os.Stdout).
		Level(logLevel).
		With().
		Str("service_name", conf.ServiceName).
		Timestamp().
		Logger()
}

func handleSignals(ctx context.Context, cancelCtx context.CancelFunc, callback func()) {
	sig := make(chan os.Signal, 1)

	signal.Notify(sig, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	const shutdownDuration = 30 * time.Second

	go func() {
		<-sig

		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownDuration)

		go func() {
			<-shutdownCtx.Done()

			if shutdownCtx.Err() == context.DeadlineExceeded {
				panic("graceful shutdown timed out.. forcing exit.")
			}
		}()

		callback()

		cancel()
		cancelCtx()
	}()
}
