package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"ulascansenturk/weather-glass/internal/db/requestlog"
	"ulascansenturk/weather-glass/internal/weatherstack"
)

type Config struct {
	ServiceName   string
	ServerAddress string

	DBName     string
	DBPassword string
	DBUser     string
	DBPort     string
	DBHost     string

	Env         string
	LogLevel    string
	HTTPTimeout int32

	// WeatherstackKey is WEATHERSTACK_KEY, or VITE_WEATHERSTACK_KEY when unset.
	WeatherstackKey     string
	WeatherstackBaseURL string
	Units               weatherstack.UnitSystem

	ProxyBaseURL      string
	RequestLogEnabled bool
}

func LoadConfig() (*Config, error) {
	v := viper.New()

	v.SetDefault("SERVICE_NAME", "weather-glass")

	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:3000")
	v.SetDefault("DATABASE_PORT", "5432")
	v.SetDefault("HTTP_TIMEOUT", 175)
	v.SetDefault("WEATHERSTACK_BASE_URL", weatherstack.DefaultBaseURL)
	v.SetDefault("WEATHERSTACK_UNITS", string(weatherstack.UnitsMetric))
	v.SetDefault("PROXY_BASE_URL", "http://localhost:3000")
	v.SetDefault("REQUEST_LOG_ENABLED", false)

	v.AutomaticEnv()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Debug().Msg("No .env file found, using environment variables only")
		} else {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", v.ConfigFileUsed()).Msg("Config file loaded")
	}

	config := &Config{
		ServiceName:         v.GetString("SERVICE_NAME"),
		ServerAddress:       v.GetString("SERVER_ADDRESS"),
		DBName:              v.GetString("DATABASE_NAME"),
		DBPassword:          v.GetString("DATABASE_PASSWORD"),
		DBUser:              v.GetString("DATABASE_USER"),
		DBPort:              v.GetString("DATABASE_PORT"),
		DBHost:              v.GetString("DATABASE_HOST"),
		Env:                 v.GetString("ENV"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		HTTPTimeout:         v.GetInt32("HTTP_TIMEOUT"),
		WeatherstackKey:     firstNonEmpty(v.GetString("WEATHERSTACK_KEY"), v.GetString("VITE_WEATHERSTACK_KEY")),
		WeatherstackBaseURL: v.GetString("WEATHERSTACK_BASE_URL"),
		Units:               weatherstack.ParseUnitSystem(v.GetString("WEATHERSTACK_UNITS")),
		ProxyBaseURL:        v.GetString("PROXY_BASE_URL"),
		RequestLogEnabled:   v.GetBool("REQUEST_LOG_ENABLED"),
	}

	return config, nil
}

func (c *Config) HTTPTimeoutDuration() time.Duration {
	return time.Duration(c.HTTPTimeout) * time.Second
}

func (c *Config) Database() requestlog.ConnectionConfig {
	return requestlog.ConnectionConfig{
		Host:     c.DBHost,
		Port:     c.DBPort,
		User:     c.DBUser,
		Password: c.DBPassword,
		Name:     c.DBName,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
