// Package config loads runtime configuration from the environment.
//
// Variables carry a HOTELAPI_ prefix (HOTELAPI_ADDR, HOTELAPI_MONGO_URI, ...)
// and may be supplied through a .env file, loaded by the godotenv autoload
// side-effect import before anything reads the environment.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

// Config holds runtime configuration shared across the application.
type Config struct {
	Env                   string `koanf:"env"`
	Addr                  string `koanf:"addr" validate:"required"`
	MongoURI              string `koanf:"mongo_uri" validate:"required"`
	MongoDatabase         string `koanf:"mongo_database" validate:"required"`
	HotelCollection       string `koanf:"hotel_collection" validate:"required"`
	ConnectTimeoutSeconds int    `koanf:"connect_timeout_seconds" validate:"min=1"`
	AllowedOrigins        string `koanf:"allowed_origins"`
}

// ConnectTimeout returns the Mongo connect timeout as a duration.
func (c Config) ConnectTimeout() time.Duration {
	return time.Duration(c.ConnectTimeoutSeconds) * time.Second
}

// Origins returns the comma-separated allowed origins as a list.
// An empty value allows every origin.
func (c Config) Origins() []string {
	raw := strings.TrimSpace(c.AllowedOrigins)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			origins = append(origins, part)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// Load reads environment variables over the defaults and returns a validated
// Config. Bad configuration is fatal; the process cannot run without it.
func Load() Config {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := Config{
		Env:                   "prod",
		Addr:                  ":8080",
		MongoURI:              "mongodb://mongo:27017",
		MongoDatabase:         "hotels",
		HotelCollection:       "hotels",
		ConnectTimeoutSeconds: 10,
	}

	k := koanf.New(".")
	if err := k.Load(env.Provider("HOTELAPI_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "HOTELAPI_"))
	}), nil); err != nil {
		logger.Fatal().Err(err).Msg("could not load environment variables")
	}
	if err := k.Unmarshal("", &cfg); err != nil {
		logger.Fatal().Err(err).Msg("could not unmarshal config")
	}

	if err := validator.New().Struct(cfg); err != nil {
		logger.Fatal().Err(err).Msg("config validation failed")
	}

	return cfg
}
