package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config aggregates application configuration values loaded from
// environment variables.
type Config struct {
	Env              string
	HTTPAddr         string
	ReservationsAPI  string
	FeedTimeout      time.Duration
	FeedRefresh      time.Duration
	PropertyFixtures string
}

// Load parses configuration from the current environment.
func Load() (Config, error) {
	cfg := Config{
		Env:              getEnv("APP_ENV", "dev"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		ReservationsAPI:  os.Getenv("RESERVATIONS_API_URL"),
		PropertyFixtures: getEnv("PROPERTY_FIXTURES", ""),
	}

	timeout, err := parseDurationEnv("FEED_TIMEOUT", 15*time.Second)
	if err != nil {
		return Config{}, err
	}
	cfg.FeedTimeout = timeout

	// Zero disables the background refresh; views still reload on demand.
	refresh, err := parseDurationEnv("FEED_REFRESH", 0)
	if err != nil {
		return Config{}, err
	}
	cfg.FeedRefresh = refresh

	if cfg.ReservationsAPI == "" {
		return Config{}, fmt.Errorf("RESERVATIONS_API_URL is required")
	}
	cfg.ReservationsAPI = strings.TrimRight(cfg.ReservationsAPI, "/")
	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseDurationEnv(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s duration: %w", key, err)
	}
	return d, nil
}
