package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
	"github.com/joho/godotenv"

	"github.com/couchcryptid/urban-pulse-widget/internal/domain"
)

// Config holds all widget settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// InitialCity is shown before the user submits anything.
	InitialCity domain.CityName

	// UI timing.
	FlashDuration    time.Duration
	RadarPulsePeriod time.Duration
	RadarSweepPeriod time.Duration

	WindowWidth  int
	WindowHeight int
}

// Load reads configuration from environment variables, applying defaults where unset.
// A .env file in the working directory is loaded first when present; variables
// already set in the environment take precedence over it.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}
	flash, err := parseDuration("FLASH_DURATION", "1s")
	if err != nil {
		return nil, err
	}
	pulse, err := parseDuration("RADAR_PULSE_PERIOD", "3s")
	if err != nil {
		return nil, err
	}
	sweep, err := parseDuration("RADAR_SWEEP_PERIOD", "6s")
	if err != nil {
		return nil, err
	}

	width, err := parsePositiveInt("WINDOW_WIDTH", 750)
	if err != nil {
		return nil, err
	}
	height, err := parsePositiveInt("WINDOW_HEIGHT", 600)
	if err != nil {
		return nil, err
	}

	city, err := domain.Validate(sharedcfg.EnvOrDefault("INITIAL_CITY", "NEW YORK"))
	if err != nil {
		return nil, fmt.Errorf("invalid INITIAL_CITY: %w", err)
	}

	return &Config{
		HTTPAddr:         sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:         sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:        sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout:  shutdownTimeout,
		InitialCity:      city,
		FlashDuration:    flash,
		RadarPulsePeriod: pulse,
		RadarSweepPeriod: sweep,
		WindowWidth:      width,
		WindowHeight:     height,
	}, nil
}

// parseDuration reads a strictly positive duration.
func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(sharedcfg.EnvOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}
