package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	cerr "github.com/saeidalz13/seabattle/internal/error"
	mb "github.com/saeidalz13/seabattle/models/battleship"
)

const (
	StageProd = "prod"
	StageDev  = "dev"

	defaultPort = 8000
)

type Config struct {
	Stage       string
	Port        int
	Settings    mb.Settings
	Seed        int64
	DatabaseURL string
	LogLevel    log.Level
}

// Load reads the configuration from the environment. Outside prod an
// env file is loaded first when it exists; variables already set in
// the environment win over it.
func Load(envFile string) (Config, error) {
	if os.Getenv("STAGE") != StageProd && envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := Config{
		Stage:       StageDev,
		Port:        defaultPort,
		Settings:    mb.DefaultSettings(),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    log.InfoLevel,
	}

	if stage := os.Getenv("STAGE"); stage != "" {
		if stage != StageDev && stage != StageProd {
			return Config{}, fmt.Errorf("stage must be either dev or prod, got: %s", stage)
		}
		cfg.Stage = stage
	}

	var err error
	if cfg.Port, err = intFromEnv("PORT", cfg.Port); err != nil {
		return Config{}, err
	}
	if cfg.Settings.Dimension, err = intFromEnv("BOARD_DIMENSION", cfg.Settings.Dimension); err != nil {
		return Config{}, err
	}
	if cfg.Settings.MaxPlacementAttempts, err = intFromEnv("MAX_PLACEMENT_ATTEMPTS", cfg.Settings.MaxPlacementAttempts); err != nil {
		return Config{}, err
	}
	if cfg.Settings.MaxTargetAttempts, err = intFromEnv("MAX_TARGET_ATTEMPTS", cfg.Settings.MaxTargetAttempts); err != nil {
		return Config{}, err
	}
	if seed := os.Getenv("SEED"); seed != "" {
		if cfg.Seed, err = strconv.ParseInt(seed, 10, 64); err != nil {
			return Config{}, fmt.Errorf("SEED must be an integer: %w", err)
		}
	}
	if fleet := os.Getenv("FLEET"); fleet != "" {
		if cfg.Settings.Fleet, err = ParseFleet(fleet); err != nil {
			return Config{}, err
		}
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		if cfg.LogLevel, err = log.ParseLevel(level); err != nil {
			return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	s := c.Settings
	if s.Dimension < 1 {
		return cerr.ErrInvalidDimension(s.Dimension)
	}
	if len(s.Fleet) == 0 {
		return cerr.ErrEmptyFleet()
	}
	for _, length := range s.Fleet {
		if length < 1 || length > s.Dimension {
			return cerr.ErrInvalidShipLength(length, s.Dimension)
		}
	}
	if s.MaxPlacementAttempts < 1 {
		return fmt.Errorf("MAX_PLACEMENT_ATTEMPTS must be positive, got: %d", s.MaxPlacementAttempts)
	}
	if s.MaxTargetAttempts < 1 {
		return fmt.Errorf("MAX_TARGET_ATTEMPTS must be positive, got: %d", s.MaxTargetAttempts)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	return nil
}

// ParseFleet reads a comma separated list of ship lengths, e.g. "3,2,2,1".
func ParseFleet(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	fleet := make([]int, 0, len(parts))
	for _, part := range parts {
		length, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("FLEET must be a comma separated list of integers: %w", err)
		}
		fleet = append(fleet, length)
	}
	return fleet, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return v, nil
}
