package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application settings, populated from environment variables.
type Config struct {
	DataPath        string
	ImagePath       string
	ThemeFile       string
	DetailURL       string
	WindowWidth     int
	WindowHeight    int
	TargetFPS       int
	LogLevel        string
	LogFormat       string
	MetricsAddr     string
	ShutdownTimeout time.Duration
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	width, err := positiveInt("WINDOW_WIDTH", 1280)
	if err != nil {
		return nil, err
	}
	height, err := positiveInt("WINDOW_HEIGHT", 800)
	if err != nil {
		return nil, err
	}

	fps, err := positiveInt("TARGET_FPS", 60)
	if err != nil {
		return nil, err
	}
	if fps > 240 {
		return nil, errors.New("invalid TARGET_FPS: must be between 1 and 240")
	}

	shutdownTimeout, err := time.ParseDuration(envOrDefault("SHUTDOWN_TIMEOUT", "5s"))
	if err != nil || shutdownTimeout <= 0 {
		return nil, errors.New("invalid SHUTDOWN_TIMEOUT")
	}

	cfg := &Config{
		DataPath:        envOrDefault("VOLCANO_DATA", "volcanoes.csv"),
		ImagePath:       envOrDefault("MAP_IMAGE", "worldMap2.png"),
		ThemeFile:       os.Getenv("THEME_FILE"),
		DetailURL:       envOrDefault("DETAIL_URL", "det.html"),
		WindowWidth:     width,
		WindowHeight:    height,
		TargetFPS:       fps,
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "text"),
		MetricsAddr:     os.Getenv("METRICS_ADDR"),
		ShutdownTimeout: shutdownTimeout,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields that flags can override after Load.
func (c *Config) Validate() error {
	if c.DataPath == "" {
		return errors.New("VOLCANO_DATA is required")
	}
	if c.DetailURL == "" {
		return errors.New("DETAIL_URL is required")
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func positiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return n, nil
}
