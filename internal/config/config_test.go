package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "volcanoes.csv", cfg.DataPath)
	assert.Equal(t, "worldMap2.png", cfg.ImagePath)
	assert.Empty(t, cfg.ThemeFile)
	assert.Equal(t, "det.html", cfg.DetailURL)
	assert.Equal(t, 1280, cfg.WindowWidth)
	assert.Equal(t, 800, cfg.WindowHeight)
	assert.Equal(t, 60, cfg.TargetFPS)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsAddr)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("VOLCANO_DATA", "data/v.csv")
	t.Setenv("MAP_IMAGE", "img/world.png")
	t.Setenv("THEME_FILE", "theme.yaml")
	t.Setenv("DETAIL_URL", "https://example.org/det")
	t.Setenv("WINDOW_WIDTH", "1000")
	t.Setenv("WINDOW_HEIGHT", "700")
	t.Setenv("TARGET_FPS", "30")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/v.csv", cfg.DataPath)
	assert.Equal(t, "img/world.png", cfg.ImagePath)
	assert.Equal(t, "theme.yaml", cfg.ThemeFile)
	assert.Equal(t, "https://example.org/det", cfg.DetailURL)
	assert.Equal(t, 1000, cfg.WindowWidth)
	assert.Equal(t, 700, cfg.WindowHeight)
	assert.Equal(t, 30, cfg.TargetFPS)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non-numeric width", "WINDOW_WIDTH", "wide"},
		{"zero height", "WINDOW_HEIGHT", "0"},
		{"negative fps", "TARGET_FPS", "-1"},
		{"fps too high", "TARGET_FPS", "241"},
		{"bad shutdown timeout", "SHUTDOWN_TIMEOUT", "soon"},
		{"zero shutdown timeout", "SHUTDOWN_TIMEOUT", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.DataPath = ""
	assert.EqualError(t, cfg.Validate(), "VOLCANO_DATA is required")
}
