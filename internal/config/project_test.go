package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobscraperpro/jobview/internal/config"
)

func TestResolveOverlayPath(t *testing.T) {
	ctx := context.Background()

	t.Run("none requested", func(t *testing.T) {
		setHome(t)
		assert.Empty(t, config.ResolveOverlayPath(ctx, ""))
	})

	t.Run("flag wins over env", func(t *testing.T) {
		setHome(t)
		t.Setenv(config.EnvConfig, "/env/overlay.yaml")
		assert.Equal(t, "/flag/overlay.yaml", config.ResolveOverlayPath(ctx, "/flag/overlay.yaml"))
	})

	t.Run("env used when flag empty", func(t *testing.T) {
		setHome(t)
		t.Setenv(config.EnvConfig, "/env/overlay.yaml")
		assert.Equal(t, "/env/overlay.yaml", config.ResolveOverlayPath(ctx, ""))
	})

	t.Run("relative made absolute", func(t *testing.T) {
		setHome(t)
		got := config.ResolveOverlayPath(ctx, "overlay.yaml")
		assert.True(t, filepath.IsAbs(got))
		assert.Equal(t, "overlay.yaml", filepath.Base(got))
	})
}

func TestNewWithOverlay(t *testing.T) {
	ctx := context.Background()
	home := setHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
api:
  base_url: https://global.example.com
logging:
  level: warn
  format: console
`), 0o600))
	overlay := writeOverlay(t, `
logging:
  level: debug
  format: json
`)
	t.Setenv(config.EnvOutput, "ndjson")

	cfg, err := config.NewWithOverlay(ctx, overlay)
	require.NoError(t, err)
	assert.Equal(t, "https://global.example.com", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, config.FormatNDJSON, cfg.Output.DefaultFormat)
}

func TestNewWithOverlay_MissingOverlay(t *testing.T) {
	setHome(t)
	_, err := config.NewWithOverlay(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestNewWithOverlay_NoOverlay(t *testing.T) {
	setHome(t)
	cfg, err := config.NewWithOverlay(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultBaseURL, cfg.API.BaseURL)
}
