package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jobscraperpro/jobview/internal/logging"
)

// ResolveOverlayPath picks the overlay file for this invocation.
// It checks (in order):
//  1. flagValue (--config CLI flag)
//  2. JOBVIEW_CONFIG env var
//
// Returns an absolute path, or "" when no overlay was requested.
func ResolveOverlayPath(ctx context.Context, flagValue string) string {
	path := flagValue
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	if path == "" {
		return ""
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		logger := logging.FromContext(ctx)
		logger.Warn().
			Str("component", "config").
			Err(err).
			Str("path", path).
			Msg("failed to resolve absolute path for config overlay")
		return path
	}
	return abs
}

// NewWithOverlay builds the effective config: defaults, the global config
// file, the overlay at overlayPath (if any), then environment overrides.
// A global file or an explicitly requested overlay that cannot be read is an error.
func NewWithOverlay(ctx context.Context, overlayPath string) (*Config, error) {
	cfg := Default()
	if err := cfg.Load(); err != nil {
		return nil, err
	}

	if overlayPath != "" {
		if err := ShallowMergeYAML(cfg, overlayPath); err != nil {
			return nil, err
		}
		logging.FromContext(ctx).Debug().
			Str("component", "config").
			Str("path", overlayPath).
			Msg("applied config overlay")
	}

	cfg.ApplyEnvOverrides()
	return cfg, nil
}
