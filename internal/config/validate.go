package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"

	"github.com/rs/zerolog"
)

// Validate reports every problem with c, joined into one error.
func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.API.BaseURL)
	switch {
	case c.API.BaseURL == "":
		errs = append(errs, fmt.Errorf("%w: api.base_url is required", ErrInvalidValue))
	case err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https"):
		errs = append(errs, fmt.Errorf("%w: api.base_url must be an http(s) URL, got %q",
			ErrInvalidValue, c.API.BaseURL))
	}
	if c.API.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: api.timeout must be positive", ErrInvalidValue))
	}
	if c.API.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("%w: api.rate_limit must be >= 0", ErrInvalidValue))
	}
	if c.API.Burst < 0 {
		errs = append(errs, fmt.Errorf("%w: api.burst must be >= 0", ErrInvalidValue))
	}

	if !slices.Contains([]string{FormatTable, FormatJSON, FormatNDJSON}, c.Output.DefaultFormat) {
		errs = append(errs, fmt.Errorf("%w: output.default_format must be table, json or ndjson, got %q",
			ErrInvalidValue, c.Output.DefaultFormat))
	}

	if _, err = zerolog.ParseLevel(c.Logging.Level); err != nil || c.Logging.Level == "" {
		errs = append(errs, fmt.Errorf("%w: logging.level %q", ErrInvalidValue, c.Logging.Level))
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		errs = append(errs, fmt.Errorf("%w: logging.format must be json or console, got %q",
			ErrInvalidValue, c.Logging.Format))
	}

	if c.UI.DateFormat != DateRelative && c.UI.DateFormat != DateAbsolute {
		errs = append(errs, fmt.Errorf("%w: ui.date_format must be relative or absolute, got %q",
			ErrInvalidValue, c.UI.DateFormat))
	}

	return errors.Join(errs...)
}
