package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Keys lists every dotted key accepted by Get and Set, in display order.
//
//nolint:gochecknoglobals // Fixed lookup table.
var Keys = []string{
	"api.base_url",
	"api.timeout",
	"api.rate_limit",
	"api.burst",
	"api.user_agent",
	"output.default_format",
	"logging.level",
	"logging.format",
	"logging.file",
	"ui.show_filters",
	"ui.date_format",
}

// Get returns the value at a dotted key as a string.
func (c *Config) Get(key string) (string, error) {
	switch normalizeKey(key) {
	case "api.base_url":
		return c.API.BaseURL, nil
	case "api.timeout":
		return c.API.Timeout.String(), nil
	case "api.rate_limit":
		return strconv.FormatFloat(c.API.RateLimit, 'f', -1, 64), nil
	case "api.burst":
		return strconv.Itoa(c.API.Burst), nil
	case "api.user_agent":
		return c.API.UserAgent, nil
	case "output.default_format":
		return c.Output.DefaultFormat, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	case "logging.file":
		return c.Logging.File, nil
	case "ui.show_filters":
		return strconv.FormatBool(c.UI.ShowFilters), nil
	case "ui.date_format":
		return c.UI.DateFormat, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidConfigKey, key)
	}
}

// Set parses value and stores it at a dotted key. Range checks are left to Validate.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch normalizeKey(key) {
	case "api.base_url":
		c.API.BaseURL = value
	case "api.timeout":
		d, err := parseDuration(value)
		if err != nil {
			return invalidValue(key, value, err)
		}
		c.API.Timeout = d
	case "api.rate_limit":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return invalidValue(key, value, err)
		}
		c.API.RateLimit = f
	case "api.burst":
		n, err := strconv.Atoi(value)
		if err != nil {
			return invalidValue(key, value, err)
		}
		c.API.Burst = n
	case "api.user_agent":
		c.API.UserAgent = value
	case "output.default_format":
		c.Output.DefaultFormat = strings.ToLower(value)
	case "logging.level":
		c.Logging.Level = strings.ToLower(value)
	case "logging.format":
		c.Logging.Format = strings.ToLower(value)
	case "logging.file":
		c.Logging.File = value
	case "ui.show_filters":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return invalidValue(key, value, err)
		}
		c.UI.ShowFilters = b
	case "ui.date_format":
		c.UI.DateFormat = strings.ToLower(value)
	default:
		return fmt.Errorf("%w: %q", ErrInvalidConfigKey, key)
	}
	return nil
}

// List returns every key with its current value, in Keys order.
func (c *Config) List() [][2]string {
	out := make([][2]string, 0, len(Keys))
	for _, k := range Keys {
		v, _ := c.Get(k)
		out = append(out, [2]string{k, v})
	}
	return out
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func invalidValue(key, value string, err error) error {
	return fmt.Errorf("%w for %s: %q: %w", ErrInvalidValue, key, value, err)
}
