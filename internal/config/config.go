package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by output.default_format and --output.
const (
	FormatTable  = "table"
	FormatJSON   = "json"
	FormatNDJSON = "ndjson"
)

// Date display modes for ui.date_format.
const (
	DateRelative = "relative"
	DateAbsolute = "absolute"
)

// Defaults for a fresh config.
const (
	DefaultBaseURL   = "http://localhost:8000"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5.0
	DefaultBurst     = 5
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"

	configFileName = "config.yaml"
	lockTimeout    = 5 * time.Second
	lockRetry      = 50 * time.Millisecond
)

// Environment variables that override file values.
const (
	EnvHome      = "JOBVIEW_HOME"
	EnvConfig    = "JOBVIEW_CONFIG"
	EnvAPIURL    = "JOBVIEW_API_URL"
	EnvTimeout   = "JOBVIEW_TIMEOUT"
	EnvLogLevel  = "JOBVIEW_LOG_LEVEL"
	EnvLogFormat = "JOBVIEW_LOG_FORMAT"
	EnvOutput    = "JOBVIEW_OUTPUT"
)

var (
	ErrInvalidConfigKey = errors.New("invalid config key")
	ErrInvalidValue     = errors.New("invalid config value")
	ErrLockTimeout      = errors.New("timed out waiting for config lock")
	// ErrInvalidConfigFile marks a config file that exists but cannot be read or parsed.
	ErrInvalidConfigFile = errors.New("invalid config file")
)

// Config is the jobview configuration file.
type Config struct {
	API     APIConfig     `yaml:"api"     json:"api"`
	Output  OutputConfig  `yaml:"output"  json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	UI      UIConfig      `yaml:"ui"      json:"ui"`

	path string
}

// APIConfig controls how the job board API is reached.
type APIConfig struct {
	BaseURL   string        `yaml:"base_url"             json:"base_url"`
	Timeout   time.Duration `yaml:"timeout"              json:"timeout"`
	RateLimit float64       `yaml:"rate_limit"           json:"rate_limit"`
	Burst     int           `yaml:"burst"                json:"burst"`
	UserAgent string        `yaml:"user_agent,omitempty" json:"user_agent,omitempty"`
}

// OutputConfig controls non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level  string `yaml:"level"          json:"level"`
	Format string `yaml:"format"         json:"format"`
	File   string `yaml:"file,omitempty" json:"file,omitempty"`
}

// UIConfig controls the interactive browser.
type UIConfig struct {
	ShowFilters bool   `yaml:"show_filters" json:"show_filters"`
	DateFormat  string `yaml:"date_format"  json:"date_format"`
}

// Default returns a Config holding only built-in defaults.
func Default() *Config {
	path, _ := GetConfigPath()
	return &Config{
		API: APIConfig{
			BaseURL:   DefaultBaseURL,
			Timeout:   DefaultTimeout,
			RateLimit: DefaultRateLimit,
			Burst:     DefaultBurst,
		},
		Output: OutputConfig{DefaultFormat: FormatTable},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		UI:   UIConfig{DateFormat: DateRelative},
		path: path,
	}
}

// New returns the effective config: defaults, then the config file, then
// environment overrides. A missing file leaves defaults in place; a file
// that cannot be read or parsed is an error wrapping ErrInvalidConfigFile.
func New() (*Config, error) {
	cfg := Default()
	if err := cfg.Load(); err != nil {
		return nil, err
	}
	cfg.ApplyEnvOverrides()
	return cfg, nil
}

// LoadFile returns defaults overlaid with the file at path, without
// environment overrides. Use it when the result will be saved back.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	cfg.path = path
	if err := cfg.Load(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the file the config is loaded from and saved to.
func (c *Config) Path() string { return c.path }

// Load reads the config file into c. A missing file is not an error.
func (c *Config) Load() error {
	if c.path == "" {
		return nil
	}
	data, err := os.ReadFile(c.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: reading %s: %w", ErrInvalidConfigFile, c.path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: parsing %s: %w", ErrInvalidConfigFile, c.path, err)
	}
	return nil
}

// Save validates c and writes it atomically under an exclusive file lock.
func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config has no file path")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err = os.MkdirAll(filepath.Dir(c.path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	lock := flock.New(c.path + ".lock")
	ctx, cancel := context.WithTimeout(context.Background(), lockTimeout)
	defer cancel()
	locked, err := lock.TryLockContext(ctx, lockRetry)
	if err != nil || !locked {
		return fmt.Errorf("%w: %s", ErrLockTimeout, c.path)
	}
	defer func() { _ = lock.Unlock() }()

	tmp := c.path + ".tmp"
	if err = os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	if err = os.Rename(tmp, c.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replacing config: %w", err)
	}
	return nil
}

// ApplyEnvOverrides applies JOBVIEW_* environment variables. Values that do
// not parse are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := strings.TrimSpace(os.Getenv(EnvAPIURL)); v != "" {
		c.API.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvTimeout)); v != "" {
		if d, err := parseDuration(v); err == nil {
			c.API.Timeout = d
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFormat)); v != "" {
		c.Logging.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		c.Output.DefaultFormat = v
	}
}

// parseDuration accepts Go durations ("15s") and bare seconds ("15").
func parseDuration(v string) (time.Duration, error) {
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	return time.ParseDuration(v)
}
