package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yasminaliabdi/event-planner/internal/errors"
)

// Defaults applied when no config file or environment override is present
const (
	DefaultAPIBaseURL     = "http://localhost:5000/api"
	DefaultRequestTimeout = 15 * time.Second
)

// Config holds the client configuration
type Config struct {
	// APIBaseURL is the root of the backend REST API, including the /api prefix
	APIBaseURL string `yaml:"api_base_url"`

	// RequestTimeout bounds every backend call
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// LogFormat is json or text
	LogFormat string `yaml:"log_format"`

	// DataDir is where the session store lives; defaults to ~/.eventplanner
	DataDir string `yaml:"data_dir"`
}

// DefaultDataDir returns the per-user directory used for persisted state
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".eventplanner"
	}
	return filepath.Join(home, ".eventplanner")
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return filepath.Join(DefaultDataDir(), "config.yaml")
}

// Load reads the config file at path, falling back to defaults when the file
// does not exist. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := &Config{
		APIBaseURL:     DefaultAPIBaseURL,
		RequestTimeout: DefaultRequestTimeout,
		LogLevel:       "warn",
		LogFormat:      "text",
		DataDir:        DefaultDataDir(),
	}

	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "cannot parse config file "+path, err).
				WithSuggestion("Check the YAML syntax of " + path)
		}
	case os.IsNotExist(err):
		// Defaults are a complete configuration.
	default:
		return nil, errors.Wrap(errors.ErrCodeConfigNotFound, "cannot read config file "+path, err)
	}

	applyEnv(cfg)

	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir()
	}

	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("EVENTPLANNER_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("EVENTPLANNER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("EVENTPLANNER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("EVENTPLANNER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("EVENTPLANNER_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
}
