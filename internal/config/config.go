// Package config loads the process configuration from environment variables.
// The result is built once at startup and threaded through constructors;
// nothing reads the environment at call sites after Load returns.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/argmend/argmend/providers/oracle"
)

// Environment variables. ARGMEND_API_KEY gates the whole mechanism: without
// it the hook is never installed.
const (
	EnvEnabled     = "ARGMEND_ENABLED"
	EnvBaseURL     = "ARGMEND_BASE_URL"
	EnvModel       = "ARGMEND_MODEL"
	EnvAPIKey      = "ARGMEND_API_KEY"
	EnvTemperature = "ARGMEND_TEMPERATURE"
	EnvLocalRepair = "ARGMEND_LOCAL_REPAIR"
	EnvLogLevel    = "ARGMEND_LOG_LEVEL"
	EnvLogFile     = "ARGMEND_LOG_FILE"
	EnvLogFormat   = "ARGMEND_LOG_FORMAT"
)

const (
	DefaultBaseURL = "https://openrouter.ai/api/v1"
	DefaultModel   = "openai/gpt-4o-mini"
)

// Config is the full process configuration.
type Config struct {
	// Oracle is the immutable repair-service configuration passed to the
	// client.
	Oracle oracle.Config

	// LocalRepair enables the offline jsonrepair pass before the remote
	// oracle is consulted.
	LocalRepair bool

	LogLevel  string // debug, info, warn, error
	LogFile   string // empty means stderr
	LogFormat string // "text" or "json"
}

// Load reads the configuration from the environment, applying defaults for
// anything unset.
func Load() Config {
	return Config{
		Oracle: oracle.Config{
			Enabled:     envBool(EnvEnabled, true),
			BaseURL:     strings.TrimRight(envString(EnvBaseURL, DefaultBaseURL), "/"),
			Model:       envString(EnvModel, DefaultModel),
			APIKey:      os.Getenv(EnvAPIKey),
			Temperature: envFloat(EnvTemperature, 0),
		},
		LocalRepair: envBool(EnvLocalRepair, false),
		LogLevel:    envString(EnvLogLevel, "info"),
		LogFile:     os.Getenv(EnvLogFile),
		LogFormat:   envString(EnvLogFormat, "text"),
	}
}

// Active reports whether the repair hook should be installed at all.
func (c Config) Active() bool {
	return c.Oracle.Enabled && c.Oracle.HasCredential()
}

// InactiveReason explains why the hook is not installed. Empty when Active.
func (c Config) InactiveReason() string {
	switch {
	case !c.Oracle.Enabled:
		return "disabled by configuration (" + EnvEnabled + "=false)"
	case !c.Oracle.HasCredential():
		return "no credential configured (" + EnvAPIKey + " is unset)"
	default:
		return ""
	}
}

// Validate checks the configuration for values that would make every repair
// fail in confusing ways.
func (c Config) Validate() error {
	if c.Oracle.BaseURL == "" {
		return fmt.Errorf("base URL must not be empty")
	}
	if !strings.HasPrefix(c.Oracle.BaseURL, "http://") && !strings.HasPrefix(c.Oracle.BaseURL, "https://") {
		return fmt.Errorf("base URL %q must start with http:// or https://", c.Oracle.BaseURL)
	}
	if c.Oracle.Model == "" {
		return fmt.Errorf("model must not be empty")
	}
	if c.Oracle.Temperature < 0 || c.Oracle.Temperature > 2 {
		return fmt.Errorf("temperature %v out of range [0, 2]", c.Oracle.Temperature)
	}
	return nil
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envFloat(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}
