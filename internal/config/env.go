// Package config loads the environment based defaults of rcut.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix of all environment variables, e.g. RCUT_LOG_LEVEL.
const Prefix = "RCUT"

// Log formats
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Env holds the settings that are not given as command line flags.
type Env struct {
	// LogLevel is the diagnostics level (trace, debug, info, warn, error).
	// Env: RCUT_LOG_LEVEL (default: warn)
	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`

	// LogFormat is the diagnostics format (console or json).
	// Env: RCUT_LOG_FORMAT (default: console)
	LogFormat string `envconfig:"LOG_FORMAT" default:"console"`

	// MaxRecord limits the length of a single record in bytes, 0 is unlimited.
	// Env: RCUT_MAX_RECORD (default: 0)
	MaxRecord int `envconfig:"MAX_RECORD" default:"0"`
}

// Load reads Env from the environment. If envFile is not empty, it is
// loaded as dotenv file first. Variables already set in the environment
// take precedence over the file.
func Load(envFile string) (Env, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err != nil {
			return Env{}, fmt.Errorf("env file: %w", err)
		}
		if err := godotenv.Load(envFile); err != nil {
			return Env{}, fmt.Errorf("env file %s: %w", envFile, err)
		}
	}
	var env Env
	if err := envconfig.Process(Prefix, &env); err != nil {
		return Env{}, fmt.Errorf("environment: %w", err)
	}
	return env.normalize()
}

func (e Env) normalize() (Env, error) {
	e.LogLevel = strings.ToLower(strings.TrimSpace(e.LogLevel))
	e.LogFormat = strings.ToLower(strings.TrimSpace(e.LogFormat))
	switch e.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return Env{}, fmt.Errorf("%s_LOG_FORMAT: unknown format '%s'", Prefix, e.LogFormat)
	}
	if e.MaxRecord < 0 {
		return Env{}, fmt.Errorf("%s_MAX_RECORD: must not be negative", Prefix)
	}
	return e, nil
}
