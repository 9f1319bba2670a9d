// Package runtimeinfo surfaces the runtime context a customization is
// deployed into: which environment it runs in, which script and deployment
// it is, and how chatty its logging should be. The values come from process
// environment variables, with an optional .env file loaded once for local
// development.
package runtimeinfo

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Info describes the deployment runtime.
type Info struct {
	Environment  string `env:"RESTVAL_ENVIRONMENT" envDefault:"sandbox"`
	ScriptID     string `env:"RESTVAL_SCRIPT_ID"`
	DeploymentID string `env:"RESTVAL_DEPLOYMENT_ID"`
	LogLevel     string `env:"RESTVAL_LOG_LEVEL" envDefault:"info"`
}

var dotenvOnce sync.Once

// Load reads Info from the environment. The .env file, when present, is
// loaded on the first call only; real environment variables always win.
func Load() (Info, error) {
	dotenvOnce.Do(func() {
		// The file is optional; a missing .env is not an error.
		_ = godotenv.Load()
	})
	var info Info
	if err := env.Parse(&info); err != nil {
		return Info{}, fmt.Errorf("runtimeinfo: parse environment: %w", err)
	}
	return info, nil
}

// IsProduction reports whether the runtime is the production environment.
func (i Info) IsProduction() bool { return i.Environment == "production" }

// SlogLevel maps the configured log level onto slog's levels, defaulting to
// Info for unknown values.
func (i Info) SlogLevel() slog.Level {
	switch i.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
