package config

import (
	"context"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/mesaops/mesa/cmd/mesactl/internal/client"
)

type contextKey string

const configKey contextKey = "mesactl-config"

// Env holds the environment-supplied settings. Flags take precedence over
// these; they exist so scripts and CI can configure mesactl without flags.
type Env struct {
	APIURL         string `env:"MESA_API_URL"`
	NonInteractive bool   `env:"MESA_NON_INTERACTIVE"`
}

// LoadEnv parses MESA_* environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}

// GlobalConfig holds shared configuration for all mesactl commands.
// This is injected into the cobra command context by the root command's
// PersistentPreRun hook and consumed by all subcommands.
type GlobalConfig struct {
	ServerURL      string
	NonInteractive bool
	Provider       *client.Provider
}

// InjectConfig adds config to the cobra command context.
func InjectConfig(ctx context.Context, cfg *GlobalConfig) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// FromContext retrieves config from the cobra command context.
// Returns (nil, false) if config is not present.
func FromContext(ctx context.Context) (*GlobalConfig, bool) {
	cfg, ok := ctx.Value(configKey).(*GlobalConfig)
	return cfg, ok
}

// MustFromContext retrieves config from context or panics. Only for command
// RunE functions, where the root command has already injected it.
func MustFromContext(ctx context.Context) *GlobalConfig {
	cfg, ok := FromContext(ctx)
	if !ok {
		panic("mesactl: config not found in context - this is a bug in mesactl")
	}
	return cfg
}
