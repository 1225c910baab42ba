package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment overrides. DEBUG only affects log verbosity;
// it never changes a retention decision.
type Env struct {
	Debug      bool   `env:"DEBUG"`
	ConfigPath string `env:"ARK_CONFIG"`
}

// ParseEnv loads the environment overrides.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
