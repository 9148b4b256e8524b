// Package config loads service configuration from the process environment.
//
// All Agora environment variables share the AGORA_ prefix. Flag overrides
// are layered on top by the command entrypoints.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
