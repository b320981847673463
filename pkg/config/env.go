package config

import (
	"github.com/caarlos0/env/v10"
	"gitlab.com/tozd/go/errors"
)

// 🌍 ApplyEnv overlays IDCHUNK_* environment variables onto cfg. Unset
// variables leave the existing values untouched.
func ApplyEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return errors.Errorf("parsing environment variables: %w", err)
	}
	return nil
}
