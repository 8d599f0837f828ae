// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultDotEnvFile = ".env"

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// with [EnvPrefix] prepended.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg *Config) error {
	return parseEnvWith(cfg, nil)
}

// parseEnvWith is parseEnv reading from environ instead of the process
// environment when environ is non-nil.
func parseEnvWith(cfg *Config, environ map[string]string) error {
	opts := env.Options{Prefix: EnvPrefix}
	if environ != nil {
		opts.Environment = environ
	}

	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}

// parseDotEnv reads the .env file at path with godotenv and maps it like the
// process environment. An empty path falls back to ".env" and tolerates its
// absence, returning a nil config.
func parseDotEnv(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultDotEnvFile
	}

	values, err := godotenv.Read(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("error reading env file %s: %w", path, err)
	}

	cfg := &Config{}
	if err = parseEnvWith(cfg, values); err != nil {
		return nil, err
	}
	return cfg, nil
}
