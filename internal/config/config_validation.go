// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validate checks the final merged [Config] against the `validate` struct
// tags before it is used.
//
// Returns nil if the configuration is valid, or an error wrapping
// [ErrInvalidConfig] that lists every failing field.
func (cfg *Config) validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
