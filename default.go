// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package staffomatic

import (
	"sync"

	"github.com/MKhiriev/go-staffomatic/internal/config"
	"github.com/MKhiriev/go-staffomatic/internal/logger"
)

var (
	defaultOnce   sync.Once
	defaultClient *Client
)

// Default returns the process-wide client, built on first use from the
// configuration sources read by config.Load. When that configuration is
// invalid the built-in defaults are used.
func Default() *Client {
	defaultOnce.Do(func() {
		log := logger.NewLogger("staffomatic")

		cfg, err := config.Load(config.LoadOptions{Version: Version})
		if err != nil {
			log.Warn().Err(err).Msg("falling back to built-in configuration")
			cfg = config.Builtins(Version)
		}

		defaultClient = New(WithDefaults(cfg))
	})
	return defaultClient
}
