// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	staffomatic "github.com/MKhiriev/go-staffomatic"
	"github.com/MKhiriev/go-staffomatic/internal/config"
	"github.com/MKhiriev/go-staffomatic/internal/logger"
)

// app carries the state shared by all commands. client is built once the
// flags are parsed.
type app struct {
	load   config.LoadOptions
	log    *logger.Logger
	client *staffomatic.Client
}

func newApp() *app {
	return &app{log: logger.Nop()}
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "staffomatic",
		Short:         "Staffomatic API client",
		Version:       buildInfo(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	config.BindFlags(root.PersistentFlags(), &a.load)

	root.AddCommand(
		newWhoamiCommand(a),
		newValidateCommand(a),
		newExchangeCodeCommand(a),
		newUsersCommand(a),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if buildVersion != "" && buildVersion != "N/A" {
		a.load.Version = buildVersion
	}

	cfg, err := config.Load(a.load)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	level := zerolog.WarnLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	a.log = logger.NewLoggerWithLevel("cli", level, cmd.ErrOrStderr())
	a.client = staffomatic.New(
		staffomatic.WithDefaults(cfg),
		staffomatic.WithLogger(a.log),
	)

	a.log.Debug().Str("endpoint", a.client.APIEndpoint()).Msg("client configured")
	return nil
}
