// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-staffomatic/auth"
	"github.com/MKhiriev/go-staffomatic/internal/tui"
	"github.com/MKhiriev/go-staffomatic/options"
)

func newWhoamiCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the credentials and email the configuration resolves to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds := a.client.Credentials(auth.Overrides{})

			email, err := a.client.Email(cmd.Context())
			if err != nil {
				return err
			}
			if email == "" {
				email = "-"
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.KeyValues("",
				tui.Field{Label: "endpoint", Value: a.client.APIEndpoint()},
				tui.Field{Label: "auth", Value: creds.Scheme().String()},
				tui.Field{Label: "user", Value: yesNo(a.client.UserAuthenticated())},
				tui.Field{Label: "email", Value: email},
			))
			return nil
		},
	}
}

func newValidateCommand(a *app) *cobra.Command {
	var login, password string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a login and password against the API",
		Long: `Check a login and password against the API.

The login defaults to the configured email. Without --password the
password is read from an interactive prompt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if login == "" {
				login = a.client.Options().Email
			}
			if login == "" {
				return errors.New("login is required: use --login or configure an email")
			}

			if password == "" {
				var err error
				password, err = tui.PromptPassword(cmd.InOrStdin(), cmd.ErrOrStderr(), "Password:")
				if err != nil {
					return err
				}
			}

			ok, err := a.client.ValidateCredentials(cmd.Context(), login, password)
			if err != nil {
				return err
			}

			if ok {
				fmt.Fprintln(cmd.OutOrStdout(), "valid")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&login, "login", "", "Login to validate")
	cmd.Flags().StringVar(&password, "password", "", "Password to validate")
	return cmd
}

func newExchangeCodeCommand(a *app) *cobra.Command {
	var (
		overrides auth.Overrides
		copyToken bool
	)

	cmd := &cobra.Command{
		Use:   "exchange-code CODE",
		Short: "Exchange an OAuth authorization code for an access token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := a.client.ExchangeCodeForToken(cmd.Context(), args[0], overrides)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
			if copyToken {
				return tui.CopyToClipboard(token.AccessToken)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&overrides.ClientID, "app-id", "", "OAuth application id (defaults to the configured client id)")
	cmd.Flags().StringVar(&overrides.ClientSecret, "app-secret", "", "OAuth application secret (defaults to the configured client secret)")
	cmd.Flags().BoolVar(&copyToken, "copy", false, "Copy the token to the clipboard")
	return cmd
}

func newUsersCommand(a *app) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List the users of the account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if all {
				a.client.Configure(func(o *options.Options) {
					o.AutoPaginate = true
				})
			}

			users, err := a.client.AllUsers(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.UsersTable(users))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Follow pagination and list every user")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
