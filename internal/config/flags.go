// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/spf13/pflag"
)

// BindFlags registers the configuration flags on fs, writing parsed values
// into opts.
//
// Flags:
//
//	-c/--config        json file path with configs
//	--env-file         .env file path
//	--api-endpoint     API base URL
//	--access-token     OAuth2 access token
//	--client-id        OAuth application id
//	--client-secret    OAuth application secret
//	--email            basic-auth login
//	--per-page         page size for list calls
//	--proxy            HTTP proxy URL
//	--timeout          request timeout (e.g., "30s", "1m")
//	--debug            debug logging
func BindFlags(fs *pflag.FlagSet, opts *LoadOptions) {
	o := &opts.Overrides

	fs.StringVarP(&opts.ConfigFile, "config", "c", "", "JSON config file path")
	fs.StringVar(&opts.EnvFile, "env-file", "", ".env file path")
	fs.StringVar(&o.APIEndpoint, "api-endpoint", "", "API base URL")
	fs.StringVar(&o.AccessToken, "access-token", "", "OAuth2 access token")
	fs.StringVar(&o.ClientID, "client-id", "", "OAuth application id")
	fs.StringVar(&o.ClientSecret, "client-secret", "", "OAuth application secret")
	fs.StringVar(&o.Email, "email", "", "Basic-auth login")
	fs.IntVar(&o.PerPage, "per-page", 0, "Page size for list calls")
	fs.StringVar(&o.Proxy, "proxy", "", "HTTP proxy URL")
	fs.DurationVar(&o.Connection.Timeout, "timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&o.Debug, "debug", false, "Enable debug logging")
}
