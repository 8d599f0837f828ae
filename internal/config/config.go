// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"maps"
	"time"

	"github.com/MKhiriev/go-staffomatic/models"
	"github.com/MKhiriev/go-staffomatic/options"
)

const (
	// EnvPrefix is prepended to every environment variable name.
	EnvPrefix = "STAFFOMATIC_"

	DefaultAPIEndpoint = "https://api.staffomatic.com/v3/"
	DefaultMediaType   = "application/json"
	DefaultContentType = "application/json"
)

// Config is the client configuration. Every field maps to the option of
// the same name; zero values leave the option unset.
//
// Struct tags:
//   - env: environment variable name without [EnvPrefix] (caarlos0/env).
//   - envPrefix: prefix applied to nested env tag lookups.
//   - validate: go-playground/validator rules checked after merging.
type Config struct {
	// APIEndpoint is the base URL of the API.
	// Env: STAFFOMATIC_API_ENDPOINT
	APIEndpoint string `env:"API_ENDPOINT" validate:"required,url"`

	// Account is the account (company) subdomain the client acts for.
	// Env: STAFFOMATIC_ACCOUNT
	Account string `env:"ACCOUNT"`

	// Scheme is the URL scheme the account is served under.
	// Env: STAFFOMATIC_SCHEME
	Scheme string `env:"SCHEME" validate:"omitempty,oneof=http https"`

	// AccessToken is an OAuth2 access token.
	// Env: STAFFOMATIC_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// ClientID and ClientSecret identify the OAuth application.
	// Env: STAFFOMATIC_CLIENT_ID, STAFFOMATIC_CLIENT_SECRET
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`

	// Email and Password are the basic-auth credentials.
	// Env: STAFFOMATIC_EMAIL, STAFFOMATIC_PASSWORD
	Email    string `env:"EMAIL" validate:"omitempty,email"`
	Password string `env:"PASSWORD"`

	// AutoPaginate makes list calls follow every page.
	// Env: STAFFOMATIC_AUTO_PAGINATE
	AutoPaginate bool `env:"AUTO_PAGINATE"`

	// PerPage is the requested page size.
	// Env: STAFFOMATIC_PER_PAGE
	PerPage int `env:"PER_PAGE" validate:"omitempty,min=1,max=100"`

	// Proxy is the URL of an HTTP proxy.
	// Env: STAFFOMATIC_PROXY
	Proxy string `env:"PROXY" validate:"omitempty,url"`

	// UserAgent, DefaultMediaType and ContentType are request headers.
	// Env: STAFFOMATIC_USER_AGENT, STAFFOMATIC_DEFAULT_MEDIA_TYPE,
	// STAFFOMATIC_CONTENT_TYPE
	UserAgent        string `env:"USER_AGENT"`
	DefaultMediaType string `env:"DEFAULT_MEDIA_TYPE"`
	ContentType      string `env:"CONTENT_TYPE"`

	// Connection tunes the HTTP connection.
	Connection Connection `envPrefix:"CONNECTION_"`

	// Debug enables debug logging in the command-line tool.
	// Env: STAFFOMATIC_DEBUG
	Debug bool `env:"DEBUG"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: STAFFOMATIC_CONFIG
	JSONFilePath string `env:"CONFIG"`
}

// Connection holds HTTP connection settings.
type Connection struct {
	// Timeout bounds a single request (e.g. "30s").
	// Env: STAFFOMATIC_CONNECTION_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" validate:"gte=0"`

	// RetryCount is the number of retries after a failed request.
	// Env: STAFFOMATIC_CONNECTION_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT" validate:"gte=0"`

	// RetryWaitTime is the pause between retries.
	// Env: STAFFOMATIC_CONNECTION_RETRY_WAIT_TIME
	RetryWaitTime time.Duration `env:"RETRY_WAIT_TIME" validate:"gte=0"`

	// Headers are added to every request ("Name:value,Other:value").
	// Env: STAFFOMATIC_CONNECTION_HEADERS
	Headers map[string]string `env:"HEADERS"`
}

// Defaults implements [options.Defaults].
func (cfg *Config) Defaults() options.Options {
	return options.Options{
		AccessToken:  cfg.AccessToken,
		Account:      cfg.Account,
		APIEndpoint:  cfg.APIEndpoint,
		AutoPaginate: cfg.AutoPaginate,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		ConnectionOptions: models.ConnectionOptions{
			Timeout:       cfg.Connection.Timeout,
			RetryCount:    cfg.Connection.RetryCount,
			RetryWaitTime: cfg.Connection.RetryWaitTime,
			Headers:       maps.Clone(cfg.Connection.Headers),
		},
		DefaultMediaType: cfg.DefaultMediaType,
		Email:            cfg.Email,
		PerPage:          cfg.PerPage,
		Password:         cfg.Password,
		Proxy:            cfg.Proxy,
		Scheme:           cfg.Scheme,
		UserAgent:        cfg.UserAgent,
		ContentType:      cfg.ContentType,
	}
}

// Builtins returns the configuration used when no other source sets a
// value. version is embedded into the User-Agent.
func Builtins(version string) *Config {
	if version == "" {
		version = "dev"
	}
	return &Config{
		APIEndpoint:      DefaultAPIEndpoint,
		UserAgent:        "Staffomatic Go " + version,
		DefaultMediaType: DefaultMediaType,
		ContentType:      DefaultContentType,
	}
}

// LoadOptions selects the optional sources consulted by [Load].
type LoadOptions struct {
	// ConfigFile is the JSON file path. When empty STAFFOMATIC_CONFIG is
	// used; when both are empty no file is read.
	ConfigFile string
	// EnvFile is a .env file path. When empty ".env" in the working
	// directory is read if it exists.
	EnvFile string
	// Version is embedded into the default User-Agent.
	Version string
	// Overrides has the highest priority; usually filled from flags.
	Overrides Config
}

// Load merges and validates the configuration from all available sources
// in the following priority order (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. JSON file
//  3. .env file
//  4. Environment variables
//  5. opts.Overrides
func Load(opts LoadOptions) (*Config, error) {
	return newConfigBuilder().
		withBuiltins(opts.Version).
		withJSON(opts.ConfigFile).
		withDotEnv(opts.EnvFile).
		withEnv().
		withOverrides(opts.Overrides).
		build()
}
