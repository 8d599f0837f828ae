// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package staffomatic

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-staffomatic/auth"
	"github.com/MKhiriev/go-staffomatic/internal/adapter"
	"github.com/MKhiriev/go-staffomatic/internal/config"
	"github.com/MKhiriev/go-staffomatic/internal/lazy"
	"github.com/MKhiriev/go-staffomatic/internal/logger"
	"github.com/MKhiriev/go-staffomatic/options"
)

// Version is the library version reported in the default User-Agent.
const Version = "0.1.0"

// Client talks to the Staffomatic API on behalf of one configuration. It is
// safe for concurrent use.
type Client struct {
	store     *options.Store
	transport adapter.Transport
	log       *logger.Logger

	email *lazy.Field[string]
}

type settings struct {
	defaults  options.Defaults
	transport adapter.Transport
	log       *logger.Logger
	registry  prometheus.Registerer
	configure []func(*options.Options)
}

// Option customises a Client built by [New].
type Option func(*settings)

// WithDefaults sets the provider consulted on construction and by every
// Reset. Without it the built-in configuration is used.
func WithDefaults(d options.Defaults) Option {
	return func(s *settings) {
		s.defaults = d
	}
}

// WithTransport replaces the HTTP transport.
func WithTransport(t adapter.Transport) Option {
	return func(s *settings) {
		s.transport = t
	}
}

// WithLogger sets the logger. Without it the client is silent.
func WithLogger(l *logger.Logger) Option {
	return func(s *settings) {
		s.log = l
	}
}

// WithMetrics registers request metrics of the default transport on r.
// It has no effect together with WithTransport.
func WithMetrics(r prometheus.Registerer) Option {
	return func(s *settings) {
		s.registry = r
	}
}

// WithOptions applies fn over the defaults once, at construction. A later
// Reset discards the changes.
func WithOptions(fn func(*options.Options)) Option {
	return func(s *settings) {
		s.configure = append(s.configure, fn)
	}
}

// New returns a Client configured by opts.
func New(opts ...Option) *Client {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	if s.defaults == nil {
		s.defaults = config.Builtins(Version)
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.transport == nil {
		var topts []adapter.TransportOption
		if s.registry != nil {
			topts = append(topts, adapter.WithMetrics(adapter.NewMetrics(s.registry)))
		}
		s.transport = adapter.NewHTTPTransport(s.log, topts...)
	}

	store := options.NewStore(s.defaults)
	for _, fn := range s.configure {
		store.Configure(fn)
	}

	return &Client{
		store:     store,
		transport: s.transport,
		log:       s.log.WithField("component", "client"),
		email:     lazy.New[string]("email", store),
	}
}

// Get returns the option stored under k.
func (c *Client) Get(k options.Key) (options.Value, error) {
	return c.store.Get(k)
}

// Set overwrites the option stored under k.
func (c *Client) Set(k options.Key, v options.Value) error {
	if err := c.store.Set(k, v); err != nil {
		return err
	}
	c.log.Debug().Stringer("key", k).Msg("option set")
	return nil
}

// Configure applies fn to the options in one step. Readers observe either
// none or all of fn's changes. fn must not call methods of c.
func (c *Client) Configure(fn func(*options.Options)) {
	c.store.Configure(fn)
	c.log.Debug().Msg("options configured")
}

// Reset restores every option to its default and forgets lazily fetched
// attributes.
func (c *Client) Reset() {
	c.store.Reset()
	c.log.Debug().Uint64("generation", c.store.Generation()).Msg("options reset")
}

// Setup is an alias for Reset.
func (c *Client) Setup() {
	c.Reset()
}

// Options returns a copy of the current options.
func (c *Client) Options() options.Options {
	return c.store.Snapshot()
}

// APIEndpoint returns the API base URL ending in exactly one "/".
func (c *Client) APIEndpoint() string {
	return c.store.APIEndpoint()
}

// Scheme returns the configured URL scheme.
func (c *Client) Scheme() string {
	return c.store.Scheme()
}

// Account returns the configured account name.
func (c *Client) Account() string {
	return c.store.Account()
}

// Credentials returns the credentials a request made now would carry.
// overrides replace the stored client id and secret field by field.
func (c *Client) Credentials(overrides auth.Overrides) auth.Material {
	opts := c.store.Snapshot()
	return auth.Resolve(opts, auth.Call{Login: opts.Email, Overrides: overrides})
}

// TokenAuthenticated reports whether requests carry an access token.
func (c *Client) TokenAuthenticated() bool {
	return auth.TokenAuthenticated(c.store.Snapshot())
}

// ApplicationAuthenticated reports whether requests carry OAuth application
// credentials.
func (c *Client) ApplicationAuthenticated() bool {
	return auth.ApplicationAuthenticated(c.store.Snapshot())
}

// BasicAuthenticated reports whether requests use basic auth with the
// configured email and password.
func (c *Client) BasicAuthenticated() bool {
	opts := c.store.Snapshot()
	return auth.BasicAuthenticated(opts, opts.Email)
}

// UserAuthenticated reports whether requests act as a specific user.
func (c *Client) UserAuthenticated() bool {
	opts := c.store.Snapshot()
	return auth.UserAuthenticated(opts, opts.Email)
}

// connection builds the request parameters for opts acting with the stored
// credentials.
func (c *Client) connection(opts options.Options, requireAuth bool) adapter.Connection {
	creds := auth.Resolve(opts, auth.Call{Login: opts.Email})
	c.log.Debug().Stringer("auth", creds.Scheme()).Msg("resolved credentials")

	return adapter.Connection{
		Endpoint:    opts.Endpoint(),
		Credentials: creds,
		Options:     opts,
		RequireAuth: requireAuth,
	}
}
