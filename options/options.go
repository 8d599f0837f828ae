// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package options

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MKhiriev/go-staffomatic/models"
)

// Options is the full set of client options. The zero value of each field
// means the option is unset.
type Options struct {
	// AccessToken is an OAuth2 access token. When set it takes precedence
	// over every other credential.
	AccessToken string
	// Account is the account (company) the client acts for.
	Account string
	// APIEndpoint is the base URL for API requests. Read it through
	// [Options.Endpoint] to get the normalized form.
	APIEndpoint string
	// AutoPaginate makes list calls follow next-page links until exhausted.
	AutoPaginate bool
	// ClientID and ClientSecret identify an OAuth application.
	ClientID     string
	ClientSecret string
	// ConnectionOptions tunes the HTTP connection.
	ConnectionOptions models.ConnectionOptions
	// DefaultMediaType is sent as the Accept header.
	DefaultMediaType string
	// Email is the login used for basic authentication. When unset the
	// client can look it up for a token-authenticated user.
	Email string
	// Middleware hooks run before every request.
	Middleware []Middleware
	// PerPage is the page size requested from paginated endpoints.
	PerPage int
	// Password is the password used for basic authentication.
	Password string
	// Proxy is the URL of an HTTP proxy.
	Proxy string
	// Scheme is the URL scheme the account is served under.
	Scheme string
	// UserAgent is sent as the User-Agent header.
	UserAgent string
	// ContentType is sent as the Content-Type header.
	ContentType string
}

// Endpoint returns APIEndpoint with any trailing slashes collapsed into
// exactly one.
func (o Options) Endpoint() string {
	return NormalizeEndpoint(o.APIEndpoint)
}

// NormalizeEndpoint makes raw end in exactly one "/".
func NormalizeEndpoint(raw string) string {
	return strings.TrimRight(raw, "/") + "/"
}

// Value returns the option stored under k.
func (o Options) Value(k Key) (Value, error) {
	switch k {
	case KeyAccessToken:
		return StringValue(o.AccessToken), nil
	case KeyAccount:
		return StringValue(o.Account), nil
	case KeyAPIEndpoint:
		return StringValue(o.APIEndpoint), nil
	case KeyAutoPaginate:
		return BoolValue(o.AutoPaginate), nil
	case KeyClientID:
		return StringValue(o.ClientID), nil
	case KeyClientSecret:
		return StringValue(o.ClientSecret), nil
	case KeyConnectionOptions:
		return ConnectionValue(o.ConnectionOptions), nil
	case KeyDefaultMediaType:
		return StringValue(o.DefaultMediaType), nil
	case KeyEmail:
		return StringValue(o.Email), nil
	case KeyMiddleware:
		return MiddlewareValue(o.Middleware...), nil
	case KeyPerPage:
		return IntValue(o.PerPage), nil
	case KeyPassword:
		return StringValue(o.Password), nil
	case KeyProxy:
		return StringValue(o.Proxy), nil
	case KeyScheme:
		return StringValue(o.Scheme), nil
	case KeyUserAgent:
		return StringValue(o.UserAgent), nil
	case KeyContentType:
		return StringValue(o.ContentType), nil
	default:
		return Value{}, fmt.Errorf("%w: %s", ErrUnknownKey, k)
	}
}

// SetValue overwrites the option stored under k. v must be of the kind
// declared for k, or unset to clear the option.
func (o *Options) SetValue(k Key, v Value) error {
	if !k.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownKey, k)
	}
	if v.kind != KindUnset && v.kind != k.Kind() {
		return fmt.Errorf("%w: %s expects %s, got %s", ErrKindMismatch, k, k.Kind(), v.kind)
	}

	switch k {
	case KeyAccessToken:
		o.AccessToken = v.str
	case KeyAccount:
		o.Account = v.str
	case KeyAPIEndpoint:
		o.APIEndpoint = v.str
	case KeyAutoPaginate:
		o.AutoPaginate = v.b
	case KeyClientID:
		o.ClientID = v.str
	case KeyClientSecret:
		o.ClientSecret = v.str
	case KeyConnectionOptions:
		o.ConnectionOptions = cloneConnection(v.conn)
	case KeyDefaultMediaType:
		o.DefaultMediaType = v.str
	case KeyEmail:
		o.Email = v.str
	case KeyMiddleware:
		o.Middleware = slices.Clone(v.mw)
	case KeyPerPage:
		o.PerPage = v.i
	case KeyPassword:
		o.Password = v.str
	case KeyProxy:
		o.Proxy = v.str
	case KeyScheme:
		o.Scheme = v.str
	case KeyUserAgent:
		o.UserAgent = v.str
	case KeyContentType:
		o.ContentType = v.str
	}
	return nil
}

// Clone returns a deep copy of o; the header map and middleware slice are
// not shared with the original.
func (o Options) Clone() Options {
	o.ConnectionOptions = cloneConnection(o.ConnectionOptions)
	o.Middleware = slices.Clone(o.Middleware)
	return o
}

func cloneConnection(c models.ConnectionOptions) models.ConnectionOptions {
	c.Headers = maps.Clone(c.Headers)
	return c
}

// Defaults supplies the value every option takes after a reset.
type Defaults interface {
	Defaults() Options
}

// StaticDefaults is a Defaults provider returning a fixed Options value.
type StaticDefaults Options

// Defaults implements [Defaults].
func (d StaticDefaults) Defaults() Options {
	return Options(d).Clone()
}
