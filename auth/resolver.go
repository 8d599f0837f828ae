// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"dario.cat/mergo"

	"github.com/MKhiriev/go-staffomatic/options"
)

// Overrides carries call-scoped OAuth application credentials. Empty fields
// fall back to the stored options.
type Overrides struct {
	ClientID     string
	ClientSecret string
}

// Call holds the inputs of a single request that are not part of the
// option store.
type Call struct {
	// Login is the user name paired with the stored password for basic
	// authentication.
	Login string
	// Overrides replace the stored client id and secret field by field.
	Overrides Overrides
}

// Resolve returns the credentials a request built from opts and call is sent
// with.
func Resolve(opts options.Options, call Call) Material {
	if opts.AccessToken != "" {
		return TokenAuth{Token: opts.AccessToken}
	}

	if app := AppCredentials(opts, call.Overrides); app.ClientID != "" && app.ClientSecret != "" {
		return app
	}

	if call.Login != "" && opts.Password != "" {
		return BasicAuth{Login: call.Login, Password: opts.Password}
	}

	return Unauthenticated{}
}

// AppCredentials merges overrides over the stored client id and secret.
// Each override field wins when non-empty; otherwise the stored value is
// kept. The pair is returned even when incomplete.
func AppCredentials(opts options.Options, overrides Overrides) ClientAppAuth {
	merged := ClientAppAuth(overrides)
	stored := ClientAppAuth{ClientID: opts.ClientID, ClientSecret: opts.ClientSecret}

	// mergo fills only the zero fields of merged. It errors on mismatched
	// types, which cannot happen with two values of the same struct.
	_ = mergo.Merge(&merged, stored)
	return merged
}

// TokenAuthenticated reports whether opts carry an access token.
func TokenAuthenticated(opts options.Options) bool {
	return Resolve(opts, Call{}).Scheme() == SchemeToken
}

// ApplicationAuthenticated reports whether opts resolve to application
// credentials.
func ApplicationAuthenticated(opts options.Options) bool {
	return Resolve(opts, Call{}).Scheme() == SchemeClientApp
}

// BasicAuthenticated reports whether opts with login resolve to basic auth.
func BasicAuthenticated(opts options.Options, login string) bool {
	return Resolve(opts, Call{Login: login}).Scheme() == SchemeBasic
}

// UserAuthenticated reports whether requests act as a specific user, either
// through a token or through basic auth.
func UserAuthenticated(opts options.Options, login string) bool {
	switch Resolve(opts, Call{Login: login}).Scheme() {
	case SchemeToken, SchemeBasic:
		return true
	default:
		return false
	}
}
