// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

// Scheme tags the active [Material] variant.
type Scheme uint8

const (
	SchemeNone Scheme = iota
	SchemeToken
	SchemeClientApp
	SchemeBasic
)

func (s Scheme) String() string {
	switch s {
	case SchemeToken:
		return "token"
	case SchemeClientApp:
		return "client_app"
	case SchemeBasic:
		return "basic"
	default:
		return "none"
	}
}

// Material is the resolved authentication payload for one request. The set
// of implementations is closed to this package.
type Material interface {
	Scheme() Scheme
	material()
}

// TokenAuth authenticates with an OAuth2 bearer token.
type TokenAuth struct {
	Token string
}

// ClientAppAuth authenticates an OAuth application by its id and secret.
type ClientAppAuth struct {
	ClientID     string
	ClientSecret string
}

// BasicAuth authenticates a user by login and password.
type BasicAuth struct {
	Login    string
	Password string
}

// Unauthenticated sends the request anonymously.
type Unauthenticated struct{}

func (TokenAuth) Scheme() Scheme       { return SchemeToken }
func (ClientAppAuth) Scheme() Scheme   { return SchemeClientApp }
func (BasicAuth) Scheme() Scheme       { return SchemeBasic }
func (Unauthenticated) Scheme() Scheme { return SchemeNone }

func (TokenAuth) material()       {}
func (ClientAppAuth) material()   {}
func (BasicAuth) material()       {}
func (Unauthenticated) material() {}
