// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used by the Staffomatic
// client to talk to the remote API.
//
// The primary abstraction is [Transport], which decouples the client facade
// from the HTTP stack. Every call receives a [Connection] describing who the
// request acts as and how it connects: the resolved credentials, the
// normalized endpoint and the pass-through options (proxy, headers, paging,
// middleware). The package ships a resty-based implementation
// ([NewHTTPTransport]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401). Calls flagged with
// RequireAuth fail with [ErrAuthRequired] before any I/O when the
// credentials are anonymous.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-staffomatic/auth"
	"github.com/MKhiriev/go-staffomatic/options"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Connection carries the per-call request construction parameters.
type Connection struct {
	// Endpoint is the API base URL ending in "/".
	Endpoint string
	// Credentials is the resolved auth material. nil is treated as
	// [auth.Unauthenticated].
	Credentials auth.Material
	// Options is a snapshot of the client options; only the pass-through
	// fields are read.
	Options options.Options
	// RequireAuth rejects anonymous calls with ErrAuthRequired.
	RequireAuth bool
}

// Transport issues API requests. Paths are relative to Connection.Endpoint
// unless absolute.
type Transport interface {
	// Get fetches path and decodes the JSON response into result, which may
	// be nil to discard the body.
	Get(ctx context.Context, conn Connection, path string, result any) error

	// List fetches a JSON array from path. When Options.AutoPaginate is set
	// it follows rel="next" links and concatenates every page.
	List(ctx context.Context, conn Connection, path string) ([]json.RawMessage, error)

	// Post sends body as JSON to path and decodes the response into result.
	Post(ctx context.Context, conn Connection, path string, body, result any) error
}
