// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package staffomatic

import (
	"github.com/MKhiriev/go-staffomatic/internal/adapter"
	"github.com/MKhiriev/go-staffomatic/internal/lazy"
	"github.com/MKhiriev/go-staffomatic/internal/logger"
)

// Transport issues API requests for a Client. See [WithTransport].
type Transport = adapter.Transport

// Connection describes one request: endpoint, resolved credentials and the
// options snapshot it was built from.
type Connection = adapter.Connection

// Logger is the structured logger accepted by [WithLogger].
type Logger = logger.Logger

// NewLogger returns a JSON logger for role writing to stderr at Info level.
func NewLogger(role string) *Logger {
	return logger.NewLogger(role)
}

// Errors returned by API calls. Use [errors.Is] to match them.
var (
	ErrAuthRequired        = adapter.ErrAuthRequired
	ErrBadRequest          = adapter.ErrBadRequest
	ErrUnauthorized        = adapter.ErrUnauthorized
	ErrForbidden           = adapter.ErrForbidden
	ErrNotFound            = adapter.ErrNotFound
	ErrMethodNotAllowed    = adapter.ErrMethodNotAllowed
	ErrConflict            = adapter.ErrConflict
	ErrUnprocessable       = adapter.ErrUnprocessable
	ErrInternalServerError = adapter.ErrInternalServerError
	ErrBadGateway          = adapter.ErrBadGateway

	// ErrFetchFailed wraps the failure of a lazily fetched attribute such as
	// [Client.Email].
	ErrFetchFailed = lazy.ErrFetchFailed
)
