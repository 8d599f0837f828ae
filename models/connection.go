// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ConnectionOptions tunes the underlying HTTP connection. Zero fields leave
// the transport defaults in place.
type ConnectionOptions struct {
	// Timeout bounds each attempt of a request. Retries get a fresh timeout.
	Timeout time.Duration `json:"timeout,omitempty"`

	// RetryCount is the number of additional attempts after a failed request.
	RetryCount int `json:"retry_count,omitempty"`

	// RetryWaitTime is the initial wait between retries.
	RetryWaitTime time.Duration `json:"retry_wait_time,omitempty"`

	// Headers are added to every request, after the content negotiation
	// headers, so they can override them.
	Headers map[string]string `json:"headers,omitempty"`
}

// IsZero reports whether no connection option is set.
func (c ConnectionOptions) IsZero() bool {
	return c.Timeout == 0 && c.RetryCount == 0 && c.RetryWaitTime == 0 && len(c.Headers) == 0
}
