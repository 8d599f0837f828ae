// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "github.com/google/uuid"

// newRequestID returns a time-ordered UUIDv7, falling back to a random v4
// when the clock source fails.
func newRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
