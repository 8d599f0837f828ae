// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package options

import "errors"

var (
	// ErrUnknownKey is returned when a key outside the closed option set is
	// referenced, either by name through [ParseKey] or as an out-of-range
	// [Key] value.
	ErrUnknownKey = errors.New("unknown option key")
	// ErrKindMismatch is returned by Set when the value kind differs from
	// the kind declared for the key.
	ErrKindMismatch = errors.New("option value kind mismatch")
)
