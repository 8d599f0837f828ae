// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// ErrInvalidConfig is returned by [Load] when the merged configuration
// fails validation (for example, a malformed endpoint URL or a page size
// outside 1..100).
var ErrInvalidConfig = errors.New("invalid configuration")
