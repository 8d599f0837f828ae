// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the terminal presentation helpers of the staffomatic
// command: a Bubble Tea password prompt, lipgloss-styled tables and
// key/value blocks, and clipboard access.
package tui
