// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the Staffomatic client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. .env file
//  4. Environment variables (prefixed with STAFFOMATIC_)
//  5. Command-line flags
//
// The main entry point is [Load]. The resulting [Config] implements
// options.Defaults, so it can seed the client's option store directly.
package config
