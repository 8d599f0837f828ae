// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package models holds the data types exchanged with the Staffomatic API and
// the typed connection settings consumed by the transport layer.
package models
