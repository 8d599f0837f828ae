// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package options implements the option store backing a Staffomatic client.
//
// The set of recognised options is closed: every option is named by a [Key]
// constant and stored in a typed field of [Options]. [Store] owns one
// Options value per client and supports direct per-key access, batch
// mutation via [Store.Configure] and a full [Store.Reset] to the values
// supplied by a [Defaults] provider.
//
// A Store also carries a generation counter that is bumped on every reset.
// Values memoized elsewhere (see package lazy) compare against it to drop
// state computed under a previous configuration.
package options
