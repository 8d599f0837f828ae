// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package staffomatic is a client for the Staffomatic API.
//
// A [Client] owns its configuration: an option store seeded from a
// defaults provider, a credential resolver that decides per call whether a
// request authenticates with an access token, OAuth application
// credentials, basic auth or not at all, and lazily discovered attributes
// such as the authenticated user's email. [Client.Reset] restores the
// defaults and drops every memoized attribute.
//
// Option types live in package options, credential types in package auth
// and API resources in package models.
//
//	client := staffomatic.New(staffomatic.WithOptions(func(o *options.Options) {
//		o.AccessToken = os.Getenv("STAFFOMATIC_TOKEN")
//	}))
//	email, err := client.Email(ctx)
//
// [Default] returns a process-wide client configured from the environment.
package staffomatic
