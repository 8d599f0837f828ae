// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package auth decides which credentials a request is sent with.
//
// [Resolve] applies an ordered list of rules to a snapshot of the client
// options and the call-scoped inputs, and returns exactly one [Material]
// variant. Resolution is pure: it neither reads nor writes shared state, so
// a configuration change is picked up by the very next call.
//
// Precedence, first match wins:
//  1. access token            -> [TokenAuth]
//  2. client id and secret    -> [ClientAppAuth]
//  3. login and password      -> [BasicAuth]
//  4. otherwise               -> [Unauthenticated]
package auth
