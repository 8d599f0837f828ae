// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package options

import "sync"

// Store holds the current options of one client. It is safe for concurrent
// use.
type Store struct {
	mu         sync.RWMutex
	opts       Options
	defaults   Defaults
	generation uint64
}

// NewStore returns a Store initialised from defaults. A nil provider yields
// all-unset defaults.
func NewStore(defaults Defaults) *Store {
	if defaults == nil {
		defaults = StaticDefaults{}
	}
	s := &Store{defaults: defaults}
	s.Reset()
	return s
}

// Get returns the option stored under k.
func (s *Store) Get(k Key) (Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts.Value(k)
}

// Set overwrites the option stored under k.
func (s *Store) Set(k Key, v Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.opts.SetValue(k, v)
}

// Configure applies fn to a copy of the current options and installs the
// result, so readers see either all of fn's writes or none of them. fn runs
// under the store lock and must not call back into the Store.
func (s *Store) Configure(fn func(*Options)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.opts.Clone()
	fn(&next)
	s.opts = next
}

// Reset restores every option to its default and invalidates values
// memoized against the previous generation.
func (s *Store) Reset() {
	opts := s.defaults.Defaults()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts = opts
	s.generation++
}

// Setup is an alias for Reset.
func (s *Store) Setup() {
	s.Reset()
}

// Snapshot returns a deep copy of the current options.
func (s *Store) Snapshot() Options {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts.Clone()
}

// Generation returns a counter bumped by every Reset.
func (s *Store) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// APIEndpoint returns the stored endpoint normalized to end in exactly one
// "/". The normalization runs on every read.
func (s *Store) APIEndpoint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts.Endpoint()
}

// Scheme returns the stored URL scheme.
func (s *Store) Scheme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts.Scheme
}

// Account returns the stored account name.
func (s *Store) Account() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts.Account
}
