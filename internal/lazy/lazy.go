// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package lazy provides memoized attributes whose value is discovered on
// first use, typically through a network call.
//
// A [Field] is bound to an [Epoch], normally the option store of the owning
// client. Resetting the store advances the epoch and every field populated
// under an earlier generation reads as empty again, so no memoized value
// survives a reset.
package lazy

import (
	"context"
	"errors"
	"fmt"
)

// ErrFetchFailed wraps the error returned by a fetch function. The field is
// left unpopulated so a later call can retry.
var ErrFetchFailed = errors.New("lazy fetch failed")

// Epoch reports the current configuration generation.
type Epoch interface {
	Generation() uint64
}

// FetchFunc computes the value of a field.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Field is a named, lazily populated value. It is safe for concurrent use;
// concurrent callers of GetOrFetch on an empty field wait for a single fetch.
// A waiting caller gives up when its own context is done.
type Field[T any] struct {
	name  string
	epoch Epoch

	// sem holds one token while the field is read or fetched.
	sem       chan struct{}
	populated bool
	gen       uint64
	value     T
}

// New returns an empty field bound to epoch. A nil epoch never invalidates.
func New[T any](name string, epoch Epoch) *Field[T] {
	return &Field[T]{name: name, epoch: epoch, sem: make(chan struct{}, 1)}
}

// Name returns the field name.
func (f *Field[T]) Name() string {
	return f.name
}

// GetOrFetch returns the cached value, or runs fetch once and caches its
// result. A failed fetch is not cached. While another caller's fetch is in
// flight GetOrFetch waits for it, returning ctx.Err() if ctx is done first.
func (f *Field[T]) GetOrFetch(ctx context.Context, fetch FetchFunc[T]) (T, error) {
	if err := f.lock(ctx); err != nil {
		var zero T
		return zero, err
	}
	defer f.unlock()

	gen := f.generation()
	if f.populated && f.gen == gen {
		return f.value, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("%w: %s: %w", ErrFetchFailed, f.name, err)
	}

	f.value = value
	f.gen = gen
	f.populated = true
	return value, nil
}

// Populated reports whether a value cached in the current generation exists.
func (f *Field[T]) Populated() bool {
	_ = f.lock(context.Background())
	defer f.unlock()
	return f.populated && f.gen == f.generation()
}

// lock takes the token, preferring it over a done ctx when it is free.
func (f *Field[T]) lock(ctx context.Context) error {
	select {
	case f.sem <- struct{}{}:
		return nil
	default:
	}

	select {
	case f.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *Field[T]) unlock() {
	<-f.sem
}

func (f *Field[T]) generation() uint64 {
	if f.epoch == nil {
		return 0
	}
	return f.epoch.Generation()
}
