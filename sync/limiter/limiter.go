// Copyright (c) 2024 The linhash authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

// Package limiter bounds the number of concurrently running goroutines,
// so a flag like -workers on a load-generating CLI can't spawn an
// unbounded number of them.
package limiter

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Limiter lets at most n callers proceed past Acquire at once.
type Limiter struct {
	sem       *semaphore.Weighted
	max       int64
	available int64
	mu        sync.Mutex
}

// New builds a Limiter that admits at most n concurrent holders.
func New(n int64) *Limiter {
	return &Limiter{
		sem:       semaphore.NewWeighted(n),
		max:       n,
		available: n,
	}
}

// Acquire blocks until a slot is free or ctx is done.
func (l *Limiter) Acquire(ctx context.Context) error {
	if err := l.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	l.mu.Lock()
	l.available--
	l.mu.Unlock()
	return nil
}

// Release returns a slot to the limiter.
func (l *Limiter) Release() {
	l.sem.Release(1)
	l.mu.Lock()
	l.available++
	l.mu.Unlock()
}

// Available returns the current number of free slots.
func (l *Limiter) Available() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.available
}
