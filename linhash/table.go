// Copyright (c) 2024 The linhash authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package linhash

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/quanticore/concurrent-hashtable/logger"
)

const (
	defaultInitSize      = 2
	defaultMaxLoadFactor = 0.75
)

// config holds the constructor options before validation.
type config struct {
	initSize      uint64
	maxLoadFactor float64
	logger        logger.Logger
}

// Option configures a Table at construction time.
type Option func(*config)

// WithInitSize overrides the default initial bucket count (2). It must
// be a positive power of two; New/NewHashable validate this and return
// a *ConstructionError otherwise.
func WithInitSize(n uint64) Option {
	return func(c *config) { c.initSize = n }
}

// WithMaxLoadFactor overrides the default max load factor (0.75).
func WithMaxLoadFactor(f float64) Option {
	return func(c *config) { c.maxLoadFactor = f }
}

// WithLogger attaches a logger.Logger that receives one Info line per
// split step. A nil logger (the default) makes splitting silent.
func WithLogger(l logger.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Table is a concurrent linear-hashing map from K to V.
//
// The zero Table is not usable; construct one with New or NewHashable.
type Table[K any, V any] struct {
	// mu is the global table lock (C3's reader/writer lock). It is held
	// shared by every public operation while it resolves a bucket index
	// and operates on that bucket, and held exclusively only by the
	// split engine.
	mu sync.RWMutex

	initSize      uint64
	maxLoadFactor float64
	hash          func(K) uint64
	equal         func(K, K) bool
	logger        logger.Logger

	// depth and splitPtr are mutated only while mu is held exclusively.
	// Addressing reads them only while mu is held (shared or exclusive),
	// see addr.go and the design note on resolving bucket index and
	// acquiring the bucket lock under the same shared table hold; the
	// SplitPtr accessor reads splitPtr without mu, as a snapshot.
	depth    atomic.Uint64
	splitPtr atomic.Uint64

	// bucketCount mirrors len(buckets); kept as an atomic so Capacity()
	// can be read without taking mu, per spec's "unsynchronized reads of
	// atomics" allowance for size/capacity/split_ptr.
	bucketCount atomic.Uint64

	// numElem is the total live entry count, updated on every successful
	// insert-of-new-key and remove.
	numElem atomic.Int64

	// buckets holds one indirection cell (pointer) per bucket. Growth
	// only appends; existing *bucket[K,V] values are never moved or
	// replaced, so a pointer obtained while mu is held shared stays
	// valid for as long as the caller needs it, even though the slice
	// header itself may later be reallocated by an append.
	buckets []*bucket[K, V]
}

// New constructs a Table using explicit hash and equality functions for
// K. Defaults are an initial size of 2 and a max load factor of 0.75;
// override them with WithInitSize/WithMaxLoadFactor. Returns a
// *ConstructionError if initSize is zero or not a power of two, or if
// maxLoadFactor is not strictly positive.
func New[K any, V any](hash func(K) uint64, equal func(K, K) bool, opts ...Option) (*Table[K, V], error) {
	cfg := config{initSize: defaultInitSize, maxLoadFactor: defaultMaxLoadFactor}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.initSize == 0 || cfg.initSize&(cfg.initSize-1) != 0 {
		return nil, &ConstructionError{err: fmt.Errorf("%w: got %d", ErrNotPowerOfTwo, cfg.initSize)}
	}
	if cfg.maxLoadFactor <= 0 {
		return nil, &ConstructionError{err: fmt.Errorf("%w: got %v", ErrNonPositiveLoadFactor, cfg.maxLoadFactor)}
	}

	t := &Table[K, V]{
		initSize:      cfg.initSize,
		maxLoadFactor: cfg.maxLoadFactor,
		hash:          hash,
		equal:         equal,
		logger:        cfg.logger,
		buckets:       make([]*bucket[K, V], cfg.initSize),
	}
	for i := range t.buckets {
		t.buckets[i] = newBucket[K, V]()
	}
	t.bucketCount.Store(cfg.initSize)
	return t, nil
}

// MustNew is like New but panics if construction fails. Intended for
// package-level initialization where the options are fixed at compile
// time, the same way regexp.MustCompile and template.Must are used for
// arguments a caller controls directly.
func MustNew[K any, V any](hash func(K) uint64, equal func(K, K) bool, opts ...Option) *Table[K, V] {
	t, err := New[K, V](hash, equal, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// addrLocked resolves the bucket index for h. The caller must already
// hold t.mu (shared is enough; split, which mutates depth/splitPtr,
// holds it exclusively).
func (t *Table[K, V]) addrLocked(h uint64) uint64 {
	return addr(h, t.initSize, t.depth.Load(), t.splitPtr.Load())
}

// Insert associates key with value, overwriting any existing value for
// key. At most one split step is attempted per call, following the
// double-check load policy: the load is sampled once right after the
// bucket write, while the table lock is still held shared (the bucket
// lock has already been released by then), and, if it exceeded max
// load factor, re-checked
// after acquiring the table lock exclusively. It may be stale by then;
// see the design note on missed splits under concurrent threshold
// crossing.
func (t *Table[K, V]) Insert(key K, value V) {
	t.mu.RLock()
	h := t.hash(key)
	i := t.addrLocked(h)
	b := t.buckets[i]

	isNew := b.put(t.equal, key, value)
	var shouldSplit bool
	if isNew {
		n := t.numElem.Add(1)
		shouldSplit = float64(n) > float64(t.bucketCount.Load())*t.maxLoadFactor
	}
	t.mu.RUnlock()

	if !shouldSplit {
		return
	}
	t.mu.Lock()
	n := t.numElem.Load()
	if float64(n) > float64(t.bucketCount.Load())*t.maxLoadFactor {
		t.splitStep()
	}
	t.mu.Unlock()
}

// Get returns the value associated with key, and whether key is
// present. Absence is a normal outcome, never an error.
func (t *Table[K, V]) Get(key K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i := t.addrLocked(t.hash(key))
	return t.buckets[i].get(t.equal, key)
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i := t.addrLocked(t.hash(key))
	return t.buckets[i].contains(t.equal, key)
}

// Remove deletes key if present and reports whether it was present.
func (t *Table[K, V]) Remove(key K) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i := t.addrLocked(t.hash(key))
	b := t.buckets[i]
	if !b.remove(t.equal, key) {
		return false
	}
	t.numElem.Add(-1)
	return true
}

// Size returns the current number of live entries. This is an
// unsynchronized snapshot read, as are Capacity and SplitPtr.
func (t *Table[K, V]) Size() uint64 {
	return uint64(t.numElem.Load())
}

// Capacity returns the current number of buckets.
func (t *Table[K, V]) Capacity() uint64 {
	return t.bucketCount.Load()
}

// SplitPtr returns the index of the next bucket scheduled for
// splitting.
func (t *Table[K, V]) SplitPtr() uint64 {
	return t.splitPtr.Load()
}
