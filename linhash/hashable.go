// Copyright (c) 2024 The linhash authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package linhash

// Hashable lets a key type supply its own hash and equality, for
// callers whose key already has a natural identity (as opposed to the
// generic New, which takes the hash/equal closures separately, handy
// when the key type doesn't want to implement an interface, or when
// the same K needs more than one notion of identity).
type Hashable interface {
	Hash() uint64
	Equal(other any) bool
}

// NewHashable builds a Table for a key type implementing Hashable,
// instead of requiring the caller to pass hash/equal closures by hand.
func NewHashable[K Hashable, V any](opts ...Option) (*Table[K, V], error) {
	hash := func(k K) uint64 { return k.Hash() }
	equal := func(a, b K) bool { return a.Equal(b) }
	return New[K, V](hash, equal, opts...)
}

// MustNewHashable is like NewHashable but panics if construction fails.
func MustNewHashable[K Hashable, V any](opts ...Option) *Table[K, V] {
	t, err := NewHashable[K, V](opts...)
	if err != nil {
		panic(err)
	}
	return t
}
