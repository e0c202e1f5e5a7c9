// Copyright (c) 2024 The linhash authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

// Package xxhash provides default hash functions for linhash.Table,
// for the common cases of string, []byte, and fixed-width integer
// keys, backed by xxhash rather than a hand-rolled mixing function.
package xxhash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// HashString hashes a string key with xxhash.Sum64String.
func HashString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// HashBytes hashes a []byte key.
func HashBytes(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// HashUint64 hashes a fixed-width integer key by hashing its
// little-endian encoding, so integer keys get the same distribution
// quality as string/[]byte keys instead of relying on the identity
// function (a poor hash for sequential keys under any modular
// addressing scheme, linear hashing included).
func HashUint64(n uint64) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], n)
	return xxhash.Sum64(buf[:])
}

// HashInt hashes an int key via HashUint64.
func HashInt(n int) uint64 {
	return HashUint64(uint64(n))
}

// EqualString and EqualBytes are the equality counterparts expected by linhash.New alongside the Hash* functions
// above.
func EqualString(a, b string) bool { return a == b }

// EqualBytes reports whether two []byte keys are identical.
func EqualBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
