// Copyright (c) 2024 The linhash authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

// Package linhash implements a concurrent linear-hashing associative
// container: a map that grows one bucket at a time instead of doubling
// the whole table in a single rehash step.
//
// A Table is safe for concurrent use by multiple goroutines. Readers
// and writers on disjoint buckets proceed in parallel; growth (a single
// bucket split) briefly takes the table exclusively, but only one
// bucket's worth of entries is ever rehashed per split, which bounds the
// tail latency of any single Insert.
package linhash
