// Copyright (c) 2024 The linhash authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package linhash

// Iterator is a lazy, single-pass, forward-only view over every live
// entry in a Table, skipping physically empty buckets. It visits
// entries in bucket-index order, and within a bucket in internal
// storage order (unspecified across Remove/Insert-overwrite).
//
// Iteration is NOT safe under concurrent mutation of the table: no
// lock is held by the iterator. Table.Dump, which also walks every
// bucket, does take the table lock, being a debugging aid rather than
// a hot-path API. Callers must externally quiesce the table for the
// duration of an iteration, or tolerate undefined results.
type Iterator[K any, V any] struct {
	table     *Table[K, V]
	bucketIdx uint64
	entryIdx  int
	key       K
	value     V
}

// Iterator returns an iterator positioned before the first entry. Call
// Next to advance to it.
func (t *Table[K, V]) Iterator() *Iterator[K, V] {
	return &Iterator[K, V]{table: t, entryIdx: -1}
}

// End returns the canonical end-of-iteration position. It is provided
// for parity with the begin()/end() iteration contract; comparing a
// live iterator against it with Equal is equivalent to checking that
// Next returned false.
func (t *Table[K, V]) End() *Iterator[K, V] {
	return &Iterator[K, V]{table: t, bucketIdx: t.bucketCount.Load()}
}

// Next advances the iterator to the next live entry and reports
// whether one was found. Once it returns false, the iterator is
// exhausted and Key/Value/Entry are no longer meaningful.
func (it *Iterator[K, V]) Next() bool {
	t := it.table
	it.entryIdx++
	for it.bucketIdx < t.bucketCount.Load() {
		b := t.buckets[it.bucketIdx]
		if it.entryIdx < len(b.entries) {
			it.key = b.entries[it.entryIdx].key
			it.value = b.entries[it.entryIdx].value
			return true
		}
		it.bucketIdx++
		it.entryIdx = 0
	}
	var zk K
	var zv V
	it.key, it.value = zk, zv
	return false
}

// Key returns the key at the iterator's current position.
func (it *Iterator[K, V]) Key() K { return it.key }

// Value returns the value at the iterator's current position.
func (it *Iterator[K, V]) Value() V { return it.value }

// Entry returns the key and value at the iterator's current position.
func (it *Iterator[K, V]) Entry() (K, V) { return it.key, it.value }

// Equal compares the (table, bucketIdx, entryIdx) triple of two
// iterators. Iterators derived from different tables are never equal,
// even if both are exhausted.
func (it *Iterator[K, V]) Equal(other *Iterator[K, V]) bool {
	return it.table == other.table &&
		it.bucketIdx == other.bucketIdx &&
		it.entryIdx == other.entryIdx
}
