// Copyright (c) 2024 The linhash authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package linhash

// splitStep executes a single linear-hashing split: it appends one
// fresh bucket, redistributes the entries of the bucket at splitPtr
// between it and the new sibling, advances splitPtr, and wraps depth
// when a full round of splits completes.
//
// The caller must hold t.mu exclusively. No bucket lock is taken here:
// the exclusive table lock already guarantees no other operation (which
// would need a shared table hold to resolve a bucket first) can be
// touching any bucket concurrently.
func (t *Table[K, V]) splitStep() {
	l := t.initSize << t.depth.Load()
	sp := t.splitPtr.Load()

	src := t.buckets[sp]
	dst := newBucket[K, V]()
	t.buckets = append(t.buckets, dst)
	t.bucketCount.Store(uint64(len(t.buckets)))

	hiBit := l
	retained := src.entries[:0:0]
	for _, e := range src.entries {
		if t.hash(e.key)&hiBit != 0 {
			dst.entries = append(dst.entries, e)
		} else {
			retained = append(retained, e)
		}
	}
	src.entries = retained

	newSplitPtr := sp + 1
	if newSplitPtr == l {
		t.splitPtr.Store(0)
		t.depth.Add(1)
	} else {
		t.splitPtr.Store(newSplitPtr)
	}

	if t.logger != nil {
		t.logger.Infof("linhash: split bucket %d into %d, table now %d buckets, depth %d",
			sp, len(t.buckets)-1, len(t.buckets), t.depth.Load())
	}
}
