// Copyright (c) 2024 The linhash authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package linhash

import (
	"fmt"
	"io"
)

// Dump writes a textual representation of every bucket to w, one line
// per bucket in the form "Bucket i: [k:v][k:v]...". It is a debugging
// aid, not part of the hot-path API: unlike Get, Contains, Remove and
// the iterator, it takes the table lock exclusively (as otherwise only
// an Insert that splits does), to print a consistent snapshot rather
// than race the split engine.
func (t *Table[K, V]) Dump(w io.Writer) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, b := range t.buckets {
		if _, err := fmt.Fprintf(w, "Bucket %d: ", i); err != nil {
			return err
		}
		for _, e := range b.entries {
			if _, err := fmt.Fprintf(w, "[%v:%v]", e.key, e.value); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
