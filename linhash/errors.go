// Copyright (c) 2024 The linhash authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package linhash

import "errors"

// ErrNotPowerOfTwo is wrapped by ConstructionError when initSize is zero
// or not a power of two.
var ErrNotPowerOfTwo = errors.New("linhash: init size must be a positive power of two")

// ErrNonPositiveLoadFactor is wrapped by ConstructionError when
// maxLoadFactor is not strictly positive.
var ErrNonPositiveLoadFactor = errors.New("linhash: max load factor must be positive")

// ConstructionError reports an invalid argument passed to New or
// NewHashable. Apart from the write errors Table.Dump passes through
// from its io.Writer, it is the only error kind this package returns;
// key lookups communicate absence through a boolean, never through an
// error (see Table.Get, Table.Contains, Table.Remove).
type ConstructionError struct {
	err error
}

func (e *ConstructionError) Error() string {
	return e.err.Error()
}

// Unwrap allows errors.Is(err, ErrNotPowerOfTwo) and similar checks.
func (e *ConstructionError) Unwrap() error {
	return e.err
}
