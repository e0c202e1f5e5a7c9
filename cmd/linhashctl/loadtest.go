// Copyright (c) 2024 The linhash authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"sync"
	"time"

	"github.com/quanticore/concurrent-hashtable/sync/limiter"
)

// runLoadtest drives an insert workload against a table: each producer
// inserts its own range of sequential keys, all bounded by a shared
// limiter so the tool never has more in-flight inserts than
// -concurrency. No goroutine reads keys back; the run ends by printing
// the table's size, capacity and split pointer.
func runLoadtest(args []string) error {
	fs := flag.NewFlagSet("loadtest", flag.ExitOnError)
	producers := fs.Int("producers", 8, "number of producer goroutines")
	keysPerProducer := fs.Int("keys-per-producer", 5000, "keys inserted by each producer")
	concurrency := fs.Int64("concurrency", 16, "max in-flight operations")
	fs.Parse(args)

	tbl, err := newTable()
	if err != nil {
		return err
	}
	lim := limiter.New(*concurrency)
	ctx := context.Background()

	start := time.Now()
	var wg sync.WaitGroup
	wg.Add(*producers)
	for p := 0; p < *producers; p++ {
		p := p
		go func() {
			defer wg.Done()
			base := p * *keysPerProducer
			for i := 0; i < *keysPerProducer; i++ {
				if err := lim.Acquire(ctx); err != nil {
					return
				}
				tbl.Insert(base+i, base+i)
				lim.Release()
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	fmt.Printf("loadtest done in %s: size=%d capacity=%d split_ptr=%d\n",
		elapsed, tbl.Size(), tbl.Capacity(), tbl.SplitPtr())
	return nil
}
