// Copyright (c) 2024 The linhash authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/aristanetworks/glog"
	"github.com/quanticore/concurrent-hashtable/linhash/metrics"
	"github.com/quanticore/concurrent-hashtable/monitor"
)

// runServe builds an empty table, registers its metrics.Collector, and
// mounts a monitor.Server so /debug, /debug/pprof and /metrics can be
// scraped while keys are inserted through some other entry point in
// the same process (this subcommand is meant as a library-usage
// example, not a standalone server).
func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "address for the monitor server to listen on")
	fs.Parse(args)

	tbl, err := newTable()
	if err != nil {
		return err
	}
	collector := metrics.NewCollector("linhash", tbl)
	srv := monitor.NewMonitorServerWithCollectors(*addr, collector)
	glog.Infof("linhashctl serve: listening on %s", *addr)
	srv.Run()
	return nil
}
