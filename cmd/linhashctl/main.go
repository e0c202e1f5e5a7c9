// Copyright (c) 2024 The linhash authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

// The linhashctl tool exercises a linhash.Table from the command line:
// it can replay the table's literal test scenarios, dump a table built from
// a key/value file, or run a bounded-concurrency load test.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aristanetworks/glog"
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "scenario":
		err = runScenario(args[1:])
	case "dump":
		err = runDump(args[1:])
	case "loadtest":
		err = runLoadtest(args[1:])
	case "serve":
		err = runServe(args[1:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		glog.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: linhashctl {scenario|dump|loadtest|serve} [flags]")
}
