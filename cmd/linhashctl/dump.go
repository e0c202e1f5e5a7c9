// Copyright (c) 2024 The linhash authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// runDump builds a table from a newline-delimited "key\tvalue" file
// (both ints) and prints its textual dump.
func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	file := fs.String("file", "", "path to a key\\tvalue file (required)")
	initSize := fs.Int64("init-size", 2, "initial bucket count, must be a power of two")
	maxLoadFactor := fs.Float64("max-load-factor", 0.75, "max load factor before splitting")
	fs.Parse(args)

	if *file == "" {
		return fmt.Errorf("dump: -file is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		return err
	}
	defer f.Close()

	tbl, err := newTableWithOptions(uint64(*initSize), *maxLoadFactor)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			return fmt.Errorf("dump: malformed line %q, want key\\tvalue", line)
		}
		k, err := strconv.Atoi(fields[0])
		if err != nil {
			return fmt.Errorf("dump: bad key %q: %w", fields[0], err)
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("dump: bad value %q: %w", fields[1], err)
		}
		tbl.Insert(k, v)
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	return tbl.Dump(os.Stdout)
}
