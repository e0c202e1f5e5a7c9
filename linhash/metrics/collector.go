// Copyright (c) 2024 The linhash authors.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the LICENSE file.

// Package metrics exposes a linhash.Table's snapshot accessors
// (Size, Capacity, SplitPtr) as Prometheus gauges, the same shape the
// teacher's gNMI-to-Prometheus bridge uses: read an unsynchronized
// value, wrap it in a prometheus.Metric, move on.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Table is the subset of *linhash.Table[K, V] this package depends on.
// It is expressed as an interface (rather than importing the generic
// linhash.Table directly) because a prometheus.Collector cannot itself
// be generic, callers instantiate Collector with whatever concrete
// *linhash.Table[K, V] they have, which already satisfies this
// interface.
type Table interface {
	Size() uint64
	Capacity() uint64
	SplitPtr() uint64
}

// Collector adapts a Table to prometheus.Collector.
type Collector struct {
	table     Table
	size      *prometheus.Desc
	capacity  *prometheus.Desc
	splitPtr  *prometheus.Desc
	namespace string
}

// NewCollector builds a Collector for table, with metric names prefixed
// by namespace (e.g. "linhash" yields "linhash_size").
func NewCollector(namespace string, table Table) *Collector {
	return &Collector{
		table:    table,
		size:     prometheus.NewDesc(namespace+"_size", "Number of live entries in the table.", nil, nil),
		capacity: prometheus.NewDesc(namespace+"_capacity", "Current number of buckets in the table.", nil, nil),
		splitPtr: prometheus.NewDesc(namespace+"_split_ptr", "Index of the next bucket scheduled for splitting.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.size
	ch <- c.capacity
	ch <- c.splitPtr
}

// Collect implements prometheus.Collector. Each call re-reads the
// table's unsynchronized snapshot accessors; per linhash's design,
// these three values may not be mutually consistent with each other at
// the instant they're read, which is acceptable for a gauge scrape.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.size, prometheus.GaugeValue, float64(c.table.Size()))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(c.table.Capacity()))
	ch <- prometheus.MustNewConstMetric(c.splitPtr, prometheus.GaugeValue, float64(c.table.SplitPtr()))
}
