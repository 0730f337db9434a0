// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package splaymetrics exports the size and restructuring work
// of splay trees as Prometheus metrics.
package splaymetrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"rsc.io/splay"
)

// A Source is a tree whose size and restructuring counters can be read.
// Both [splay.Tree] and [splay.TreeFunc] are Sources.
//
// Collect reads the Source from the scraping goroutine.
// A tree shared with other goroutines must be wrapped in a Source
// that takes the same lock as the tree's other users.
type Source interface {
	Len() int
	Stats() splay.Stats
}

// A Collector is a [prometheus.Collector] for one tree.
type Collector struct {
	src       Source
	entries   *prometheus.Desc
	rotations *prometheus.Desc
	splays    *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector returns a Collector reporting on src.
// Metric names are prefixed with namespace and carry a "tree"
// label set to name, so several trees can share a registry.
func NewCollector(namespace, name string, src Source) *Collector {
	labels := prometheus.Labels{"tree": name}
	return &Collector{
		src: src,
		entries: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "splay", "entries"),
			"Number of entries in the splay tree.",
			nil, labels),
		rotations: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "splay", "rotations_total"),
			"Single rotations performed by the splay tree.",
			nil, labels),
		splays: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "splay", "splays_total"),
			"Entries moved to the root of the splay tree.",
			nil, labels),
	}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.rotations
	ch <- c.splays
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(c.src.Len()))
	ch <- prometheus.MustNewConstMetric(c.rotations, prometheus.CounterValue, float64(st.Rotations))
	ch <- prometheus.MustNewConstMetric(c.splays, prometheus.CounterValue, float64(st.Splays))
}
