// Package metrics exposes core.Graph statistics as Prometheus gauges.
//
// A Collector reads Graph.Stats on every scrape, so it never goes stale and
// costs nothing between scrapes. Register one Collector per graph; use
// WithConstLabels to tell several graphs apart in one registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/TheRadDani/graphlib/core"
)

// DefaultNamespace prefixes every metric name unless WithNamespace is given.
const DefaultNamespace = "graphlib"

// Option configures a Collector.
type Option func(*config)

type config struct {
	namespace string
	labels    prometheus.Labels
}

// WithNamespace replaces DefaultNamespace.
func WithNamespace(ns string) Option {
	return func(c *config) { c.namespace = ns }
}

// WithConstLabels attaches fixed labels (for example {"graph": "social"}) to every metric.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *config) { c.labels = labels }
}

// Collector implements prometheus.Collector over one graph.
type Collector struct {
	g *core.Graph

	nodes     *prometheus.Desc
	edges     *prometheus.Desc
	loops     *prometheus.Desc
	isolated  *prometheus.Desc
	maxDegree *prometheus.Desc
	slots     *prometheus.Desc
	freeSlots *prometheus.Desc
}

// NewCollector returns a Collector for g. Panics on nil g.
func NewCollector(g *core.Graph, opts ...Option) *Collector {
	if g == nil {
		panic("metrics: NewCollector(nil)")
	}
	cfg := config{namespace: DefaultNamespace}
	for _, opt := range opts {
		opt(&cfg)
	}
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(cfg.namespace, "", name), help, nil, cfg.labels)
	}

	return &Collector{
		g:         g,
		nodes:     desc("nodes", "Number of nodes in the graph."),
		edges:     desc("edges", "Number of undirected edges, parallel copies and self-loops included."),
		loops:     desc("self_loops", "Number of self-loop edges."),
		isolated:  desc("isolated_nodes", "Number of nodes without neighbors."),
		maxDegree: desc("max_degree", "Largest neighbor-list length."),
		slots:     desc("id_slots", "Identifier slots ever allocated."),
		freeSlots: desc("id_free_slots", "Identifier slots released and awaiting reuse."),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.nodes
	ch <- c.edges
	ch <- c.loops
	ch <- c.isolated
	ch <- c.maxDegree
	ch <- c.slots
	ch <- c.freeSlots
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.g.Stats()
	gauge := func(d *prometheus.Desc, v int) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, float64(v))
	}
	gauge(c.nodes, s.NodeCount)
	gauge(c.edges, s.EdgeCount)
	gauge(c.loops, s.LoopCount)
	gauge(c.isolated, s.IsolatedCount)
	gauge(c.maxDegree, s.MaxDegree)
	gauge(c.slots, s.SlotCount)
	gauge(c.freeSlots, s.FreeSlots)
}
