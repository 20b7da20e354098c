// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for graphlib/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and invariant checks for core.Graph.
//   - Keep invariant checks on the public API only (no access to slots).

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheRadDani/graphlib/core"
)

// Common node IDs used across core tests.
const (
	Node1 uint64 = 1
	Node2 uint64 = 2
	Node3 uint64 = 3
	Node4 uint64 = 4
	Node5 uint64 = 5

	NodeMissing uint64 = 999
	NodeHuge    uint64 = 1 << 62
)

// Common sizes used across core tests (avoid magic numbers in test bodies).
const (
	NRandomOps        = 2000
	NRandomIDs        = 64
	NConcurrentReads  = 50
	NConcurrentRounds = 100
)

// newPathGraph returns 1–2–3 (the canonical neighbor scenario).
func newPathGraph(t *testing.T, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	require.NoError(t, g.AddEdge(Node1, Node2))
	require.NoError(t, g.AddEdge(Node2, Node3))

	return g
}

// multiset counts occurrences of each ID.
func multiset(ids []uint64) map[uint64]int {
	m := make(map[uint64]int, len(ids))
	for _, id := range ids {
		m[id]++
	}

	return m
}

// requireReciprocal VERIFIES the undirected invariant on g:
// b occurs k times in a's list iff a occurs k times in b's list, and
// the edge counter agrees with the enumerated edge set.
func requireReciprocal(t *testing.T, g *core.Graph) {
	t.Helper()
	adj := g.AdjacencyList()
	require.Len(t, adj, g.NodeCount(), "adjacency snapshot covers every node")

	entries := 0
	loops := 0
	for a, list := range adj {
		counts := multiset(list)
		for b, k := range counts {
			back, ok := adj[b]
			require.True(t, ok, "neighbor %d of %d must be a live node", b, a)
			require.Equal(t, k, multiset(back)[a], "multiplicity %d-%d must be symmetric", a, b)
		}
		entries += len(list)
		loops += counts[a]
	}
	// Non-loop edges appear twice in the lists, loops once.
	require.Equal(t, (entries-loops)/2+loops, g.EdgeCount(), "edge counter")
	require.Len(t, g.Edges(), g.EdgeCount(), "Edges() lists each edge once")
}
