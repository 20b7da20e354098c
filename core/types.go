// Package core defines the central Graph type, its options and sentinel
// errors, and the NewGraph constructor.
//
// All core APIs use a single sync.RWMutex internally: mutations take the write
// lock, queries and walks take the read lock. The engine is designed for a
// single writer; the lock keeps misuse from corrupting the adjacency store, it
// does not make interleaved writers meaningful.
//
// Errors:
//
//	ErrNodeNotFound   - requested node does not exist.
//	ErrEdgeNotFound   - requested edge does not exist.
//	ErrLoopNotAllowed - self-loop when loops are disabled.
package core

import (
	"errors"
	"sync"

	"github.com/TheRadDani/graphlib/idspace"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// Edge is one undirected edge as reported by Edges: A <= B always.
type Edge struct {
	A uint64
	B uint64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithLoops permits self-loops (edges from a node to itself).
// A self-loop is stored once in the node's own neighbor list.
func WithLoops() GraphOption {
	return func(g *Graph) { g.allowLoops = true }
}

// WithoutMultiEdges makes AddEdge deduplicate parallel edges: adding an edge
// that already exists is an idempotent no-op. The default keeps multiplicity.
func WithoutMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = false }
}

// WithCapacity pre-sizes node storage for n nodes. Negative n is treated as 0.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capHint = n
		}
	}
}

// Graph is the core in-memory undirected graph.
//
// Storage is an arena: ids maps external node IDs to dense slots and adj[slot]
// holds the slot's neighbor slots in insertion order. For every live pair
// (a,b), b appears in adj[a] exactly as many times as a appears in adj[b].
type Graph struct {
	mu sync.RWMutex // guards everything below

	// Configuration flags (immutable after NewGraph)
	allowLoops bool // allow self-loops
	allowMulti bool // keep parallel edges
	capHint    int  // initial node capacity

	// Storage
	ids   *idspace.Space // external ID <-> slot
	adj   [][]uint32     // slot -> neighbor slots; nil for free slots
	edges int            // live undirected edges, loops counted once
	loops int            // live self-loops
}

// NewGraph creates an empty Graph with the given options.
// By default a Graph rejects self-loops and keeps parallel edges.
// Complexity: O(capacity hint)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{allowMulti: true}
	for _, opt := range opts {
		opt(g)
	}
	g.ids = idspace.New(g.capHint)
	g.adj = make([][]uint32, 0, g.capHint)

	return g
}

// options reconstructs the option set that produced g.
func (g *Graph) options() []GraphOption {
	var opts []GraphOption
	if g.allowLoops {
		opts = append(opts, WithLoops())
	}
	if !g.allowMulti {
		opts = append(opts, WithoutMultiEdges())
	}

	return opts
}

// Options returns GraphOptions that reproduce g's configuration, for building
// a fresh graph with identical policy.
func (g *Graph) Options() []GraphOption {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.options()
}
