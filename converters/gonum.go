// File: gonum.go
// Role: Export to and import from gonum graph types.
//
// Determinism:
//   - FromGonum inserts edges in ascending (u, v) ID order, so neighbor order
//     in the result does not depend on gonum's map iteration.
//
// Concurrency:
//   - ToGonum reads a single Clone of g; the source may be mutated meanwhile.
package converters

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/multi"

	"github.com/TheRadDani/graphlib/core"
)

// Sentinel errors for graph conversion.
var (
	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("converters: graph is nil")

	// ErrIDOverflow indicates a node ID that does not fit in an int64.
	ErrIDOverflow = errors.New("converters: node id exceeds math.MaxInt64")

	// ErrNegativeID indicates a gonum node with a negative ID.
	ErrNegativeID = errors.New("converters: negative node id")
)

// ToGonum copies g into a new gonum multi.UndirectedGraph.
//
// Errors:
//   - ErrGraphNil; ErrIDOverflow (wrapped) naming the first offending node.
//
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*multi.UndirectedGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	snap := g.Clone()

	dst := multi.NewUndirectedGraph()
	for _, id := range snap.Nodes() {
		if id > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d", ErrIDOverflow, id)
		}
		dst.AddNode(multi.Node(int64(id)))
	}
	for _, e := range snap.Edges() {
		dst.SetLine(dst.NewLine(multi.Node(int64(e.A)), multi.Node(int64(e.B))))
	}

	return dst, nil
}

// FromGonum builds a core.Graph from any undirected gonum graph.
//
// Behavior highlights:
//   - Every gonum node becomes a node, isolated ones included.
//   - For a graph.UndirectedMultigraph each line becomes one edge; otherwise
//     each adjacent pair becomes one edge.
//   - Self-loops require core.WithLoops() in opts.
//
// Errors:
//   - ErrGraphNil; ErrNegativeID (wrapped);
//     core.ErrLoopNotAllowed (wrapped) for a self-loop without WithLoops.
//
// Complexity: O(V log V + E).
func FromGonum(src graph.Undirected, opts ...core.GraphOption) (*core.Graph, error) {
	if src == nil {
		return nil, ErrGraphNil
	}
	nodes := graph.NodesOf(src.Nodes())
	slices.SortFunc(nodes, byID)

	dst := core.NewGraph(append([]core.GraphOption{core.WithCapacity(len(nodes))}, opts...)...)
	for _, n := range nodes {
		if n.ID() < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeID, n.ID())
		}
		if err := dst.AddNode(uint64(n.ID())); err != nil {
			return nil, err
		}
	}

	mg, isMulti := src.(graph.UndirectedMultigraph)
	for _, u := range nodes {
		uid := u.ID()
		adj := graph.NodesOf(src.From(uid))
		slices.SortFunc(adj, byID)
		for _, v := range adj {
			vid := v.ID()
			if vid < uid {
				continue // visited from the other endpoint
			}
			copies := 1
			if isMulti {
				copies = countLines(mg.LinesBetween(uid, vid))
			}
			for i := 0; i < copies; i++ {
				if err := dst.AddEdge(uint64(uid), uint64(vid)); err != nil {
					return nil, fmt.Errorf("converters: edge %d-%d: %w", uid, vid, err)
				}
			}
		}
	}

	return dst, nil
}

func byID(a, b graph.Node) int { return cmp.Compare(a.ID(), b.ID()) }

func countLines(it graph.Lines) int {
	n := 0
	for it.Next() {
		n++
	}

	return n
}
