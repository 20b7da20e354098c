// File: methods_clone.go
// Role: Cloning, clearing and wholesale replacement of graph instances.
// Concurrency:
//   - Clone takes the read lock on the source only.
//   - Clear/Replace take the write lock on the receiver.

package core

import "github.com/TheRadDani/graphlib/idspace"

// Clone returns a deep copy: configuration, identifier space and adjacency.
// Slot assignments are preserved, so the clone recycles free slots in the
// same order the source would.
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		allowLoops: g.allowLoops,
		allowMulti: g.allowMulti,
		capHint:    g.capHint,
		ids:        g.ids.Clone(),
		adj:        make([][]uint32, len(g.adj), cap(g.adj)),
		edges:      g.edges,
		loops:      g.loops,
	}
	for s, list := range g.adj {
		if list == nil {
			continue
		}
		clone.adj[s] = append(make([]uint32, 0, len(list)), list...)
	}

	return clone
}

// Clear resets the graph to an empty state while preserving configuration flags.
// Complexity: O(1) plus releasing the old storage to the GC.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ids = idspace.New(g.capHint)
	g.adj = make([][]uint32, 0, g.capHint)
	g.edges, g.loops = 0, 0
}

// Replace moves src's nodes, edges and configuration into g in one step and
// leaves src empty. Readers of g observe either the old or the new contents,
// never a mix. Replace(g, g) is a no-op.
//
// Notes:
//   - Lock order is g then src; do not Replace two graphs into each other
//     from concurrent goroutines.
//
// Complexity: O(1).
func (g *Graph) Replace(src *Graph) {
	if src == nil || src == g {
		return
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	src.mu.Lock()
	defer src.mu.Unlock()

	g.allowLoops, g.allowMulti, g.capHint = src.allowLoops, src.allowMulti, src.capHint
	g.ids, g.adj = src.ids, src.adj
	g.edges, g.loops = src.edges, src.loops

	src.ids = idspace.New(0)
	src.adj = nil
	src.edges, src.loops = 0, 0
}
