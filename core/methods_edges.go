// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns each undirected edge once, as Edge{A<=B}, sorted by (A, B).
// Concurrency:
//   - Mutations under g.mu write lock.
//   - Read queries under g.mu read lock.
// Policy:
//   - AddEdge auto-creates missing endpoints.
//   - Parallel edges are kept unless WithoutMultiEdges() was given, in which case
//     a repeated AddEdge is an idempotent no-op.
//   - Self-loops require WithLoops(); otherwise ErrLoopNotAllowed before any mutation.

package core

import (
	"cmp"
	"fmt"
	"slices"
)

// AddEdge connects a and b with one undirected edge.
//
// Steps:
//  1. Validate the loop policy (no mutation on failure).
//  2. Lock g.mu; ensure both endpoints exist (auto-create).
//  3. Under WithoutMultiEdges(), return early if the edge already exists.
//  4. Append b to a's list and a to b's list (a self-loop is appended once).
//
// Errors:
//   - ErrLoopNotAllowed: a == b and loops are disabled.
//   - idspace.ErrExhausted (wrapped): no slot left for a new endpoint.
//
// Complexity: O(1) amortized; O(min(deg a, deg b)) under WithoutMultiEdges().
func (g *Graph) AddEdge(a, b uint64) error {
	if a == b && !g.allowLoops {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", a, b, ErrLoopNotAllowed)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	sa, createdA, err := g.ensureSlot(a)
	if err != nil {
		return fmt.Errorf("core: AddEdge(%d,%d): %w", a, b, err)
	}
	sb, _, err := g.ensureSlot(b)
	if err != nil {
		if createdA {
			// Undo the half-created endpoint so a failed call leaves no trace.
			g.adj[sa] = nil
			_ = g.ids.Release(sa)
		}
		return fmt.Errorf("core: AddEdge(%d,%d): %w", a, b, err)
	}

	if !g.allowMulti {
		// Scan the shorter list; reciprocity makes either answer the same.
		la, lb := g.adj[sa], g.adj[sb]
		if len(lb) < len(la) {
			if containsSlot(lb, sa) {
				return nil
			}
		} else if containsSlot(la, sb) {
			return nil
		}
	}

	if sa == sb {
		g.adj[sa] = append(g.adj[sa], sa)
		g.loops++
	} else {
		g.adj[sa] = append(g.adj[sa], sb)
		g.adj[sb] = append(g.adj[sb], sa)
	}
	g.edges++

	return nil
}

// RemoveEdge deletes one copy of the undirected edge a–b from both endpoint lists.
//
// Errors:
//   - ErrNodeNotFound: either endpoint is absent.
//   - ErrEdgeNotFound: both exist but are not adjacent.
//
// Complexity: O(deg a + deg b).
func (g *Graph) RemoveEdge(a, b uint64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	sa, err := g.slotOf(a)
	if err != nil {
		return err
	}
	sb, err := g.slotOf(b)
	if err != nil {
		return err
	}

	var ok bool
	if g.adj[sa], ok = removeOneSlot(g.adj[sa], sb); !ok {
		return fmt.Errorf("edge %d-%d: %w", a, b, ErrEdgeNotFound)
	}
	if sa == sb {
		g.loops--
	} else {
		// Reciprocity: the mirror entry must exist.
		g.adj[sb], _ = removeOneSlot(g.adj[sb], sa)
	}
	g.edges--

	return nil
}

// HasEdge reports whether at least one edge a–b exists.
// Missing endpoints report false.
// Complexity: O(min(deg a, deg b)).
func (g *Graph) HasEdge(a, b uint64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sa, okA := g.ids.Lookup(a)
	sb, okB := g.ids.Lookup(b)
	if !okA || !okB {
		return false
	}
	if len(g.adj[sb]) < len(g.adj[sa]) {
		return containsSlot(g.adj[sb], sa)
	}

	return containsSlot(g.adj[sa], sb)
}

// Multiplicity returns how many parallel copies of a–b exist (0 if none).
// Complexity: O(deg a).
func (g *Graph) Multiplicity(a, b uint64) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	sa, okA := g.ids.Lookup(a)
	sb, okB := g.ids.Lookup(b)
	if !okA || !okB {
		return 0
	}

	return countSlot(g.adj[sa], sb)
}

// EdgeCount returns the number of undirected edges; parallel copies count
// individually, a self-loop counts once.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// Edges returns every undirected edge exactly once as Edge{A, B} with A <= B,
// sorted by (A, B). Parallel edges appear once per copy.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edges)
	var a, b uint64
	for s, list := range g.adj {
		if list == nil {
			continue // free slot
		}
		a, _ = g.ids.External(uint32(s))
		for _, nb := range list {
			b, _ = g.ids.External(nb)
			// Emit from the smaller endpoint only; loops are stored once.
			if a <= b {
				out = append(out, Edge{A: a, B: b})
			}
		}
	}
	slices.SortFunc(out, func(x, y Edge) int {
		if c := cmp.Compare(x.A, y.A); c != 0 {
			return c
		}
		return cmp.Compare(x.B, y.B)
	})

	return out
}
