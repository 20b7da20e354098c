// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing policy getters and Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// Looped reports whether self-loops (a==b) are permitted by policy.
// If false, AddEdge(v,v) rejects the operation with ErrLoopNotAllowed.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Looped() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowLoops
}

// Multigraph reports whether parallel edges are kept. If false, a repeated
// AddEdge(a,b) is a no-op.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Multigraph() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.allowMulti
}

// Stats produces a read-only snapshot of configuration flags and sizes.
//
// Implementation:
//   - Stage 1: Acquire the read lock.
//   - Stage 2: Copy flags and counters, scan neighbor lists once for MaxDegree
//     and IsolatedCount.
//
// Behavior highlights:
//   - FreeSlots counts identifier slots released by DeleteNode and not yet reused.
//
// Complexity:
//   - Time O(V), Space O(1) plus the returned struct.
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	stats := GraphStats{
		AllowsLoops: g.allowLoops,
		AllowsMulti: g.allowMulti,
		NodeCount:   g.ids.Len(),
		EdgeCount:   g.edges,
		LoopCount:   g.loops,
		SlotCount:   g.ids.Cap(),
		FreeSlots:   g.ids.Free(),
	}
	for _, list := range g.adj {
		if list == nil {
			continue
		}
		if len(list) == 0 {
			stats.IsolatedCount++
		}
		if len(list) > stats.MaxDegree {
			stats.MaxDegree = len(list)
		}
	}

	return stats
}

// GraphStats is a snapshot of a Graph's configuration and size.
type GraphStats struct {
	AllowsLoops bool
	AllowsMulti bool

	NodeCount     int
	EdgeCount     int
	LoopCount     int
	IsolatedCount int
	MaxDegree     int

	SlotCount int // allocated identifier slots, live or free
	FreeSlots int
}
