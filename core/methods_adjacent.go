// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborCount, AdjacencyList).
// Determinism:
//   - Neighbors() returns insertion order; deletions keep the relative order of
//     the remaining neighbors.
// Concurrency:
//   - Read operations hold g.mu read lock.
//   - Returned slices are fresh copies; callers may mutate them freely.

package core

// Neighbors returns the external IDs adjacent to id.
//
// Behavior highlights:
//   - A node that exists with no edges yields a non-nil empty slice.
//   - A node that does not exist yields ErrNodeNotFound, never an empty slice.
//   - Parallel edges repeat the neighbor; a self-loop lists the node itself once.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity:
//   - Time O(d), Space O(d).
func (g *Graph) Neighbors(id uint64) ([]uint64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	slot, err := g.slotOf(id)
	if err != nil {
		return nil, err
	}

	return g.externals(g.adj[slot]), nil
}

// NeighborCount returns the length of id's neighbor list without
// materializing it. The sampler relies on it to detect dead ends.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(1).
func (g *Graph) NeighborCount(id uint64) (int, error) {
	return g.Degree(id)
}

// AdjacencyList returns a snapshot map of every node to its neighbor IDs.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[uint64][]uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make(map[uint64][]uint64, g.ids.Len())
	for s, list := range g.adj {
		if list == nil {
			continue
		}
		ext, _ := g.ids.External(uint32(s))
		out[ext] = g.externals(list)
	}

	return out
}
