// File: adjacency_list.go
// Role: Private slot-level helpers shared by node, edge and walk methods.
// Concurrency:
//   - Every helper assumes the caller already holds g.mu (read or write as noted).

package core

import "fmt"

// slotOf resolves an external ID to its slot. Caller holds g.mu (read).
func (g *Graph) slotOf(id uint64) (uint32, error) {
	s, ok := g.ids.Lookup(id)
	if !ok {
		return 0, fmt.Errorf("node %d: %w", id, ErrNodeNotFound)
	}

	return s, nil
}

// ensureSlot returns the slot for id, creating the node if absent.
// Caller holds g.mu (write).
func (g *Graph) ensureSlot(id uint64) (slot uint32, created bool, err error) {
	slot, created, err = g.ids.ResolveOrCreate(id)
	if err != nil {
		return 0, false, err
	}
	if !created {
		return slot, false, nil
	}
	// Fresh or recycled slot: give it a non-nil empty list.
	if int(slot) == len(g.adj) {
		g.adj = append(g.adj, make([]uint32, 0))
	} else {
		g.adj[slot] = make([]uint32, 0)
	}

	return slot, true, nil
}

// externals converts a slot list to external IDs. Caller holds g.mu (read).
func (g *Graph) externals(slots []uint32) []uint64 {
	out := make([]uint64, len(slots))
	for i, s := range slots {
		// Reciprocity guarantees every stored neighbor slot is live.
		out[i], _ = g.ids.External(s)
	}

	return out
}

// containsSlot reports whether x occurs in list.
func containsSlot(list []uint32, x uint32) bool {
	for _, v := range list {
		if v == x {
			return true
		}
	}

	return false
}

// countSlot returns the multiplicity of x in list.
func countSlot(list []uint32, x uint32) int {
	n := 0
	for _, v := range list {
		if v == x {
			n++
		}
	}

	return n
}

// removeAllSlots drops every occurrence of x, keeping the relative order of the
// survivors, and returns the shortened list and the number removed.
// Complexity: O(len(list)), no allocation.
func removeAllSlots(list []uint32, x uint32) ([]uint32, int) {
	kept := list[:0]
	for _, v := range list {
		if v != x {
			kept = append(kept, v)
		}
	}
	removed := len(list) - len(kept)
	// Clear the tail so the backing array holds no stale slots.
	clear(list[len(kept):])

	return kept, removed
}

// removeOneSlot drops the last occurrence of x, keeping order.
func removeOneSlot(list []uint32, x uint32) ([]uint32, bool) {
	for i := len(list) - 1; i >= 0; i-- {
		if list[i] == x {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = 0

			return list[:len(list)-1], true
		}
	}

	return list, false
}
