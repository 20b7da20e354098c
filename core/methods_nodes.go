// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns IDs sorted ascending.
//
// Concurrency:
//   - Mutations under g.mu write lock; queries under g.mu read lock.
//
// Policy:
//   - DeleteNode performs full bidirectional cleanup: the node disappears from
//     every neighbor list before its own list and identifier slot are released.
package core

import (
	"fmt"
	"slices"
)

// AddNode inserts a node with an empty neighbor list if it is absent.
//
// Behavior highlights:
//   - Idempotent: adding an existing node is a no-op (no error).
//
// Errors:
//   - idspace.ErrExhausted (wrapped) once 2^32-1 slots are in use.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id uint64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, _, err := g.ensureSlot(id); err != nil {
		return fmt.Errorf("core: AddNode(%d): %w", id, err)
	}

	return nil
}

// HasNode reports whether the node exists.
// Complexity: O(1).
func (g *Graph) HasNode(id uint64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.ids.Lookup(id)
	return ok
}

// DeleteNode removes a node and every edge incident to it.
//
// Implementation:
//   - Stage 1: Resolve the slot (ErrNodeNotFound, nothing mutated).
//   - Stage 2: For each distinct neighbor, drop every occurrence of the node
//     from that neighbor's list (parallel edges included).
//   - Stage 3: Adjust edge/loop counters, drop the node's own list and release
//     its identifier slot, so HasNode/Neighbors report ErrNodeNotFound afterwards.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity:
//   - Time O(deg(v) + Σ deg(u) for distinct neighbors u), Space O(1) extra for simple graphs.
func (g *Graph) DeleteNode(id uint64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	slot, err := g.slotOf(id)
	if err != nil {
		return err
	}

	own := g.adj[slot]
	var seen map[uint32]struct{}
	if g.allowMulti && len(own) > 1 {
		seen = make(map[uint32]struct{}, len(own))
	}
	for _, nb := range own {
		if nb == slot {
			continue // self-loop lives only in own, which is dropped below
		}
		if seen != nil {
			if _, dup := seen[nb]; dup {
				continue
			}
			seen[nb] = struct{}{}
		}
		g.adj[nb], _ = removeAllSlots(g.adj[nb], slot)
	}

	loops := countSlot(own, slot)
	g.edges -= len(own)
	g.loops -= loops
	g.adj[slot] = nil
	// slotOf succeeded, so the slot is live and Release cannot fail.
	_ = g.ids.Release(slot)

	return nil
}

// NodeCount returns the number of live nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.ids.Len()
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]uint64, 0, g.ids.Len())
	for s := range g.adj {
		if ext, ok := g.ids.External(uint32(s)); ok {
			out = append(out, ext)
		}
	}
	slices.Sort(out)

	return out
}

// Degree returns the number of entries in the node's neighbor list: parallel
// edges count once per copy, a self-loop counts once.
//
// Errors:
//   - ErrNodeNotFound: if the node does not exist.
//
// Complexity: O(1).
func (g *Graph) Degree(id uint64) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	slot, err := g.slotOf(id)
	if err != nil {
		return 0, err
	}

	return len(g.adj[slot]), nil
}

// IsolatedNodes returns, in ascending order, the nodes with an empty neighbor list.
// Complexity: O(V log V).
func (g *Graph) IsolatedNodes() []uint64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var out []uint64
	for s, list := range g.adj {
		if len(list) > 0 {
			continue
		}
		if ext, live := g.ids.External(uint32(s)); live {
			out = append(out, ext)
		}
	}
	slices.Sort(out)

	return out
}
