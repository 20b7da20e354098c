// File: methods_walk.go
// Role: Single random-walk kernel over internal slots.
// Concurrency:
//   - Holds g.mu read lock for the whole walk, so concurrent walks share the graph
//     while a mutation waits for them to finish.
// Policy:
//   - A walk stops early at a dead end (a node with zero neighbors). The result
//     is then shorter than requested; this is not an error.

package core

import "fmt"

// Intn draws a uniform integer in [0, n). *math/rand.Rand satisfies it.
type Intn interface {
	Intn(n int) int
}

// Walk produces one random walk of at most length nodes starting at start.
//
// Implementation:
//   - Stage 1: Resolve start (ErrNodeNotFound).
//   - Stage 2: Record start, then for length-1 steps read the current slot's
//     neighbor count; zero ends the walk, otherwise pick r.Intn(count) and advance.
//
// Behavior highlights:
//   - Parallel edges weigh their neighbor proportionally (one draw per list entry).
//   - length < 1 yields an empty walk; validation belongs to the sampler.
//
// Errors:
//   - ErrNodeNotFound: if start does not exist.
//
// Complexity:
//   - Time O(length), Space O(length).
func (g *Graph) Walk(start uint64, length int, r Intn) ([]uint64, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	cur, err := g.slotOf(start)
	if err != nil {
		return nil, err
	}
	if length < 1 {
		return []uint64{}, nil
	}
	if r == nil {
		return nil, fmt.Errorf("core: Walk(%d): nil random source", start)
	}

	walk := make([]uint64, 1, length)
	walk[0] = start
	for step := 1; step < length; step++ {
		list := g.adj[cur]
		if len(list) == 0 {
			break // dead end
		}
		cur = list[r.Intn(len(list))]
		ext, _ := g.ids.External(cur)
		walk = append(walk, ext)
	}

	return walk, nil
}
