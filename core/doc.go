// Package core provides a compact, read-optimized in-memory undirected Graph
// keyed by non-negative integer node IDs.
//
// The Graph G = (V,E) is stored as an arena:
//
//   - External node IDs (any uint64, sparse) are mapped to dense internal slots
//     by an idspace.Space (hash map forward, slice reverse).
//   - adj[slot] is the slot's neighbor list, a plain []uint32 in insertion order.
//   - An undirected edge a–b is reciprocal membership: b ∈ adj[a] ⇔ a ∈ adj[b],
//     with equal multiplicity. Every mutation preserves this.
//
// Why slots instead of map[uint64][]uint64?
//
//   - Neighbor lists hold 4-byte slots, halving memory for large graphs.
//   - Random walks hop slot to slot without hashing.
//   - Deleted slots are recycled, so churn does not grow storage.
//
// Configuration Options (GraphOption):
//
//	– WithLoops()
//	    Permits self-loops; otherwise AddEdge(v,v) → ErrLoopNotAllowed.
//
//	– WithoutMultiEdges()
//	    Deduplicates parallel edges; a repeated AddEdge is a silent no-op.
//	    Default keeps every copy.
//
//	– WithCapacity(n)
//	    Pre-sizes node storage.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id uint64) error             // O(1), idempotent
//	HasNode(id uint64) bool              // O(1)
//	DeleteNode(id uint64) error          // O(deg + Σ neighbor deg), full cleanup
//
//	// Edge lifecycle
//	AddEdge(a, b uint64) error           // O(1)†, auto-creates endpoints
//	RemoveEdge(a, b uint64) error        // O(deg a + deg b)
//	HasEdge(a, b uint64) bool            // O(min deg)
//
//	// Query
//	Neighbors(id uint64) ([]uint64, error)   // O(d), insertion order
//	NeighborCount(id uint64) (int, error)    // O(1)
//	Nodes() []uint64                         // O(V log V), ascending
//	Edges() []Edge                           // O(E log E), each edge once
//
//	// Sampling
//	Walk(start uint64, length int, r Intn) ([]uint64, error) // O(length)
//
//	// Maintenance
//	Clone() *Graph, Clear(), Replace(src *Graph), Stats() GraphStats
//
// † O(min deg) under WithoutMultiEdges().
//
// Errors:
//
//	ErrNodeNotFound   – query/delete on an absent node; never an empty result.
//	ErrEdgeNotFound   – RemoveEdge on non-adjacent nodes.
//	ErrLoopNotAllowed – AddEdge(v,v) without WithLoops().
//
// Example:
//
//	g := core.NewGraph()
//	_ = g.AddEdge(1, 2)
//	_ = g.AddEdge(2, 3)
//	nbrs, _ := g.Neighbors(2) // [1 3]
//	_ = g.DeleteNode(2)
//	nbrs, _ = g.Neighbors(1)  // []
//	_, err := g.Neighbors(2)  // errors.Is(err, core.ErrNodeNotFound)
package core
