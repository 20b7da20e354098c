// Package walk samples uniform random walks from a core.Graph.
//
// A walk of length L from s is s followed by up to L-1 hops, each to a
// neighbor drawn uniformly from the current node's neighbor list (parallel
// edges count once per copy). A node with no neighbors ends the walk early:
// the returned sequence is then shorter than L and Truncated reports true.
// Since edges are undirected, only an isolated start node can cause this on a
// graph that is not mutated during sampling.
//
// Randomness is injectable:
//
//	walk.RandomWalk(g, 42, 5, 10)                         // OS-seeded Xoshiro256**
//	walk.RandomWalk(g, 42, 5, 10, walk.WithSeed(1))       // reproducible
//	walk.RandomWalk(g, 42, 5, 10, walk.WithRand(myRand))  // caller-owned *rand.Rand
//
// Batch fans sampling for many start nodes across goroutines with an
// errgroup; each start has its own generator stream, so a seeded batch is
// reproducible regardless of worker count.
package walk
