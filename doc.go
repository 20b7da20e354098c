// Package graphlib is an embeddable, in-memory engine for large undirected
// graphs keyed by 64-bit node IDs, built for fast neighbor lookups and
// random-walk sampling.
//
// 🚀 What is graphlib?
//
//	A thread-safe graph store that brings together:
//		• Core primitives: add/remove nodes & edges, neighbor enumeration
//		• Edge-list I/O: load & save plain or compressed (.gz, .zst, .lz4) files
//		• Sampling: uniform random walks, single-start or batched in parallel
//		• Interop: export to / import from gonum graphs
//		• Observability: a Prometheus collector over graph statistics
//
// ✨ Why choose graphlib?
//
//   - Compact – external IDs map to dense uint32 slots; adjacency is plain slices
//   - Predictable – neighbors keep insertion order, edge lists are sorted
//   - Reproducible – seeded Xoshiro256** walks, independent of worker count
//   - Safe – R/W locks on every graph, atomic Load and Save
//
// Under the hood, everything is organized under these subpackages:
//
//	idspace/:    external uint64 ID ⇄ dense slot mapping with slot reuse
//	core/:       Graph: arena adjacency store, policies, walk kernel
//	edgelist/:   edge-list reader/writer, codecs, Load/Save
//	walk/:       Walker, RandomWalk, Batch, Xoshiro256** source
//	builder/:    deterministic fixture graphs (path, cycle, star, random …)
//	converters/: gonum/graph adapters
//	metrics/:    prometheus.Collector for Graph.Stats
//
// Quick ASCII example:
//
//	1───2───3
//
// is the edge list "1 2\n2 3\n"; GetNeighbors(2) yields [1 3], and after
// DeleteNode(2) node 1 has no neighbors.
//
//	go get github.com/TheRadDani/graphlib
package graphlib
