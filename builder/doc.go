// Package builder assembles deterministic fixture graphs for tests,
// benchmarks and examples.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph(gopts, bopts, cons...): create a core.Graph, resolve
//     options, run constructors in order.
//     – Constructor: a closure that mutates a graph under a resolved config.
//   - Topologies: Path, Cycle, Star, Wheel, Complete, CompleteBipartite, Grid,
//     RandomSparse, RandomRegular, PreferentialAttachment.
//   - Node-ID schemes (IDFn implementations):
//     – DefaultIDFn:   index as ID (0, 1, 2, …).
//     – OffsetIDFn:    base + index.
//     – StrideIDFn:    base + index·stride.
//     – ScatterIDFn:   a bijective 64-bit mix of the index, spreading IDs over
//     the whole uint64 range to exercise sparse identifier spaces.
//   - Validation helpers: validateMin, validateProbability.
//
// Guarantees:
//
//   - Determinism: equal inputs, options, seed and constructor order yield
//     identical graphs, including neighbor order.
//   - Fast-fail on meaningless option parameters via panics in option constructors.
//   - Constructors never panic; they return errors wrapping the sentinels in errors.go.
//   - Graph policy is honored: constructors that would need loops or parallel
//     edges the graph forbids fail with ErrUnsupportedGraphMode or retry.
package builder
