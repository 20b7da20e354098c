// Package converters provides two-way adapters between core.Graph and
// gonum/graph, so graphs loaded and sampled here can be handed to gonum's
// algorithm packages (topo, path, network, community) and back.
//
// Mapping:
//   - Node IDs map to gonum int64 IDs unchanged; IDs above math.MaxInt64 cannot
//     be exported (ErrIDOverflow) and negative gonum IDs cannot be imported
//     (ErrNegativeID).
//   - Each undirected edge, including every parallel copy and self-loop,
//     becomes one multi.Line; gonum multigraph lines become parallel edges.
package converters
