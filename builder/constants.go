// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	MethodCycle                  = "Cycle"
	MethodPath                   = "Path"
	MethodStar                   = "Star"
	MethodWheel                  = "Wheel"
	MethodComplete               = "Complete"
	MethodCompleteBipartite      = "CompleteBipartite"
	MethodGrid                   = "Grid"
	MethodRandomSparse           = "RandomSparse"
	MethodRandomRegular          = "RandomRegular"
	MethodPreferentialAttachment = "PreferentialAttachment"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a path.
const MinPathNodes = 2

// MinStarNodes is one center plus at least one leaf.
const MinStarNodes = 2

// MinWheelNodes is a cycle of at least 3 nodes plus one hub.
const MinWheelNodes = 4

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

// MinPartition is the smallest side of a complete bipartite graph.
const MinPartition = 1

//-----------------------------------------------------------------------------
// Probability Bounds
//-----------------------------------------------------------------------------

// MinProbability is the lower bound for the probability parameter p in
// RandomSparse (Erdős–Rényi) graph construction, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p, inclusive.
const MaxProbability = 1.0
