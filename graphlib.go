// File: graphlib.go
// Role: One-stop facade over core, edgelist and walk.
//
// Concurrency:
//   - Graph methods inherited from core.Graph are safe for concurrent use.
//   - RandomWalk serializes access to the facade's random source; use
//     walk.Batch for parallel sampling.
package graphlib

import (
	"math/rand"
	"sync"

	"github.com/TheRadDani/graphlib/core"
	"github.com/TheRadDani/graphlib/edgelist"
	"github.com/TheRadDani/graphlib/walk"
)

// Error taxonomy re-exported for callers that only import the facade.
var (
	// ErrNodeNotFound: a query or mutation named an absent node.
	ErrNodeNotFound = core.ErrNodeNotFound

	// ErrParse: an edge-list line was malformed; errors.As yields *edgelist.ParseError.
	ErrParse = edgelist.ErrParse

	// ErrIO: the file could not be opened, read or written.
	ErrIO = edgelist.ErrIO
)

// Option configures New.
type Option func(*config)

type config struct {
	graphOpts []core.GraphOption
	walkOpts  []walk.Option
}

// WithGraphOptions forwards loop, multi-edge and capacity policy to core.NewGraph.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(c *config) { c.graphOpts = append(c.graphOpts, opts...) }
}

// WithSeed makes RandomWalk reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.walkOpts = append(c.walkOpts, walk.WithSeed(seed)) }
}

// WithRand makes RandomWalk draw from r. Panics on nil.
func WithRand(r *rand.Rand) Option {
	opt := walk.WithRand(r)
	return func(c *config) { c.walkOpts = append(c.walkOpts, opt) }
}

// Graph is a core.Graph with file I/O and a built-in walker.
type Graph struct {
	*core.Graph

	mu     sync.Mutex // guards walker
	walker *walk.Walker
}

// New returns an empty Graph. Defaults: multi-edges kept, self-loops
// rejected, walks seeded from OS entropy.
func New(opts ...Option) *Graph {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph{
		Graph:  core.NewGraph(cfg.graphOpts...),
		walker: walk.New(cfg.walkOpts...),
	}
}

// Load adds every edge listed in the file at path. On any error the graph is
// left exactly as it was. Self-loop lines are dropped unless the graph was
// built with core.WithLoops (edgelist.WithStrictLoops rejects them instead).
// See edgelist.Load.
func (g *Graph) Load(path string, opts ...edgelist.Option) error {
	return edgelist.Load(g.Graph, path, opts...)
}

// Save writes the graph's edges to path, replacing it atomically. See edgelist.Save.
func (g *Graph) Save(path string, opts ...edgelist.Option) error {
	return edgelist.Save(g.Graph, path, opts...)
}

// GetNeighbors returns id's neighbors in insertion order; an existing node
// without edges yields an empty slice, a missing one ErrNodeNotFound.
func (g *Graph) GetNeighbors(id uint64) ([]uint64, error) {
	return g.Neighbors(id)
}

// RandomWalk returns num walks of at most length nodes from start. See walk.Walker.Walks.
func (g *Graph) RandomWalk(start uint64, length, num int) ([][]uint64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.walker.Walks(g.Graph, start, length, num)
}
