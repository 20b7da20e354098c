// Package builder provides internal helper functions
// used by Constructor implementations to build common topologies.
//
// Design principles:
//   - Single Responsibility: each helper does one well-defined job.
//   - Error Context: wrap errors with the method name for uniform reporting.
package builder

import (
	"fmt"

	"github.com/TheRadDani/graphlib/core"
)

// addSequentialNodes inserts nodes cfg.idFn(0..n-1) into g.
// It is idempotent: re-adding existing nodes is a no-op in core.Graph.
// Complexity: O(n).
func addSequentialNodes(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", method, id, err)
		}
	}

	return nil
}

// addIndexEdge connects the nodes at indices i and j.
func addIndexEdge(method string, g *core.Graph, cfg builderConfig, i, j int) error {
	u, v := cfg.idFn(i), cfg.idFn(j)
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d–%d): %w", method, u, v, err)
	}

	return nil
}

// wrapNeedRand reports a stochastic constructor invoked without an RNG.
func wrapNeedRand(method string) error {
	return fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
}
