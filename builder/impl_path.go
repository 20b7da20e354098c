// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Emits edges (i-1)–i for i=1..n-1 in stable increasing order.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges.
//   - Space: O(1) extra.

package builder

import "github.com/TheRadDani/graphlib/core"

// Path returns a Constructor that builds a path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		if err := addSequentialNodes(MethodPath, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addIndexEdge(MethodPath, g, cfg, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}
