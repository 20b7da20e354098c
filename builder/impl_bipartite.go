// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1, n2 ≥ 1 (else ErrTooFewVertices).
//   - Left side uses indices 0..n1-1, right side n1..n1+n2-1, both via cfg.idFn.
//   - Emits every left–right pair, left-major.
//
// Complexity: O(n1·n2) time, O(1) extra space.

package builder

import "github.com/TheRadDani/graphlib/core"

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCompleteBipartite, "n1", n1, MinPartition); err != nil {
			return err
		}
		if err := validateMin(MethodCompleteBipartite, "n2", n2, MinPartition); err != nil {
			return err
		}
		if err := addSequentialNodes(MethodCompleteBipartite, g, cfg, n1+n2); err != nil {
			return err
		}
		for i := 0; i < n1; i++ {
			for j := n1; j < n1+n2; j++ {
				if err := addIndexEdge(MethodCompleteBipartite, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
