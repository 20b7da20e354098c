// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); K_1 is a single isolated node.
//   - Emits i–j for i<j in lexicographic order. No loops.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import "github.com/TheRadDani/graphlib/core"

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, 1); err != nil {
			return err
		}
		if err := addSequentialNodes(MethodComplete, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addIndexEdge(MethodComplete, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
