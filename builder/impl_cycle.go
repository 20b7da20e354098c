// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits edges i–(i+1) for i=0..n-2, then the closing edge (n-1)–0.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/TheRadDani/graphlib/core"

// Cycle returns a Constructor that builds a ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		if err := addSequentialNodes(MethodCycle, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addIndexEdge(MethodCycle, g, cfg, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
