// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The center is cfg.idFn(0); leaves are cfg.idFn(1..n-1).
//   - Emits spokes center–leaf in ascending leaf order, so the center's
//     neighbor list is idFn(1), idFn(2), ….
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/TheRadDani/graphlib/core"

// Star returns a Constructor that builds a star K_{1,n-1}.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		if err := addSequentialNodes(MethodStar, g, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addIndexEdge(MethodStar, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
