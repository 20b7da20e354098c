// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Hub is cfg.idFn(0); rim is the cycle over cfg.idFn(1..n-1).
//   - Emits rim edges first (ascending), then spokes hub–rim (ascending).
//
// Complexity: O(n) time, O(1) extra space.

package builder

import "github.com/TheRadDani/graphlib/core"

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}
		if err := addSequentialNodes(MethodWheel, g, cfg, n); err != nil {
			return err
		}
		rim := n - 1
		for i := 0; i < rim; i++ {
			if err := addIndexEdge(MethodWheel, g, cfg, 1+i, 1+(i+1)%rim); err != nil {
				return err
			}
		}
		for i := 1; i < n; i++ {
			if err := addIndexEdge(MethodWheel, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
