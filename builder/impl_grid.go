// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Cell (r,c) has index r·cols+c (row-major) mapped through cfg.idFn.
//   - 4-neighborhood: for each cell in row-major order emit the right edge,
//     then the down edge.
//
// Complexity: O(rows·cols) time, O(1) extra space.

package builder

import "github.com/TheRadDani/graphlib/core"

// Grid returns a Constructor that builds a rows×cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		if err := addSequentialNodes(MethodGrid, g, cfg, rows*cols); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := addIndexEdge(MethodGrid, g, cfg, i, i+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addIndexEdge(MethodGrid, g, cfg, i, i+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
