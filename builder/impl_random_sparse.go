// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each unordered pair {i,j}, i<j, independently with prob p.
//   - Self-loops {i,i} are trialled too iff g.Looped().
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j ≥ i with loops, else j > i).
//   - p ∈ {0,1} consumes no randomness.

package builder

import "github.com/TheRadDani/graphlib/core"

// RandomSparse returns a Constructor that samples G(n,p) over n nodes.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, 1); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		stochastic := p > MinProbability && p < MaxProbability
		if stochastic && cfg.rng == nil {
			return wrapNeedRand(MethodRandomSparse)
		}
		if err := addSequentialNodes(MethodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		first := 1
		if g.Looped() {
			first = 0
		}
		for i := 0; i < n; i++ {
			for j := i + first; j < n; j++ {
				keep := p == MaxProbability
				if stochastic {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addIndexEdge(MethodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
