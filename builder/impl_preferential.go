// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_preferential.go - implementation of PreferentialAttachment(n, m) constructor.
//
// Canonical model (Barabási–Albert):
//   - Seed with the complete graph K_{m+1} over indices 0..m.
//   - Each later node i = m+1..n-1 links to m distinct earlier nodes, each
//     chosen with probability proportional to its current degree.
//
// Contract:
//   - m ≥ 1 and n > m (else ErrTooFewVertices).
//   - cfg.rng required (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(m²) seed + O(n·m) expected draws.
//   - Space: O(n·m) endpoint pool.
//
// Determinism:
//   - Targets are linked in the order they are drawn; fixed seed ⇒ fixed graph.

package builder

import "github.com/TheRadDani/graphlib/core"

// PreferentialAttachment returns a Constructor that grows a scale-free graph,
// the heavy-tailed degree shape random-walk embeddings are usually run on.
func PreferentialAttachment(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPreferentialAttachment, "m", m, 1); err != nil {
			return err
		}
		if err := validateMin(MethodPreferentialAttachment, "n", n, m+1); err != nil {
			return err
		}
		if cfg.rng == nil {
			return wrapNeedRand(MethodPreferentialAttachment)
		}
		if err := addSequentialNodes(MethodPreferentialAttachment, g, cfg, n); err != nil {
			return err
		}

		// pool holds one entry per edge endpoint, so a uniform draw is degree-weighted.
		pool := make([]int, 0, 2*(m*(m+1)/2+(n-m-1)*m))
		for i := 0; i <= m; i++ {
			for j := i + 1; j <= m; j++ {
				if err := addIndexEdge(MethodPreferentialAttachment, g, cfg, i, j); err != nil {
					return err
				}
				pool = append(pool, i, j)
			}
		}

		targets := make([]int, 0, m)
		chosen := make(map[int]struct{}, m)
		for i := m + 1; i < n; i++ {
			targets = targets[:0]
			clear(chosen)
			for len(targets) < m {
				t := pool[cfg.rng.Intn(len(pool))]
				if _, dup := chosen[t]; dup {
					continue
				}
				chosen[t] = struct{}{}
				targets = append(targets, t)
			}
			for _, t := range targets {
				if err := addIndexEdge(MethodPreferentialAttachment, g, cfg, i, t); err != nil {
					return err
				}
				pool = append(pool, i, t)
			}
		}

		return nil
	}
}
