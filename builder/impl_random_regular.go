// SPDX-License-Identifier: MIT
// Package: graphlib/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Strategy:
//   • Classic stub-matching: each node contributes d stubs; shuffle; pair (2k, 2k+1).
//   • A pairing is rejected if it yields a loop the graph forbids, or a
//     parallel edge when the graph is not a multigraph; retry with a reshuffle.
//
// Contract:
//   • n ≥ 1, 0 ≤ d < n, n·d even (else ErrTooFewVertices).
//   • cfg.rng required (else ErrNeedRandSource).
//   • Returns ErrConstructFailed after maxStubMatchingAttempts rejected pairings.
//
// Complexity:
//   • Per attempt O(n·d) time and space. Attempts are constant-bounded.
//
// Determinism:
//   • Fixed attempt limit and fixed trial order → identical outcomes for same seed.

package builder

import (
	"fmt"

	"github.com/TheRadDani/graphlib/core"
)

const maxStubMatchingAttempts = 1000

// RandomRegular returns a Constructor that builds a d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomRegular, "n", n, 1); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return wrapNeedRand(MethodRandomRegular)
		}
		if err := addSequentialNodes(MethodRandomRegular, g, cfg, n); err != nil {
			return err
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return nil
		}

		allowLoops, allowMulti := g.Looped(), g.Multigraph()
		rng := cfg.rng
		for attempt := 1; attempt <= maxStubMatchingAttempts; attempt++ {
			rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !validPairing(stubs, allowLoops, allowMulti) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := addIndexEdge(MethodRandomRegular, g, cfg, stubs[i], stubs[i+1]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			MethodRandomRegular, maxStubMatchingAttempts, ErrConstructFailed)
	}
}

// validPairing checks consecutive stub pairs against the loop and multi-edge policy.
func validPairing(stubs []int, allowLoops, allowMulti bool) bool {
	var seen map[[2]int]struct{}
	if !allowMulti {
		seen = make(map[[2]int]struct{}, len(stubs)/2)
	}
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v && !allowLoops {
			return false
		}
		if allowMulti {
			continue
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
