package walk

import (
	"fmt"
	"math/rand"

	"github.com/TheRadDani/graphlib/core"
)

// Walker owns a random source and produces walks from it.
// A Walker is not safe for concurrent use; use Batch for parallel sampling.
type Walker struct {
	cfg config
	rng *rand.Rand
}

// New returns a Walker configured by opts. Without WithRand or WithSeed the
// Walker seeds a Xoshiro256** source from OS entropy.
func New(opts ...Option) *Walker {
	cfg := newConfig(opts...)
	rng := cfg.rng
	if rng == nil {
		seed := cfg.seed
		if !cfg.seeded {
			seed = entropySeed()
		}
		rng = rand.New(NewXoshiro(seed))
	}

	return &Walker{cfg: cfg, rng: rng}
}

// Walks returns num independent walks of at most length nodes from start.
//
// Returns:
//   - [][]uint64: exactly num walks (a non-nil empty slice for num == 0),
//     each beginning with start; consecutive IDs are adjacent in g.
//
// Errors:
//   - ErrGraphNil, ErrInvalidLength (length < 1), ErrInvalidCount (num < 0).
//   - core.ErrNodeNotFound (wrapped) if start does not exist.
//
// Complexity: O(num * length).
func (w *Walker) Walks(g *core.Graph, start uint64, length, num int) ([][]uint64, error) {
	if err := validate(g, length, num); err != nil {
		return nil, err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("walk: start %d: %w", start, core.ErrNodeNotFound)
	}

	walks := make([][]uint64, 0, num)
	for i := 0; i < num; i++ {
		seq, err := g.Walk(start, length, w.rng)
		if err != nil {
			// Only reachable if start was deleted concurrently.
			return nil, fmt.Errorf("walk: walk %d from %d: %w", i, start, err)
		}
		walks = append(walks, seq)
	}

	return walks, nil
}

// RandomWalk is a convenience wrapper: New(opts...).Walks(g, start, length, num).
func RandomWalk(g *core.Graph, start uint64, length, num int, opts ...Option) ([][]uint64, error) {
	return New(opts...).Walks(g, start, length, num)
}

// Truncated reports whether seq stopped before length because its last node
// is a dead end. A short walk that does not end at a dead end (for example,
// one the graph was mutated under) reports false.
func Truncated(g *core.Graph, seq []uint64, length int) bool {
	if len(seq) == 0 || len(seq) >= length {
		return false
	}
	n, err := g.NeighborCount(seq[len(seq)-1])

	return err == nil && n == 0
}

// VisitCounts tallies how often each node occurs across walks.
func VisitCounts(walks [][]uint64) map[uint64]int {
	counts := make(map[uint64]int)
	for _, seq := range walks {
		for _, id := range seq {
			counts[id]++
		}
	}

	return counts
}

// validate checks the arguments shared by Walks and Batch.
func validate(g *core.Graph, length, num int) error {
	switch {
	case g == nil:
		return ErrGraphNil
	case length < 1:
		return fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	case num < 0:
		return fmt.Errorf("%w: got %d", ErrInvalidCount, num)
	}

	return nil
}
