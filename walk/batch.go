package walk

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/TheRadDani/graphlib/core"
)

// Batch samples num walks of at most length nodes from every node in starts,
// in parallel, and returns them keyed by start node.
//
// Behavior highlights:
//   - Duplicate entries in starts are sampled once.
//   - Each start gets its own Xoshiro256** stream derived from the base seed
//     and the start's position among the distinct starts, so under WithSeed the
//     result does not depend on worker count or scheduling.
//   - Without WithSeed the base seed comes from WithRand (one draw) or OS entropy.
//   - The graph is only read; a concurrent writer blocks until in-flight walks end.
//
// Errors:
//   - Same argument errors as Walker.Walks; the first missing start aborts the batch.
//   - ctx.Err() if ctx is cancelled before all starts are sampled.
func Batch(ctx context.Context, g *core.Graph, starts []uint64, length, num int, opts ...Option) (map[uint64][][]uint64, error) {
	if err := validate(g, length, num); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	base := cfg.seed
	switch {
	case cfg.seeded:
	case cfg.rng != nil:
		base = cfg.rng.Uint64()
	default:
		base = entropySeed()
	}

	distinct := make([]uint64, 0, len(starts))
	seen := make(map[uint64]struct{}, len(starts))
	for _, s := range starts {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		distinct = append(distinct, s)
	}

	results := make([][][]uint64, len(distinct))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(cfg.workers)
	for i, start := range distinct {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w := &Walker{cfg: cfg, rng: rand.New(NewXoshiro(deriveSeed(base, i)))}
			walks, err := w.Walks(g, start, length, num)
			if err != nil {
				return fmt.Errorf("walk: batch start %d: %w", start, err)
			}
			results[i] = walks

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make(map[uint64][][]uint64, len(distinct))
	for i, start := range distinct {
		out[start] = results[i]
	}

	return out, nil
}
