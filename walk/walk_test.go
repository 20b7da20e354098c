package walk_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheRadDani/graphlib/core"
	"github.com/TheRadDani/graphlib/walk"
)

// newLollipop builds a triangle 1–2–3 with a tail 3–4–5; 6 is isolated.
func newLollipop(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][2]uint64{{1, 2}, {2, 3}, {3, 1}, {3, 4}, {4, 5}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	require.NoError(t, g.AddNode(6))

	return g
}

// TestRandomWalk_Errors verifies that invalid inputs are rejected.
func TestRandomWalk_Errors(t *testing.T) {
	g := newLollipop(t)

	_, err := walk.RandomWalk(nil, 1, 3, 1)
	require.ErrorIs(t, err, walk.ErrGraphNil)

	_, err = walk.RandomWalk(g, 1, 0, 1)
	require.ErrorIs(t, err, walk.ErrInvalidLength)

	_, err = walk.RandomWalk(g, 1, 3, -1)
	require.ErrorIs(t, err, walk.ErrInvalidCount)

	_, err = walk.RandomWalk(g, 99, 3, 1)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = walk.RandomWalk(g, 99, 3, 0)
	require.ErrorIs(t, err, core.ErrNodeNotFound, "missing start fails even for zero walks")
}

// TestRandomWalk_Shape checks count, start, length bound and edge validity.
func TestRandomWalk_Shape(t *testing.T) {
	g := newLollipop(t)
	const length, num = 12, 40

	walks, err := walk.RandomWalk(g, 1, length, num, walk.WithSeed(11))
	require.NoError(t, err)
	require.Len(t, walks, num)
	for _, seq := range walks {
		require.NotEmpty(t, seq)
		require.LessOrEqual(t, len(seq), length)
		require.Equal(t, uint64(1), seq[0])
		for j := 1; j < len(seq); j++ {
			require.True(t, g.HasEdge(seq[j-1], seq[j]))
		}
		require.Len(t, seq, length, "no dead ends reachable from 1")
		require.False(t, walk.Truncated(g, seq, length))
	}
}

// TestRandomWalk_DeadEnd checks the early-termination policy.
func TestRandomWalk_DeadEnd(t *testing.T) {
	g := newLollipop(t)

	walks, err := walk.RandomWalk(g, 6, 5, 3, walk.WithSeed(1))
	require.NoError(t, err)
	require.Equal(t, [][]uint64{{6}, {6}, {6}}, walks)
	for _, seq := range walks {
		require.True(t, walk.Truncated(g, seq, 5))
	}

	// Undirected edges are reciprocal, so a walk can only stall where it
	// started; every walk from a connected node runs to full length.
	walks, err = walk.RandomWalk(g, 5, 6, 10, walk.WithSeed(2))
	require.NoError(t, err)
	for _, seq := range walks {
		require.Len(t, seq, 6)
	}
}

// TestRandomWalk_ZeroWalks returns an empty, non-nil result.
func TestRandomWalk_ZeroWalks(t *testing.T) {
	walks, err := walk.RandomWalk(newLollipop(t), 1, 4, 0)
	require.NoError(t, err)
	require.NotNil(t, walks)
	require.Empty(t, walks)
}

// TestRandomWalk_LengthOne returns just the start node.
func TestRandomWalk_LengthOne(t *testing.T) {
	walks, err := walk.RandomWalk(newLollipop(t), 3, 1, 2)
	require.NoError(t, err)
	require.Equal(t, [][]uint64{{3}, {3}}, walks)
}

// TestRandomWalk_Reproducible checks seeded and injected sources.
func TestRandomWalk_Reproducible(t *testing.T) {
	g := newLollipop(t)

	a, err := walk.RandomWalk(g, 1, 20, 5, walk.WithSeed(99))
	require.NoError(t, err)
	b, err := walk.RandomWalk(g, 1, 20, 5, walk.WithSeed(99))
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := walk.RandomWalk(g, 1, 20, 5, walk.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)
	d, err := walk.RandomWalk(g, 1, 20, 5, walk.WithRand(rand.New(rand.NewSource(5))))
	require.NoError(t, err)
	require.Equal(t, c, d)
}

// TestWalker_IndependentWalks checks that walks from one Walker differ.
func TestWalker_IndependentWalks(t *testing.T) {
	g := newLollipop(t)
	w := walk.New(walk.WithSeed(3))

	walks, err := w.Walks(g, 1, 30, 8)
	require.NoError(t, err)
	distinct := map[string]struct{}{}
	for _, seq := range walks {
		distinct[fmt.Sprint(seq)] = struct{}{}
	}
	require.Greater(t, len(distinct), 1, "walks must not replay one cursor")
}

// TestVisitCounts tallies occurrences across walks.
func TestVisitCounts(t *testing.T) {
	counts := walk.VisitCounts([][]uint64{{1, 2, 1}, {1, 3}})
	require.Equal(t, map[uint64]int{1: 3, 2: 1, 3: 1}, counts)
}

// TestOptionPanics checks that meaningless options fail fast.
func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { walk.WithRand(nil) })
	require.Panics(t, func() { walk.WithWorkers(0) })
}

// TestBatch checks reproducibility across worker counts and error handling.
func TestBatch(t *testing.T) {
	g := newLollipop(t)
	ctx := context.Background()
	starts := []uint64{1, 2, 3, 4, 5, 6, 1}

	one, err := walk.Batch(ctx, g, starts, 10, 4, walk.WithSeed(8), walk.WithWorkers(1))
	require.NoError(t, err)
	many, err := walk.Batch(ctx, g, starts, 10, 4, walk.WithSeed(8), walk.WithWorkers(6))
	require.NoError(t, err)
	require.Equal(t, one, many)
	require.Len(t, one, 6, "duplicate starts sampled once")
	for start, walks := range one {
		require.Len(t, walks, 4)
		for _, seq := range walks {
			require.Equal(t, start, seq[0])
		}
	}

	_, err = walk.Batch(ctx, g, []uint64{1, 42}, 10, 4)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = walk.Batch(cancelled, g, starts, 10, 4)
	require.ErrorIs(t, err, context.Canceled)
}
