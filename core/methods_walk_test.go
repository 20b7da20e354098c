package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheRadDani/graphlib/core"
)

// TestWalk_Shape checks that every step follows a real edge.
func TestWalk_Shape(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]uint64{{1, 2}, {2, 3}, {3, 4}, {4, 1}, {1, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 20; i++ {
		w, err := g.Walk(Node1, 10, rng)
		require.NoError(t, err)
		require.Len(t, w, 10, "a cycle has no dead ends")
		require.Equal(t, Node1, w[0])
		for j := 1; j < len(w); j++ {
			require.True(t, g.HasEdge(w[j-1], w[j]), "step %d: %d-%d", j, w[j-1], w[j])
		}
	}
}

// TestWalk_DeadEnd checks early termination.
func TestWalk_DeadEnd(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(Node1))
	rng := rand.New(rand.NewSource(1))

	w, err := g.Walk(Node1, 5, rng)
	require.NoError(t, err)
	require.Equal(t, []uint64{Node1}, w)

	w, err = g.Walk(Node1, 0, rng)
	require.NoError(t, err)
	require.Empty(t, w)

	_, err = g.Walk(NodeMissing, 5, rng)
	require.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = g.Walk(Node1, 5, nil)
	require.Error(t, err)
}

// TestWalk_MultiEdgeBias checks that parallel copies weigh the draw.
func TestWalk_MultiEdgeBias(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 9; i++ {
		require.NoError(t, g.AddEdge(Node1, Node2))
	}
	require.NoError(t, g.AddEdge(Node1, Node3))
	rng := rand.New(rand.NewSource(3))

	hits := map[uint64]int{}
	const n = 5000
	for i := 0; i < n; i++ {
		w, err := g.Walk(Node1, 2, rng)
		require.NoError(t, err)
		hits[w[1]]++
	}
	require.InDelta(t, 0.9, float64(hits[Node2])/n, 0.03)
}
