package graphlib_test

import (
	"errors"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheRadDani/graphlib"
	"github.com/TheRadDani/graphlib/core"
	"github.com/TheRadDani/graphlib/edgelist"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

// TestGraph_LoadNeighborsDelete runs the path scenario through the facade.
func TestGraph_LoadNeighborsDelete(t *testing.T) {
	g := graphlib.New()
	require.NoError(t, g.Load(writeFile(t, "path.txt", "1 2\n2 3\n")))

	nbrs, err := g.GetNeighbors(2)
	require.NoError(t, err)
	require.ElementsMatch(t, []uint64{1, 3}, nbrs)

	require.NoError(t, g.DeleteNode(2))
	nbrs, err = g.GetNeighbors(1)
	require.NoError(t, err)
	require.Empty(t, nbrs)

	_, err = g.GetNeighbors(2)
	require.ErrorIs(t, err, graphlib.ErrNodeNotFound)
}

// TestGraph_ErrorTaxonomy checks the three error kinds.
func TestGraph_ErrorTaxonomy(t *testing.T) {
	g := graphlib.New()

	err := g.Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorIs(t, err, graphlib.ErrIO)
	require.ErrorIs(t, err, fs.ErrNotExist)

	require.NoError(t, g.AddEdge(8, 9))
	err = g.Load(writeFile(t, "bad.txt", "1 2\n3 four\n"))
	require.ErrorIs(t, err, graphlib.ErrParse)
	var pe *edgelist.ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, 2, pe.Line)
	require.Equal(t, []core.Edge{{A: 8, B: 9}}, g.Edges(), "failed load changes nothing")

	require.NoError(t, g.Load(writeFile(t, "loops.txt", "8 8\n9 10\n")))
	require.Equal(t, []core.Edge{{A: 8, B: 9}, {A: 9, B: 10}}, g.Edges(), "loop line dropped")

	_, err = g.RandomWalk(404, 3, 1)
	require.ErrorIs(t, err, graphlib.ErrNodeNotFound)
}

// TestGraph_SaveLoadRoundTrip saves, reloads into a fresh graph and compares.
func TestGraph_SaveLoadRoundTrip(t *testing.T) {
	g := graphlib.New()
	for _, e := range [][2]uint64{{1, 2}, {1, 2}, {2, 3}, {3, 1}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}
	path := filepath.Join(t.TempDir(), "g.edges.gz")
	require.NoError(t, g.Save(path))

	back := graphlib.New()
	require.NoError(t, back.Load(path))
	require.Equal(t, g.Edges(), back.Edges())
}

// TestGraph_RandomWalk checks shape and seeded reproducibility.
func TestGraph_RandomWalk(t *testing.T) {
	build := func(opts ...graphlib.Option) *graphlib.Graph {
		g := graphlib.New(opts...)
		require.NoError(t, g.AddEdge(1, 2))
		require.NoError(t, g.AddEdge(2, 3))
		require.NoError(t, g.AddNode(4))
		return g
	}

	g := build(graphlib.WithSeed(5))
	walks, err := g.RandomWalk(1, 3, 10)
	require.NoError(t, err)
	require.Len(t, walks, 10)
	for _, w := range walks {
		require.Len(t, w, 3)
		require.Equal(t, uint64(1), w[0])
		require.Equal(t, uint64(2), w[1], "node 1 has a single neighbor")
	}

	again, err := build(graphlib.WithSeed(5)).RandomWalk(1, 3, 10)
	require.NoError(t, err)
	require.Equal(t, walks, again)

	walks, err = build(graphlib.WithRand(rand.New(rand.NewSource(1)))).RandomWalk(4, 5, 2)
	require.NoError(t, err)
	require.Equal(t, [][]uint64{{4}, {4}}, walks, "isolated start stops at once")
}

// TestGraph_Options forwards graph policy.
func TestGraph_Options(t *testing.T) {
	g := graphlib.New(graphlib.WithGraphOptions(core.WithLoops(), core.WithoutMultiEdges()))
	require.True(t, g.Looped())
	require.False(t, g.Multigraph())
	require.Panics(t, func() { graphlib.WithRand(nil) })
}
