package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/TheRadDani/graphlib/core"
)

type AdjacencySuite struct {
	suite.Suite
	g *core.Graph
}

func (s *AdjacencySuite) SetupTest() {
	s.g = core.NewGraph(core.WithLoops(), core.WithCapacity(8))
	for _, e := range [][2]uint64{{Node1, Node2}, {Node2, Node3}, {Node3, Node3}} {
		s.Require().NoError(s.g.AddEdge(e[0], e[1]))
	}
}

func (s *AdjacencySuite) TestCloneIsDeep() {
	require := require.New(s.T())
	clone := s.g.Clone()
	require.Equal(s.g.Edges(), clone.Edges())
	require.True(clone.Looped())

	require.NoError(clone.DeleteNode(Node2))
	require.NoError(clone.AddEdge(Node4, Node5))

	require.True(s.g.HasEdge(Node1, Node2), "source unaffected by clone mutation")
	require.False(s.g.HasNode(Node4))
	requireReciprocal(s.T(), s.g)
	requireReciprocal(s.T(), clone)
}

func (s *AdjacencySuite) TestClearKeepsPolicy() {
	require := require.New(s.T())
	s.g.Clear()
	require.Equal(0, s.g.NodeCount())
	require.Equal(0, s.g.EdgeCount())
	require.True(s.g.Looped(), "flags survive Clear")
	require.NoError(s.g.AddEdge(Node1, Node1))
}

func (s *AdjacencySuite) TestReplaceMovesContents() {
	require := require.New(s.T())
	src := core.NewGraph(core.WithoutMultiEdges())
	require.NoError(src.AddEdge(Node4, Node5))

	s.g.Replace(src)
	require.Equal([]uint64{Node4, Node5}, s.g.Nodes())
	require.False(s.g.Multigraph(), "configuration travels with the contents")
	require.False(s.g.Looped())
	require.Equal(0, src.NodeCount(), "source is left empty")

	s.g.Replace(s.g)
	require.Equal(1, s.g.EdgeCount(), "self-replace is a no-op")
}

func (s *AdjacencySuite) TestStats() {
	require := require.New(s.T())
	require.NoError(s.g.AddNode(Node5))
	require.NoError(s.g.DeleteNode(Node1))

	st := s.g.Stats()
	require.True(st.AllowsLoops)
	require.True(st.AllowsMulti)
	require.Equal(3, st.NodeCount)
	require.Equal(2, st.EdgeCount)
	require.Equal(1, st.LoopCount)
	require.Equal(1, st.IsolatedCount)
	require.Equal(2, st.MaxDegree, "node 3: neighbor 2 plus its loop")
	require.Equal(4, st.SlotCount)
	require.Equal(1, st.FreeSlots)

	require.NoError(s.g.AddEdge(Node5, NodeHuge))
	require.Equal(1, st.IsolatedCount, "a returned snapshot does not track later mutations")
	require.Equal(3, s.g.Stats().EdgeCount)
}

func (s *AdjacencySuite) TestOptionsRoundTrip() {
	fresh := core.NewGraph(s.g.Options()...)
	s.Require().True(fresh.Looped())
	s.Require().True(fresh.Multigraph())
}

func TestAdjacencySuite(t *testing.T) {
	suite.Run(t, new(AdjacencySuite))
}
