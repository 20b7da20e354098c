package idspace_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/TheRadDani/graphlib/idspace"
)

type SpaceSuite struct {
	suite.Suite
	s *idspace.Space
}

func (s *SpaceSuite) SetupTest() {
	s.s = idspace.New(4)
}

func (s *SpaceSuite) TestResolveOrCreateIsIdempotent() {
	require := require.New(s.T())

	a, created, err := s.s.ResolveOrCreate(10)
	require.NoError(err)
	require.True(created)
	require.Equal(idspace.Index(0), a)

	again, created, err := s.s.ResolveOrCreate(10)
	require.NoError(err)
	require.False(created, "second resolve must reuse the binding")
	require.Equal(a, again)
	require.Equal(1, s.s.Len())
}

func (s *SpaceSuite) TestSparseIDsStayDense() {
	require := require.New(s.T())
	ids := []uint64{0, math.MaxUint64, 1 << 40, 7}
	for i, ext := range ids {
		idx, _, err := s.s.ResolveOrCreate(ext)
		require.NoError(err)
		require.Equal(idspace.Index(i), idx, "slot for %d", ext)
	}
	require.Equal(len(ids), s.s.Cap())

	for i, ext := range ids {
		got, ok := s.s.External(idspace.Index(i))
		require.True(ok)
		require.Equal(ext, got)
	}
}

func (s *SpaceSuite) TestLookupMissing() {
	_, ok := s.s.Lookup(99)
	s.Require().False(ok)
}

func (s *SpaceSuite) TestReleaseUnbindsAndRecyclesLowestSlot() {
	require := require.New(s.T())
	for _, ext := range []uint64{100, 200, 300} {
		_, _, err := s.s.ResolveOrCreate(ext)
		require.NoError(err)
	}

	require.NoError(s.s.Release(2))
	require.NoError(s.s.Release(0))
	require.Equal(2, s.s.Free())
	require.Equal(1, s.s.Len())

	_, ok := s.s.Lookup(100)
	require.False(ok, "released external ID must not resolve")
	_, ok = s.s.External(0)
	require.False(ok, "free slot has no external ID")

	idx, created, err := s.s.ResolveOrCreate(400)
	require.NoError(err)
	require.True(created)
	require.Equal(idspace.Index(0), idx, "lowest free slot is reused first")

	idx, _, err = s.s.ResolveOrCreate(500)
	require.NoError(err)
	require.Equal(idspace.Index(2), idx)
	require.Equal(0, s.s.Free())
	require.Equal(3, s.s.Cap(), "no growth while free slots remain")
}

func (s *SpaceSuite) TestReleaseNotLive() {
	require := require.New(s.T())
	require.ErrorIs(s.s.Release(0), idspace.ErrSlotNotLive)

	_, _, err := s.s.ResolveOrCreate(1)
	require.NoError(err)
	require.NoError(s.s.Release(0))
	require.ErrorIs(s.s.Release(0), idspace.ErrSlotNotLive, "double release")
}

func (s *SpaceSuite) TestCloneIsIndependent() {
	require := require.New(s.T())
	_, _, _ = s.s.ResolveOrCreate(1)
	_, _, _ = s.s.ResolveOrCreate(2)

	c := s.s.Clone()
	require.NoError(c.Release(0))
	_, _, _ = c.ResolveOrCreate(3)

	_, ok := s.s.Lookup(1)
	require.True(ok, "source keeps its binding")
	_, ok = s.s.Lookup(3)
	require.False(ok, "clone allocation does not leak back")
	require.Equal(0, s.s.Free())
}

func (s *SpaceSuite) TestReset() {
	_, _, _ = s.s.ResolveOrCreate(5)
	_ = s.s.Release(0)
	s.s.Reset()
	s.Require().Equal(0, s.s.Len())
	s.Require().Equal(0, s.s.Cap())
	s.Require().Equal(0, s.s.Free())
}

func TestSpaceSuite(t *testing.T) {
	suite.Run(t, new(SpaceSuite))
}
