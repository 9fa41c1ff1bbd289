// SPDX-License-Identifier: MIT
// Package disjointset_test verifies the Forest contracts.

package disjointset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/spanforest/disjointset"
)

type ForestSuite struct {
	suite.Suite
	f *disjointset.Forest[string]
}

func (s *ForestSuite) SetupTest() {
	s.f = disjointset.New[string]()
}

func (s *ForestSuite) makeSets(items ...string) {
	for _, it := range items {
		s.Require().NoError(s.f.MakeSet(it))
	}
}

func (s *ForestSuite) find(e string) string {
	rep, ok, err := s.f.FindSet(e)
	s.Require().NoError(err)
	s.Require().True(ok, "element %q must be present", e)
	return rep
}

func (s *ForestSuite) TestMakeSetIsOwnRepresentative() {
	s.makeSets("a", "b")

	s.Equal("a", s.find("a"))
	s.Equal("b", s.find("b"))
	s.Equal(2, s.f.Len())
	s.Equal(2, s.f.SetCount())
	s.Equal(0, s.f.Rank("a"))
}

func (s *ForestSuite) TestMakeSetDuplicateRejected() {
	s.makeSets("a")
	err := s.f.MakeSet("a")
	s.ErrorIs(err, disjointset.ErrAlreadyPresent)
	s.Equal(1, s.f.Len())
}

func (s *ForestSuite) TestFindSetUnknownIsNotFound() {
	rep, ok, err := s.f.FindSet("ghost")
	s.NoError(err)
	s.False(ok)
	s.Empty(rep)
	s.Zero(s.f.Len(), "FindSet must not insert")
}

func (s *ForestSuite) TestUnionTieBreakPromotesSecondRoot() {
	s.makeSets("a", "b")

	s.Require().NoError(s.f.Union("a", "b"))
	s.Equal("b", s.find("a"))
	s.Equal("b", s.find("b"))
	s.Equal(1, s.f.Rank("b"))
	s.Equal(1, s.f.SetCount())
}

func (s *ForestSuite) TestUnionHigherRankWins() {
	s.makeSets("a", "b", "c")
	s.Require().NoError(s.f.Union("a", "b")) // root b, rank 1

	// c has rank 0, so b stays root whichever side it is on.
	s.Require().NoError(s.f.Union("b", "c"))
	s.Equal("b", s.find("c"))
	s.Equal(1, s.f.Rank("b"))
}

func (s *ForestSuite) TestUnionSameSetIsNoop() {
	s.makeSets("a", "b")
	s.Require().NoError(s.f.Union("a", "b"))
	s.Require().NoError(s.f.Union("b", "a"))
	s.Require().NoError(s.f.Union("a", "a"))

	s.Equal(1, s.f.SetCount())
	s.Equal(1, s.f.Rank("b"))
}

func (s *ForestSuite) TestUnionUnknownRejected() {
	s.makeSets("a")
	s.ErrorIs(s.f.Union("a", "ghost"), disjointset.ErrNotPresent)
	s.ErrorIs(s.f.Union("ghost", "a"), disjointset.ErrNotPresent)
	s.Equal(1, s.f.Len())
}

func (s *ForestSuite) TestFindSetCompressesPath() {
	// Build a chain of height 2: {a,b} rooted at b, {c,d} rooted at d,
	// then merge under d.
	s.makeSets("a", "b", "c", "d")
	s.Require().NoError(s.f.Union("a", "b"))
	s.Require().NoError(s.f.Union("c", "d"))
	s.Require().NoError(s.f.Union("b", "d"))
	s.Require().Equal(2, s.f.Height("a"))

	s.Equal("d", s.find("a"))
	s.Equal(1, s.f.Height("a"))
	s.Equal(2, s.f.Rank("d"))
}

func (s *ForestSuite) TestFindSetIdempotent() {
	s.makeSets("a", "b", "c")
	s.Require().NoError(s.f.Union("a", "b"))
	s.Require().NoError(s.f.Union("c", "a"))

	first := s.find("c")
	s.Equal(first, s.find("c"))
	s.Equal(first, s.find("a"))
}

func (s *ForestSuite) TestPartitionQueries() {
	s.makeSets("a", "b", "c", "d", "e")
	s.Require().NoError(s.f.Union("a", "c"))
	s.Require().NoError(s.f.Union("d", "e"))

	s.Equal([]string{"b", "c", "e"}, s.f.Representatives())
	s.Equal([][]string{{"a", "c"}, {"b"}, {"d", "e"}}, s.f.Sets())

	members, err := s.f.ElementsOf("e")
	s.Require().NoError(err)
	s.Equal([]string{"d", "e"}, members)

	_, err = s.f.ElementsOf("ghost")
	s.ErrorIs(err, disjointset.ErrNotPresent)
}

func (s *ForestSuite) TestClear() {
	s.makeSets("a", "b")
	s.f.Clear()

	s.Zero(s.f.Len())
	s.Zero(s.f.SetCount())
	ok, err := s.f.Contains("a")
	s.NoError(err)
	s.False(ok)
	s.NoError(s.f.MakeSet("a"), "cleared elements may be inserted again")
}

func TestForestSuite(t *testing.T) {
	suite.Run(t, new(ForestSuite))
}

func TestNilElementsRejected(t *testing.T) {
	f := disjointset.New[*int]()
	v := 1

	require.ErrorIs(t, f.MakeSet(nil), disjointset.ErrNilInput)
	require.NoError(t, f.MakeSet(&v))

	_, _, err := f.FindSet(nil)
	assert.ErrorIs(t, err, disjointset.ErrNilInput)
	assert.ErrorIs(t, f.Union(&v, nil), disjointset.ErrNilInput)
	_, err = f.Contains(nil)
	assert.ErrorIs(t, err, disjointset.ErrNilInput)
	_, err = f.ElementsOf(nil)
	assert.ErrorIs(t, err, disjointset.ErrNilInput)
	assert.Equal(t, 1, f.Len())
}

// TestUnionMembershipCommutes checks that union order changes the
// representative at most, never the partition.
func TestUnionMembershipCommutes(t *testing.T) {
	cases := []struct {
		name  string
		pairs [][2]int
	}{
		{"chain", [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{"star", [][2]int{{0, 1}, {0, 2}, {0, 3}}},
		{"pairs", [][2]int{{0, 1}, {2, 3}, {1, 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fwd, rev := disjointset.New[int](), disjointset.New[int]()
			for i := 0; i < 5; i++ {
				require.NoError(t, fwd.MakeSet(i))
				require.NoError(t, rev.MakeSet(i))
			}
			for _, p := range tc.pairs {
				require.NoError(t, fwd.Union(p[0], p[1]))
				require.NoError(t, rev.Union(p[1], p[0]))
			}
			assert.Equal(t, fwd.Sets(), rev.Sets())
			assert.Equal(t, 2, fwd.SetCount())
		})
	}
}
