// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/spanforest/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph[string]
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph[string]()
}

func (s *GraphSuite) TestAddNodeAssignsInsertionIndex() {
	require := require.New(s.T())

	for i, l := range []string{LabelA, LabelB, LabelC} {
		added, err := s.g.AddLabel(l)
		require.NoError(err)
		require.True(added)

		idx, err := s.g.IndexOf(n(l))
		require.NoError(err)
		require.Equal(i, idx)
	}
	require.Equal(3, s.g.NodeCount())
	require.Equal([]string{LabelA, LabelB, LabelC}, labels(s.g.Nodes()))
}

func (s *GraphSuite) TestAddNodeDuplicateIsSignalled() {
	require := require.New(s.T())

	added, err := s.g.AddNode(n(LabelA))
	require.NoError(err)
	require.True(added)

	added, err = s.g.AddNode(n(LabelA))
	require.NoError(err)
	require.False(added, "duplicate label must be reported")
	require.Equal(1, s.g.NodeCount())
}

func (s *GraphSuite) TestNilLabelsRejected() {
	require := require.New(s.T())

	gp := core.NewGraph[*int]()
	_, err := gp.AddLabel(nil)
	require.ErrorIs(err, core.ErrNilInput)
	require.Zero(gp.NodeCount())

	ga := core.NewGraph[any]()
	_, err = ga.AddLabel(nil)
	require.ErrorIs(err, core.ErrNilInput)

	_, err = ga.IndexOf(core.NewNode[any](nil))
	require.ErrorIs(err, core.ErrNilInput)
	require.ErrorIs(ga.RemoveNode(core.NewNode[any](nil)), core.ErrNilInput)
}

func (s *GraphSuite) TestLookups() {
	require := require.New(s.T())
	s.g = newGraph(LabelA, LabelB)

	got, ok := s.g.Node(LabelB)
	require.True(ok)
	require.Equal(n(LabelB), got)

	_, ok = s.g.Node(LabelX)
	require.False(ok)

	at, err := s.g.NodeAt(1)
	require.NoError(err)
	require.Equal(n(LabelB), at)

	_, err = s.g.NodeAt(2)
	require.ErrorIs(err, core.ErrIndexOutOfRange)
	require.ErrorIs(err, core.ErrInvalidArgument)

	_, err = s.g.NodeAt(-1)
	require.ErrorIs(err, core.ErrIndexOutOfRange)

	_, err = s.g.IndexOf(n(LabelX))
	require.ErrorIs(err, core.ErrNodeNotFound)

	require.True(s.g.HasNode(n(LabelA)))
	require.False(s.g.HasNode(n(LabelX)))
}

func (s *GraphSuite) TestAddEdgeStoresSymmetrically() {
	require := require.New(s.T())
	s.g = newGraph(LabelA, LabelB)

	added, err := s.g.AddWeightedEdge(LabelA, LabelB, Weight3)
	require.NoError(err)
	require.True(added)

	ab, ok, err := s.g.Edge(n(LabelA), n(LabelB))
	require.NoError(err)
	require.True(ok)
	ba, ok, err := s.g.Edge(n(LabelB), n(LabelA))
	require.NoError(err)
	require.True(ok)
	require.Equal(ab, ba, "(i,j) and (j,i) must observe the same edge")
	require.Equal(Weight3, ab.Weight())

	e01, ok, err := s.g.EdgeAt(0, 1)
	require.NoError(err)
	require.True(ok)
	e10, ok, err := s.g.EdgeAt(1, 0)
	require.NoError(err)
	require.True(ok)
	require.Equal(e01, e10)
}

func (s *GraphSuite) TestAddEdgeDuplicateIsNoOp() {
	require := require.New(s.T())
	s.g = newGraph(LabelA, LabelB)

	_, err := s.g.AddWeightedEdge(LabelA, LabelB, Weight1)
	require.NoError(err)

	added, err := s.g.AddWeightedEdge(LabelB, LabelA, Weight5)
	require.NoError(err)
	require.False(added, "equal edge already occupies the slot")

	e, _, _ := s.g.Edge(n(LabelA), n(LabelB))
	require.Equal(Weight1, e.Weight(), "existing edge must not be modified")
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestAddEdgeRejections() {
	require := require.New(s.T())
	s.g = newGraph(LabelA, LabelB)

	_, err := s.g.AddEdge(core.NewEdge(n(LabelA), n(LabelB), true))
	require.ErrorIs(err, core.ErrDirectedEdge)
	require.ErrorIs(err, core.ErrInvalidArgument)

	_, err = s.g.AddEdge(core.NewEdge(n(LabelA), n(LabelX), false))
	require.ErrorIs(err, core.ErrNodeNotFound)

	_, err = s.g.AddEdgeAt(0, 2)
	require.ErrorIs(err, core.ErrIndexOutOfRange)

	_, err = s.g.AddWeightedEdgeAt(-1, 0, Weight1)
	require.ErrorIs(err, core.ErrIndexOutOfRange)

	require.Zero(s.g.EdgeCount(), "failed calls must not mutate the graph")
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())
	s.g = newGraph(LabelA, LabelB, LabelC)
	_, _ = s.g.AddEdgeAt(0, 1)

	err := s.g.RemoveEdge(core.NewEdge(n(LabelA), n(LabelC), false))
	require.ErrorIs(err, core.ErrEdgeNotFound)

	err = s.g.RemoveEdge(core.NewEdge(n(LabelA), n(LabelX), false))
	require.ErrorIs(err, core.ErrNodeNotFound)

	err = s.g.RemoveEdge(core.NewEdge(n(LabelA), n(LabelB), true))
	require.ErrorIs(err, core.ErrDirectedEdge)

	// Removal through the mirrored orientation clears the single slot.
	require.NoError(s.g.RemoveEdge(core.NewEdge(n(LabelB), n(LabelA), false)))
	_, ok, _ := s.g.Edge(n(LabelA), n(LabelB))
	require.False(ok)
	require.Zero(s.g.EdgeCount())

	require.ErrorIs(s.g.RemoveEdgeAt(0, 1), core.ErrEdgeNotFound)
	require.ErrorIs(s.g.RemoveEdgeAt(0, 3), core.ErrIndexOutOfRange)
}

func (s *GraphSuite) TestAddRemoveEdgeRoundTrip() {
	require := require.New(s.T())
	s.g = newGraph(LabelA, LabelB, LabelC, LabelD)
	_, _ = s.g.AddWeightedEdge(LabelA, LabelB, Weight1)
	_, _ = s.g.AddWeightedEdge(LabelC, LabelC, Weight2)

	before := s.g.Clone()

	_, err := s.g.AddWeightedEdge(LabelB, LabelD, Weight4)
	require.NoError(err)
	require.NoError(s.g.RemoveEdge(core.NewEdge(n(LabelD), n(LabelB), false)))

	require.Equal(before, s.g)
}

func (s *GraphSuite) TestEdgeCountMatchesEdges() {
	require := require.New(s.T())
	s.g = newGraph(LabelA, LabelB, LabelC)

	steps := []func(){
		func() { _, _ = s.g.AddEdgeAt(0, 1) },
		func() { _, _ = s.g.AddEdgeAt(1, 1) }, // self-loop counts once
		func() { _, _ = s.g.AddEdgeAt(2, 0) },
		func() { _, _ = s.g.AddEdgeAt(2, 2) },
		func() { _ = s.g.RemoveEdgeAt(1, 1) },
		func() { _ = s.g.RemoveNodeAt(0) },
	}
	for i, step := range steps {
		step()
		require.Equal(len(s.g.Edges()), s.g.EdgeCount(), "after step %d", i)
	}
	require.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestRemoveNodeRenumbers() {
	require := require.New(s.T())
	s.g = newGraph(LabelA, LabelB, LabelC, LabelD)
	_, _ = s.g.AddWeightedEdge(LabelA, LabelB, Weight1)
	_, _ = s.g.AddWeightedEdge(LabelB, LabelC, Weight2)
	_, _ = s.g.AddWeightedEdge(LabelC, LabelD, Weight3)
	_, _ = s.g.AddWeightedEdge(LabelA, LabelD, Weight4)
	_, _ = s.g.AddWeightedEdge(LabelA, LabelC, Weight5)
	_, _ = s.g.AddWeightedEdge(LabelD, LabelD, Weight1)

	require.NoError(s.g.RemoveNodeAt(1))

	require.Equal([]string{LabelA, LabelC, LabelD}, labels(s.g.Nodes()))
	idxC, _ := s.g.IndexOf(n(LabelC))
	idxD, _ := s.g.IndexOf(n(LabelD))
	require.Equal(1, idxC)
	require.Equal(2, idxD)
	require.False(s.g.HasNode(n(LabelB)))

	// Edges among survivors stay attached to the right (renumbered) slots.
	cd, ok, err := s.g.EdgeAt(1, 2)
	require.NoError(err)
	require.True(ok)
	require.Equal(Weight3, cd.Weight())

	ad, ok, _ := s.g.EdgeAt(0, 2)
	require.True(ok)
	require.Equal(Weight4, ad.Weight())

	ac, ok, _ := s.g.EdgeAt(0, 1)
	require.True(ok)
	require.Equal(Weight5, ac.Weight())

	loop, ok, _ := s.g.EdgeAt(2, 2)
	require.True(ok, "self-loop survives compaction")
	require.True(loop.IsLoop())

	_, ok, _ = s.g.EdgeAt(1, 1)
	require.False(ok)

	require.Equal(4, s.g.EdgeCount())
}

func (s *GraphSuite) TestRemoveNodeByLabelAndErrors() {
	require := require.New(s.T())
	s.g = newGraph(LabelA, LabelB)

	require.ErrorIs(s.g.RemoveLabel(LabelX), core.ErrNodeNotFound)
	require.ErrorIs(s.g.RemoveNodeAt(2), core.ErrIndexOutOfRange)
	require.NoError(s.g.RemoveLabel(LabelA))

	idx, err := s.g.IndexOf(n(LabelB))
	require.NoError(err)
	require.Zero(idx)

	// Re-adding a removed label appends it at the end.
	_, _ = s.g.AddLabel(LabelA)
	idx, _ = s.g.IndexOf(n(LabelA))
	require.Equal(1, idx)
}

func (s *GraphSuite) TestAdjacency() {
	require := require.New(s.T())
	s.g = newGraph(LabelA, LabelB, LabelC, LabelD)
	_, _ = s.g.AddEdgeAt(1, 0)
	_, _ = s.g.AddEdgeAt(1, 3)
	_, _ = s.g.AddEdgeAt(1, 1)

	adj, err := s.g.AdjacentNodesOf(n(LabelB))
	require.NoError(err)
	require.Equal([]string{LabelA, LabelB, LabelD}, labels(adj))

	adj, err = s.g.AdjacentNodesAt(0)
	require.NoError(err)
	require.Equal([]string{LabelB}, labels(adj))

	adj, err = s.g.AdjacentNodesOf(n(LabelC))
	require.NoError(err)
	require.Empty(adj)

	edges, err := s.g.EdgesOf(n(LabelB))
	require.NoError(err)
	require.Equal([]string{"B-A", "B-B", "B-D"}, edgeStrings(edges))

	edges, err = s.g.EdgesAt(3)
	require.NoError(err)
	require.Equal([]string{"B-D"}, edgeStrings(edges))

	deg, err := s.g.Degree(n(LabelB))
	require.NoError(err)
	require.Equal(3, deg)

	_, err = s.g.AdjacentNodesOf(n(LabelX))
	require.ErrorIs(err, core.ErrNodeNotFound)
	_, err = s.g.EdgesAt(4)
	require.ErrorIs(err, core.ErrIndexOutOfRange)
}

func (s *GraphSuite) TestEdgesListsEachEdgeOnce() {
	require := require.New(s.T())
	s.g = newGraph(LabelA, LabelB, LabelC)
	_, _ = s.g.AddEdgeAt(0, 1)
	_, _ = s.g.AddEdgeAt(2, 1)
	_, _ = s.g.AddEdgeAt(0, 0)

	// Row-major over the triangular store: row 0 {(0,0)}, row 1 {(1,0)}, row 2 {(2,1)}.
	require.Equal([]string{"A-A", "A-B", "C-B"}, edgeStrings(s.g.Edges()))
}

func (s *GraphSuite) TestDirectedOnlyQueriesUnsupported() {
	require := require.New(s.T())
	s.g = newGraph(LabelA)

	_, err := s.g.PredecessorNodesOf(n(LabelA))
	require.ErrorIs(err, core.ErrUnsupported)

	_, err = s.g.IngoingEdgesOf(n(LabelA))
	require.ErrorIs(err, core.ErrUnsupported)

	require.False(s.g.Directed())
}

func (s *GraphSuite) TestClearAndClone() {
	require := require.New(s.T())
	s.g = newGraph(LabelA, LabelB)
	_, _ = s.g.AddEdgeAt(0, 1)

	cp := s.g.Clone()
	s.g.Clear()

	require.Zero(s.g.NodeCount())
	require.Zero(s.g.EdgeCount())
	require.Empty(s.g.Edges())

	require.Equal(2, cp.NodeCount(), "clone is independent of the source")
	require.Equal(1, cp.EdgeCount())

	// The cleared graph is immediately reusable.
	added, err := s.g.AddLabel(LabelC)
	require.NoError(err)
	require.True(added)
	idx, _ := s.g.IndexOf(n(LabelC))
	require.Zero(idx)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
