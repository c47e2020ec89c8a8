package graphs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Archieyoung/ExpansionHunter/pkg/graphs"
)

func testGraph(t *testing.T) *graphs.Graph {
	t.Helper()

	g, err := graphs.NewRepeatGraph("ATTCGATTACGG", "CAG", "TTAGGCCATAGC")
	require.NoError(t, err)

	return g
}

func fullVisit(g *graphs.Graph, node graphs.NodeID) graphs.NodeAlignment {
	return graphs.NodeAlignment{
		Node:       node,
		RefStart:   0,
		RefEnd:     g.NodeLength(node),
		NumMatches: g.NodeLength(node),
	}
}

func TestAlignmentPathAndOverlap(t *testing.T) {
	t.Parallel()

	g := testGraph(t)
	aln := graphs.Alignment{Nodes: []graphs.NodeAlignment{
		fullVisit(g, graphs.LeftFlankNode),
		fullVisit(g, graphs.RepeatNode),
		fullVisit(g, graphs.RepeatNode),
		fullVisit(g, graphs.RightFlankNode),
	}}

	assert.Equal(t, []graphs.NodeID{0, 1, 1, 2}, aln.Path())
	assert.True(t, aln.OverlapsNode(graphs.RepeatNode))
	assert.Equal(t, 2, aln.NumNodeVisits(graphs.RepeatNode))
	assert.Equal(t, 1, aln.NumNodeVisits(graphs.LeftFlankNode))
	assert.Equal(t, 30, aln.NumMatches())
	assert.Equal(t, 30, aln.NumAlignedBases())
}

func TestNumFullNodeOverlapsIgnoresPartialVisits(t *testing.T) {
	t.Parallel()

	g := testGraph(t)
	aln := graphs.Alignment{Nodes: []graphs.NodeAlignment{
		fullVisit(g, graphs.RepeatNode),
		fullVisit(g, graphs.RepeatNode),
		{Node: graphs.RepeatNode, RefStart: 0, RefEnd: 2, NumMatches: 2},
	}}

	assert.Equal(t, 2, aln.NumFullNodeOverlaps(g, graphs.RepeatNode))
	assert.Equal(t, 3, aln.NumNodeVisits(graphs.RepeatNode))
}

func TestMatchesOverNode(t *testing.T) {
	t.Parallel()

	g := testGraph(t)
	aln := graphs.Alignment{Nodes: []graphs.NodeAlignment{
		{Node: graphs.LeftFlankNode, RefStart: 4, RefEnd: 12, NumMatches: 7, NumMismatches: 1},
		fullVisit(g, graphs.RepeatNode),
	}}

	assert.Equal(t, 7, aln.MatchesOverNode(graphs.LeftFlankNode))
	assert.Equal(t, 3, aln.MatchesOverNode(graphs.RepeatNode))
	assert.Equal(t, 0, aln.MatchesOverNode(graphs.RightFlankNode))
}

func TestScore(t *testing.T) {
	t.Parallel()

	aln := graphs.Alignment{Nodes: []graphs.NodeAlignment{
		{Node: 0, RefStart: 0, RefEnd: 10, NumMatches: 8, NumMismatches: 1, NumIndels: 1},
	}}

	assert.Equal(t, 8*5-4-8, aln.Score(5, -4, -8))
}

func TestAlignmentString(t *testing.T) {
	t.Parallel()

	aln := graphs.Alignment{Nodes: []graphs.NodeAlignment{
		{Node: 0, RefStart: 0, RefEnd: 12, NumMatches: 12},
		{Node: 1, RefStart: 0, RefEnd: 3, NumMatches: 2, NumMismatches: 1},
	}}

	assert.Equal(t, "0[12M]-1[2M1X]", aln.String())
}
