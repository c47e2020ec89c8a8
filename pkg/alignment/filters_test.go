package alignment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Archieyoung/ExpansionHunter/pkg/alignment"
	"github.com/Archieyoung/ExpansionHunter/pkg/graphs"
)

func TestPassesAlignmentFilters(t *testing.T) {
	t.Parallel()

	g := cagGraph(t)

	assert.True(t, alignment.PassesAlignmentFilters(spanningAlignment(g, 3)))

	// Too few matched bases.
	short := graphs.Alignment{Nodes: []graphs.NodeAlignment{
		{Node: graphs.RepeatNode, RefStart: 0, RefEnd: 3, NumMatches: 3},
	}}
	assert.False(t, alignment.PassesAlignmentFilters(short))

	// Enough bases but riddled with errors: 12 matches, 10 mismatches and
	// 4 gap bases score 60-40-32 = -12, well under half of 26*5.
	noisy := graphs.Alignment{Nodes: []graphs.NodeAlignment{
		{Node: graphs.LeftFlankNode, RefStart: 0, RefEnd: 12, NumMatches: 12, NumMismatches: 10, NumIndels: 4},
	}}
	assert.False(t, alignment.PassesAlignmentFilters(noisy))
}

func TestFlankQualityChecks(t *testing.T) {
	t.Parallel()

	g := cagGraph(t)

	spanning := spanningAlignment(g, 2)
	assert.True(t, alignment.IsUpstreamFlankGood(graphs.RepeatNode, spanning))
	assert.True(t, alignment.IsDownstreamFlankGood(graphs.RepeatNode, spanning))

	leftFlanking := leftFlankingAlignment(g, 2)
	assert.True(t, alignment.IsUpstreamFlankGood(graphs.RepeatNode, leftFlanking))
	assert.False(t, alignment.IsDownstreamFlankGood(graphs.RepeatNode, leftFlanking))

	inrepeat := inrepeatAlignment(g, 4)
	assert.False(t, alignment.IsUpstreamFlankGood(graphs.RepeatNode, inrepeat))
	assert.False(t, alignment.IsDownstreamFlankGood(graphs.RepeatNode, inrepeat))

	// A thin flank anchor does not count.
	thinAnchor := graphs.Alignment{Nodes: []graphs.NodeAlignment{
		{Node: graphs.LeftFlankNode, RefStart: 8, RefEnd: 12, NumMatches: 4},
		fullVisit(g, graphs.RepeatNode),
	}}
	assert.False(t, alignment.IsUpstreamFlankGood(graphs.RepeatNode, thinAnchor))
}
