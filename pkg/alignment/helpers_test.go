package alignment_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Archieyoung/ExpansionHunter/pkg/graphs"
)

// cagGraph returns a repeat locus graph with 12-base flanks and a CAG unit.
func cagGraph(t *testing.T) *graphs.Graph {
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

// spanningAlignment crosses the whole repeat with the given number of
// full-unit copies, anchored over both flanks.
func spanningAlignment(g *graphs.Graph, numUnits int) graphs.Alignment {
	nodes := []graphs.NodeAlignment{fullVisit(g, graphs.LeftFlankNode)}

	for n := 0; n < numUnits; n++ {
		nodes = append(nodes, fullVisit(g, graphs.RepeatNode))
	}

	nodes = append(nodes, fullVisit(g, graphs.RightFlankNode))

	return graphs.Alignment{Nodes: nodes}
}

// leftFlankingAlignment is anchored in the left flank and runs into the
// repeat for the given number of full-unit copies.
func leftFlankingAlignment(g *graphs.Graph, numUnits int) graphs.Alignment {
	nodes := []graphs.NodeAlignment{fullVisit(g, graphs.LeftFlankNode)}

	for n := 0; n < numUnits; n++ {
		nodes = append(nodes, fullVisit(g, graphs.RepeatNode))
	}

	return graphs.Alignment{Nodes: nodes}
}

// inrepeatAlignment lies fully inside the repeat.
func inrepeatAlignment(g *graphs.Graph, numUnits int) graphs.Alignment {
	var nodes []graphs.NodeAlignment

	for n := 0; n < numUnits; n++ {
		nodes = append(nodes, fullVisit(g, graphs.RepeatNode))
	}

	return graphs.Alignment{Nodes: nodes}
}
