package regionanalysis_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Archieyoung/ExpansionHunter/pkg/graphs"
	"github.com/Archieyoung/ExpansionHunter/pkg/sample"
)

const (
	testLeftFlank  = "ATTCGATTACGG"
	testRepeatUnit = "CAG"
	testRightFlank = "TTAGGCCATAGC"
)

func cagGraph(t *testing.T) *graphs.Graph {
	t.Helper()

	g, err := graphs.NewRepeatGraph(testLeftFlank, testRepeatUnit, testRightFlank)
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

func spanningAlignment(g *graphs.Graph, numUnits int) graphs.Alignment {
	nodes := []graphs.NodeAlignment{fullVisit(g, graphs.LeftFlankNode)}

	for n := 0; n < numUnits; n++ {
		nodes = append(nodes, fullVisit(g, graphs.RepeatNode))
	}

	nodes = append(nodes, fullVisit(g, graphs.RightFlankNode))

	return graphs.Alignment{Nodes: nodes}
}

func leftFlankingAlignment(g *graphs.Graph, numUnits int) graphs.Alignment {
	nodes := []graphs.NodeAlignment{fullVisit(g, graphs.LeftFlankNode)}

	for n := 0; n < numUnits; n++ {
		nodes = append(nodes, fullVisit(g, graphs.RepeatNode))
	}

	return graphs.Alignment{Nodes: nodes}
}

func inrepeatAlignment(g *graphs.Graph, numUnits int) graphs.Alignment {
	var nodes []graphs.NodeAlignment

	for n := 0; n < numUnits; n++ {
		nodes = append(nodes, fullVisit(g, graphs.RepeatNode))
	}

	return graphs.Alignment{Nodes: nodes}
}

func fragID(i int) string {
	return fmt.Sprintf("frag%d", i)
}

func testRead(fragmentID string, firstMate bool) sample.Read {
	return sample.Read{
		FragmentID: fragmentID,
		FirstMate:  firstMate,
		Sequence:   strings.Repeat("ACGT", 37) + "AC", // 150 bases.
	}
}
