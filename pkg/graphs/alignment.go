package graphs

import (
	"fmt"
	"strings"
)

// NodeAlignment describes how a read aligns against a single visit of one
// graph node. RefStart and RefEnd are a half-open interval over the node
// sequence. NumIndels counts inserted plus deleted bases within the visit.
type NodeAlignment struct {
	Node          NodeID `json:"node"          yaml:"node"`
	RefStart      int    `json:"refStart"      yaml:"refStart"`
	RefEnd        int    `json:"refEnd"        yaml:"refEnd"`
	NumMatches    int    `json:"numMatches"    yaml:"numMatches"`
	NumMismatches int    `json:"numMismatches" yaml:"numMismatches"`
	NumIndels     int    `json:"numIndels"     yaml:"numIndels"`
}

// ReferenceLength returns the number of node bases covered by the visit.
func (na NodeAlignment) ReferenceLength() int {
	return na.RefEnd - na.RefStart
}

// SpansNode reports whether the visit covers the node sequence end to end.
func (na NodeAlignment) SpansNode(g *Graph) bool {
	return na.RefStart == 0 && na.RefEnd == g.NodeLength(na.Node)
}

// Alignment is a read's alignment to a locus graph: an ordered series of
// node visits. Repeated visits of the same node are legal and represent
// consecutive copies of a repeat unit.
type Alignment struct {
	Nodes []NodeAlignment `json:"nodes" yaml:"nodes"`
}

// Path returns the visited node ids in order.
func (a Alignment) Path() []NodeID {
	path := make([]NodeID, len(a.Nodes))

	for i, na := range a.Nodes {
		path[i] = na.Node
	}

	return path
}

// OverlapsNode reports whether the alignment visits the given node.
func (a Alignment) OverlapsNode(id NodeID) bool {
	for _, na := range a.Nodes {
		if na.Node == id {
			return true
		}
	}

	return false
}

// NumMatches returns the total number of matched bases.
func (a Alignment) NumMatches() int {
	var total int

	for _, na := range a.Nodes {
		total += na.NumMatches
	}

	return total
}

// NumAlignedBases returns the total number of bases taking part in the
// alignment, matched or not.
func (a Alignment) NumAlignedBases() int {
	var total int

	for _, na := range a.Nodes {
		total += na.NumMatches + na.NumMismatches + na.NumIndels
	}

	return total
}

// MatchesOverNode returns the number of matched bases over all visits of
// the given node.
func (a Alignment) MatchesOverNode(id NodeID) int {
	var total int

	for _, na := range a.Nodes {
		if na.Node == id {
			total += na.NumMatches
		}
	}

	return total
}

// NumNodeVisits returns how many times the alignment visits the given node.
func (a Alignment) NumNodeVisits(id NodeID) int {
	var visits int

	for _, na := range a.Nodes {
		if na.Node == id {
			visits++
		}
	}

	return visits
}

// NumFullNodeOverlaps returns how many visits of the given node cover the
// node sequence completely. For the repeat node this is the number of whole
// repeat-unit copies the read overlaps.
func (a Alignment) NumFullNodeOverlaps(g *Graph, id NodeID) int {
	var overlaps int

	for _, na := range a.Nodes {
		if na.Node == id && na.SpansNode(g) {
			overlaps++
		}
	}

	return overlaps
}

// Score returns the alignment score under the given scoring scheme.
func (a Alignment) Score(matchScore, mismatchScore, gapScore int) int {
	var score int

	for _, na := range a.Nodes {
		score += na.NumMatches*matchScore + na.NumMismatches*mismatchScore + na.NumIndels*gapScore
	}

	return score
}

// String renders the alignment as a compact path summary, e.g.
// "0[12M]-1[5M]-1[5M]-2[10M1X]".
func (a Alignment) String() string {
	parts := make([]string, len(a.Nodes))

	for i, na := range a.Nodes {
		var sb strings.Builder

		fmt.Fprintf(&sb, "%d[", na.Node)

		if na.NumMatches > 0 {
			fmt.Fprintf(&sb, "%dM", na.NumMatches)
		}

		if na.NumMismatches > 0 {
			fmt.Fprintf(&sb, "%dX", na.NumMismatches)
		}

		if na.NumIndels > 0 {
			fmt.Fprintf(&sb, "%dI", na.NumIndels)
		}

		sb.WriteString("]")
		parts[i] = sb.String()
	}

	return strings.Join(parts, "-")
}
