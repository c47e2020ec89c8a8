package alignment

import (
	"github.com/Archieyoung/ExpansionHunter/pkg/graphs"
)

// RepeatClassifier assigns alignment types relative to one repeat node of a
// locus graph. Nodes before the repeat node form the upstream flank, nodes
// after it the downstream flank. Classification is pure: a classifier can
// be shared across alignments of the same locus.
type RepeatClassifier struct {
	graph      *graphs.Graph
	repeatNode graphs.NodeID
}

// NewRepeatClassifier creates a classifier for the given repeat node.
func NewRepeatClassifier(graph *graphs.Graph, repeatNode graphs.NodeID) *RepeatClassifier {
	return &RepeatClassifier{graph: graph, repeatNode: repeatNode}
}

// RepeatNode returns the node the classifier operates on.
func (c *RepeatClassifier) RepeatNode() graphs.NodeID {
	return c.repeatNode
}

// Classify returns the alignment's type relative to the repeat node.
func (c *RepeatClassifier) Classify(aln graphs.Alignment) Type {
	overlapsUpstream := c.overlapsUpstreamFlank(aln)
	overlapsDownstream := c.overlapsDownstreamFlank(aln)
	overlapsRepeat := aln.OverlapsNode(c.repeatNode)

	switch {
	case overlapsUpstream && overlapsDownstream:
		return TypeSpans
	case overlapsRepeat && (overlapsUpstream || overlapsDownstream):
		return TypeFlanks
	case overlapsRepeat:
		return TypeInside
	default:
		return TypeOutside
	}
}

// ClassifyAlignment packages the alignment type together with the repeat
// unit overlap counts.
func (c *RepeatClassifier) ClassifyAlignment(aln graphs.Alignment) RepeatAlignmentStats {
	return RepeatAlignmentStats{
		CanonicalType:      c.Classify(aln),
		NumUnitsSpanned:    aln.NumFullNodeOverlaps(c.graph, c.repeatNode),
		NumUnitsOverlapped: aln.NumNodeVisits(c.repeatNode),
	}
}

func (c *RepeatClassifier) overlapsUpstreamFlank(aln graphs.Alignment) bool {
	for _, na := range aln.Nodes {
		if na.Node < c.repeatNode {
			return true
		}
	}

	return false
}

func (c *RepeatClassifier) overlapsDownstreamFlank(aln graphs.Alignment) bool {
	for _, na := range aln.Nodes {
		if na.Node > c.repeatNode {
			return true
		}
	}

	return false
}
