package alignment

import (
	"github.com/Archieyoung/ExpansionHunter/pkg/graphs"
)

// minBreakpointOverhangBases is the number of matched bases required on
// each side of a breakpoint for an alignment to count as spanning it.
const minBreakpointOverhangBases = 5

// VariantAlignmentStats summarizes how many confident alignments crossed
// each breakpoint of the repeat region.
type VariantAlignmentStats struct {
	NumReadsSpanningLeftBreakpoint  int
	NumReadsSpanningRightBreakpoint int
}

// VariantAlignmentStatsCalculator accumulates breakpoint-spanning counts
// one alignment at a time. Feed it only alignments that already passed the
// confidence screen.
type VariantAlignmentStatsCalculator struct {
	repeatNode graphs.NodeID
	stats      VariantAlignmentStats
}

// NewVariantAlignmentStatsCalculator creates a calculator for the
// breakpoints around the given repeat node.
func NewVariantAlignmentStatsCalculator(repeatNode graphs.NodeID) *VariantAlignmentStatsCalculator {
	return &VariantAlignmentStatsCalculator{repeatNode: repeatNode}
}

// Inspect records whether the alignment spans either breakpoint. An
// alignment spans the left breakpoint when it has enough matched bases both
// upstream of the repeat node and from the repeat node onward; the right
// breakpoint is symmetric.
func (c *VariantAlignmentStatsCalculator) Inspect(aln graphs.Alignment) {
	var upstream, repeat, downstream int

	for _, na := range aln.Nodes {
		switch {
		case na.Node < c.repeatNode:
			upstream += na.NumMatches
		case na.Node == c.repeatNode:
			repeat += na.NumMatches
		default:
			downstream += na.NumMatches
		}
	}

	if upstream >= minBreakpointOverhangBases && repeat+downstream >= minBreakpointOverhangBases {
		c.stats.NumReadsSpanningLeftBreakpoint++
	}

	if downstream >= minBreakpointOverhangBases && upstream+repeat >= minBreakpointOverhangBases {
		c.stats.NumReadsSpanningRightBreakpoint++
	}
}

// Stats returns the accumulated breakpoint counts.
func (c *VariantAlignmentStatsCalculator) Stats() VariantAlignmentStats {
	return c.stats
}
