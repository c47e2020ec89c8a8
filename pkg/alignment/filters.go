package alignment

import (
	"github.com/Archieyoung/ExpansionHunter/pkg/graphs"
)

// Scoring scheme shared by the quality filters.
const (
	matchScore    = 5
	mismatchScore = -4
	gapScore      = -8
)

const (
	// minMatchingBases is the minimum number of matched bases for an
	// alignment to carry any signal.
	minMatchingBases = 10
	// minFlankMatchingBases is the minimum number of matched bases over a
	// flank for the flank anchor to be considered reliable.
	minFlankMatchingBases = 10
)

// PassesAlignmentFilters is the generic quality screen applied to every
// alignment before type-specific flank checks. It requires a minimal number
// of matched bases and an overall score of at least half the perfect score
// for the aligned bases.
func PassesAlignmentFilters(aln graphs.Alignment) bool {
	numMatches := aln.NumMatches()
	if numMatches < minMatchingBases {
		return false
	}

	perfectScore := aln.NumAlignedBases() * matchScore

	return 2*aln.Score(matchScore, mismatchScore, gapScore) >= perfectScore
}

// IsUpstreamFlankGood reports whether the alignment is well anchored in the
// sequence upstream of the repeat node.
func IsUpstreamFlankGood(repeatNode graphs.NodeID, aln graphs.Alignment) bool {
	return flankMatches(aln, func(node graphs.NodeID) bool { return node < repeatNode }) >= minFlankMatchingBases
}

// IsDownstreamFlankGood reports whether the alignment is well anchored in
// the sequence downstream of the repeat node.
func IsDownstreamFlankGood(repeatNode graphs.NodeID, aln graphs.Alignment) bool {
	return flankMatches(aln, func(node graphs.NodeID) bool { return node > repeatNode }) >= minFlankMatchingBases
}

func flankMatches(aln graphs.Alignment, inFlank func(graphs.NodeID) bool) int {
	var total int

	for _, na := range aln.Nodes {
		if inFlank(na.Node) {
			total += na.NumMatches
		}
	}

	return total
}
