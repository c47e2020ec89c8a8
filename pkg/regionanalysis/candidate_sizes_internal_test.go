package regionanalysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Archieyoung/ExpansionHunter/pkg/alignment"
	"github.com/Archieyoung/ExpansionHunter/pkg/counttable"
	"github.com/Archieyoung/ExpansionHunter/pkg/graphs"
)

func TestGenerateCandidateAlleleSizes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		spanning map[int]int
		flanking map[int]int
		inrepeat map[int]int
		want     []int
	}{
		{
			name:     "longest non-spanning appended",
			spanning: map[int]int{5: 2},
			flanking: map[int]int{8: 1},
			want:     []int{5, 8},
		},
		{
			name:     "no append when spanning dominates",
			spanning: map[int]int{10: 3},
			flanking: map[int]int{4: 1},
			inrepeat: map[int]int{6: 1},
			want:     []int{10},
		},
		{
			name:     "flanking only",
			flanking: map[int]int{8: 3},
			want:     []int{8},
		},
		{
			name:     "inrepeat sets the bound",
			spanning: map[int]int{3: 1, 5: 2},
			flanking: map[int]int{7: 1},
			inrepeat: map[int]int{20: 2},
			want:     []int{3, 5, 20},
		},
		{
			name: "all empty",
			want: []int{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := generateCandidateAlleleSizes(
				counttable.FromCounts(tt.spanning),
				counttable.FromCounts(tt.flanking),
				counttable.FromCounts(tt.inrepeat),
			)

			assert.ElementsMatch(t, tt.want, got)
		})
	}
}

func TestCheckAlignmentConfidence(t *testing.T) {
	t.Parallel()

	g, err := graphs.NewRepeatGraph("ATTCGATTACGG", "CAG", "TTAGGCCATAGC")
	require.NoError(t, err)

	classifier := alignment.NewRepeatClassifier(g, graphs.RepeatNode)

	full := func(node graphs.NodeID) graphs.NodeAlignment {
		return graphs.NodeAlignment{
			Node: node, RefStart: 0, RefEnd: g.NodeLength(node), NumMatches: g.NodeLength(node),
		}
	}

	goodSpan := graphs.Alignment{Nodes: []graphs.NodeAlignment{
		full(graphs.LeftFlankNode), full(graphs.RepeatNode), full(graphs.RightFlankNode),
	}}

	// Spanning claim with a 2-base right anchor.
	badAnchorSpan := graphs.Alignment{Nodes: []graphs.NodeAlignment{
		full(graphs.LeftFlankNode), full(graphs.RepeatNode),
		{Node: graphs.RightFlankNode, RefStart: 0, RefEnd: 2, NumMatches: 2},
	}}

	// Flanking read with one good anchor.
	goodFlank := graphs.Alignment{Nodes: []graphs.NodeAlignment{
		full(graphs.LeftFlankNode), full(graphs.RepeatNode), full(graphs.RepeatNode),
	}}

	// Flanking read anchored by just 4 bases.
	badFlank := graphs.Alignment{Nodes: []graphs.NodeAlignment{
		{Node: graphs.LeftFlankNode, RefStart: 8, RefEnd: 12, NumMatches: 4},
		full(graphs.RepeatNode), full(graphs.RepeatNode), full(graphs.RepeatNode),
	}}

	// In-repeat reads have no flank requirement.
	inrepeat := graphs.Alignment{Nodes: []graphs.NodeAlignment{
		full(graphs.RepeatNode), full(graphs.RepeatNode), full(graphs.RepeatNode), full(graphs.RepeatNode),
	}}

	tests := []struct {
		name string
		aln  graphs.Alignment
		want bool
	}{
		{name: "spanning with both anchors", aln: goodSpan, want: true},
		{name: "spanning with one bad anchor", aln: badAnchorSpan, want: false},
		{name: "flanking with one anchor", aln: goodFlank, want: true},
		{name: "flanking with no reliable anchor", aln: badFlank, want: false},
		{name: "inrepeat needs no anchor", aln: inrepeat, want: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			alnStats := classifier.ClassifyAlignment(tt.aln)
			assert.Equal(t, tt.want, checkAlignmentConfidence(graphs.RepeatNode, tt.aln, alnStats))
		})
	}
}
