package graphs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Archieyoung/ExpansionHunter/pkg/graphs"
)

func TestNewRepeatGraph(t *testing.T) {
	t.Parallel()

	g, err := graphs.NewRepeatGraph("ATTCGA", "CAG", "TTAGGC")
	require.NoError(t, err)

	assert.Equal(t, 3, g.NumNodes())
	assert.Equal(t, "CAG", g.NodeSeq(graphs.RepeatNode))
	assert.Equal(t, 3, g.NodeLength(graphs.RepeatNode))
	assert.Equal(t, 6, g.NodeLength(graphs.LeftFlankNode))
	assert.True(t, g.HasNode(graphs.RightFlankNode))
	assert.False(t, g.HasNode(3))
	assert.False(t, g.HasNode(-1))
}

func TestNewRejectsEmptyNode(t *testing.T) {
	t.Parallel()

	_, err := graphs.New("ATTCGA", "", "TTAGGC")
	require.ErrorIs(t, err, graphs.ErrEmptyNodeSeq)
}

func TestNewRejectsNonNucleotideSeq(t *testing.T) {
	t.Parallel()

	_, err := graphs.New("ATTCGA", "C-G", "TTAGGC")
	require.ErrorIs(t, err, graphs.ErrBadNodeSeq)
}
