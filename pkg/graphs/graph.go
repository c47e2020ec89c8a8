// Package graphs provides the sequence-graph and graph-alignment value types
// shared by the locus analyzers. A locus graph is a short chain of sequence
// nodes; for a tandem-repeat locus the chain is left flank, repeat unit,
// right flank, and the repeat node may be visited multiple times by one
// alignment.
package graphs

import (
	"errors"
	"fmt"
	"strings"
)

// NodeID identifies a node within one locus graph.
type NodeID int

// Node indices of a repeat locus graph.
const (
	LeftFlankNode  NodeID = 0
	RepeatNode     NodeID = 1
	RightFlankNode NodeID = 2
)

var (
	// ErrEmptyNodeSeq is returned when a graph node has an empty sequence.
	ErrEmptyNodeSeq = errors.New("graph node sequence must not be empty")
	// ErrBadNodeSeq is returned when a node sequence contains characters
	// outside the nucleotide alphabet.
	ErrBadNodeSeq = errors.New("graph node sequence must consist of ACGTN")
)

// Graph is an immutable chain of sequence nodes.
type Graph struct {
	nodeSeqs []string
}

// New creates a graph from node sequences listed in chain order.
func New(nodeSeqs ...string) (*Graph, error) {
	for i, seq := range nodeSeqs {
		if seq == "" {
			return nil, fmt.Errorf("node %d: %w", i, ErrEmptyNodeSeq)
		}

		if strings.Trim(strings.ToUpper(seq), "ACGTN") != "" {
			return nil, fmt.Errorf("node %d (%q): %w", i, seq, ErrBadNodeSeq)
		}
	}

	return &Graph{nodeSeqs: append([]string(nil), nodeSeqs...)}, nil
}

// NewRepeatGraph creates the standard three-node repeat locus graph.
func NewRepeatGraph(leftFlank, repeatUnit, rightFlank string) (*Graph, error) {
	return New(leftFlank, repeatUnit, rightFlank)
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int {
	return len(g.nodeSeqs)
}

// HasNode reports whether id refers to a node of the graph.
func (g *Graph) HasNode(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodeSeqs)
}

// NodeSeq returns the sequence of the given node.
func (g *Graph) NodeSeq(id NodeID) string {
	return g.nodeSeqs[id]
}

// NodeLength returns the sequence length of the given node.
func (g *Graph) NodeLength(id NodeID) int {
	return len(g.nodeSeqs[id])
}
