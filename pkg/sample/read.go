// Package sample provides the read types and the aligned-read input
// adapter. Alignments arrive pre-computed; this package only decodes them,
// it never aligns.
package sample

import "fmt"

// Read is one sequenced read of a mate pair.
type Read struct {
	// FragmentID identifies the physical DNA fragment; both mates of a
	// pair share it.
	FragmentID string `json:"fragmentId" yaml:"fragmentId"`
	// FirstMate is true for mate 1 of the pair, false for mate 2.
	FirstMate bool `json:"firstMate" yaml:"firstMate"`
	// Sequence is the read's nucleotide sequence.
	Sequence string `json:"sequence" yaml:"sequence"`
}

// ReadID returns the conventional per-mate identifier, e.g. "frag1/1".
func (r Read) ReadID() string {
	mate := 2
	if r.FirstMate {
		mate = 1
	}

	return fmt.Sprintf("%s/%d", r.FragmentID, mate)
}

// Length returns the read length in bases.
func (r Read) Length() int {
	return len(r.Sequence)
}
