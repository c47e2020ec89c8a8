package sample

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Archieyoung/ExpansionHunter/pkg/graphs"
)

// ErrMissingField is returned when a mate-pair record lacks a required field.
var ErrMissingField = errors.New("mate pair record is missing a required field")

// MatePair is one decoded input record: a read pair routed to a locus,
// together with the pre-computed graph alignments of both mates. Off-target
// pairs carry no alignments.
type MatePair struct {
	LocusID       string           `json:"locusId" yaml:"locusId"`
	Read          Read             `json:"read"    yaml:"read"`
	Mate          Read             `json:"mate"    yaml:"mate"`
	ReadAlignment graphs.Alignment `json:"readAlignment,omitempty" yaml:"readAlignment,omitempty"`
	MateAlignment graphs.Alignment `json:"mateAlignment,omitempty" yaml:"mateAlignment,omitempty"`
	Offtarget     bool             `json:"offtarget,omitempty" yaml:"offtarget,omitempty"`
}

// Reader decodes mate-pair records from a JSON-lines stream. Blank lines
// are skipped.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

// readerBufferSize bounds one input line; long-read records stay well under it.
const readerBufferSize = 4 * 1024 * 1024

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), readerBufferSize)

	return &Reader{scanner: scanner}
}

// Next returns the next mate-pair record, or io.EOF when the stream ends.
func (r *Reader) Next() (*MatePair, error) {
	for r.scanner.Scan() {
		r.line++

		line := r.scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var pair MatePair

		if err := json.Unmarshal(line, &pair); err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}

		if err := validatePair(&pair); err != nil {
			return nil, fmt.Errorf("line %d: %w", r.line, err)
		}

		return &pair, nil
	}

	if err := r.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading mate pairs: %w", err)
	}

	return nil, io.EOF
}

func validatePair(pair *MatePair) error {
	if pair.LocusID == "" {
		return fmt.Errorf("%w: locusId", ErrMissingField)
	}

	if pair.Read.FragmentID == "" || pair.Mate.FragmentID == "" {
		return fmt.Errorf("%w: fragmentId", ErrMissingField)
	}

	return nil
}
