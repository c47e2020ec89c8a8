// Package alignment classifies graph alignments relative to a repeat node
// and screens them for quality. It also accumulates breakpoint-spanning
// statistics used to flag thinly supported genotypes.
package alignment

// Type categorizes a graph alignment relative to the repeat node.
type Type int

// Alignment types, mirroring how a read can relate to a repeat region.
const (
	// TypeOutside marks alignments that do not support the repeat at all.
	TypeOutside Type = iota
	// TypeSpans marks alignments crossing the whole repeat, touching both flanks.
	TypeSpans
	// TypeFlanks marks alignments anchored in exactly one flank and
	// extending into the repeat.
	TypeFlanks
	// TypeInside marks alignments fully contained within the repeat.
	TypeInside
)

// String implements fmt.Stringer.
func (t Type) String() string {
	switch t {
	case TypeSpans:
		return "spanning"
	case TypeFlanks:
		return "flanking"
	case TypeInside:
		return "inrepeat"
	case TypeOutside:
		return "outside"
	default:
		return "unknown"
	}
}

// RepeatAlignmentStats is the per-alignment classification result. It is
// produced once per alignment and never mutated afterwards.
type RepeatAlignmentStats struct {
	// CanonicalType is the alignment's category relative to the repeat node.
	CanonicalType Type
	// NumUnitsSpanned is the number of whole repeat-unit copies the
	// alignment fully overlaps; evidence tables are keyed by this value.
	NumUnitsSpanned int
	// NumUnitsOverlapped is the total number of repeat-node visits,
	// including partial ones at the alignment ends.
	NumUnitsOverlapped int
}
