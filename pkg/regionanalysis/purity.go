package regionanalysis

import "strings"

// PurityCalculator scores how repeat-like a raw read sequence is for one
// repeat unit. It considers every circular shift of the unit and of its
// reverse complement and returns the best in-frame match fraction, so a
// read that is pure repeat sequence scores 1.0 regardless of phase or
// strand.
type PurityCalculator struct {
	frames  []string
	unitLen int
}

// NewPurityCalculator creates a calculator for the given repeat unit.
func NewPurityCalculator(unit string) *PurityCalculator {
	unit = strings.ToUpper(unit)
	frames := make([]string, 0, 2*len(unit))

	for _, seq := range []string{unit, reverseComplement(unit)} {
		for shift := 0; shift < len(seq); shift++ {
			frames = append(frames, seq[shift:]+seq[:shift])
		}
	}

	return &PurityCalculator{frames: frames, unitLen: len(unit)}
}

// Score returns the fraction of bases of seq matching the best repeat
// frame, in [0, 1].
func (c *PurityCalculator) Score(seq string) float64 {
	if len(seq) == 0 || c.unitLen == 0 {
		return 0
	}

	seq = strings.ToUpper(seq)

	var best int

	for _, frame := range c.frames {
		var matches int

		for i := 0; i < len(seq); i++ {
			if seq[i] == frame[i%c.unitLen] {
				matches++
			}
		}

		if matches > best {
			best = matches
		}
	}

	return float64(best) / float64(len(seq))
}

func reverseComplement(seq string) string {
	var sb strings.Builder

	sb.Grow(len(seq))

	for i := len(seq) - 1; i >= 0; i-- {
		switch seq[i] {
		case 'A':
			sb.WriteByte('T')
		case 'C':
			sb.WriteByte('G')
		case 'G':
			sb.WriteByte('C')
		case 'T':
			sb.WriteByte('A')
		default:
			sb.WriteByte('N')
		}
	}

	return sb.String()
}
