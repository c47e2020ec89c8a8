// Package genotyping estimates repeat genotypes from aggregated read
// evidence. The estimator consumes the three per-category count tables
// produced upstream and returns an optional genotype: absence of a genotype
// is a first-class outcome, not an error.
package genotyping

import "strings"

// AlleleCount is the expected number of alleles at a locus.
type AlleleCount int

// Allele count regimes.
const (
	// AlleleCountHaploid expects a single allele at the locus.
	AlleleCountHaploid AlleleCount = 1
	// AlleleCountDiploid expects two alleles at the locus.
	AlleleCountDiploid AlleleCount = 2
)

// String implements fmt.Stringer.
func (c AlleleCount) String() string {
	if c == AlleleCountHaploid {
		return "haploid"
	}

	return "diploid"
}

// Filter is a bit-flag set of soft warnings attached to a genotype result.
// Flags mark reduced confidence, never hard failures.
type Filter uint32

// Genotype filter flags.
const (
	// FilterLowDepth flags genotypes derived from insufficient read depth
	// or thin breakpoint support.
	FilterLowDepth Filter = 1 << iota
)

// FilterPass is the empty filter set.
const FilterPass Filter = 0

// Has reports whether all flags in other are set.
func (f Filter) Has(other Filter) bool {
	return f&other == other
}

// String renders the filter set; the empty set renders as "PASS".
func (f Filter) String() string {
	if f == FilterPass {
		return "PASS"
	}

	var flags []string

	if f.Has(FilterLowDepth) {
		flags = append(flags, "LowDepth")
	}

	return strings.Join(flags, ";")
}

// Parameters holds the evidence thresholds used when deciding whether a
// locus has enough data to genotype.
type Parameters struct {
	// MinLocusCoverage is the minimum read depth required to attempt
	// genotyping at all.
	MinLocusCoverage int
	// MinBreakpointSpanningReads is the number of confident alignments
	// expected across each repeat breakpoint of a diploid locus; haploid
	// loci expect half as many.
	MinBreakpointSpanningReads int
}

// Default evidence thresholds.
const (
	DefaultMinLocusCoverage           = 10
	DefaultMinBreakpointSpanningReads = 5
)

// DefaultParameters returns the standard evidence thresholds.
func DefaultParameters() Parameters {
	return Parameters{
		MinLocusCoverage:           DefaultMinLocusCoverage,
		MinBreakpointSpanningReads: DefaultMinBreakpointSpanningReads,
	}
}
