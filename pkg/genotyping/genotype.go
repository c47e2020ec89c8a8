package genotyping

import (
	"fmt"
	"strings"
)

// Interval is an inclusive confidence interval over repeat-unit counts.
type Interval struct {
	Lower int `json:"lower" yaml:"lower"`
	Upper int `json:"upper" yaml:"upper"`
}

// String renders the interval as "lower-upper".
func (i Interval) String() string {
	return fmt.Sprintf("%d-%d", i.Lower, i.Upper)
}

// Allele is one called allele: a size in repeat units plus its confidence
// interval. Sizes backed by spanning reads get degenerate intervals; sizes
// inferred from partial evidence get wide ones.
type Allele struct {
	Size int      `json:"size" yaml:"size"`
	CI   Interval `json:"ci"   yaml:"ci"`
}

// Genotype is a called repeat genotype: one allele for haploid loci, two
// for diploid ones, in ascending size order.
type Genotype struct {
	Alleles []Allele `json:"alleles" yaml:"alleles"`
}

// ShortAllele returns the smallest called allele.
func (g Genotype) ShortAllele() Allele {
	return g.Alleles[0]
}

// LongAllele returns the largest called allele.
func (g Genotype) LongAllele() Allele {
	return g.Alleles[len(g.Alleles)-1]
}

// String renders allele sizes as "short/long", e.g. "5/8".
func (g Genotype) String() string {
	sizes := make([]string, len(g.Alleles))

	for i, allele := range g.Alleles {
		sizes[i] = fmt.Sprintf("%d", allele.Size)
	}

	return strings.Join(sizes, "/")
}

// IntervalString renders the confidence intervals as "lo-hi/lo-hi".
func (g Genotype) IntervalString() string {
	intervals := make([]string, len(g.Alleles))

	for i, allele := range g.Alleles {
		intervals[i] = allele.CI.String()
	}

	return strings.Join(intervals, "/")
}
