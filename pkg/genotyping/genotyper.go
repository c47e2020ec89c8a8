package genotyping

import (
	"math"

	"github.com/Archieyoung/ExpansionHunter/pkg/counttable"
	"github.com/Archieyoung/ExpansionHunter/pkg/mathutil"
)

const (
	// spanningErrorDecay is the per-unit geometric decay applied to the
	// error mass of a spanning observation that disagrees with an allele.
	spanningErrorDecay = 0.5
	// lowerBoundViolationProb is the residual probability of a flanking or
	// in-repeat observation implying more units than an allele holds.
	lowerBoundViolationProb = 1e-4
)

// RepeatGenotyper searches a candidate allele-size list for the maximum
// likelihood genotype given the accumulated evidence tables. All tables
// are expected to be size-collapsed already.
type RepeatGenotyper struct {
	haplotypeDepth       float64
	alleleCount          AlleleCount
	unitLen              int
	maxUnitsInRead       int
	propCorrectMolecules float64
	spanning             *counttable.Table
	flanking             *counttable.Table
	inrepeat             *counttable.Table
	inrepeatPairCount    int
}

// NewRepeatGenotyper creates a genotyper over the given evidence.
// unitLen must be positive; this is a caller precondition.
func NewRepeatGenotyper(
	haplotypeDepth float64,
	alleleCount AlleleCount,
	unitLen int,
	maxUnitsInRead int,
	propCorrectMolecules float64,
	spanning, flanking, inrepeat *counttable.Table,
	inrepeatPairCount int,
) *RepeatGenotyper {
	return &RepeatGenotyper{
		haplotypeDepth:       haplotypeDepth,
		alleleCount:          alleleCount,
		unitLen:              unitLen,
		maxUnitsInRead:       maxUnitsInRead,
		propCorrectMolecules: propCorrectMolecules,
		spanning:             spanning,
		flanking:             flanking,
		inrepeat:             inrepeat,
		inrepeatPairCount:    inrepeatPairCount,
	}
}

// GenotypeRepeat returns the maximum likelihood genotype over the candidate
// allele sizes, or nil when there is no evidence to genotype from.
func (g *RepeatGenotyper) GenotypeRepeat(candidateSizes []int) *Genotype {
	if len(candidateSizes) == 0 {
		return nil
	}

	totalEvidence := g.spanning.TotalCount() + g.flanking.TotalCount() + g.inrepeat.TotalCount()
	if totalEvidence == 0 {
		return nil
	}

	if g.alleleCount == AlleleCountHaploid {
		return g.genotypeHaploid(candidateSizes)
	}

	return g.genotypeDiploid(candidateSizes)
}

func (g *RepeatGenotyper) genotypeHaploid(candidateSizes []int) *Genotype {
	bestSize := candidateSizes[0]
	bestLL := math.Inf(-1)

	for _, size := range candidateSizes {
		if ll := g.logLikelihood([]int{size}); ll > bestLL {
			bestLL = ll
			bestSize = size
		}
	}

	return &Genotype{Alleles: []Allele{g.makeAllele(bestSize)}}
}

func (g *RepeatGenotyper) genotypeDiploid(candidateSizes []int) *Genotype {
	bestShort, bestLong := candidateSizes[0], candidateSizes[0]
	bestLL := math.Inf(-1)

	for i, short := range candidateSizes {
		for _, long := range candidateSizes[i:] {
			if ll := g.logLikelihood([]int{short, long}); ll > bestLL {
				bestLL = ll
				bestShort, bestLong = short, long
			}
		}
	}

	if bestLong < bestShort {
		bestShort, bestLong = bestLong, bestShort
	}

	return &Genotype{Alleles: []Allele{g.makeAllele(bestShort), g.makeAllele(bestLong)}}
}

// logLikelihood scores an allele combination against all three evidence
// tables. Observations are mixed evenly across alleles.
func (g *RepeatGenotyper) logLikelihood(alleles []int) float64 {
	var ll float64

	for _, observed := range g.spanning.NonzeroElements() {
		prob := g.mixtureProb(observed, alleles, g.spanningProb)
		ll += float64(g.spanning.Count(observed)) * math.Log(prob)
	}

	for _, observed := range g.flanking.NonzeroElements() {
		prob := g.mixtureProb(observed, alleles, lowerBoundProb)
		ll += float64(g.flanking.Count(observed)) * math.Log(prob)
	}

	for _, observed := range g.inrepeat.NonzeroElements() {
		prob := g.mixtureProb(observed, alleles, lowerBoundProb)
		ll += float64(g.inrepeat.Count(observed)) * math.Log(prob)
	}

	return ll
}

func (g *RepeatGenotyper) mixtureProb(observed int, alleles []int, perAllele func(int, int) float64) float64 {
	var prob float64

	for _, allele := range alleles {
		prob += perAllele(observed, allele)
	}

	return prob / float64(len(alleles))
}

// spanningProb models a spanning read as reporting its allele's exact size
// with probability propCorrectMolecules; the error mass decays
// geometrically with the size disagreement.
func (g *RepeatGenotyper) spanningProb(observed, allele int) float64 {
	if observed == allele {
		return g.propCorrectMolecules
	}

	diff := observed - allele
	if diff < 0 {
		diff = -diff
	}

	return (1 - g.propCorrectMolecules) * math.Pow(spanningErrorDecay, float64(diff))
}

// lowerBoundProb models a flanking or in-repeat read: it proves only that
// the allele holds at least the observed number of units, so any observed
// value up to the allele size is equally likely.
func lowerBoundProb(observed, allele int) float64 {
	if observed <= allele {
		return 1 / float64(allele+1)
	}

	return lowerBoundViolationProb
}

// makeAllele attaches a confidence interval to a called size. Sizes backed
// by direct spanning observations are exact. Sizes inferred from partial
// evidence are lower bounds: their upper bound starts at the read-length
// cap and is pushed further out by in-repeat reads and read pairs in
// proportion to the per-haplotype depth.
func (g *RepeatGenotyper) makeAllele(size int) Allele {
	if g.spanning.Count(size) > 0 {
		return Allele{Size: size, CI: Interval{Lower: size, Upper: size}}
	}

	upper := mathutil.Max(size, g.maxUnitsInRead)

	irrReads := g.inrepeat.TotalCount() + 2*g.inrepeatPairCount
	if irrReads > 0 && g.haplotypeDepth > 0 {
		upper += int(math.Round(float64(irrReads) / g.haplotypeDepth * float64(g.maxUnitsInRead)))
	}

	return Allele{Size: size, CI: Interval{Lower: size, Upper: upper}}
}
