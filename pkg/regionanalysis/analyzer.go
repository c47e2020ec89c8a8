// Package regionanalysis turns streams of aligned read pairs into genotype
// findings for the variants of a locus. Evidence is accumulated read pair
// by read pair and analyzed exactly once at end of stream.
package regionanalysis

import (
	"github.com/Archieyoung/ExpansionHunter/pkg/counttable"
	"github.com/Archieyoung/ExpansionHunter/pkg/genotyping"
	"github.com/Archieyoung/ExpansionHunter/pkg/graphs"
	"github.com/Archieyoung/ExpansionHunter/pkg/sample"
)

// VariantAnalyzer accumulates aligned mate pairs for one variant of a locus
// and produces findings once the read stream is exhausted. Implementations
// are not safe for concurrent use; drive one instance from one goroutine.
type VariantAnalyzer interface {
	// VariantID identifies the variant within its locus.
	VariantID() string
	// ProcessMates feeds both alignments of a mate pair. Mates are
	// classified and counted independently.
	ProcessMates(read sample.Read, readAln graphs.Alignment, mate sample.Read, mateAln graphs.Alignment)
	// Analyze produces the final findings. Call it exactly once, after all
	// ProcessMates calls; it does not mutate the accumulated state.
	Analyze(stats LocusStats) VariantFindings
}

// VariantFindings is the result of analyzing one variant. RepeatFindings is
// the only concrete kind today; the interface keeps room for other variant
// classes.
type VariantFindings interface {
	// Filter returns the soft warning flags attached to the result.
	Filter() genotyping.Filter
}

// RepeatFindings bundles the final evidence tables and the optional
// genotype for a repeat variant. It is immutable once returned.
type RepeatFindings struct {
	SpanningCounts *counttable.Table
	FlankingCounts *counttable.Table
	InrepeatCounts *counttable.Table
	AlleleCount    genotyping.AlleleCount
	// Genotype is nil when the estimator could not produce a confident call.
	Genotype       *genotyping.Genotype
	GenotypeFilter genotyping.Filter
}

// Filter implements VariantFindings.
func (f *RepeatFindings) Filter() genotyping.Filter {
	return f.GenotypeFilter
}
