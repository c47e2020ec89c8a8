package regionanalysis

import (
	"io"
	"log/slog"

	"github.com/Archieyoung/ExpansionHunter/pkg/alignment"
	"github.com/Archieyoung/ExpansionHunter/pkg/counttable"
	"github.com/Archieyoung/ExpansionHunter/pkg/genotyping"
	"github.com/Archieyoung/ExpansionHunter/pkg/graphs"
	"github.com/Archieyoung/ExpansionHunter/pkg/mathutil"
	"github.com/Archieyoung/ExpansionHunter/pkg/sample"
	"github.com/Archieyoung/ExpansionHunter/pkg/stats"
)

// propCorrectMolecules is the assumed base-calling and mapping accuracy
// handed to the genotyper. Calibrated externally; do not re-tune.
const propCorrectMolecules = 0.97

// RepeatAnalyzer accumulates read-level evidence for one repeat variant and
// estimates its genotype on demand. Create one instance per locus per
// sample, feed it every overlapping read pair in any order, then call
// Analyze exactly once. Instances are not safe for concurrent use.
type RepeatAnalyzer struct {
	variantID  string
	graph      *graphs.Graph
	repeatNode graphs.NodeID
	repeatUnit string
	params     genotyping.Parameters

	classifier      *alignment.RepeatClassifier
	statsCalculator *alignment.VariantAlignmentStatsCalculator

	spanningCounts    *counttable.Table
	flankingCounts    *counttable.Table
	inrepeatCounts    *counttable.Table
	inrepeatPairCount int

	logger *slog.Logger
}

// NewRepeatAnalyzer creates an analyzer for the repeat at repeatNode of the
// locus graph. A nil logger disables diagnostics.
func NewRepeatAnalyzer(
	variantID string,
	graph *graphs.Graph,
	repeatNode graphs.NodeID,
	params genotyping.Parameters,
	logger *slog.Logger,
) *RepeatAnalyzer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &RepeatAnalyzer{
		variantID:       variantID,
		graph:           graph,
		repeatNode:      repeatNode,
		repeatUnit:      graph.NodeSeq(repeatNode),
		params:          params,
		classifier:      alignment.NewRepeatClassifier(graph, repeatNode),
		statsCalculator: alignment.NewVariantAlignmentStatsCalculator(repeatNode),
		spanningCounts:  counttable.New(),
		flankingCounts:  counttable.New(),
		inrepeatCounts:  counttable.New(),
		logger:          logger,
	}
}

// VariantID implements VariantAnalyzer.
func (a *RepeatAnalyzer) VariantID() string {
	return a.variantID
}

// RepeatUnit returns the repeat unit sequence.
func (a *RepeatAnalyzer) RepeatUnit() string {
	return a.repeatUnit
}

// AddInrepeatReadPair credits an off-target read pair whose mates both look
// like pure repeat sequence.
func (a *RepeatAnalyzer) AddInrepeatReadPair() {
	a.inrepeatPairCount++
}

// ProcessMates classifies and screens both alignments of a mate pair and
// folds the surviving evidence into the count tables. Mates contribute
// independently; the only pair-level signal is both mates classifying as
// fully in-repeat, which implies an allele too long for a single read to
// span.
func (a *RepeatAnalyzer) ProcessMates(
	read sample.Read, readAln graphs.Alignment,
	mate sample.Read, mateAln graphs.Alignment,
) {
	readStats := a.classifier.ClassifyAlignment(readAln)
	mateStats := a.classifier.ClassifyAlignment(mateAln)

	a.processAlignment(read, readAln, readStats)
	a.processAlignment(mate, mateAln, mateStats)

	if readStats.CanonicalType == alignment.TypeInside && mateStats.CanonicalType == alignment.TypeInside {
		a.inrepeatPairCount++
	}
}

func (a *RepeatAnalyzer) processAlignment(
	read sample.Read, aln graphs.Alignment, alnStats alignment.RepeatAlignmentStats,
) {
	if !checkAlignmentConfidence(a.repeatNode, aln, alnStats) {
		a.logger.Debug("discarding unconfident alignment",
			"read", read.ReadID(), "variant", a.variantID, "alignment", aln.String())

		return
	}

	a.logger.Debug("classified alignment",
		"read", read.ReadID(), "variant", a.variantID, "type", alnStats.CanonicalType.String())

	a.statsCalculator.Inspect(aln)
	a.tally(alnStats)
}

func (a *RepeatAnalyzer) tally(alnStats alignment.RepeatAlignmentStats) {
	switch alnStats.CanonicalType {
	case alignment.TypeSpans:
		a.spanningCounts.Increment(alnStats.NumUnitsSpanned)
	case alignment.TypeFlanks:
		a.flankingCounts.Increment(alnStats.NumUnitsSpanned)
	case alignment.TypeInside:
		a.inrepeatCounts.Increment(alnStats.NumUnitsSpanned)
	case alignment.TypeOutside:
		// No repeat evidence.
	}
}

// checkAlignmentConfidence decides whether an alignment is trustworthy
// enough to count as evidence. Spanning alignments must be anchored in both
// flanks: a single bad anchor invalidates the span claim. Flanking
// alignments need at least one reliable anchor.
func checkAlignmentConfidence(
	repeatNode graphs.NodeID, aln graphs.Alignment, alnStats alignment.RepeatAlignmentStats,
) bool {
	if !alignment.PassesAlignmentFilters(aln) {
		return false
	}

	goodUpstreamFlank := alignment.IsUpstreamFlankGood(repeatNode, aln)
	goodDownstreamFlank := alignment.IsDownstreamFlankGood(repeatNode, aln)

	if alnStats.CanonicalType == alignment.TypeFlanks && !goodUpstreamFlank && !goodDownstreamFlank {
		return false
	}

	if alnStats.CanonicalType == alignment.TypeSpans && (!goodUpstreamFlank || !goodDownstreamFlank) {
		return false
	}

	return true
}

// generateCandidateAlleleSizes builds the allele sizes worth considering.
// Spanning reads give direct size evidence; flanking and in-repeat reads
// only prove a lower bound, so the single longest such bound is added as
// one extra candidate instead of flooding the genotyper with every partial
// observation.
func generateCandidateAlleleSizes(spanning, flanking, inrepeat *counttable.Table) []int {
	candidateSizes := spanning.NonzeroElements()

	longestSpanning := stats.Max(candidateSizes)
	longestFlanking := stats.Max(flanking.NonzeroElements())
	longestInrepeat := stats.Max(inrepeat.NonzeroElements())

	longestNonSpanning := mathutil.Max(longestFlanking, longestInrepeat)

	if longestSpanning < longestNonSpanning {
		candidateSizes = append(candidateSizes, longestNonSpanning)
	}

	return candidateSizes
}

// Analyze selects genotyping parameters from the locus statistics, runs the
// genotyper over the collapsed evidence tables and packages the verdict.
// Insufficient data is expressed as an absent genotype plus filter flags,
// never an error.
func (a *RepeatAnalyzer) Analyze(locusStats LocusStats) VariantFindings {
	genotypeFilter := genotyping.FilterPass
	spanning := a.spanningCounts.Clone()
	flanking := a.flankingCounts.Clone()
	inrepeat := a.inrepeatCounts.Clone()

	var genotype *genotyping.Genotype

	if locusStats.MeanReadLength == 0 || locusStats.Depth < float64(a.params.MinLocusCoverage) {
		genotypeFilter |= genotyping.FilterLowDepth
	} else {
		unitLength := len(a.repeatUnit)
		maxNumUnitsInRead := mathutil.CeilDiv(locusStats.MeanReadLength, unitLength)

		// Observations implying more units than fit in a single read are
		// alignment noise; fold them into the cap.
		spanning = counttable.CollapseTop(spanning, maxNumUnitsInRead)
		flanking = counttable.CollapseTop(flanking, maxNumUnitsInRead)
		inrepeat = counttable.CollapseTop(inrepeat, maxNumUnitsInRead)

		candidateAlleleSizes := generateCandidateAlleleSizes(spanning, flanking, inrepeat)

		haplotypeDepth := locusStats.Depth
		if locusStats.AlleleCount == genotyping.AlleleCountDiploid {
			haplotypeDepth = locusStats.Depth / 2
		}

		minBreakpointSpanningReads := a.params.MinBreakpointSpanningReads
		if locusStats.AlleleCount != genotyping.AlleleCountDiploid {
			minBreakpointSpanningReads /= 2
		}

		genotyper := genotyping.NewRepeatGenotyper(
			haplotypeDepth, locusStats.AlleleCount, unitLength, maxNumUnitsInRead,
			propCorrectMolecules, spanning, flanking, inrepeat, a.inrepeatPairCount)
		genotype = genotyper.GenotypeRepeat(candidateAlleleSizes)

		alignmentStats := a.statsCalculator.Stats()
		if alignmentStats.NumReadsSpanningLeftBreakpoint < minBreakpointSpanningReads ||
			alignmentStats.NumReadsSpanningRightBreakpoint < minBreakpointSpanningReads {
			genotypeFilter |= genotyping.FilterLowDepth
		}
	}

	return &RepeatFindings{
		SpanningCounts: spanning,
		FlankingCounts: flanking,
		InrepeatCounts: inrepeat,
		AlleleCount:    locusStats.AlleleCount,
		Genotype:       genotype,
		GenotypeFilter: genotypeFilter,
	}
}
