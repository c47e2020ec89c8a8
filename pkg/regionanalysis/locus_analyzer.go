package regionanalysis

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Archieyoung/ExpansionHunter/pkg/catalog"
	"github.com/Archieyoung/ExpansionHunter/pkg/genotyping"
	"github.com/Archieyoung/ExpansionHunter/pkg/graphs"
	"github.com/Archieyoung/ExpansionHunter/pkg/sample"
)

// purityCutoff is the minimum repeat purity for an off-target read to count
// as in-repeat evidence.
const purityCutoff = 0.90

// LocusFindings is the per-locus analysis result: the estimated locus
// statistics plus the findings of every variant, keyed by variant id.
type LocusFindings struct {
	Stats    LocusStats
	Findings map[string]VariantFindings
}

// LocusAnalyzer drives the variant analyzers of one locus over its read
// stream. On-target pairs are routed to every variant analyzer; off-target
// pairs whose mates both look like pure repeat sequence are credited as
// in-repeat read pairs. Not safe for concurrent use.
type LocusAnalyzer struct {
	locusID          string
	graph            *graphs.Graph
	repeatAnalyzer   *RepeatAnalyzer
	variantAnalyzers []VariantAnalyzer
	purity           *PurityCalculator
	statsCalculator  *LocusStatsCalculator
	logger           *slog.Logger
}

// NewLocusAnalyzer creates an analyzer for one catalog locus. A nil logger
// disables diagnostics.
func NewLocusAnalyzer(spec catalog.LocusSpec, params genotyping.Parameters, logger *slog.Logger) (*LocusAnalyzer, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("locus %s: %w", spec.LocusID, err)
	}

	graph, err := spec.Graph()
	if err != nil {
		return nil, fmt.Errorf("locus %s: %w", spec.LocusID, err)
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	repeatAnalyzer := NewRepeatAnalyzer(spec.VariantID, graph, graphs.RepeatNode, params, logger)

	return &LocusAnalyzer{
		locusID:          spec.LocusID,
		graph:            graph,
		repeatAnalyzer:   repeatAnalyzer,
		variantAnalyzers: []VariantAnalyzer{repeatAnalyzer},
		purity:           NewPurityCalculator(spec.RepeatUnit),
		statsCalculator:  NewLocusStatsCalculator(graph, spec.Regime()),
		logger:           logger,
	}, nil
}

// LocusID returns the id of the analyzed locus.
func (la *LocusAnalyzer) LocusID() string {
	return la.locusID
}

// ProcessMates feeds one decoded mate pair to the locus.
func (la *LocusAnalyzer) ProcessMates(pair *sample.MatePair) {
	if pair.Offtarget {
		la.processOfftargetMates(pair.Read, pair.Mate)

		return
	}

	la.statsCalculator.Inspect(pair.Read, pair.ReadAlignment)
	la.statsCalculator.Inspect(pair.Mate, pair.MateAlignment)

	for _, analyzer := range la.variantAnalyzers {
		analyzer.ProcessMates(pair.Read, pair.ReadAlignment, pair.Mate, pair.MateAlignment)
	}
}

// processOfftargetMates credits read pairs that were pulled in from
// elsewhere in the genome because both mates look like pure repeat
// sequence. Such pairs hint at an expansion far beyond the read length.
func (la *LocusAnalyzer) processOfftargetMates(read, mate sample.Read) {
	readIsInrepeat := la.purity.Score(read.Sequence) >= purityCutoff
	mateIsInrepeat := la.purity.Score(mate.Sequence) >= purityCutoff

	if readIsInrepeat && mateIsInrepeat {
		la.logger.Debug("offtarget in-repeat read pair",
			"fragment", read.FragmentID, "locus", la.locusID)
		la.repeatAnalyzer.AddInrepeatReadPair()
	}
}

// Analyze finalizes the locus: estimates locus statistics and collects the
// findings of every variant analyzer. Call exactly once, after the full
// read stream was processed.
func (la *LocusAnalyzer) Analyze() LocusFindings {
	locusStats := la.statsCalculator.Estimate()
	findings := make(map[string]VariantFindings, len(la.variantAnalyzers))

	for _, analyzer := range la.variantAnalyzers {
		findings[analyzer.VariantID()] = analyzer.Analyze(locusStats)
	}

	return LocusFindings{Stats: locusStats, Findings: findings}
}
