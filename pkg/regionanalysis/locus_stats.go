package regionanalysis

import (
	"math"

	"github.com/Archieyoung/ExpansionHunter/pkg/genotyping"
	"github.com/Archieyoung/ExpansionHunter/pkg/graphs"
	"github.com/Archieyoung/ExpansionHunter/pkg/sample"
	"github.com/Archieyoung/ExpansionHunter/pkg/stats"
)

// LocusStats summarizes the sequencing evidence available at a locus.
type LocusStats struct {
	AlleleCount    genotyping.AlleleCount
	MeanReadLength int
	Depth          float64
}

// LocusStatsCalculator estimates read length and depth from the alignments
// streamed through a locus analyzer.
type LocusStatsCalculator struct {
	alleleCount  genotyping.AlleleCount
	locusLength  int
	readLengths  []float64
	alignedBases int
}

// NewLocusStatsCalculator creates a calculator for the given locus graph.
func NewLocusStatsCalculator(graph *graphs.Graph, alleleCount genotyping.AlleleCount) *LocusStatsCalculator {
	var locusLength int

	for node, numNodes := 0, graph.NumNodes(); node < numNodes; node++ {
		locusLength += graph.NodeLength(graphs.NodeID(node))
	}

	return &LocusStatsCalculator{alleleCount: alleleCount, locusLength: locusLength}
}

// Inspect records one aligned read.
func (c *LocusStatsCalculator) Inspect(read sample.Read, aln graphs.Alignment) {
	c.readLengths = append(c.readLengths, float64(read.Length()))
	c.alignedBases += aln.NumAlignedBases()
}

// Estimate returns the locus statistics accumulated so far.
func (c *LocusStatsCalculator) Estimate() LocusStats {
	locusStats := LocusStats{AlleleCount: c.alleleCount}

	if len(c.readLengths) == 0 {
		return locusStats
	}

	locusStats.MeanReadLength = int(math.Round(stats.Mean(c.readLengths)))
	locusStats.Depth = float64(c.alignedBases) / float64(c.locusLength)

	return locusStats
}
