// Package commands implements CLI command handlers for ehunter.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Archieyoung/ExpansionHunter/pkg/counttable"
	"github.com/Archieyoung/ExpansionHunter/pkg/regionanalysis"
)

// Output format identifiers.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Report is the serializable result of one genotyping run.
type Report struct {
	Loci []LocusReport `json:"loci"`
}

// LocusReport holds the findings of one catalog locus.
type LocusReport struct {
	LocusID        string          `json:"locusId"`
	MeanReadLength int             `json:"meanReadLength"`
	Depth          float64         `json:"depth"`
	Variants       []VariantReport `json:"variants"`
}

// VariantReport holds the findings of one variant.
type VariantReport struct {
	VariantID  string      `json:"variantId"`
	Genotype   string      `json:"genotype,omitempty"`
	GenotypeCI string      `json:"genotypeCI,omitempty"`
	Filter     string      `json:"filter"`
	Spanning   []SizeCount `json:"spanning"`
	Flanking   []SizeCount `json:"flanking"`
	Inrepeat   []SizeCount `json:"inrepeat"`
}

// SizeCount is one count table entry: the number of reads supporting a
// repeat size.
type SizeCount struct {
	Size  int `json:"size"`
	Count int `json:"count"`
}

// TotalReads returns the number of reads tallied for this variant.
func (vr VariantReport) TotalReads() int {
	var total int

	for _, entries := range [][]SizeCount{vr.Spanning, vr.Flanking, vr.Inrepeat} {
		for _, entry := range entries {
			total += entry.Count
		}
	}

	return total
}

// buildLocusReport converts locus findings into the serializable report form.
func buildLocusReport(locusID string, findings regionanalysis.LocusFindings) LocusReport {
	report := LocusReport{
		LocusID:        locusID,
		MeanReadLength: findings.Stats.MeanReadLength,
		Depth:          findings.Stats.Depth,
	}

	variantIDs := make([]string, 0, len(findings.Findings))
	for variantID := range findings.Findings {
		variantIDs = append(variantIDs, variantID)
	}

	sort.Strings(variantIDs)

	for _, variantID := range variantIDs {
		repeatFindings, ok := findings.Findings[variantID].(*regionanalysis.RepeatFindings)
		if !ok {
			continue
		}

		report.Variants = append(report.Variants, buildVariantReport(variantID, repeatFindings))
	}

	return report
}

func buildVariantReport(variantID string, findings *regionanalysis.RepeatFindings) VariantReport {
	report := VariantReport{
		VariantID: variantID,
		Filter:    findings.GenotypeFilter.String(),
		Spanning:  tableEntries(findings.SpanningCounts),
		Flanking:  tableEntries(findings.FlankingCounts),
		Inrepeat:  tableEntries(findings.InrepeatCounts),
	}

	if findings.Genotype != nil {
		report.Genotype = findings.Genotype.String()
		report.GenotypeCI = findings.Genotype.IntervalString()
	}

	return report
}

func tableEntries(countTable *counttable.Table) []SizeCount {
	sizes := countTable.NonzeroElements()
	entries := make([]SizeCount, 0, len(sizes))

	for _, size := range sizes {
		entries = append(entries, SizeCount{Size: size, Count: countTable.Count(size)})
	}

	return entries
}

// renderJSON writes the report as indented JSON.
func renderJSON(w io.Writer, report Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}

// renderText writes the report as a terminal table.
func renderText(w io.Writer, report Report) error {
	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Locus", "Variant", "Genotype", "CI", "Filter", "Reads", "Depth"})

	for _, locus := range report.Loci {
		for _, variant := range locus.Variants {
			genotype := variant.Genotype
			if genotype == "" {
				genotype = "."
			}

			ci := variant.GenotypeCI
			if ci == "" {
				ci = "."
			}

			tw.AppendRow(table.Row{
				locus.LocusID,
				variant.VariantID,
				genotype,
				ci,
				variant.Filter,
				humanize.Comma(int64(variant.TotalReads())),
				fmt.Sprintf("%.1f", locus.Depth),
			})
		}
	}

	tw.Render()

	return nil
}
