package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/spf13/cobra"
)

// ErrEmptyReport indicates the findings report holds no loci to plot.
var ErrEmptyReport = errors.New("report holds no loci")

// chartDims are the rendered size of each allele support chart.
const (
	chartWidth  = "900px"
	chartHeight = "420px"
)

// NewPlotCommand creates the plot command.
func NewPlotCommand() *cobra.Command {
	var inputPath, outputPath string

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render allele support histograms from a findings report",
		Long: `Render per-variant allele support histograms from a JSON findings
report produced by "ehunter genotype --format json".`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runPlot(inputPath, outputPath)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "Findings report path (json)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "findings.html", "Output HTML path")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func runPlot(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read report: %w", err)
	}

	var report Report

	if err := json.Unmarshal(data, &report); err != nil {
		return fmt.Errorf("decode report: %w", err)
	}

	if len(report.Loci) == 0 {
		return ErrEmptyReport
	}

	page := components.NewPage()
	page.SetLayout(components.PageCenterLayout)

	for _, locus := range report.Loci {
		for _, variant := range locus.Variants {
			page.AddCharts(buildSupportChart(locus.LocusID, variant))
		}
	}

	outputFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer outputFile.Close()

	if err := page.Render(outputFile); err != nil {
		return fmt.Errorf("render charts: %w", err)
	}

	return nil
}

// buildSupportChart renders the three evidence classes of one variant as
// grouped bars over the union of observed repeat sizes.
func buildSupportChart(locusID string, variant VariantReport) *charts.Bar {
	sizes := unionSizes(variant)
	labels := make([]string, len(sizes))

	for i, size := range sizes {
		labels[i] = strconv.Itoa(size)
	}

	subtitle := "no genotype"
	if variant.Genotype != "" {
		subtitle = "genotype " + variant.Genotype + " (" + variant.GenotypeCI + ")"
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{
			Title:    locusID + " / " + variant.VariantID,
			Subtitle: subtitle + ", filter " + variant.Filter,
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Repeat size (units)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Supporting reads"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)

	bar.SetXAxis(labels)
	bar.AddSeries("spanning", barSeries(sizes, variant.Spanning))
	bar.AddSeries("flanking", barSeries(sizes, variant.Flanking))
	bar.AddSeries("inrepeat", barSeries(sizes, variant.Inrepeat))

	return bar
}

func unionSizes(variant VariantReport) []int {
	seen := make(map[int]bool)

	for _, entries := range [][]SizeCount{variant.Spanning, variant.Flanking, variant.Inrepeat} {
		for _, entry := range entries {
			seen[entry.Size] = true
		}
	}

	sizes := make([]int, 0, len(seen))
	for size := range seen {
		sizes = append(sizes, size)
	}

	sort.Ints(sizes)

	return sizes
}

func barSeries(sizes []int, entries []SizeCount) []opts.BarData {
	counts := make(map[int]int, len(entries))
	for _, entry := range entries {
		counts[entry.Size] = entry.Count
	}

	series := make([]opts.BarData, len(sizes))
	for i, size := range sizes {
		series[i] = opts.BarData{Value: counts[size]}
	}

	return series
}
