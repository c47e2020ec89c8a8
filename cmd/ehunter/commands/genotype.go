package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/Archieyoung/ExpansionHunter/internal/config"
	"github.com/Archieyoung/ExpansionHunter/internal/observability"
	"github.com/Archieyoung/ExpansionHunter/pkg/catalog"
	"github.com/Archieyoung/ExpansionHunter/pkg/genotyping"
	"github.com/Archieyoung/ExpansionHunter/pkg/regionanalysis"
	"github.com/Archieyoung/ExpansionHunter/pkg/sample"
)

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("unknown output format")

// GenotypeCommand holds configuration and dependencies for the genotype
// command.
type GenotypeCommand struct {
	catalogPath string
	readsPath   string
	outputPath  string
	format      string
	configPath  string

	stderr io.Writer
}

// NewGenotypeCommand creates the genotype command.
func NewGenotypeCommand() *cobra.Command {
	gc := &GenotypeCommand{format: FormatText, stderr: os.Stderr}

	cmd := &cobra.Command{
		Use:   "genotype",
		Short: "Genotype repeat loci from aligned reads",
		Long:  "Genotype the repeat loci of a variant catalog from a stream of aligned read pairs.",
		RunE:  gc.run,
	}

	cmd.Flags().StringVarP(&gc.catalogPath, "catalog", "c", "", "Variant catalog path (json or yaml)")
	cmd.Flags().StringVarP(&gc.readsPath, "reads", "r", "", "Aligned read pairs path (json lines)")
	cmd.Flags().StringVarP(&gc.outputPath, "output", "o", "-", "Output path (- for stdout)")
	cmd.Flags().StringVar(&gc.format, "format", FormatText, "Output format: text, json")
	cmd.Flags().StringVar(&gc.configPath, "config", "", "Config file path (default: .ehunter.yaml in CWD or $HOME)")

	_ = cmd.MarkFlagRequired("catalog")
	_ = cmd.MarkFlagRequired("reads")

	return cmd
}

func (gc *GenotypeCommand) run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(gc.configPath)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(gc.stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	metrics := observability.NewMetrics()

	if cfg.Metrics.Enabled {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		go func() {
			serveErr := metrics.Serve(ctx, cfg.Metrics.ListenAddr, logger)
			if serveErr != nil {
				logger.Error("metrics listener failed", "error", serveErr)
			}
		}()
	}

	report, err := gc.genotype(cfg, logger, metrics)
	if err != nil {
		return err
	}

	return gc.render(report)
}

func (gc *GenotypeCommand) genotype(
	cfg *config.Config,
	logger *slog.Logger,
	metrics *observability.Metrics,
) (Report, error) {
	variantCatalog, err := catalog.Load(gc.catalogPath)
	if err != nil {
		return Report{}, err
	}

	analyzers, err := buildLocusAnalyzers(variantCatalog, cfg.Parameters(), logger)
	if err != nil {
		return Report{}, err
	}

	streamErr := gc.streamReads(analyzers, logger, metrics)
	if streamErr != nil {
		return Report{}, streamErr
	}

	return finalize(analyzers, metrics), nil
}

func buildLocusAnalyzers(
	variantCatalog *catalog.Catalog,
	params genotyping.Parameters,
	logger *slog.Logger,
) (map[string]*regionanalysis.LocusAnalyzer, error) {
	analyzers := make(map[string]*regionanalysis.LocusAnalyzer, len(variantCatalog.Loci))

	for _, spec := range variantCatalog.Loci {
		analyzer, err := regionanalysis.NewLocusAnalyzer(spec, params, logger)
		if err != nil {
			return nil, err
		}

		analyzers[spec.LocusID] = analyzer
	}

	return analyzers, nil
}

func (gc *GenotypeCommand) streamReads(
	analyzers map[string]*regionanalysis.LocusAnalyzer,
	logger *slog.Logger,
	metrics *observability.Metrics,
) error {
	readsFile, err := os.Open(gc.readsPath)
	if err != nil {
		return fmt.Errorf("open reads: %w", err)
	}
	defer readsFile.Close()

	reader := sample.NewReader(readsFile)

	for {
		pair, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("read stream: %w", err)
		}

		metrics.MatePairsProcessed.Inc()

		analyzer, found := analyzers[pair.LocusID]
		if !found {
			logger.Debug("mate pair for unknown locus", "locus", pair.LocusID)

			continue
		}

		analyzer.ProcessMates(pair)
	}
}

func finalize(
	analyzers map[string]*regionanalysis.LocusAnalyzer,
	metrics *observability.Metrics,
) Report {
	locusIDs := make([]string, 0, len(analyzers))
	for locusID := range analyzers {
		locusIDs = append(locusIDs, locusID)
	}

	sort.Strings(locusIDs)

	var report Report

	for _, locusID := range locusIDs {
		findings := analyzers[locusID].Analyze()
		metrics.LociAnalyzed.Inc()

		locusReport := buildLocusReport(locusID, findings)
		for _, variant := range locusReport.Variants {
			if variant.Genotype != "" {
				metrics.GenotypesCalled.Inc()
			}

			if variant.Filter != genotyping.FilterPass.String() {
				metrics.LowDepthLoci.Inc()
			}
		}

		report.Loci = append(report.Loci, locusReport)
	}

	return report
}

func (gc *GenotypeCommand) render(report Report) error {
	output := os.Stdout

	if gc.outputPath != "" && gc.outputPath != "-" {
		outputFile, err := os.Create(gc.outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer outputFile.Close()

		output = outputFile
	}

	switch gc.format {
	case FormatJSON:
		return renderJSON(output, report)
	case FormatText:
		return renderText(output, report)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, gc.format)
	}
}
