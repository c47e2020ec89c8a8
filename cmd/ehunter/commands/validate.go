package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Archieyoung/ExpansionHunter/pkg/catalog"
)

// ErrCatalogInvalid indicates the catalog failed schema validation.
var ErrCatalogInvalid = errors.New("catalog is invalid")

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	var nocolor bool

	cmd := &cobra.Command{
		Use:   "validate <catalog.json|catalog.yaml>",
		Short: "Validate a variant catalog against its schema",
		Long: `Validate a variant catalog file against the canonical catalog schema.

Examples:
  ehunter validate catalog.json
  ehunter validate catalog.yaml --no-color
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args[0], nocolor)
		},
	}

	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	return cmd
}

func runValidate(cmd *cobra.Command, catalogPath string, nocolor bool) error {
	if nocolor {
		color.NoColor = true //nolint:reassign // intentional override of library global
	}

	data, err := os.ReadFile(catalogPath)
	if err != nil {
		return fmt.Errorf("read catalog: %w", err)
	}

	// Schema validation runs on the JSON form; YAML catalogs are converted
	// first.
	if isYAMLPath(catalogPath) {
		data, err = yamlToJSON(data)
		if err != nil {
			return fmt.Errorf("decode catalog: %w", err)
		}
	}

	violations, err := catalog.ValidateSchema(data)
	if err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}

	out := cmd.OutOrStdout()

	if len(violations) == 0 {
		color.New(color.FgGreen).Fprintf(out, "Catalog is valid (%s)\n", catalogPath)

		return nil
	}

	color.New(color.FgRed).Fprintf(out, "Catalog validation failed (%s)\n", catalogPath)
	fmt.Fprintf(out, "\nErrors:\n")

	for _, violation := range violations {
		color.New(color.FgRed).Fprintf(out, "  - %s\n", violation)
	}

	return ErrCatalogInvalid
}

func isYAMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	return ext == ".yaml" || ext == ".yml"
}

func yamlToJSON(data []byte) ([]byte, error) {
	var doc any

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	return json.Marshal(doc)
}
