// Package catalog loads and validates variant catalogs: the locus
// specifications (repeat unit, flanks, expected allele count) that drive
// the analyzers. Catalogs are JSON or YAML files; JSON catalogs are checked
// against an embedded schema.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Archieyoung/ExpansionHunter/pkg/genotyping"
	"github.com/Archieyoung/ExpansionHunter/pkg/graphs"
)

var (
	// ErrUnsupportedFormat is returned for catalog files that are neither
	// JSON nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
	// ErrDuplicateLocus is returned when two loci share an id.
	ErrDuplicateLocus = errors.New("duplicate locus id")
	// ErrInvalidLocus is returned when a locus specification is incomplete
	// or inconsistent.
	ErrInvalidLocus = errors.New("invalid locus specification")
	// ErrEmptyCatalog is returned for catalogs with no loci.
	ErrEmptyCatalog = errors.New("catalog contains no loci")
)

// LocusSpec describes one tandem-repeat locus.
type LocusSpec struct {
	LocusID    string `json:"locusId"    yaml:"locusId"`
	VariantID  string `json:"variantId"  yaml:"variantId"`
	RepeatUnit string `json:"repeatUnit" yaml:"repeatUnit"`
	LeftFlank  string `json:"leftFlank"  yaml:"leftFlank"`
	RightFlank string `json:"rightFlank" yaml:"rightFlank"`
	// AlleleCount is 1 for haploid loci and 2 for diploid ones.
	AlleleCount int `json:"alleleCount" yaml:"alleleCount"`
}

// Graph builds the locus's three-node repeat graph.
func (s LocusSpec) Graph() (*graphs.Graph, error) {
	return graphs.NewRepeatGraph(s.LeftFlank, s.RepeatUnit, s.RightFlank)
}

// Regime returns the locus's allele count regime.
func (s LocusSpec) Regime() genotyping.AlleleCount {
	return genotyping.AlleleCount(s.AlleleCount)
}

// Validate checks the specification for completeness.
func (s LocusSpec) Validate() error {
	if s.LocusID == "" {
		return fmt.Errorf("%w: missing locusId", ErrInvalidLocus)
	}

	if s.VariantID == "" {
		return fmt.Errorf("%w: locus %s is missing variantId", ErrInvalidLocus, s.LocusID)
	}

	if s.AlleleCount != int(genotyping.AlleleCountHaploid) && s.AlleleCount != int(genotyping.AlleleCountDiploid) {
		return fmt.Errorf("%w: locus %s has alleleCount %d, want 1 or 2", ErrInvalidLocus, s.LocusID, s.AlleleCount)
	}

	if _, err := s.Graph(); err != nil {
		return fmt.Errorf("%w: locus %s: %v", ErrInvalidLocus, s.LocusID, err)
	}

	return nil
}

// Catalog is an ordered collection of locus specifications.
type Catalog struct {
	Loci []LocusSpec `json:"loci" yaml:"loci"`
}

// Load reads a catalog file, picking the decoder from the file extension.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseJSON(data)
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ParseJSON decodes and validates a JSON catalog. The document is checked
// against the embedded schema before structural validation.
func ParseJSON(data []byte) (*Catalog, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var c Catalog

	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// ParseYAML decodes and validates a YAML catalog.
func ParseYAML(data []byte) (*Catalog, error) {
	var c Catalog

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Catalog) validate() error {
	if len(c.Loci) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(c.Loci))

	for _, locus := range c.Loci {
		if err := locus.Validate(); err != nil {
			return err
		}

		if _, ok := seen[locus.LocusID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateLocus, locus.LocusID)
		}

		seen[locus.LocusID] = struct{}{}
	}

	return nil
}
