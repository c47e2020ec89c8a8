package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Archieyoung/ExpansionHunter/pkg/catalog"
	"github.com/Archieyoung/ExpansionHunter/pkg/genotyping"
)

const validJSON = `{
  "loci": [
    {
      "locusId": "HTT",
      "variantId": "HTT_CAG",
      "repeatUnit": "CAG",
      "leftFlank": "ATTCGATTACGG",
      "rightFlank": "TTAGGCCATAGC",
      "alleleCount": 2
    }
  ]
}`

const validYAML = `loci:
  - locusId: AR
    variantId: AR_CAG
    repeatUnit: CAG
    leftFlank: ATTCGATTACGG
    rightFlank: TTAGGCCATAGC
    alleleCount: 1
`

func TestParseJSON(t *testing.T) {
	t.Parallel()

	c, err := catalog.ParseJSON([]byte(validJSON))
	require.NoError(t, err)
	require.Len(t, c.Loci, 1)

	locus := c.Loci[0]
	assert.Equal(t, "HTT", locus.LocusID)
	assert.Equal(t, genotyping.AlleleCountDiploid, locus.Regime())

	g, err := locus.Graph()
	require.NoError(t, err)
	assert.Equal(t, "CAG", g.NodeSeq(1))
}

func TestParseYAML(t *testing.T) {
	t.Parallel()

	c, err := catalog.ParseYAML([]byte(validYAML))
	require.NoError(t, err)
	require.Len(t, c.Loci, 1)
	assert.Equal(t, genotyping.AlleleCountHaploid, c.Loci[0].Regime())
}

func TestParseJSONRejectsSchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
	}{
		{name: "bad allele count", doc: `{"loci":[{"locusId":"X","variantId":"Y","repeatUnit":"CAG","leftFlank":"ACGT","rightFlank":"ACGT","alleleCount":3}]}`},
		{name: "bad repeat unit", doc: `{"loci":[{"locusId":"X","variantId":"Y","repeatUnit":"C-G","leftFlank":"ACGT","rightFlank":"ACGT","alleleCount":2}]}`},
		{name: "missing variant id", doc: `{"loci":[{"locusId":"X","repeatUnit":"CAG","leftFlank":"ACGT","rightFlank":"ACGT","alleleCount":2}]}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := catalog.ParseJSON([]byte(tt.doc))
			require.ErrorIs(t, err, catalog.ErrInvalidLocus)
		})
	}
}

func TestValidateSchemaReportsViolations(t *testing.T) {
	t.Parallel()

	violations, err := catalog.ValidateSchema([]byte(`{"loci":[{"locusId":"X"}]}`))
	require.NoError(t, err)
	assert.NotEmpty(t, violations)

	violations, err = catalog.ValidateSchema([]byte(validJSON))
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestParseRejectsDuplicateLoci(t *testing.T) {
	t.Parallel()

	doc := `loci:
  - {locusId: A, variantId: V1, repeatUnit: CAG, leftFlank: ACGT, rightFlank: ACGT, alleleCount: 2}
  - {locusId: A, variantId: V2, repeatUnit: CTG, leftFlank: ACGT, rightFlank: ACGT, alleleCount: 2}
`

	_, err := catalog.ParseYAML([]byte(doc))
	require.ErrorIs(t, err, catalog.ErrDuplicateLocus)
}

func TestParseRejectsEmptyCatalog(t *testing.T) {
	t.Parallel()

	_, err := catalog.ParseYAML([]byte("loci: []\n"))
	require.ErrorIs(t, err, catalog.ErrEmptyCatalog)
}

func TestLoadPicksDecoderByExtension(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(validJSON), 0o600))

	yamlPath := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(validYAML), 0o600))

	fromJSON, err := catalog.Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "HTT", fromJSON.Loci[0].LocusID)

	fromYAML, err := catalog.Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "AR", fromYAML.Loci[0].LocusID)

	txtPath := filepath.Join(dir, "catalog.txt")
	require.NoError(t, os.WriteFile(txtPath, []byte(validJSON), 0o600))

	_, err = catalog.Load(txtPath)
	require.ErrorIs(t, err, catalog.ErrUnsupportedFormat)
}
