package catalog

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Schema is the JSON schema a JSON catalog document must satisfy.
const Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Variant catalog",
  "type": "object",
  "required": ["loci"],
  "properties": {
    "loci": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["locusId", "variantId", "repeatUnit", "leftFlank", "rightFlank", "alleleCount"],
        "properties": {
          "locusId": {"type": "string", "minLength": 1},
          "variantId": {"type": "string", "minLength": 1},
          "repeatUnit": {"type": "string", "pattern": "^[ACGTNacgtn]+$"},
          "leftFlank": {"type": "string", "pattern": "^[ACGTNacgtn]+$"},
          "rightFlank": {"type": "string", "pattern": "^[ACGTNacgtn]+$"},
          "alleleCount": {"type": "integer", "enum": [1, 2]}
        },
        "additionalProperties": false
      }
    }
  },
  "additionalProperties": false
}`

// ValidateSchema checks a raw JSON catalog document against the schema and
// returns the individual violations, empty when the document is valid.
func ValidateSchema(data []byte) ([]string, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(Schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil, nil
	}

	violations := make([]string, 0, len(result.Errors()))

	for _, resultError := range result.Errors() {
		violations = append(violations, resultError.String())
	}

	return violations, nil
}

func validateSchema(data []byte) error {
	violations, err := ValidateSchema(data)
	if err != nil {
		return err
	}

	if len(violations) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidLocus, violations[0])
	}

	return nil
}
