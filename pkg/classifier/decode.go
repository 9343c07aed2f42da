package classifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const resultSchemaJSON = `{
	"type": "object",
	"properties": {
		"suggested_category": {"type": "string", "minLength": 1},
		"suggested_priority": {"type": "string", "minLength": 1}
	},
	"required": ["suggested_category", "suggested_priority"],
	"additionalProperties": false
}`

var resultSchema = jsonschema.MustCompileString("classification_result.json", resultSchemaJSON)

// DecodeResult parses text as a JSON object holding exactly
// suggested_category and suggested_priority as non-empty strings. Values are
// not checked against the enumerations.
func DecodeResult(text string) (Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Result{}, fmt.Errorf("%w: empty content", ErrMalformedOutput)
	}

	var doc any
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrMalformedOutput, err)
	}

	if err := resultSchema.Validate(doc); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrMalformedOutput, err)
	}

	var result Result
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return Result{}, fmt.Errorf("%w: %w", ErrMalformedOutput, err)
	}

	return result, nil
}
