package offer

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/offer.schema.json
var schemaJSON string

var snapshotSchema = jsonschema.MustCompileString("offer.schema.json", schemaJSON)

// Decode parses a wizard snapshot. The raw JSON is checked against the
// structural schema first so shape problems come back as pointer-addressed
// errors instead of type mismatches deep inside the engine.
func Decode(data []byte) (*Offer, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("snapshot is not valid JSON: %w", err)
	}
	if err := snapshotSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("snapshot shape: %w", err)
	}
	var o Offer
	if err := json.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &o, nil
}
