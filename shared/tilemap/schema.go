package tilemap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const documentSchemaURL = "tilefarm://schemas/map.json"

const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["width", "height", "tiles"],
  "properties": {
    "width":  {"type": "integer", "minimum": 1},
    "height": {"type": "integer", "minimum": 1},
    "tiles": {
      "type": "array",
      "items": {"type": "array", "items": {"type": "integer", "minimum": 0}}
    },
    "collision": {
      "type": "array",
      "items": {"type": "array", "items": {"type": "integer", "enum": [0, 1]}}
    },
    "tilesetCols": {"type": "integer", "minimum": 1},
    "spawn": {
      "type": "object",
      "required": ["x", "y"],
      "properties": {
        "x": {"type": "number"},
        "y": {"type": "number"}
      }
    }
  }
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func documentValidator() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString(documentSchemaURL, documentSchema)
	})
	return compiledSchema, schemaErr
}

// validateDocument checks raw JSON against the map schema before decoding.
func validateDocument(raw []byte) error {
	schema, err := documentValidator()
	if err != nil {
		return fmt.Errorf("compile map schema: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedMap, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedMap, err)
	}
	return nil
}
