package schema

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// CompileYAMLSchema compiles a YAML-authored JSON Schema document the same
// way CompileJSONSchema compiles a JSON one. YAML has no native schema
// compiler in the pack, so this normalizes to JSON first and reuses the
// real compiler rather than hand-rolling YAML keyword handling.
func CompileYAMLSchema(document []byte) (Node, error) {
	var raw any
	if err := yaml.Unmarshal(document, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal yaml schema: %w", err)
	}
	jsonDoc, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("normalize yaml schema to json: %w", err)
	}
	return CompileJSONSchema(jsonDoc)
}
