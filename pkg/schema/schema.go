// Package schema embeds the JSON Schema for the AST serialization
// contract and validates serialized nodes against it, turning the
// serialization contract's field names into something tooling can check
// mechanically instead of just reading about.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed node.schema.json
var nodeSchemaJSON []byte

var nodeSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()

	if err := compiler.AddResource("node.schema.json", bytes.NewReader(nodeSchemaJSON)); err != nil {
		panic(fmt.Sprintf("schema: failed to register embedded node schema: %v", err))
	}

	schema, err := compiler.Compile("node.schema.json")
	if err != nil {
		panic(fmt.Sprintf("schema: failed to compile embedded node schema: %v", err))
	}

	nodeSchema = schema
}

// ValidateNodeJSON checks that raw (a JSON-encoded AST node, as produced
// by ast.MarshalNode) conforms to the serialization contract.
func ValidateNodeJSON(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("schema: invalid JSON: %w", err)
	}

	if err := nodeSchema.Validate(v); err != nil {
		return fmt.Errorf("schema: node does not conform to the serialization contract: %w", err)
	}

	return nil
}
