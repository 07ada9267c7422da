package simulation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaURL is only an identifier; the document is served from memory.
const schemaURL = "https://github.com/lao-tseu-is-alive/go-flocking-simulation/config.schema.json"

//go:embed config.schema.json
var schemaJSON string

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// Schema returns the compiled JSON schema of Config.
func Schema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiledSchema, schemaErr = jsonschema.CompileString(schemaURL, schemaJSON)
	})
	return compiledSchema, schemaErr
}

// SchemaJSON returns the raw schema document, e.g. for `flocking validate --schema`.
func SchemaJSON() string {
	return schemaJSON
}

// ValidateDocument checks a decoded JSON document (as produced by
// encoding/json into an interface{}) against the config schema.
func ValidateDocument(doc any) error {
	sch, err := Schema()
	if err != nil {
		return fmt.Errorf("failed to compile schema: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// ValidateJSON checks raw JSON bytes against the config schema.
func ValidateJSON(raw []byte) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("failed to decode config json: %w", err)
	}
	return ValidateDocument(doc)
}

// ValidateStruct marshals cfg with its json tags and checks the result
// against the schema, so configs built in code or decoded from other
// formats go through the same rules as JSON files.
func ValidateStruct(cfg *Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return ValidateJSON(raw)
}
