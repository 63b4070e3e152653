// Where: internal/config/validator.go
// What: Schema validation for the archetype catalog.
// Why: Reject malformed catalogs with precise errors before any mvn call.
package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

//go:embed schema/archetypes.schema.json
var catalogSchemaJSON string

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema
)

func validateCatalog(content []byte) error {
	sch, err := loadCatalogSchema()
	if err != nil {
		return err
	}

	jsonData, err := yaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}

	return sch.Validate(document)
}

func loadCatalogSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("archetypes.schema.json", strings.NewReader(catalogSchemaJSON)); err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = compiler.Compile("archetypes.schema.json")
	})
	return compiledSchema, schemaErr
}
