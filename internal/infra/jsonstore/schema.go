package jsonstore

import (
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "tasklist.schema.json"

// taskListSchemaSource describes the persisted file. Unknown fields are allowed.
const taskListSchemaSource = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["tasks"],
  "properties": {
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "description", "done"],
        "properties": {
          "id": {"type": "integer", "minimum": 0, "maximum": 4294967295},
          "description": {"type": "string"},
          "done": {"type": "boolean"}
        }
      }
    }
  }
}`

var taskListSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	schema, err := compileSchema()
	if err != nil {
		panic(err)
	}
	return schema
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaURL, strings.NewReader(taskListSchemaSource)); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	schema, err := compiler.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	return schema, nil
}
