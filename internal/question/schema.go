package question

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://coding-question.json"

const questionSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["question", "difficulty", "category", "hints", "solution", "test_cases"],
  "properties": {
    "question":   {"type": "string"},
    "difficulty": {"type": "string"},
    "category":   {"type": "string"},
    "hints":      {"type": "array", "items": {"type": "string"}},
    "solution":   {"type": "string"},
    "test_cases": {
      "type": "array",
      "minItems": 3,
      "items": {
        "type": "object",
        "required": ["input", "expected_output"],
        "properties": {
          "input":           {"type": "string"},
          "expected_output": {"type": "string"}
        }
      }
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(questionSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse question schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add question schema: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// CheckConformance validates raw JSON against the CodingQuestion schema,
// catching wrongly typed values that ValidateShape lets through.
func CheckConformance(raw []byte) error {
	schema, err := loadSchema()
	if err != nil {
		return err
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	if err := schema.Validate(inst); err != nil {
		return &ValidationError{Message: fmt.Sprintf("Response does not match the question schema: %v", err)}
	}
	return nil
}
