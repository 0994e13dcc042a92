package toolkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	invopop "github.com/invopop/jsonschema"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
)

// ParameterSchemaFor reflects an OpenAI-compatible JSON parameter schema from
// the given arguments struct. Plugins use it so schemas and argument structs
// cannot drift apart.
func ParameterSchemaFor(target any) map[string]any {
	reflector := invopop.Reflector{
		Anonymous:      true,
		DoNotReference: true,
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(target)
	schema.Version = ""

	raw, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("toolkit: reflecting parameter schema: %v", err))
	}
	var params map[string]any
	if err := json.Unmarshal(raw, &params); err != nil {
		panic(fmt.Sprintf("toolkit: decoding parameter schema: %v", err))
	}
	return params
}

// compiledSchema validates tool-call arguments against one tool's parameter
// schema.
type compiledSchema struct {
	schema *jsonschema.Schema
}

func compileToolSchema(schema domain.ToolSchema) (*compiledSchema, error) {
	if schema.Parameters == nil {
		return &compiledSchema{}, nil
	}
	raw, err := json.Marshal(schema.Parameters)
	if err != nil {
		return nil, err
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	resource := "tool://" + schema.Name + "/parameters.json"
	if err := compiler.AddResource(resource, doc); err != nil {
		return nil, err
	}
	compiled, err := compiler.Compile(resource)
	if err != nil {
		return nil, err
	}
	return &compiledSchema{schema: compiled}, nil
}

// Validate checks one JSON arguments document. Empty arguments validate as an
// empty object.
func (c *compiledSchema) Validate(arguments string) error {
	if c.schema == nil {
		return nil
	}
	if strings.TrimSpace(arguments) == "" {
		arguments = "{}"
	}
	instance, err := jsonschema.UnmarshalJSON(strings.NewReader(arguments))
	if err != nil {
		return fmt.Errorf("arguments are not valid JSON: %w", err)
	}
	if err := c.schema.Validate(instance); err != nil {
		return fmt.Errorf("arguments do not match tool schema: %w", err)
	}
	return nil
}

// UnmarshalToolInput unmarshals tool-call arguments from a JSON string into
// the target struct, ensuring that only a single JSON object is present and
// that there are no unknown fields.
func UnmarshalToolInput(arguments string, target any) error {
	if strings.TrimSpace(arguments) == "" {
		arguments = "{}"
	}
	decoder := json.NewDecoder(strings.NewReader(arguments))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return err
	}

	// Reject trailing JSON values after the first object.
	var extra any
	if err := decoder.Decode(&extra); err != nil {
		if err == io.EOF {
			return nil
		}
		return err
	}
	return fmt.Errorf("tool arguments must contain a single JSON object")
}
