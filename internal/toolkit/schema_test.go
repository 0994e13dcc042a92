package toolkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleitonmarx/symbiont-ai-chatpad/internal/domain"
)

func TestParameterSchemaFor(t *testing.T) {
	type args struct {
		Mood      string `json:"mood" jsonschema:"required"`
		Intensity int    `json:"intensity,omitempty"`
	}

	schema := ParameterSchemaFor(&args{})

	assert.Equal(t, "object", schema["type"])
	properties, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, properties, "mood")
	assert.Contains(t, properties, "intensity")
	assert.Contains(t, schema["required"], "mood")
}

func TestUnmarshalToolInput(t *testing.T) {
	type args struct {
		Mood string `json:"mood"`
	}

	tests := []struct {
		name      string
		arguments string
		wantErr   bool
		wantMood  string
	}{
		{name: "valid object", arguments: `{"mood":"happy"}`, wantMood: "happy"},
		{name: "empty arguments default to empty object", arguments: "", wantMood: ""},
		{name: "unknown field", arguments: `{"mood":"happy","extra":1}`, wantErr: true},
		{name: "trailing JSON", arguments: `{"mood":"happy"}{"mood":"sad"}`, wantErr: true},
		{name: "not JSON", arguments: `happy`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target args
			err := UnmarshalToolInput(tt.arguments, &target)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantMood, target.Mood)
		})
	}
}

func toolSchemaWithParams() domain.ToolSchema {
	return domain.ToolSchema{
		Name: "strict",
		Parameters: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"value": map[string]any{"type": "integer"},
			},
		},
	}
}

func TestCompiledSchema_Validate(t *testing.T) {
	compiled, err := compileToolSchema(toolSchemaWithParams())
	require.NoError(t, err)

	assert.NoError(t, compiled.Validate(`{"value":3}`))
	assert.NoError(t, compiled.Validate(""))
	assert.Error(t, compiled.Validate(`{"value":"three"}`))
	assert.Error(t, compiled.Validate(`[1,2]`))
}
