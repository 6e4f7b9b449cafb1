package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleArgs struct {
	A string  `json:"a" jsonschema_description:"Field A"`
	B float64 `json:"b,omitempty" jsonschema_description:"Optional field B"`
}

func TestFromStruct(t *testing.T) {
	s := FromStruct(sampleArgs{})

	assert.Equal(t, "object", s["type"])
	assert.NotContains(t, s, "$schema")

	props, ok := s["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "a")
	assert.Contains(t, props, "b")

	aProp, ok := props["a"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", aProp["type"])
	assert.Equal(t, "Field A", aProp["description"])

	req := requiredFields(s)
	assert.Contains(t, req, "a")
	assert.NotContains(t, req, "b")
}

func TestFromStruct_NonStruct(t *testing.T) {
	s := FromStruct(42)
	assert.Equal(t, "object", s["type"])
}

func requiredFields(s map[string]any) []string {
	var out []string
	switch req := s["required"].(type) {
	case []string:
		out = req
	case []any:
		for _, r := range req {
			if str, ok := r.(string); ok {
				out = append(out, str)
			}
		}
	}
	return out
}

func TestValidateParameters_Required(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"x": map[string]any{"type": "integer"},
		},
		"required": []any{"x"},
	}

	assert.NoError(t, ValidateParameters(map[string]any{"x": 5}, schema))

	err := ValidateParameters(map[string]any{}, schema)
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "x", vErr.Field)
}

func TestValidateParameters_RequiredStringSlice(t *testing.T) {
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{"x": map[string]any{"type": "string"}},
		"required":   []string{"x"},
	}

	err := ValidateParameters(map[string]any{}, schema)
	require.Error(t, err)
}

func TestValidateParameters_TypeMismatch(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"x": map[string]any{"type": "integer"},
		},
	}

	err := ValidateParameters(map[string]any{"x": "not-int"}, schema)
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Message, "expected type integer")

	// float64 holding an integral value passes for "integer"
	assert.NoError(t, ValidateParameters(map[string]any{"x": 5.0}, schema))
	assert.Error(t, ValidateParameters(map[string]any{"x": 5.5}, schema))
}

func TestValidateParameters_Enum(t *testing.T) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"operation": map[string]any{
				"type": "string",
				"enum": []string{"add", "subtract"},
			},
		},
	}

	assert.NoError(t, ValidateParameters(map[string]any{"operation": "add"}, schema))

	err := ValidateParameters(map[string]any{"operation": "modulo"}, schema)
	require.Error(t, err)
	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "operation", vErr.Field)
}

func TestValidateParameters_ExtraFieldsAllowed(t *testing.T) {
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{},
	}
	assert.NoError(t, ValidateParameters(map[string]any{"anything": 1}, schema))
}
