package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/hupe1980/agentrun/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRunContext() *RunContext {
	return NewRunContext(context.Background(), core.NewContext(), "fc-1", nil)
}

func sumParams() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
			"b": map[string]any{"type": "number"},
		},
		"required": []string{"a", "b"},
	}
}

func TestFunctionTool_Success(t *testing.T) {
	sumTool := NewFunctionTool("sum", "Add numbers", sumParams(), func(_ *RunContext, args map[string]any) (any, error) {
		return args["a"].(float64) + args["b"].(float64), nil
	})

	result, err := sumTool.Call(testRunContext(), map[string]any{"a": 2.0, "b": 3.0})
	require.NoError(t, err)
	assert.Equal(t, 5.0, result)
}

func TestFunctionTool_ValidationError(t *testing.T) {
	sumTool := NewFunctionTool("sum", "Add numbers", sumParams(), func(_ *RunContext, _ map[string]any) (any, error) {
		return 0, nil
	})

	_, err := sumTool.Call(testRunContext(), map[string]any{"a": 2.0})
	require.Error(t, err)
	toolErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, toolErr.Code)
	assert.Equal(t, "sum", toolErr.Tool)
}

func TestFunctionTool_ExecutionError(t *testing.T) {
	failTool := NewFunctionTool("boom", "Always fails", map[string]any{"type": "object"}, func(_ *RunContext, _ map[string]any) (any, error) {
		return nil, errors.New("internal failure")
	})

	_, err := failTool.Call(testRunContext(), map[string]any{})
	require.Error(t, err)
	toolErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, CodeExecution, toolErr.Code)
	assert.Equal(t, "internal failure", toolErr.Message)
}

func TestFunctionTool_CustomErrorForwarded(t *testing.T) {
	custom := NewError("custom", "rate limited", "RATE_LIMITED")
	failTool := NewFunctionTool("custom", "Custom error", map[string]any{"type": "object"}, func(_ *RunContext, _ map[string]any) (any, error) {
		return nil, custom
	})

	_, err := failTool.Call(testRunContext(), map[string]any{})
	require.Error(t, err)
	assert.Same(t, custom, err)
}

type echoArgs struct {
	Text string `json:"text" jsonschema_description:"Text to echo back"`
}

func TestNewFunctionToolFromStruct(t *testing.T) {
	echo := NewFunctionToolFromStruct("echo", "Echo text", echoArgs{}, func(_ *RunContext, args map[string]any) (any, error) {
		return args["text"], nil
	})

	props, ok := echo.Parameters()["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "text")

	result, err := echo.Call(testRunContext(), map[string]any{"text": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", result)

	_, err = echo.Call(testRunContext(), map[string]any{})
	require.Error(t, err)
	toolErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, CodeValidation, toolErr.Code)
}

func TestError_Format(t *testing.T) {
	withCode := NewError("calc", "bad input", CodeValidation)
	assert.Equal(t, "tool error [VALIDATION_ERROR] in calc: bad input", withCode.Error())

	noCode := &Error{Tool: "calc", Message: "bad input"}
	assert.Equal(t, "tool error in calc: bad input", noCode.Error())
}
