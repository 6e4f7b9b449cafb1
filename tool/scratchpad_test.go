package tool

import (
	"context"
	"testing"

	"github.com/hupe1980/agentrun/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScratchpad_SetGet(t *testing.T) {
	conv := core.NewContext()
	rc := NewRunContext(context.Background(), conv, "fc-1", nil)
	pad := NewScratchpadTool()

	_, err := pad.Call(rc, map[string]any{"operation": "set", "key": "answer", "value": 42.0})
	require.NoError(t, err)

	result, err := pad.Call(rc, map[string]any{"operation": "get", "key": "answer"})
	require.NoError(t, err)
	assert.Equal(t, 42.0, result)

	// Value landed in the shared scratch data, visible to later tool calls.
	v, ok := conv.Get("answer")
	require.True(t, ok)
	assert.Equal(t, core.NumberValue{Val: 42.0}, v)
}

func TestScratchpad_GetMissing(t *testing.T) {
	pad := NewScratchpadTool()

	_, err := pad.Call(testRunContext(), map[string]any{"operation": "get", "key": "nope"})
	require.Error(t, err)
	toolErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, CodeExecution, toolErr.Code)
}

func TestScratchpad_DeleteAndList(t *testing.T) {
	conv := core.NewContext()
	rc := NewRunContext(context.Background(), conv, "fc-1", nil)
	pad := NewScratchpadTool()

	_, err := pad.Call(rc, map[string]any{"operation": "set", "key": "a", "value": "one"})
	require.NoError(t, err)
	_, err = pad.Call(rc, map[string]any{"operation": "set", "key": "b", "value": true})
	require.NoError(t, err)

	result, err := pad.Call(rc, map[string]any{"operation": "list"})
	require.NoError(t, err)
	assert.Equal(t, "a, b", result)

	_, err = pad.Call(rc, map[string]any{"operation": "delete", "key": "a"})
	require.NoError(t, err)

	_, err = pad.Call(rc, map[string]any{"operation": "delete", "key": "a"})
	require.Error(t, err)

	result, err = pad.Call(rc, map[string]any{"operation": "list"})
	require.NoError(t, err)
	assert.Equal(t, "b", result)
}

func TestScratchpad_ListEmpty(t *testing.T) {
	pad := NewScratchpadTool()

	result, err := pad.Call(testRunContext(), map[string]any{"operation": "list"})
	require.NoError(t, err)
	assert.Equal(t, "no keys stored", result)
}

func TestScratchpad_InvalidOperations(t *testing.T) {
	pad := NewScratchpadTool()

	_, err := pad.Call(testRunContext(), map[string]any{"operation": "explode"})
	require.Error(t, err)
	assert.Equal(t, CodeValidation, err.(*Error).Code)

	_, err = pad.Call(testRunContext(), map[string]any{"operation": "get"})
	require.Error(t, err)
	assert.Equal(t, CodeValidation, err.(*Error).Code)

	_, err = pad.Call(testRunContext(), map[string]any{"operation": "set", "key": "k"})
	require.Error(t, err)
	assert.Equal(t, CodeValidation, err.(*Error).Code)
}
