package model

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hupe1980/agentrun/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedModel_ReplaysInOrder(t *testing.T) {
	m := NewScriptedModel("test")
	m.AddToolCalls(core.ToolCall{ID: "c1", Name: "calculator", Arguments: json.RawMessage(`{"a":1}`)})
	m.AddFinalAnswer("done")

	turn, err := m.Generate(context.Background(), core.NewContext(), nil)
	require.NoError(t, err)
	tc, ok := turn.(ToolCalls)
	require.True(t, ok)
	require.Len(t, tc.Calls, 1)
	assert.Equal(t, "calculator", tc.Calls[0].Name)

	turn, err = m.Generate(context.Background(), core.NewContext(), nil)
	require.NoError(t, err)
	fa, ok := turn.(FinalAnswer)
	require.True(t, ok)
	assert.Equal(t, "done", fa.Text)

	assert.Equal(t, 0, m.Remaining())
}

func TestScriptedModel_ExhaustedScript(t *testing.T) {
	m := NewScriptedModel("test")
	_, err := m.Generate(context.Background(), core.NewContext(), nil)
	require.Error(t, err)

	var malformed *MalformedResponseError
	assert.True(t, errors.As(err, &malformed))
}

func TestScriptedModel_Error(t *testing.T) {
	boom := NewProviderError("scripted", errors.New("boom"))
	m := NewScriptedModel("test").AddError(boom)

	_, err := m.Generate(context.Background(), core.NewContext(), nil)
	require.Error(t, err)

	var provErr *ProviderError
	require.True(t, errors.As(err, &provErr))
	assert.Equal(t, "scripted", provErr.Provider)
	assert.EqualError(t, errors.Unwrap(provErr), "boom")
}

func TestScriptedModel_Cancellation(t *testing.T) {
	m := NewScriptedModel("test").AddFinalAnswer("never reached")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.Generate(ctx, core.NewContext(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, m.Remaining())
}

func TestFunc_ImplementsModel(t *testing.T) {
	var m Model = Func(func(_ context.Context, _ *core.Context, _ []ToolDefinition) (Turn, error) {
		return FinalAnswer{Text: "42"}, nil
	})

	turn, err := m.Generate(context.Background(), core.NewContext(), nil)
	require.NoError(t, err)
	assert.Equal(t, FinalAnswer{Text: "42"}, turn)
	assert.Equal(t, "func", m.Info().Provider)
}
