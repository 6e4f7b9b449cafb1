package agent

import (
	"context"
	"testing"

	"github.com/hupe1980/agentrun/model"
	"github.com/hupe1980/agentrun/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Valid(t *testing.T) {
	ag, err := New("assistant").
		Instructions("You are a helpful assistant.").
		Model(model.NewScriptedModel("test")).
		Tools(tool.NewCalculatorTool()).
		MaxTurns(5).
		Build()
	require.NoError(t, err)

	assert.Equal(t, "assistant", ag.Name())
	assert.Equal(t, "You are a helpful assistant.", ag.Instructions())
	assert.Equal(t, []string{"calculator"}, ag.Tools())
	assert.Equal(t, 5, ag.MaxTurns())
	assert.Equal(t, "scripted", ag.Model().Info().Provider)
}

func TestBuilder_EmptyName(t *testing.T) {
	_, err := New("").Model(model.NewScriptedModel("test")).Build()
	require.Error(t, err)

	buildErr, ok := err.(*BuildError)
	require.True(t, ok)
	assert.Equal(t, "name", buildErr.Field)
}

func TestBuilder_MissingModel(t *testing.T) {
	_, err := New("assistant").Build()
	require.Error(t, err)

	buildErr, ok := err.(*BuildError)
	require.True(t, ok)
	assert.Equal(t, "model", buildErr.Field)
}

func TestBuilder_NegativeMaxTurns(t *testing.T) {
	_, err := New("assistant").Model(model.NewScriptedModel("test")).MaxTurns(-1).Build()
	require.Error(t, err)

	buildErr, ok := err.(*BuildError)
	require.True(t, ok)
	assert.Equal(t, "max_turns", buildErr.Field)
}

func TestBuilder_DefaultMaxTurns(t *testing.T) {
	ag, err := New("assistant").Model(model.NewScriptedModel("test")).Build()
	require.NoError(t, err)
	assert.Equal(t, DefaultMaxTurns, ag.MaxTurns())
}

func TestBuilder_DuplicateToolNames(t *testing.T) {
	_, err := New("assistant").
		Model(model.NewScriptedModel("test")).
		Tools(tool.NewCalculatorTool(), tool.NewCalculatorTool()).
		Build()
	require.Error(t, err)

	buildErr, ok := err.(*BuildError)
	require.True(t, ok)
	assert.Equal(t, "tools", buildErr.Field)
	assert.Contains(t, buildErr.Reason, "duplicate tool name")
}

func TestBuilder_BuildTwiceYieldsIndependentAgents(t *testing.T) {
	b := New("assistant").Instructions("help").Tools(tool.NewScratchpadTool())

	first, err := b.Model(model.NewScriptedModel("m1").AddFinalAnswer("one")).Build()
	require.NoError(t, err)
	second, err := b.Model(model.NewScriptedModel("m2").AddFinalAnswer("two")).Build()
	require.NoError(t, err)

	assert.NotSame(t, first, second)

	out1, err := first.Run(context.Background(), "task", nil)
	require.NoError(t, err)
	out2, err := second.Run(context.Background(), "task", nil)
	require.NoError(t, err)

	assert.Equal(t, "one", out1)
	assert.Equal(t, "two", out2)
}
