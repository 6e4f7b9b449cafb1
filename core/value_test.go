package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueOf_Scalars(t *testing.T) {
	v, err := ValueOf("hello")
	require.NoError(t, err)
	assert.Equal(t, StringValue{Val: "hello"}, v)

	v, err = ValueOf(42)
	require.NoError(t, err)
	assert.Equal(t, NumberValue{Val: 42}, v)

	v, err = ValueOf(3.14)
	require.NoError(t, err)
	assert.Equal(t, NumberValue{Val: 3.14}, v)

	v, err = ValueOf(true)
	require.NoError(t, err)
	assert.Equal(t, BoolValue{Val: true}, v)
}

func TestValueOf_Composite(t *testing.T) {
	v, err := ValueOf([]any{"a", 1.0})
	require.NoError(t, err)
	assert.Equal(t, []any{"a", 1.0}, v.Unwrap())

	v, err = ValueOf(map[string]any{"n": 2.0, "ok": true})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"n": 2.0, "ok": true}, v.Unwrap())
}

func TestValueOf_PassesThroughValues(t *testing.T) {
	orig := StringValue{Val: "x"}
	v, err := ValueOf(orig)
	require.NoError(t, err)
	assert.Equal(t, orig, v)
}

func TestValueOf_Unsupported(t *testing.T) {
	_, err := ValueOf(struct{}{})
	assert.Error(t, err)

	_, err = ValueOf([]any{make(chan int)})
	assert.Error(t, err)
}
