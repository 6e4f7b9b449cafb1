package core

import "fmt"

// Value represents a typed entry in the Context's shared scratch data.
// Concrete value types implement the unexported isValue marker enabling a
// closed set, so cross-component data exchange stays type-checkable instead
// of passing bare interface{} slots around.
type Value interface {
	isValue()
	// Unwrap returns the plain Go representation of the value.
	Unwrap() any
}

// StringValue holds a string.
type StringValue struct{ Val string }

func (StringValue) isValue() {}

// Unwrap returns the underlying string.
func (v StringValue) Unwrap() any { return v.Val }

// NumberValue holds a float64 (the shape JSON decoding produces for numbers).
type NumberValue struct{ Val float64 }

func (NumberValue) isValue() {}

// Unwrap returns the underlying float64.
func (v NumberValue) Unwrap() any { return v.Val }

// BoolValue holds a bool.
type BoolValue struct{ Val bool }

func (BoolValue) isValue() {}

// Unwrap returns the underlying bool.
func (v BoolValue) Unwrap() any { return v.Val }

// ListValue holds an ordered sequence of values.
type ListValue struct{ Vals []Value }

func (ListValue) isValue() {}

// Unwrap returns a []any with every element unwrapped.
func (v ListValue) Unwrap() any {
	out := make([]any, len(v.Vals))
	for i, e := range v.Vals {
		out[i] = e.Unwrap()
	}
	return out
}

// MapValue holds a string-keyed mapping of values.
type MapValue struct{ Vals map[string]Value }

func (MapValue) isValue() {}

// Unwrap returns a map[string]any with every entry unwrapped.
func (v MapValue) Unwrap() any {
	out := make(map[string]any, len(v.Vals))
	for k, e := range v.Vals {
		out[k] = e.Unwrap()
	}
	return out
}

// ValueOf converts a plain Go value (the shapes produced by JSON decoding
// plus the common integer types) into its tagged Value form. Unsupported
// types yield an error rather than a silent fallback.
func ValueOf(v any) (Value, error) {
	switch t := v.(type) {
	case Value:
		return t, nil
	case string:
		return StringValue{Val: t}, nil
	case float64:
		return NumberValue{Val: t}, nil
	case float32:
		return NumberValue{Val: float64(t)}, nil
	case int:
		return NumberValue{Val: float64(t)}, nil
	case int64:
		return NumberValue{Val: float64(t)}, nil
	case bool:
		return BoolValue{Val: t}, nil
	case []any:
		vals := make([]Value, len(t))
		for i, e := range t {
			ev, err := ValueOf(e)
			if err != nil {
				return nil, err
			}
			vals[i] = ev
		}
		return ListValue{Vals: vals}, nil
	case map[string]any:
		vals := make(map[string]Value, len(t))
		for k, e := range t {
			ev, err := ValueOf(e)
			if err != nil {
				return nil, err
			}
			vals[k] = ev
		}
		return MapValue{Vals: vals}, nil
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}
