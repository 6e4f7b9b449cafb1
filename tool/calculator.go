package tool

import "fmt"

// NewCalculatorTool returns a built-in calculator supporting the four basic
// arithmetic operations. Division by zero surfaces as an EXECUTION_ERROR,
// which the agent loop folds into the conversation rather than aborting the
// run.
func NewCalculatorTool() *FunctionTool {
	params := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"operation": map[string]any{
				"type":        "string",
				"description": "The arithmetic operation to perform",
				"enum":        []string{"add", "subtract", "multiply", "divide"},
			},
			"a": map[string]any{
				"type":        "number",
				"description": "First operand",
			},
			"b": map[string]any{
				"type":        "number",
				"description": "Second operand",
			},
		},
		"required": []string{"operation", "a", "b"},
	}

	return NewFunctionTool(
		"calculator",
		"Perform basic math operations (add, subtract, multiply, divide) on two numbers",
		params,
		func(_ *RunContext, args map[string]any) (any, error) {
			op, _ := args["operation"].(string)
			a, aok := toFloat(args["a"])
			b, bok := toFloat(args["b"])
			if !aok || !bok {
				return nil, fmt.Errorf("operands must be numbers")
			}

			switch op {
			case "add":
				return a + b, nil
			case "subtract":
				return a - b, nil
			case "multiply":
				return a * b, nil
			case "divide":
				if b == 0 {
					return nil, fmt.Errorf("division by zero")
				}
				return a / b, nil
			default:
				return nil, fmt.Errorf("unsupported operation %q", op)
			}
		},
	)
}

// toFloat widens the numeric shapes JSON decoding and Go callers produce.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
