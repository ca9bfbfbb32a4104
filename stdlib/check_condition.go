package stdlib

import (
	"fmt"

	"github.com/fuhongbo/behaviortree/ast"
	"github.com/fuhongbo/behaviortree/postfix"
	"github.com/fuhongbo/behaviortree/store"
	"github.com/fuhongbo/behaviortree/tree"
)

// comparators holds the comparisons check_condition supports, keyed
// by the operator token whether it arrived as a single-char Unknown
// value or a multi-char String value.
var comparators = map[string]func(a, b int64) bool{
	">":  func(a, b int64) bool { return a > b },
	"<":  func(a, b int64) bool { return a < b },
	"=":  func(a, b int64) bool { return a == b },
	">=": func(a, b int64) bool { return a >= b },
	"<=": func(a, b int64) bool { return a <= b },
}

func comparatorToken(v ast.Value) (string, error) {
	switch v.Kind {
	case ast.ValueUnknown:
		return string(v.Unknown), nil
	case ast.ValueString:
		return v.Str, nil
	case ast.ValueOperator:
		return v.Operator.String(), nil
	default:
		return "", fmt.Errorf("check_condition: \"operator\" must be a char or string, got %s", v)
	}
}

// checkConditionFactory binds `check_condition({exp1: [...], exp2:
// [...], operator: op})`: both expressions are compiled once at
// resolve time; each tick evaluates both and compares them, returning
// Success if the comparison holds, else Failure.
func checkConditionFactory(arg *ast.Value) (tree.LeafFactory, error) {
	if arg == nil || arg.Kind != ast.ValueMap {
		return nil, fmt.Errorf("check_condition requires a map argument with exp1/exp2/operator keys")
	}
	exp1Value, ok := arg.Map["exp1"]
	if !ok || exp1Value.Kind != ast.ValueArray {
		return nil, fmt.Errorf("check_condition: missing or malformed \"exp1\" key")
	}
	exp2Value, ok := arg.Map["exp2"]
	if !ok || exp2Value.Kind != ast.ValueArray {
		return nil, fmt.Errorf("check_condition: missing or malformed \"exp2\" key")
	}
	opValue, ok := arg.Map["operator"]
	if !ok {
		return nil, fmt.Errorf("check_condition: missing \"operator\" key")
	}
	token, err := comparatorToken(opValue)
	if err != nil {
		return nil, err
	}
	compare, ok := comparators[token]
	if !ok {
		return nil, fmt.Errorf("check_condition: unknown operator %q", token)
	}

	exp1, err := postfix.Compile(exp1Value.Array)
	if err != nil {
		return nil, fmt.Errorf("check_condition: exp1: %w", err)
	}
	exp2, err := postfix.Compile(exp2Value.Array)
	if err != nil {
		return nil, fmt.Errorf("check_condition: exp2: %w", err)
	}

	return tree.LeafFactoryFunc(func() tree.LeafBehaviour {
		return tree.LeafBehaviourFunc(func(ctx store.Context) (tree.VisitResult, error) {
			a, err := postfix.Eval(ctx, exp1)
			if err != nil {
				return tree.Failure, fmt.Errorf("check_condition: exp1: %w", err)
			}
			b, err := postfix.Eval(ctx, exp2)
			if err != nil {
				return tree.Failure, fmt.Errorf("check_condition: exp2: %w", err)
			}
			if compare(a, b) {
				return tree.Success, nil
			}
			return tree.Failure, nil
		})
	}), nil
}
