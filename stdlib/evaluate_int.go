package stdlib

import (
	"fmt"

	"github.com/fuhongbo/behaviortree/ast"
	"github.com/fuhongbo/behaviortree/logging"
	"github.com/fuhongbo/behaviortree/postfix"
	"github.com/fuhongbo/behaviortree/store"
	"github.com/fuhongbo/behaviortree/tree"
)

// evaluateIntFactory binds `evaluate_int({expression: [...], result:
// "varname"})`: the expression is compiled once, at resolve time;
// each tick evaluates the compiled postfix program against the
// context and writes the result into `result`, warning if that
// overwrote a pre-existing value.
func evaluateIntFactory(arg *ast.Value) (tree.LeafFactory, error) {
	if arg == nil || arg.Kind != ast.ValueMap {
		return nil, fmt.Errorf("evaluate_int requires a map argument with expression/result keys")
	}
	exprValue, ok := arg.Map["expression"]
	if !ok || exprValue.Kind != ast.ValueArray {
		return nil, fmt.Errorf("evaluate_int: missing or malformed \"expression\" key")
	}
	resultValue, ok := arg.Map["result"]
	if !ok || resultValue.Kind != ast.ValueString {
		return nil, fmt.Errorf("evaluate_int: missing or malformed \"result\" key")
	}
	expr, err := postfix.Compile(exprValue.Array)
	if err != nil {
		return nil, fmt.Errorf("evaluate_int: %w", err)
	}
	resultName := resultValue.Str

	return tree.LeafFactoryFunc(func() tree.LeafBehaviour {
		return tree.LeafBehaviourFunc(func(ctx store.Context) (tree.VisitResult, error) {
			value, err := postfix.Eval(ctx, expr)
			if err != nil {
				return tree.Failure, fmt.Errorf("evaluate_int: %w", err)
			}
			if _, existed := ctx.Get(resultName); existed {
				logging.Default.Warnf("evaluate_int: overwriting existing variable %q", resultName)
			}
			ctx.Insert(resultName, store.I64Kind(value))
			return tree.Success, nil
		})
	}), nil
}
