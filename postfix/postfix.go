// Package postfix implements the embedded integer arithmetic
// mini-language: compiling an argument array of ast.Value into a
// postfix (reverse-Polish) program and evaluating it against a
// store.Context's integer variables.
package postfix

import (
	"fmt"

	"github.com/fuhongbo/behaviortree/ast"
	"github.com/fuhongbo/behaviortree/store"
)

// MemberKind discriminates Member.
type MemberKind int

const (
	MemberConstant MemberKind = iota
	MemberVariable
	MemberOp
)

// Member is one element of a postfix program.
type Member struct {
	Kind     MemberKind
	Constant int64
	Variable string
	Op       ast.Operator
}

// Expression is a compiled postfix program: a finite ordered sequence
// of Members, evaluated as a pure stack program against the context's
// integer variables.
type Expression []Member

// Compile translates an array-of-Value leaf argument into a postfix
// Expression: String -> Variable, Integer -> Constant, Operator ->
// Op. Any other element is a compile error naming it. Arity is NOT
// checked here -- only at Eval time.
func Compile(operands []ast.Value) (Expression, error) {
	expr := make(Expression, 0, len(operands))
	for i, v := range operands {
		switch v.Kind {
		case ast.ValueString:
			expr = append(expr, Member{Kind: MemberVariable, Variable: v.Str})
		case ast.ValueInteger:
			expr = append(expr, Member{Kind: MemberConstant, Constant: v.Int})
		case ast.ValueOperator:
			expr = append(expr, Member{Kind: MemberOp, Op: v.Operator})
		default:
			return nil, fmt.Errorf("postfix: expected operand at position %d, found %s", i, v)
		}
	}
	return expr, nil
}

// Eval runs expr against ctx's integer variables, returning the
// postfix program's result. Stack underflow, a non-empty residual
// stack, a missing variable or a variable of the wrong kind are all
// fatal to the caller's current tick, returned here as a plain
// error.
func Eval(ctx store.Getter, expr Expression) (int64, error) {
	var stack []int64
	pop := func() (int64, error) {
		if len(stack) == 0 {
			return 0, fmt.Errorf("postfix: stack underflow")
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return v, nil
	}

	for _, m := range expr {
		switch m.Kind {
		case MemberConstant:
			stack = append(stack, m.Constant)
		case MemberVariable:
			kind, ok := ctx.Get(m.Variable)
			if !ok {
				return 0, fmt.Errorf("postfix: unknown variable %q", m.Variable)
			}
			if kind.IsString {
				return 0, fmt.Errorf("postfix: variable %q is a string, expected an integer", m.Variable)
			}
			stack = append(stack, kind.I64)
		case MemberOp:
			b, err := pop()
			if err != nil {
				return 0, err
			}
			a, err := pop()
			if err != nil {
				return 0, err
			}
			var result int64
			switch m.Op {
			case ast.OpPlus:
				result = a + b
			case ast.OpMinus:
				result = a - b
			case ast.OpMultiply:
				result = a * b
			case ast.OpDivide:
				if b == 0 {
					return 0, fmt.Errorf("postfix: division by zero")
				}
				result = a / b
			default:
				return 0, fmt.Errorf("postfix: unknown operator %q", m.Op)
			}
			stack = append(stack, result)
		}
	}

	if len(stack) != 1 {
		return 0, fmt.Errorf("postfix: malformed expression, %d values left on the stack", len(stack))
	}
	return stack[0], nil
}
