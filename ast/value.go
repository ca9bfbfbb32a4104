// Package ast holds the node and value types produced by the grammar
// (package parser) and consumed by the name resolver (package
// registry). It exists only between parse and resolution.
package ast

import "fmt"

// Operator is one of the four arithmetic operators recognised inside
// an expression array.
type Operator byte

const (
	OpPlus     Operator = '+'
	OpMinus    Operator = '-'
	OpMultiply Operator = '*'
	OpDivide   Operator = '/'
)

func (o Operator) String() string { return string(rune(o)) }

// ValueKind discriminates the Value union.
type ValueKind int

const (
	ValueString ValueKind = iota
	ValueInteger
	ValueMap
	ValueArray
	ValueOperator
	ValueUnknown
)

// Value is the argument payload attached to a leaf invocation, or an
// element of a map/array value. It is a tagged union rendered as a
// struct: exactly one of the typed fields is meaningful,
// selected by Kind. Values are produced only by the parser and are
// immutable once constructed.
type Value struct {
	Kind     ValueKind
	Str      string
	Int      int64
	Map      map[string]Value
	Array    []Value
	Operator Operator
	Unknown  rune
}

func String(s string) Value        { return Value{Kind: ValueString, Str: s} }
func Integer(n int64) Value        { return Value{Kind: ValueInteger, Int: n} }
func Map(m map[string]Value) Value { return Value{Kind: ValueMap, Map: m} }
func Array(a []Value) Value        { return Value{Kind: ValueArray, Array: a} }
func Op(o Operator) Value          { return Value{Kind: ValueOperator, Operator: o} }
func Unknown(r rune) Value         { return Value{Kind: ValueUnknown, Unknown: r} }

func (v Value) String() string {
	switch v.Kind {
	case ValueString:
		return fmt.Sprintf("String(%q)", v.Str)
	case ValueInteger:
		return fmt.Sprintf("Integer(%d)", v.Int)
	case ValueMap:
		return fmt.Sprintf("Map(%d keys)", len(v.Map))
	case ValueArray:
		return fmt.Sprintf("Array(%d elems)", len(v.Array))
	case ValueOperator:
		return fmt.Sprintf("Operator(%s)", v.Operator)
	case ValueUnknown:
		return fmt.Sprintf("Unknown(%q)", v.Unknown)
	default:
		return "Value(?)"
	}
}

// OperatorFromByte classifies a punctuation rune as one of the four
// known arithmetic Operators. ok is false for anything else, in which
// case the caller should fall back to Value.Unknown.
func OperatorFromByte(r rune) (Operator, bool) {
	switch r {
	case '+', '-', '*', '/':
		return Operator(r), true
	default:
		return 0, false
	}
}
