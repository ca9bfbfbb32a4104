package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fuhongbo/behaviortree/ast"
)

// Print renders a Tree back to source text in this grammar, the
// inverse of Parse: for every AST the grammar can produce,
// Parse(Print(tree)) yields a structurally equal AST. Print makes no
// attempt to reproduce the source's formatting (whitespace, trailing
// commas) -- only structural round-tripping is guaranteed.
func Print(t ast.Tree) string {
	var b strings.Builder
	fmt.Fprintf(&b, "tree %s { ", t.Name)
	printNode(&b, t.Root)
	b.WriteString(" }")
	return b.String()
}

func printNode(b *strings.Builder, n ast.Node) {
	switch n.Kind {
	case ast.NodeSequence:
		printComposite(b, "sequence", n.Children)
	case ast.NodeSelector:
		printComposite(b, "selector", n.Children)
	case ast.NodePriority:
		printComposite(b, "priority", n.Children)
	case ast.NodeInverter:
		b.WriteString("inverter { ")
		printNode(b, *n.Child)
		b.WriteString(" }")
	case ast.NodeSubtree:
		fmt.Fprintf(b, "subtree %s", n.SubtreeName)
	case ast.NodeBlackboard:
		fmt.Fprintf(b, "blackboard { %s } { ", n.BlackboardKey)
		printNode(b, *n.Child)
		b.WriteString(" }")
	case ast.NodeLeaf:
		b.WriteString(n.Name)
		if n.Value != nil {
			b.WriteString("(")
			printValue(b, *n.Value)
			b.WriteString(")")
		}
	}
}

func printComposite(b *strings.Builder, keyword string, children []ast.Node) {
	fmt.Fprintf(b, "%s { ", keyword)
	for i, c := range children {
		if i > 0 {
			b.WriteString(", ")
		}
		printNode(b, c)
	}
	b.WriteString(" }")
}

func printValue(b *strings.Builder, v ast.Value) {
	switch v.Kind {
	case ast.ValueString:
		b.WriteString(strconv.Quote(v.Str))
	case ast.ValueInteger:
		fmt.Fprintf(b, "%d", v.Int)
	case ast.ValueMap:
		b.WriteString("{ ")
		first := true
		for k, mv := range v.Map {
			if !first {
				b.WriteString(", ")
			}
			first = false
			fmt.Fprintf(b, "%s: ", k)
			printValue(b, mv)
		}
		b.WriteString(" }")
	case ast.ValueArray:
		b.WriteString("[ ")
		for i, e := range v.Array {
			if i > 0 {
				b.WriteString(", ")
			}
			printValue(b, e)
		}
		b.WriteString(" ]")
	case ast.ValueOperator:
		b.WriteString(v.Operator.String())
	case ast.ValueUnknown:
		b.WriteRune(v.Unknown)
	}
}
