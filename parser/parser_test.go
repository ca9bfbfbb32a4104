package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuhongbo/behaviortree/ast"
)

func TestParseSimpleSequence(t *testing.T) {
	trees, err := Parse(`tree t { sequence { print_text("a"), print_text("b") } }`)
	require.NoError(t, err)
	require.Len(t, trees, 1)
	tr := trees[0]
	assert.Equal(t, "t", tr.Name)
	require.Equal(t, ast.NodeSequence, tr.Root.Kind)
	require.Len(t, tr.Root.Children, 2)
	assert.Equal(t, "print_text", tr.Root.Children[0].Name)
	assert.Equal(t, "a", tr.Root.Children[0].Value.Str)
}

func TestParseMultipleTrees(t *testing.T) {
	trees, err := Parse(`
		tree a { always_running() }
		tree b { always_running() }
	`)
	require.NoError(t, err)
	require.Len(t, trees, 2)
	assert.Equal(t, "a", trees[0].Name)
	assert.Equal(t, "b", trees[1].Name)
}

func TestParseInverterRequiresExactlyOneChild(t *testing.T) {
	trees, err := Parse(`tree t { inverter { always_running() } }`)
	require.NoError(t, err)
	require.Equal(t, ast.NodeInverter, trees[0].Root.Kind)
	require.NotNil(t, trees[0].Root.Child)
	assert.Equal(t, "always_running", trees[0].Root.Child.Name)

	_, err = Parse(`tree t { inverter { a, b } }`)
	require.Error(t, err)
}

func TestParseTrailingCommaPermitted(t *testing.T) {
	trees, err := Parse(`tree t { sequence { a, b, } }`)
	require.NoError(t, err)
	assert.Len(t, trees[0].Root.Children, 2)
}

func TestParseMapAndArrayValues(t *testing.T) {
	trees, err := Parse(`tree t { evaluate_int({expression: [1, 2, +], result: "x"}) } `)
	require.NoError(t, err)
	leaf := trees[0].Root
	require.Equal(t, ast.NodeLeaf, leaf.Kind)
	require.NotNil(t, leaf.Value)
	require.Equal(t, ast.ValueMap, leaf.Value.Kind)
	expr := leaf.Value.Map["expression"]
	require.Equal(t, ast.ValueArray, expr.Kind)
	require.Len(t, expr.Array, 3)
	assert.Equal(t, ast.ValueInteger, expr.Array[0].Kind)
	assert.Equal(t, ast.ValueOperator, expr.Array[2].Kind)
	assert.Equal(t, ast.OpPlus, expr.Array[2].Operator)
	assert.Equal(t, "x", leaf.Value.Map["result"].Str)
}

func TestParseUnknownCharacterAsMapValue(t *testing.T) {
	trees, err := Parse(`tree t { check_condition({exp1: ["x"], exp2: [3], operator: >}) }`)
	require.NoError(t, err)
	op := trees[0].Root.Value.Map["operator"]
	assert.Equal(t, ast.ValueUnknown, op.Kind)
	assert.Equal(t, '>', op.Unknown)
}

func TestParseSubtreeIsAcceptedSyntactically(t *testing.T) {
	trees, err := Parse(`tree t { subtree other }`)
	require.NoError(t, err)
	assert.Equal(t, ast.NodeSubtree, trees[0].Root.Kind)
	assert.Equal(t, "other", trees[0].Root.SubtreeName)
}

func TestParseBlackboardRequiresOption(t *testing.T) {
	_, err := Parse(`tree t { blackboard { seen } { always_running() } }`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blackboard extension is not enabled")

	trees, err := Parse(`tree t { blackboard { seen } { always_running() } }`, WithBlackboard())
	require.NoError(t, err)
	root := trees[0].Root
	require.Equal(t, ast.NodeBlackboard, root.Kind)
	assert.Equal(t, "seen", root.BlackboardKey)
}

func TestParseErrorNamesOffendingToken(t *testing.T) {
	_, err := Parse(`tree t { , } `)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected")
}

func TestParseLexicalErrorPropagates(t *testing.T) {
	_, err := Parse(`tree t { "unterminated`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unfinished quoted string")
}

func TestRoundTripShapes(t *testing.T) {
	sources := []string{
		`tree t { sequence { print_text("a"), print_text("b") } }`,
		`tree t { selector { always_running(), inverter { always_running() } } }`,
		`tree t { priority { a, b, c } }`,
		`tree t { evaluate_int({expression: [1, -2, +], result: "x"}) }`,
		`tree t { check_condition({exp1: ["x"], exp2: [3], operator: ">="}) }`,
	}
	for _, src := range sources {
		trees, err := Parse(src)
		require.NoError(t, err)
		printed := Print(trees[0])
		reparsed, err := Parse(printed)
		require.NoErrorf(t, err, "re-parsing printed form %q", printed)
		diff := cmp.Diff(trees[0].Root, reparsed[0].Root)
		assert.Emptyf(t, diff, "round-trip mismatch for %q -> %q:\n%s", src, printed, diff)
	}
}
