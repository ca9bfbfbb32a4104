package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuhongbo/behaviortree/parser"
	"github.com/fuhongbo/behaviortree/registry"
	"github.com/fuhongbo/behaviortree/store"
	"github.com/fuhongbo/behaviortree/tree"
)

func buildAndTick(t *testing.T, src string, ctx store.Context) tree.VisitResult {
	t.Helper()
	trees, err := parser.Parse(src)
	require.NoError(t, err)
	f, err := registry.Resolve(trees[0], Registry())
	require.NoError(t, err)
	ins, err := f.Instantiate()
	require.NoError(t, err)
	result, err := ins.Tick(ctx)
	require.NoError(t, err)
	return result
}

func TestPrintTextEmitsUnderscoreAsSpaceAndSucceeds(t *testing.T) {
	var captured []string
	old := PrintSink
	PrintSink = func(text string) { captured = append(captured, text) }
	defer func() { PrintSink = old }()

	result := buildAndTick(t, `tree t { sequence { print_text("hello_world"), print_text("b") } }`, store.NewMemContext())
	assert.Equal(t, tree.Success, result)
	assert.Equal(t, []string{"hello world", "b"}, captured)
}

func TestPrintTextRejectsNonStringArgument(t *testing.T) {
	trees, err := parser.Parse(`tree t { print_text(3) } `)
	require.NoError(t, err)
	_, err = registry.Resolve(trees[0], Registry())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "print_text requires a string argument")
}

func TestAlwaysRunningReturnsRunning(t *testing.T) {
	result := buildAndTick(t, `tree t { always_running() } `, store.NewMemContext())
	assert.Equal(t, tree.Running, result)
}

func TestEvaluateIntWritesResultAndCheckConditionReads(t *testing.T) {
	ctx := store.NewMemContext()
	result := buildAndTick(t, `tree t {
		sequence {
			evaluate_int({expression: [1, 2, +], result: "x"}),
			check_condition({exp1: ["x"], exp2: [3], operator: "="})
		}
	}`, ctx)
	assert.Equal(t, tree.Success, result)
	ctx.EndTick()
	v, ok := ctx.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(3), v.I64)
}

func TestEvaluateIntOverwritesExistingValue(t *testing.T) {
	ctx := store.NewMemContext()
	ctx.Insert("x", store.I64Kind(99))
	ctx.EndTick()
	result := buildAndTick(t, `tree t { evaluate_int({expression: [1], result: "x"}) } `, ctx)
	assert.Equal(t, tree.Success, result)
	ctx.EndTick()
	v, _ := ctx.Get("x")
	assert.Equal(t, int64(1), v.I64)
}

func TestCheckConditionSingleCharOperatorViaUnknown(t *testing.T) {
	ctx := store.NewMemContext()
	ctx.Insert("x", store.I64Kind(5))
	ctx.EndTick()
	result := buildAndTick(t, `tree t { check_condition({exp1: ["x"], exp2: [3], operator: >}) } `, ctx)
	assert.Equal(t, tree.Success, result)
}

func TestCheckConditionMultiCharOperatorViaString(t *testing.T) {
	ctx := store.NewMemContext()
	ctx.Insert("x", store.I64Kind(3))
	ctx.EndTick()
	result := buildAndTick(t, `tree t { check_condition({exp1: ["x"], exp2: [3], operator: ">="}) } `, ctx)
	assert.Equal(t, tree.Success, result)
}

func TestCheckConditionFailsWhenComparisonDoesNotHold(t *testing.T) {
	ctx := store.NewMemContext()
	ctx.Insert("x", store.I64Kind(1))
	ctx.EndTick()
	result := buildAndTick(t, `tree t { check_condition({exp1: ["x"], exp2: [3], operator: >}) } `, ctx)
	assert.Equal(t, tree.Failure, result)
}

func TestIncrementCreatesThenAdds(t *testing.T) {
	ctx := store.NewMemContext()
	result := buildAndTick(t, `tree t { increment({score: 5}) } `, ctx)
	assert.Equal(t, tree.Success, result)
	ctx.EndTick()
	v, ok := ctx.Get("score")
	require.True(t, ok)
	assert.Equal(t, int64(5), v.I64)

	result = buildAndTick(t, `tree t { increment({score: 5}) } `, ctx)
	assert.Equal(t, tree.Success, result)
	ctx.EndTick()
	v, _ = ctx.Get("score")
	assert.Equal(t, int64(10), v.I64)
}

func TestIncrementFailsOnNonIntegerExistingVariable(t *testing.T) {
	ctx := store.NewMemContext()
	ctx.Insert("name", store.StringKind("alice"))
	ctx.EndTick()
	result := buildAndTick(t, `tree t { increment({name: 1}) } `, ctx)
	assert.Equal(t, tree.Failure, result)
}

func TestRegistryContainsAllStandardLeaves(t *testing.T) {
	reg := Registry()
	for _, name := range []string{"print_text", "always_running", "evaluate_int", "check_condition", "increment"} {
		_, ok := reg.Get(name)
		assert.Truef(t, ok, "missing standard leaf %q", name)
	}
}
