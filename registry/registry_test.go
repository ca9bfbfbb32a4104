package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fuhongbo/behaviortree/ast"
	"github.com/fuhongbo/behaviortree/parser"
	"github.com/fuhongbo/behaviortree/store"
	"github.com/fuhongbo/behaviortree/tree"
)

func alwaysSuccessFF() LeafFactoryFactory {
	return LeafFactoryFactoryFunc(func(arg *ast.Value) (tree.LeafFactory, error) {
		return tree.LeafFactoryFunc(func() tree.LeafBehaviour {
			return tree.LeafBehaviourFunc(func(ctx store.Context) (tree.VisitResult, error) {
				return tree.Success, nil
			})
		}), nil
	})
}

func TestLayeredFirstHitWins(t *testing.T) {
	base := Map{"leaf": alwaysSuccessFF()}
	override := Map{}
	layered := Layered{override, base}

	ff, ok := layered.Get("leaf")
	require.True(t, ok)
	lf, err := ff.New(nil)
	require.NoError(t, err)
	ins := lf.New()
	result, err := ins.Tick(store.NewMemContext())
	require.NoError(t, err)
	assert.Equal(t, tree.Success, result)

	_, ok = layered.Get("missing")
	assert.False(t, ok)
}

func TestOrderedRegistryNamesAscend(t *testing.T) {
	r := NewOrderedRegistry()
	r.Register("zeta", alwaysSuccessFF())
	r.Register("alpha", alwaysSuccessFF())
	r.Register("mid", alwaysSuccessFF())
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, r.Names())

	_, ok := r.Get("alpha")
	assert.True(t, ok)
	_, ok = r.Get("nope")
	assert.False(t, ok)
}

func TestResolveUnknownLeafIsAnError(t *testing.T) {
	trees, err := parser.Parse(`tree t { nosuchleaf } `)
	require.NoError(t, err)

	_, err = Resolve(trees[0], Map{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not find leaf node nosuchleaf")
}

func TestResolveRejectingFactoryFactoryPropagatesError(t *testing.T) {
	reg := Map{"picky": LeafFactoryFactoryFunc(func(arg *ast.Value) (tree.LeafFactory, error) {
		return nil, errors.New("needs an argument")
	})}
	trees, err := parser.Parse(`tree t { picky } `)
	require.NoError(t, err)

	_, err = Resolve(trees[0], reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "picky: needs an argument")
}

func TestResolveBuildsFactoryTreeShape(t *testing.T) {
	reg := Map{"leaf": alwaysSuccessFF()}
	trees, err := parser.Parse(`tree t { sequence { leaf, inverter { leaf } } } `)
	require.NoError(t, err)

	f, err := Resolve(trees[0], reg)
	require.NoError(t, err)
	assert.Equal(t, "t", f.Name())

	ins, err := f.Instantiate()
	require.NoError(t, err)
	result, err := ins.Tick(store.NewMemContext())
	require.NoError(t, err)
	assert.Equal(t, tree.Failure, result) // inverter{Success} -> Failure
}

func TestResolveSubtreeDeferredToBuild(t *testing.T) {
	trees, err := parser.Parse(`tree t { subtree other } `)
	require.NoError(t, err)

	f, err := Resolve(trees[0], Map{})
	require.NoError(t, err)

	_, err = f.Instantiate()
	require.ErrorIs(t, err, tree.ErrSubtreeUnsupported)
}

func TestResolveAllStopsAtFirstError(t *testing.T) {
	trees, err := parser.Parse(`
		tree a { leaf }
		tree b { missing }
	`)
	require.NoError(t, err)

	_, err = ResolveAll(trees, Map{"leaf": alwaysSuccessFF()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `tree "b"`)
}
