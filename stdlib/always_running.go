package stdlib

import (
	"github.com/fuhongbo/behaviortree/ast"
	"github.com/fuhongbo/behaviortree/store"
	"github.com/fuhongbo/behaviortree/tree"
)

// alwaysRunningBehaviour is stateless: every instance returns the
// same Running result, so a single shared value serves every
// instantiation.
type alwaysRunningBehaviour struct{}

func (alwaysRunningBehaviour) Tick(ctx store.Context) (tree.VisitResult, error) {
	return tree.Running, nil
}

var alwaysRunningSingleton = alwaysRunningBehaviour{}

// alwaysRunningFactory binds `always_running()`: it takes no
// argument and always returns Running.
func alwaysRunningFactory(arg *ast.Value) (tree.LeafFactory, error) {
	return tree.LeafFactoryFunc(func() tree.LeafBehaviour {
		return alwaysRunningSingleton
	}), nil
}
