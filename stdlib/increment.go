package stdlib

import (
	"fmt"

	"github.com/fuhongbo/behaviortree/ast"
	"github.com/fuhongbo/behaviortree/logging"
	"github.com/fuhongbo/behaviortree/store"
	"github.com/fuhongbo/behaviortree/tree"
)

// incrementEntry is one key/amount pair validated at resolve time;
// non-integer map values are dropped here (with a warning), since
// increment is only defined over integer amounts.
type incrementEntry struct {
	Name   string
	Amount int64
}

// incrementFactory binds `increment({varname: int, ...})`: for each
// integer-valued key, it adds the value to the context variable of
// that name (creating it if absent, overwriting if present and of
// integer kind). A pre-existing non-integer variable is a Failure;
// everything else is Success.
func incrementFactory(arg *ast.Value) (tree.LeafFactory, error) {
	if arg == nil || arg.Kind != ast.ValueMap {
		return nil, fmt.Errorf("increment requires a map argument of varname->int")
	}
	entries := make([]incrementEntry, 0, len(arg.Map))
	for name, v := range arg.Map {
		if v.Kind != ast.ValueInteger {
			logging.Default.Warnf("increment: skipping non-integer value for %q", name)
			continue
		}
		entries = append(entries, incrementEntry{Name: name, Amount: v.Int})
	}

	return tree.LeafFactoryFunc(func() tree.LeafBehaviour {
		return tree.LeafBehaviourFunc(func(ctx store.Context) (tree.VisitResult, error) {
			for _, e := range entries {
				existing, ok := ctx.Get(e.Name)
				if !ok {
					ctx.Insert(e.Name, store.I64Kind(e.Amount))
					continue
				}
				if existing.IsString {
					logging.Default.Warnf("increment: variable %q is not an integer", e.Name)
					return tree.Failure, nil
				}
				ctx.Insert(e.Name, store.I64Kind(existing.I64+e.Amount))
			}
			return tree.Success, nil
		})
	}), nil
}
