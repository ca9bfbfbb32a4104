package main

import (
	"fmt"
	"io"

	"github.com/jmespath/go-jmespath"

	"github.com/fuhongbo/behaviortree/store"
)

// runQuery projects ctx's final StoreKind map through a JMESPath
// expression and prints the result. This is a read-only debugging aid
// that runs after the tree has finished ticking, so it never touches
// the single-tick-at-a-time contract.
func runQuery(w io.Writer, ctx store.Context, expression string) error {
	mc, ok := ctx.(*store.MemContext)
	if !ok {
		return fmt.Errorf("-query requires the standard MemContext implementation")
	}
	result, err := jmespath.Search(expression, mc.Snapshot())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%v\n", result)
	return nil
}
