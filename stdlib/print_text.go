package stdlib

import (
	"fmt"
	"strings"

	"github.com/fuhongbo/behaviortree/ast"
	"github.com/fuhongbo/behaviortree/logging"
	"github.com/fuhongbo/behaviortree/store"
	"github.com/fuhongbo/behaviortree/tree"
)

// Sink receives print_text's output. Tests observe it directly;
// embedders that want print_text folded into their own log stream can
// still reach it through logging.Default, since the default Sink
// below forwards there.
type Sink func(text string)

// PrintSink is the package-wide sink print_text writes to, swappable
// by callers the same way logging.Default is swappable.
var PrintSink Sink = func(text string) {
	logging.Default.Infof("%s", text)
}

// printTextFactory binds `print_text(string)`: at each tick it emits
// the string, with every underscore replaced by a space, to PrintSink
// and returns Success.
func printTextFactory(arg *ast.Value) (tree.LeafFactory, error) {
	if arg == nil || arg.Kind != ast.ValueString {
		return nil, fmt.Errorf("print_text requires a string argument")
	}
	text := strings.ReplaceAll(arg.Str, "_", " ")
	return tree.LeafFactoryFunc(func() tree.LeafBehaviour {
		return tree.LeafBehaviourFunc(func(ctx store.Context) (tree.VisitResult, error) {
			PrintSink(text)
			return tree.Success, nil
		})
	}), nil
}
