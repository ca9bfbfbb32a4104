package registry

import (
	"fmt"

	"github.com/fuhongbo/behaviortree/ast"
	"github.com/fuhongbo/behaviortree/tree"
)

// Resolve walks one parsed ast.Tree against reg, binding every leaf
// name to its factory-factory and producing a tree.Factory mirroring
// the AST's shape. A `subtree` node resolves successfully here (it
// carries no leaf to look up) -- it becomes a tree.FactorySubtree
// node and is only rejected when the factory tree is later
// Instantiate'd or Optimize'd.
func Resolve(t ast.Tree, reg LeafRegistry) (*tree.Factory, error) {
	root, err := resolveNode(t.Root, reg)
	if err != nil {
		return nil, err
	}
	return tree.NewFactory(t.Name, root), nil
}

// ResolveAll resolves every tree in trees, stopping at the first
// error; resolution does not attempt error recovery to find further
// errors.
func ResolveAll(trees []ast.Tree, reg LeafRegistry) ([]*tree.Factory, error) {
	factories := make([]*tree.Factory, 0, len(trees))
	for _, t := range trees {
		f, err := Resolve(t, reg)
		if err != nil {
			return nil, fmt.Errorf("tree %q: %w", t.Name, err)
		}
		factories = append(factories, f)
	}
	return factories, nil
}

func resolveNode(n ast.Node, reg LeafRegistry) (*tree.NodeFactory, error) {
	switch n.Kind {
	case ast.NodeSequence:
		children, err := resolveChildren(n.Children, reg)
		if err != nil {
			return nil, err
		}
		return tree.NewSequenceFactory(children), nil
	case ast.NodeSelector:
		children, err := resolveChildren(n.Children, reg)
		if err != nil {
			return nil, err
		}
		return tree.NewSelectorFactory(children), nil
	case ast.NodePriority:
		children, err := resolveChildren(n.Children, reg)
		if err != nil {
			return nil, err
		}
		return tree.NewPriorityFactory(children), nil
	case ast.NodeInverter:
		child, err := resolveNode(*n.Child, reg)
		if err != nil {
			return nil, err
		}
		return tree.NewInverterFactory(child), nil
	case ast.NodeBlackboard:
		child, err := resolveNode(*n.Child, reg)
		if err != nil {
			return nil, err
		}
		return tree.NewBlackboardFactory(n.BlackboardKey, child), nil
	case ast.NodeSubtree:
		return tree.NewSubtreeFactory(n.SubtreeName), nil
	case ast.NodeLeaf:
		factoryFactory, ok := reg.Get(n.Name)
		if !ok {
			return nil, fmt.Errorf("could not find leaf node %s", n.Name)
		}
		leaf, err := factoryFactory.New(n.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", n.Name, err)
		}
		return tree.NewLeafFactory(leaf), nil
	default:
		return nil, fmt.Errorf("registry: unknown AST node kind %d", n.Kind)
	}
}

func resolveChildren(children []ast.Node, reg LeafRegistry) ([]*tree.NodeFactory, error) {
	out := make([]*tree.NodeFactory, 0, len(children))
	for _, c := range children {
		rn, err := resolveNode(c, reg)
		if err != nil {
			return nil, err
		}
		out = append(out, rn)
	}
	return out, nil
}
