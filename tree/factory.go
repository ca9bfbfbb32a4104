package tree

// NodeFactoryKind discriminates NodeFactory, mirroring ast.NodeKind
// one level down the pipeline (after name resolution).
type NodeFactoryKind int

const (
	FactorySequence NodeFactoryKind = iota
	FactorySelector
	FactoryPriority
	FactoryInverter
	FactoryLeaf
	FactorySubtree
	FactoryBlackboard
)

// NodeFactory is one node of the immutable blueprint tree produced by
// the name resolver (package registry). It can be Instantiate'd any
// number of times; each call produces an independent runtime tree.
type NodeFactory struct {
	Kind NodeFactoryKind

	Children []*NodeFactory // Sequence/Selector/Priority
	Child    *NodeFactory   // Inverter/Blackboard

	Leaf LeafFactory // Leaf

	SubtreeName string // Subtree

	BlackboardKey string // Blackboard
}

func NewSequenceFactory(children []*NodeFactory) *NodeFactory {
	return &NodeFactory{Kind: FactorySequence, Children: children}
}

func NewSelectorFactory(children []*NodeFactory) *NodeFactory {
	return &NodeFactory{Kind: FactorySelector, Children: children}
}

func NewPriorityFactory(children []*NodeFactory) *NodeFactory {
	return &NodeFactory{Kind: FactoryPriority, Children: children}
}

func NewInverterFactory(child *NodeFactory) *NodeFactory {
	return &NodeFactory{Kind: FactoryInverter, Child: child}
}

func NewLeafFactory(leaf LeafFactory) *NodeFactory {
	return &NodeFactory{Kind: FactoryLeaf, Leaf: leaf}
}

func NewSubtreeFactory(name string) *NodeFactory {
	return &NodeFactory{Kind: FactorySubtree, SubtreeName: name}
}

func NewBlackboardFactory(key string, child *NodeFactory) *NodeFactory {
	return &NodeFactory{Kind: FactoryBlackboard, BlackboardKey: key, Child: child}
}

// children returns this node's child list regardless of which field
// it's stored in, used uniformly by both Instantiate and the
// flattener.
func (f *NodeFactory) children() []*NodeFactory {
	switch f.Kind {
	case FactorySequence, FactorySelector, FactoryPriority:
		return f.Children
	case FactoryInverter, FactoryBlackboard:
		if f.Child == nil {
			return nil
		}
		return []*NodeFactory{f.Child}
	default:
		return nil
	}
}

// Factory is a named, reusable blueprint: the compiled form of one
// `tree NAME { ... }` block.
type Factory struct {
	name string
	root *NodeFactory

	cache optimizeCache
}

// NewFactory builds a Factory from a resolved blueprint root and the
// source tree's name.
func NewFactory(name string, root *NodeFactory) *Factory {
	return &Factory{name: name, root: root}
}

// Name returns the tree's source-declared name.
func (f *Factory) Name() string { return f.name }
