package tree

import (
	"fmt"

	"github.com/fuhongbo/behaviortree/logging"
	"github.com/fuhongbo/behaviortree/store"
)

// Instance is the recursive, pointer-linked runtime tree, the
// simple debugging runtime. It exists alongside Optimized so both can
// be ticked against the same factory tree and compared.
type Instance struct {
	id   InstanceID
	root node
}

// node is the recursive runtime-node interface; every concrete
// variant below implements it.
type node interface {
	tick(ctx store.Context) (VisitResult, error)
}

// Instantiate walks the blueprint, producing a fresh runtime tree
// where each leaf gets a newly minted LeafBehaviour and each composite
// gets fresh resumable state.
func (f *Factory) Instantiate() (*Instance, error) {
	root, err := instantiateNode(f.root)
	if err != nil {
		return nil, err
	}
	return &Instance{id: newInstanceID(), root: root}, nil
}

// ID returns the instance's unique identifier, used only for log
// correlation; it has no bearing on tick semantics.
func (ins *Instance) ID() InstanceID { return ins.id }

func (ins *Instance) Tick(ctx store.Context) (VisitResult, error) {
	logging.Default.Debugf("tree[%s]: tick", ins.id)
	return ins.root.tick(ctx)
}

func instantiateNode(f *NodeFactory) (node, error) {
	switch f.Kind {
	case FactorySequence:
		children, err := instantiateChildren(f.Children)
		if err != nil {
			return nil, err
		}
		return &sequenceNode{children: children}, nil
	case FactorySelector:
		children, err := instantiateChildren(f.Children)
		if err != nil {
			return nil, err
		}
		return &selectorNode{children: children}, nil
	case FactoryPriority:
		children, err := instantiateChildren(f.Children)
		if err != nil {
			return nil, err
		}
		return &priorityNode{children: children}, nil
	case FactoryInverter:
		child, err := instantiateNode(f.Child)
		if err != nil {
			return nil, err
		}
		return &inverterNode{child: child}, nil
	case FactoryBlackboard:
		child, err := instantiateNode(f.Child)
		if err != nil {
			return nil, err
		}
		return &blackboardNode{key: f.BlackboardKey, child: child}, nil
	case FactoryLeaf:
		if f.Leaf == nil {
			return nil, ErrUnknownLeaf
		}
		return &leafNode{behaviour: f.Leaf.New()}, nil
	case FactorySubtree:
		return nil, fmt.Errorf("%w: %s", ErrSubtreeUnsupported, f.SubtreeName)
	default:
		return nil, fmt.Errorf("tree: unknown factory node kind %d", f.Kind)
	}
}

func instantiateChildren(factories []*NodeFactory) ([]node, error) {
	children := make([]node, 0, len(factories))
	for _, cf := range factories {
		c, err := instantiateNode(cf)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return children, nil
}

// leafNode invokes the leaf behaviour's Tick and returns its result
// verbatim.
type leafNode struct {
	behaviour LeafBehaviour
}

func (n *leafNode) tick(ctx store.Context) (VisitResult, error) {
	return n.behaviour.Tick(ctx)
}

// sequenceNode ticks children from the resumed index (or 0), clearing
// it before iterating. Failure propagates immediately; Running stores
// the index and returns; all-Success returns Success.
type sequenceNode struct {
	running  *int
	children []node
}

func (n *sequenceNode) tick(ctx store.Context) (VisitResult, error) {
	start := 0
	if n.running != nil {
		start = *n.running
	}
	n.running = nil
	for i := start; i < len(n.children); i++ {
		result, err := n.children[i].tick(ctx)
		if err != nil {
			return Failure, err
		}
		switch result {
		case Failure:
			return Failure, nil
		case Running:
			idx := i
			n.running = &idx
			return Running, nil
		case Success:
			// continue
		}
	}
	return Success, nil
}

// selectorNode is sequenceNode's dual: first Success wins, Failure
// continues, exhaustion is Failure.
type selectorNode struct {
	running  *int
	children []node
}

func (n *selectorNode) tick(ctx store.Context) (VisitResult, error) {
	start := 0
	if n.running != nil {
		start = *n.running
	}
	n.running = nil
	for i := start; i < len(n.children); i++ {
		result, err := n.children[i].tick(ctx)
		if err != nil {
			return Failure, err
		}
		switch result {
		case Success:
			return Success, nil
		case Running:
			idx := i
			n.running = &idx
			return Running, nil
		case Failure:
			// continue
		}
	}
	return Failure, nil
}

// priorityNode re-ticks every child from 0 on every visit: no memory,
// eager failure propagation.
type priorityNode struct {
	children []node
}

func (n *priorityNode) tick(ctx store.Context) (VisitResult, error) {
	for _, c := range n.children {
		result, err := c.tick(ctx)
		if err != nil {
			return Failure, err
		}
		switch result {
		case Running:
			return Running, nil
		case Failure:
			return Failure, nil
		case Success:
			// continue
		}
	}
	return Success, nil
}

// inverterNode swaps Success/Failure and passes Running through.
type inverterNode struct {
	child node
}

func (n *inverterNode) tick(ctx store.Context) (VisitResult, error) {
	result, err := n.child.tick(ctx)
	if err != nil {
		return Failure, err
	}
	switch result {
	case Success:
		return Failure, nil
	case Failure:
		return Success, nil
	default:
		return Running, nil
	}
}

// blackboardNode is the opt-in conditional composite: fail
// immediately if the context lacks key, else delegate to the single
// child.
type blackboardNode struct {
	key   string
	child node
}

func (n *blackboardNode) tick(ctx store.Context) (VisitResult, error) {
	if _, ok := ctx.Get(n.key); !ok {
		return Failure, nil
	}
	return n.child.tick(ctx)
}
