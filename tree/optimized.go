package tree

import (
	"fmt"

	"github.com/fuhongbo/behaviortree/logging"
	"github.com/fuhongbo/behaviortree/store"
)

// flatNode is one record of the optimized tree's array. A node's own
// index plus End -- one past the index of its last descendant -- span
// its entire contiguous subtree, so End alone is sufficient to walk
// from one immediate child to the next (a child's own End is exactly
// where its next sibling, if any, begins).
type flatNode struct {
	Kind NodeFactoryKind
	End  int

	Leaf    LeafBehaviour
	running *int // Sequence/Selector only; nil = not currently resumed

	BlackboardKey string
}

// Optimized is the flat, array-backed production runtime: one walk
// of the factory tree produces it, and a Tick walks it in place with
// no further allocation beyond what leaves themselves allocate.
type Optimized struct {
	id    InstanceID
	nodes []flatNode
}

// Optimize performs a pre-order flattening of the factory tree into
// the optimized array form. Repeated calls against an unchanged
// Factory reuse a cached flattening, keyed by the factory's content
// Fingerprint -- the cache holds the flattened *shape*; each call
// still gets a fresh leaf/resumption state via a shallow per-call
// re-instantiation of that shape so distinct Optimized instances
// never share leaf state.
func (f *Factory) Optimize() (*Optimized, error) {
	shape, err := f.flattenedShape()
	if err != nil {
		return nil, err
	}
	nodes := make([]flatNode, len(shape))
	for i, s := range shape {
		nodes[i] = flatNode{Kind: s.Kind, End: s.End, BlackboardKey: s.BlackboardKey}
		if s.Leaf != nil {
			nodes[i].Leaf = s.Leaf.New()
		}
	}
	return &Optimized{id: newInstanceID(), nodes: nodes}, nil
}

// shapeNode is the cacheable, leaf-factory-carrying (but not yet
// leaf-behaviour-carrying) flattened form.
type shapeNode struct {
	Kind          NodeFactoryKind
	End           int
	Leaf          LeafFactory
	BlackboardKey string
}

type optimizeCache struct {
	fingerprint uint64
	shape       []shapeNode
	valid       bool
}

func (f *Factory) flattenedShape() ([]shapeNode, error) {
	fp := f.Fingerprint()
	if f.cache.valid && f.cache.fingerprint == fp {
		return f.cache.shape, nil
	}
	var shape []shapeNode
	if _, err := flattenShape(f.root, &shape); err != nil {
		return nil, err
	}
	f.cache = optimizeCache{fingerprint: fp, shape: shape, valid: true}
	return shape, nil
}

func flattenShape(f *NodeFactory, nodes *[]shapeNode) (int, error) {
	idx := len(*nodes)
	*nodes = append(*nodes, shapeNode{})

	if f.Kind == FactorySubtree {
		return 0, fmt.Errorf("%w: %s", ErrSubtreeUnsupported, f.SubtreeName)
	}
	if f.Kind == FactoryInverter && f.Child == nil {
		return 0, fmt.Errorf("tree: inverter node without a child")
	}
	if f.Kind == FactoryLeaf && f.Leaf == nil {
		return 0, ErrUnknownLeaf
	}

	kids := f.children()
	for _, c := range kids {
		if _, err := flattenShape(c, nodes); err != nil {
			return 0, err
		}
	}
	end := len(*nodes)
	(*nodes)[idx] = shapeNode{
		Kind:          f.Kind,
		End:           end,
		Leaf:          f.Leaf,
		BlackboardKey: f.BlackboardKey,
	}
	return idx, nil
}

// Tick evaluates the root.
func (o *Optimized) Tick(ctx store.Context) (VisitResult, error) {
	logging.Default.Debugf("tree[%s]: tick (optimized)", o.id)
	return o.tickAt(0, ctx)
}

// ID returns the instance's unique identifier (log correlation only).
func (o *Optimized) ID() InstanceID { return o.id }

func (o *Optimized) tickAt(idx int, ctx store.Context) (VisitResult, error) {
	n := &o.nodes[idx]
	switch n.Kind {
	case FactoryLeaf:
		if n.Leaf == nil {
			return Failure, ErrUnknownLeaf
		}
		return n.Leaf.Tick(ctx)

	case FactorySequence:
		return o.tickSequence(idx, n, ctx, false)
	case FactorySelector:
		return o.tickSequence(idx, n, ctx, true)

	case FactoryPriority:
		pos := idx + 1
		for pos < n.End {
			result, err := o.tickAt(pos, ctx)
			if err != nil {
				return Failure, err
			}
			switch result {
			case Running:
				return Running, nil
			case Failure:
				return Failure, nil
			}
			pos = o.nodes[pos].End
		}
		return Success, nil

	case FactoryInverter:
		child := idx + 1
		if child >= n.End {
			return Failure, fmt.Errorf("tree: inverter without a child")
		}
		result, err := o.tickAt(child, ctx)
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

	case FactoryBlackboard:
		if _, ok := ctx.Get(n.BlackboardKey); !ok {
			return Failure, nil
		}
		child := idx + 1
		if child >= n.End {
			return Failure, fmt.Errorf("tree: blackboard node without a child")
		}
		return o.tickAt(child, ctx)

	default:
		return Failure, fmt.Errorf("tree: unknown optimized node kind %d", n.Kind)
	}
}

// tickSequence implements both Sequence and Selector (selector is
// the dual with Success/Failure roles swapped). n's running field
// names the immediate-child position (0-based) to resume at; selector
// controls which outcome short-circuits the loop.
func (o *Optimized) tickSequence(idx int, n *flatNode, ctx store.Context, selector bool) (VisitResult, error) {
	startChild := 0
	if n.running != nil {
		startChild = *n.running
	}
	n.running = nil

	pos := idx + 1
	childNum := 0
	for pos < n.End {
		end := o.nodes[pos].End
		if childNum < startChild {
			childNum++
			pos = end
			continue
		}
		result, err := o.tickAt(pos, ctx)
		if err != nil {
			return Failure, err
		}
		if selector {
			// selector: Success short-circuits to Success
			if result == Success {
				return Success, nil
			}
			if result == Failure {
				childNum++
				pos = end
				continue
			}
		} else {
			// sequence: Failure short-circuits to Failure
			if result == Failure {
				return Failure, nil
			}
			if result == Success {
				childNum++
				pos = end
				continue
			}
		}
		// Running, for either kind
		resumed := childNum
		n.running = &resumed
		return Running, nil
	}
	if selector {
		return Failure, nil
	}
	return Success, nil
}
