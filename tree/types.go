// Package tree implements the two-stage tree compiler's runtime
// half: the factory tree blueprint, its instantiate and optimize
// (flatten) operations, and the tick engine driving both the
// recursive and the flat representations.
package tree

import (
	"errors"

	"github.com/fuhongbo/behaviortree/store"
)

// VisitResult is the outcome of ticking any node.
type VisitResult int

const (
	Success VisitResult = iota
	Failure
	Running
)

func (r VisitResult) String() string {
	switch r {
	case Success:
		return "Success"
	case Failure:
		return "Failure"
	case Running:
		return "Running"
	default:
		return "VisitResult(?)"
	}
}

// LeafBehaviour is a leaf's fresh per-instance runtime state. It is
// produced by a LeafFactory once per Instantiate/Optimize call so
// distinct tree instances never share leaf state.
type LeafBehaviour interface {
	Tick(ctx store.Context) (VisitResult, error)
}

// LeafBehaviourFunc adapts a plain function to LeafBehaviour.
type LeafBehaviourFunc func(ctx store.Context) (VisitResult, error)

func (f LeafBehaviourFunc) Tick(ctx store.Context) (VisitResult, error) { return f(ctx) }

// LeafFactory produces a fresh LeafBehaviour on each call to New, so
// that each tree instantiation gets its own private leaf state.
type LeafFactory interface {
	New() LeafBehaviour
}

// LeafFactoryFunc adapts a plain function to LeafFactory.
type LeafFactoryFunc func() LeafBehaviour

func (f LeafFactoryFunc) New() LeafBehaviour { return f() }

// Sentinel errors, errors.Is-friendly.
var (
	// ErrSubtreeUnsupported is returned when Instantiate/Optimize
	// encounters an unlinked `subtree` reference, a deliberate fatal
	// error in this version.
	ErrSubtreeUnsupported = errors.New("tree: subtree instantiation is not supported in this version")
	// ErrUnknownLeaf is returned by the flattener/instantiator if a
	// NodeFactory somehow carries a nil leaf factory (an internal
	// invariant, since the resolver should never produce one).
	ErrUnknownLeaf = errors.New("tree: leaf node has no bound factory")
)
