package tree

import (
	"github.com/fuhongbo/behaviortree/store"
)

// fixedLeaf always returns the same result; errLeaf always errors.
type fixedLeaf VisitResult

func (f fixedLeaf) Tick(ctx store.Context) (VisitResult, error) { return VisitResult(f), nil }

func fixedFactory(r VisitResult) LeafFactory {
	return LeafFactoryFunc(func() LeafBehaviour { return fixedLeaf(r) })
}

type errLeaf struct{ err error }

func (e errLeaf) Tick(ctx store.Context) (VisitResult, error) { return Failure, e.err }

func errFactory(err error) LeafFactory {
	return LeafFactoryFunc(func() LeafBehaviour { return errLeaf{err: err} })
}

// queueLeaf returns one result per call from a fixed script, sticking
// on the last entry once exhausted -- used to simulate a leaf that
// runs for N ticks before settling.
type queueLeaf struct {
	script []VisitResult
	i      int
}

func (q *queueLeaf) Tick(ctx store.Context) (VisitResult, error) {
	r := q.script[q.i]
	if q.i < len(q.script)-1 {
		q.i++
	}
	return r, nil
}

func queueFactory(script ...VisitResult) LeafFactory {
	return LeafFactoryFunc(func() LeafBehaviour { return &queueLeaf{script: script} })
}

// countingLeaf records how many times it was ticked, always
// succeeding -- used to assert a child was (not) visited.
type countingLeaf struct{ n *int }

func (c countingLeaf) Tick(ctx store.Context) (VisitResult, error) {
	*c.n++
	return Success, nil
}

func countingFactory(n *int) LeafFactory {
	return LeafFactoryFunc(func() LeafBehaviour { return countingLeaf{n: n} })
}
