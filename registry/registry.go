// Package registry implements the leaf registry: a string-keyed,
// user-extensible mapping from leaf names to the factory-factories
// that build tree.LeafFactory values, plus the name resolver that
// walks an ast.Tree against a registry to produce a tree.Factory.
package registry

import (
	"github.com/fuhongbo/behaviortree/ast"
	"github.com/fuhongbo/behaviortree/tree"
)

// LeafFactoryFactory takes the optional Value a leaf invocation
// carried in source text and produces either a bound tree.LeafFactory
// or an error describing why the options were rejected. It is invoked
// once per leaf occurrence at resolve time, not once per tree
// instantiation.
type LeafFactoryFactory interface {
	New(arg *ast.Value) (tree.LeafFactory, error)
}

// LeafFactoryFactoryFunc adapts a plain function to a
// LeafFactoryFactory, the common case for both the standard library
// and user-registered leaves.
type LeafFactoryFactoryFunc func(arg *ast.Value) (tree.LeafFactory, error)

func (f LeafFactoryFactoryFunc) New(arg *ast.Value) (tree.LeafFactory, error) { return f(arg) }

// LeafRegistry is a lookup-by-name abstraction over leaf
// factory-factories. It is deliberately minimal (one method) so that
// it can be implemented by a plain map, a btree-backed ordered store
// (see btree.go), or a Layered cascade of either.
type LeafRegistry interface {
	Get(name string) (LeafFactoryFactory, bool)
}

// Map is the simplest LeafRegistry: a plain string-keyed map.
type Map map[string]LeafFactoryFactory

// Register binds name to factoryFactory, overwriting any existing
// binding -- callers that want "don't clobber the standard library"
// semantics should use Layered instead of mutating a shared Map.
func (m Map) Register(name string, factoryFactory LeafFactoryFactory) {
	m[name] = factoryFactory
}

func (m Map) Get(name string) (LeafFactoryFactory, bool) {
	ff, ok := m[name]
	return ff, ok
}

// Layered is an ordered cascade of registries, first-hit-wins: a
// user's custom leaves can be layered ahead of the standard library
// to override or extend it without mutating the standard registry
// itself.
type Layered []LeafRegistry

func (l Layered) Get(name string) (LeafFactoryFactory, bool) {
	for _, reg := range l {
		if ff, ok := reg.Get(name); ok {
			return ff, true
		}
	}
	return nil, false
}
