// Package behaviortree re-exports this module's public API at the
// root: most embedders only need Parse, the VisitResult aliases and a
// registry to get a working tree. The individual pipeline stages
// (lex, parser, registry, tree, store, stdlib) remain importable
// directly for embedders that need finer control.
package behaviortree

import (
	"github.com/fuhongbo/behaviortree/ast"
	"github.com/fuhongbo/behaviortree/parser"
	"github.com/fuhongbo/behaviortree/registry"
	"github.com/fuhongbo/behaviortree/stdlib"
	"github.com/fuhongbo/behaviortree/store"
	"github.com/fuhongbo/behaviortree/tree"
)

// VisitResult and its three values mirror tree.VisitResult: Success,
// Failure or Running.
type VisitResult = tree.VisitResult

const (
	Success = tree.Success
	Failure = tree.Failure
	Running = tree.Running
)

// TreeFactory is the compiled, reusable blueprint for one named
// tree: parse once, Instantiate or Optimize as many runtime instances
// as needed.
type TreeFactory = tree.Factory

// Context is the embedder-owned mutable object threaded through
// every tick.
type Context = store.Context

// LeafRegistry is the user-extensible name -> leaf-factory-factory
// lookup consulted by Parse/Resolve.
type LeafRegistry = registry.LeafRegistry

// Option configures optional grammar extensions accepted by Parse,
// currently only parser.WithBlackboard.
type Option = parser.Option

// WithBlackboard re-exports parser.WithBlackboard.
func WithBlackboard() Option { return parser.WithBlackboard() }

// StandardRegistry returns a registry.Layered containing only the
// standard leaf library. Embedders with their own leaves typically
// build registry.Layered{myLeaves, StandardRegistry()} so their
// leaves shadow the standard ones by name.
func StandardRegistry() LeafRegistry {
	return registry.Layered{stdlib.Registry()}
}

// Parse is the public API's single entry point: it runs the grammar
// (package parser) over text, then the name resolver (package
// registry) against reg for every tree found, returning the compiled
// TreeFactory list. Parse does not attempt error recovery to find
// further errors -- the first failure, lexical, syntactic or
// resolution, is returned.
func Parse(text string, reg LeafRegistry, opts ...Option) ([]*TreeFactory, error) {
	trees, err := parser.Parse(text, opts...)
	if err != nil {
		return nil, err
	}
	return registry.ResolveAll(trees, reg)
}

// Value is ast.Value, re-exported for embedders writing their own
// LeafFactoryFactory implementations without importing package ast
// directly.
type Value = ast.Value
