package main

import (
	"github.com/fuhongbo/behaviortree/registry"
	"github.com/fuhongbo/behaviortree/stdlib"
)

// standardLeavesOrdered rebuilds the standard leaf library as a
// registry.OrderedRegistry, giving -list-leaves a deterministic,
// name-sorted view over the same entries stdlib.Registry() binds for
// actual tree resolution.
func standardLeavesOrdered() *registry.OrderedRegistry {
	ordered := registry.NewOrderedRegistry()
	for name, ff := range stdlib.Registry() {
		ordered.Register(name, ff)
	}
	return ordered
}
