// Package stdlib implements the standard leaf library: print_text,
// always_running, evaluate_int, check_condition and increment,
// registered under fixed names.
package stdlib

import (
	"github.com/fuhongbo/behaviortree/registry"
)

// Registry returns a prepopulated registry.Map holding every
// standard leaf under its fixed name. Callers typically place this
// last in a registry.Layered, behind their own application leaves, so
// a user leaf of the same name shadows the standard one.
func Registry() registry.Map {
	m := make(registry.Map, 5)
	m.Register("print_text", registry.LeafFactoryFactoryFunc(printTextFactory))
	m.Register("always_running", registry.LeafFactoryFactoryFunc(alwaysRunningFactory))
	m.Register("evaluate_int", registry.LeafFactoryFactoryFunc(evaluateIntFactory))
	m.Register("check_condition", registry.LeafFactoryFactoryFunc(checkConditionFactory))
	m.Register("increment", registry.LeafFactoryFactoryFunc(incrementFactory))
	return m
}
