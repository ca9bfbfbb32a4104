package registry

import (
	"github.com/google/btree"
)

// entry is the btree.Item stored in an OrderedRegistry: ordered by
// Name, carrying the bound factory-factory as its payload.
type entry struct {
	Name string
	FF   LeafFactoryFactory
}

func (e *entry) Less(than btree.Item) bool {
	return e.Name < than.(*entry).Name
}

// OrderedRegistry is a LeafRegistry backed by google/btree, giving
// deterministic name-ordered iteration -- used by cmd/bt's
// -list-leaves to print the registry contents sorted, and available
// for an "unknown leaf, did you mean X?" style suggestion on a
// resolution miss. A plain Map has no ordering guarantees;
// OrderedRegistry exists purely for the cases that need one.
type OrderedRegistry struct {
	t *btree.BTree
}

// NewOrderedRegistry creates an empty OrderedRegistry. It passes a
// fixed degree of 32 as btree.New's node fan-out parameter, a
// reasonable value for a registry with at most a few dozen entries.
func NewOrderedRegistry() *OrderedRegistry {
	return &OrderedRegistry{t: btree.New(32)}
}

func (r *OrderedRegistry) Register(name string, factoryFactory LeafFactoryFactory) {
	r.t.ReplaceOrInsert(&entry{Name: name, FF: factoryFactory})
}

func (r *OrderedRegistry) Get(name string) (LeafFactoryFactory, bool) {
	item := r.t.Get(&entry{Name: name})
	if item == nil {
		return nil, false
	}
	return item.(*entry).FF, true
}

// Names returns every registered leaf name in ascending order.
func (r *OrderedRegistry) Names() []string {
	names := make([]string, 0, r.t.Len())
	r.t.Ascend(func(item btree.Item) bool {
		names = append(names, item.(*entry).Name)
		return true
	})
	return names
}
