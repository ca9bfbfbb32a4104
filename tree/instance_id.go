package tree

import (
	"github.com/pborman/uuid"
)

// InstanceID identifies one Instantiate/Optimize call for log
// correlation only; it has no bearing on tick semantics and is never
// compared for tree equality.
type InstanceID string

func (id InstanceID) String() string { return string(id) }

func newInstanceID() InstanceID {
	return InstanceID(uuid.New())
}
