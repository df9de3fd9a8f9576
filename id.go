package weld

import (
	"strconv"
	"sync/atomic"
)

var lastComponentID atomic.Uint64

// ComponentID identifies a Component for the lifetime of the process.
// IDs are never reused. The zero value means "no component".
type ComponentID struct {
	v uint64
}

func newComponentID() ComponentID {
	return ComponentID{v: lastComponentID.Add(1)}
}

// IsZero reports whether id is the zero "no component" value.
func (id ComponentID) IsZero() bool {
	return id.v == 0
}

func (id ComponentID) String() string {
	return "#" + strconv.FormatUint(id.v, 10)
}
