package layout

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrInvalidStyle is matched by every *StyleError.
	ErrInvalidStyle = errors.New("layout: invalid style")

	// ErrChildIndex is returned when InsertChild receives an ordinal outside [0, ChildCount].
	ErrChildIndex = errors.New("layout: child index out of range")

	// ErrHasParent is returned when inserting a node that is already attached.
	ErrHasParent = errors.New("layout: node already has a parent")
)

// StyleError describes a style property the solver rejected.
type StyleError struct {
	// Path is the child-ordinal path from the calculated root to the
	// offending node. Empty means the root itself.
	Path     []int
	Property string
	Value    string
	Reason   string
}

func (e *StyleError) Error() string {
	var b strings.Builder
	b.WriteString("layout: invalid ")
	b.WriteString(e.Property)
	if e.Value != "" {
		b.WriteString(" ")
		b.WriteString(e.Value)
	}
	if len(e.Path) > 0 {
		parts := make([]string, len(e.Path))
		for i, p := range e.Path {
			parts[i] = strconv.Itoa(p)
		}
		fmt.Fprintf(&b, " at node /%s", strings.Join(parts, "/"))
	}
	b.WriteString(": ")
	b.WriteString(e.Reason)
	return b.String()
}

// Is makes errors.Is(err, ErrInvalidStyle) true for any *StyleError.
func (e *StyleError) Is(target error) bool {
	return target == ErrInvalidStyle
}
