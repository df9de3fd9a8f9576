package weld

import "fmt"

// State is an application state. Build must be a pure function of the
// receiver: the driver calls it after every accepted event and may call
// it more than once for the same value.
//
// Handlers receive the state by value. States holding slices or maps
// should also implement Cloner so handlers cannot alias them.
type State interface {
	Build() *Component
}

// Rebuild calls s.Build and checks the result: the root must be non-nil
// and every component must appear exactly once.
func Rebuild(s State) (*Component, error) {
	root := s.Build()
	if root == nil {
		return nil, fmt.Errorf("build %T: nil root: %w", s, ErrInvalidTree)
	}
	seen := make(map[ComponentID]bool)
	var check func(c *Component) error
	check = func(c *Component) error {
		if seen[c.id] {
			return fmt.Errorf("build %T: component %s appears twice: %w", s, c, ErrInvalidTree)
		}
		seen[c.id] = true
		for _, child := range c.children {
			if err := check(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := check(root); err != nil {
		return nil, err
	}
	return root, nil
}
