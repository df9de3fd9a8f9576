package weld

import "reflect"

// Put stores v in the component's data bag, replacing any earlier value
// of the same type. It returns c for chaining.
func Put[T any](c *Component, v T) *Component {
	if c.data == nil {
		c.data = make(map[reflect.Type]any)
	}
	c.data[reflect.TypeFor[T]()] = v
	return c
}

// Get returns the value of type T stored in the component's data bag.
func Get[T any](c *Component) (T, bool) {
	v, ok := c.data[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}
