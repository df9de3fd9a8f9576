package weld

import (
	"reflect"
	"slices"
	"strings"
)

// Component is one node of the UI description tree. It carries an
// identity, an optional name, layout styles, a render delegate, typed
// handlers, a data bag, and ordered children.
//
// Components are built fluently inside State.Build and are treated as
// immutable once the driver has installed the tree.
type Component struct {
	id       ComponentID
	name     string
	named    bool
	renderer Renderer
	styles   []Style
	children []*Component
	handlers map[reflect.Type]Handler
	data     map[reflect.Type]any
}

// New creates a component that renders with r. A nil renderer draws
// nothing and renders its children.
func New(r Renderer) *Component {
	if r == nil {
		r = containerRenderer{}
	}
	return &Component{
		id:       newComponentID(),
		renderer: r,
	}
}

// Named sets the component's name. Names need not be unique.
func (c *Component) Named(name string) *Component {
	c.name = name
	c.named = true
	return c
}

// Style appends layout styles. Later styles of the same kind win.
func (c *Component) Style(styles ...Style) *Component {
	c.styles = append(c.styles, styles...)
	return c
}

// Child appends children in order. Nil children are skipped so optional
// parts can be written inline.
func (c *Component) Child(children ...*Component) *Component {
	for _, child := range children {
		if child != nil {
			c.children = append(c.children, child)
		}
	}
	return c
}

// On registers typed handlers. Registering a second handler for the same
// event type replaces the first.
func (c *Component) On(handlers ...Handler) *Component {
	for _, h := range handlers {
		if h.event == nil {
			continue
		}
		if c.handlers == nil {
			c.handlers = make(map[reflect.Type]Handler)
		}
		c.handlers[h.event] = h
	}
	return c
}

// ID returns the component's process-unique identity.
func (c *Component) ID() ComponentID {
	return c.id
}

// Name returns the component's name and whether one was set.
func (c *Component) Name() (string, bool) {
	return c.name, c.named
}

// Renderer returns the render delegate.
func (c *Component) Renderer() Renderer {
	return c.renderer
}

// Children returns the children in order. The slice must not be modified.
func (c *Component) Children() []*Component {
	return c.children
}

// Styles returns the style list in declaration order. The slice must not be modified.
func (c *Component) Styles() []Style {
	return c.styles
}

// Handles reports whether a handler is registered for eventType.
func (c *Component) Handles(eventType reflect.Type) bool {
	_, ok := c.handlers[eventType]
	return ok
}

// EventTypes returns the registered event types sorted by name.
func (c *Component) EventTypes() []reflect.Type {
	types := make([]reflect.Type, 0, len(c.handlers))
	for t := range c.handlers {
		types = append(types, t)
	}
	slices.SortFunc(types, func(a, b reflect.Type) int {
		return strings.Compare(a.String(), b.String())
	})
	return types
}

// Walk calls fn for c and its descendants in depth-first pre-order.
// Returning false from fn skips that component's children.
func (c *Component) Walk(fn func(*Component) bool) {
	if c == nil || !fn(c) {
		return
	}
	for _, child := range c.children {
		child.Walk(fn)
	}
}

// FindByName returns the first component in depth-first pre-order whose
// name equals name, or nil.
func (c *Component) FindByName(name string) *Component {
	if c == nil {
		return nil
	}
	if c.named && c.name == name {
		return c
	}
	for _, child := range c.children {
		if found := child.FindByName(name); found != nil {
			return found
		}
	}
	return nil
}

// Find returns the component with the given id, or nil.
func (c *Component) Find(id ComponentID) *Component {
	if c == nil {
		return nil
	}
	if c.id == id {
		return c
	}
	for _, child := range c.children {
		if found := child.Find(id); found != nil {
			return found
		}
	}
	return nil
}

func (c *Component) String() string {
	if c == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(c.renderer.ID())
	b.WriteString(c.id.String())
	if c.named {
		b.WriteString("(")
		b.WriteString(c.name)
		b.WriteString(")")
	}
	return b.String()
}
