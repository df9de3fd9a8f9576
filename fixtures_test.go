package weld

import (
	"fmt"
	"slices"
)

// --- Shared states for driver and dispatch tests ---

// counterState is a padded row holding one 100x32 button at (25, 25)
// when laid out in a 300x200 viewport.
type counterState struct {
	Counter uint32
}

func (s counterState) Build() *Component {
	return New(nil).Named("root").Style(
		Width(Percent(100)), Height(Percent(100)),
		FlexDirection(Row), Padding(Pt(25)), AlignItems(AlignStart),
	).Child(
		New(fill("button", Blue)).Named("button").
			Style(Width(Pt(100)), Height(Pt(32))).
			On(Handle(func(s counterState, _ Pressed) (counterState, error) {
				return counterState{Counter: s.Counter + 1}, nil
			})),
	)
}

// TextChanged is the todo input's event.
type TextChanged string

type todoState struct {
	Todos []string
}

func (s todoState) Clone() todoState {
	return todoState{Todos: slices.Clone(s.Todos)}
}

func (s todoState) Build() *Component {
	root := New(nil).Named("root").Child(
		New(fill("input", White)).Named("input").Style(Height(Pt(20))).On(
			Handle(func(s todoState, e TextChanged) (todoState, error) {
				s.Todos = append(s.Todos, string(e))
				return s, nil
			}),
		),
	)
	for i, todo := range s.Todos {
		root.Child(New(text("todo", todo)).Named(fmt.Sprintf("todo-%d", i)).Style(Height(Pt(20))))
	}
	return root
}

// --- Render delegates ---

// fill pushes a rect covering the component, then renders children.
func fill(id string, color RGBA) Renderer {
	return RendererFunc(id, func(ctx *RenderContext) {
		ctx.Push(RectPrimitive{Rect: ctx.Bounds(), Color: color})
		ctx.Next()
	})
}

// text pushes a text primitive.
func text(id, s string) Renderer {
	return RendererFunc(id, func(ctx *RenderContext) {
		ctx.Push(TextPrimitive{Rect: ctx.Bounds(), Text: s, Color: Black})
		ctx.Next()
	})
}

// --- Helpers ---

// shape is the identity-free structure of a component tree.
type shape struct {
	Renderer string
	Name     string
	Named    bool
	Styles   []Style
	Children []shape
}

func shapeOf(c *Component) shape {
	name, named := c.Name()
	s := shape{Renderer: c.Renderer().ID(), Name: name, Named: named, Styles: c.Styles()}
	for _, child := range c.Children() {
		s.Children = append(s.Children, shapeOf(child))
	}
	return s
}

// errorLog collects errors passed to WithErrorHandler.
type errorLog struct {
	errs []error
}

func (l *errorLog) option() AppOption {
	return WithErrorHandler(func(err error) { l.errs = append(l.errs, err) })
}
