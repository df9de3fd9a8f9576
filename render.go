package weld

// Primitive is one display-list entry. RectPrimitive is the core kind;
// TextPrimitive is drawn by back-ends with their native text facility.
// Back-ends ignore primitive types they do not know.
type Primitive interface {
	Bounds() Rect
}

// RectPrimitive fills a rectangle with a colour.
type RectPrimitive struct {
	Rect  Rect
	Color RGBA
}

// Bounds returns the filled rectangle.
func (p RectPrimitive) Bounds() Rect { return p.Rect }

// TextPrimitive draws an unshaped string inside a rectangle.
type TextPrimitive struct {
	Rect  Rect
	Text  string
	Color RGBA
}

// Bounds returns the text box.
func (p TextPrimitive) Bounds() Rect { return p.Rect }

// DisplayList is a frame's primitives in back-to-front order.
type DisplayList []Primitive

// Renderer is a component's render delegate.
type Renderer interface {
	// ID is a stable identifier for diagnostics and tests.
	ID() string

	// Render pushes the component's primitives. Implementations usually
	// push their own background first and then call ctx.Next so children
	// draw on top.
	Render(ctx *RenderContext)
}

// RendererFunc adapts a function to a Renderer with the given id.
func RendererFunc(id string, fn func(ctx *RenderContext)) Renderer {
	return funcRenderer{id: id, fn: fn}
}

type funcRenderer struct {
	id string
	fn func(ctx *RenderContext)
}

func (r funcRenderer) ID() string { return r.id }

func (r funcRenderer) Render(ctx *RenderContext) { r.fn(ctx) }

// containerRenderer draws nothing of its own.
type containerRenderer struct{}

func (containerRenderer) ID() string { return "container" }

func (containerRenderer) Render(ctx *RenderContext) { ctx.Next() }

// RenderContext is handed to a Renderer while the display list is built.
type RenderContext struct {
	layout  *LayoutContext
	current *Component
	list    DisplayList
}

// Bounds returns the current component's border box.
func (ctx *RenderContext) Bounds() Rect {
	return ctx.layout.LayoutOf(ctx.current)
}

// Content returns the current component's box minus its padding.
func (ctx *RenderContext) Content() Rect {
	return ctx.layout.ContentOf(ctx.current)
}

// Component returns the component being rendered.
func (ctx *RenderContext) Component() *Component {
	return ctx.current
}

// Push appends a primitive to the display list.
func (ctx *RenderContext) Push(p Primitive) {
	ctx.list = append(ctx.list, p)
}

// Next renders the current component's children in order.
func (ctx *RenderContext) Next() {
	parent := ctx.current
	for _, child := range parent.children {
		ctx.current = child
		ctx.Render()
	}
	ctx.current = parent
}

// Render invokes the current component's delegate.
func (ctx *RenderContext) Render() {
	ctx.current.renderer.Render(ctx)
}

// BuildDisplayList renders root and its descendants against lc.
// Every component must have been part of the last lc.UpdateLayout.
func BuildDisplayList(lc *LayoutContext, root *Component) DisplayList {
	if root == nil {
		return nil
	}
	ctx := &RenderContext{layout: lc, current: root}
	ctx.Render()
	return ctx.list
}
