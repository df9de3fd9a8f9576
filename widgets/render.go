package widgets

import "github.com/grindlemire/go-weld"

type panelRenderer struct{}

func (panelRenderer) ID() string { return "panel" }

func (panelRenderer) Render(ctx *weld.RenderContext) {
	pushFill(ctx)
	ctx.Next()
}

type labelRenderer struct{}

func (labelRenderer) ID() string { return "label" }

func (labelRenderer) Render(ctx *weld.RenderContext) {
	pushCaption(ctx)
	ctx.Next()
}

type buttonRenderer struct{}

func (buttonRenderer) ID() string { return "button" }

func (buttonRenderer) Render(ctx *weld.RenderContext) {
	pushFill(ctx)
	pushCaption(ctx)
	ctx.Next()
}

type splitterRenderer struct{}

func (splitterRenderer) ID() string { return "splitter" }

func (splitterRenderer) Render(ctx *weld.RenderContext) {
	ctx.Next()
}

func pushFill(ctx *weld.RenderContext) {
	fill, ok := weld.Get[Fill](ctx.Component())
	if !ok || fill.Color.A == 0 {
		return
	}
	ctx.Push(weld.RectPrimitive{Rect: ctx.Bounds(), Color: fill.Color})
}

func pushCaption(ctx *weld.RenderContext) {
	caption, ok := weld.Get[Caption](ctx.Component())
	if !ok || caption.Text == "" {
		return
	}
	ink, _ := weld.Get[Ink](ctx.Component())
	ctx.Push(weld.TextPrimitive{Rect: ctx.Content(), Text: caption.Text, Color: ink.Color})
}
