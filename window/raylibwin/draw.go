package raylibwin

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/grindlemire/go-weld"
)

func color(c weld.RGBA) rl.Color {
	r, g, b, a := c.Bytes()
	return rl.NewColor(r, g, b, a)
}

// pixels rounds r to the pixel grid.
func pixels(r weld.Rect) (x, y, w, h int32) {
	x = int32(r.X + 0.5)
	y = int32(r.Y + 0.5)
	w = int32(r.Right()+0.5) - x
	h = int32(r.Bottom()+0.5) - y
	return x, y, max(0, w), max(0, h)
}

// textOrigin places a line of text left-aligned and vertically centred
// in r.
func textOrigin(r weld.Rect, fontSize int32) (x, y int32) {
	px, py, _, ph := pixels(r)
	return px, py + max(0, (ph-fontSize)/2)
}

func draw(frame weld.Frame, fontSize int) {
	rl.ClearBackground(color(frame.Background))
	size := int32(fontSize)
	for _, p := range frame.List {
		switch p := p.(type) {
		case weld.RectPrimitive:
			if p.Color.A == 0 {
				continue
			}
			x, y, w, h := pixels(p.Rect)
			rl.DrawRectangle(x, y, w, h, color(p.Color))
		case weld.TextPrimitive:
			x, y, w, h := pixels(p.Rect)
			if w == 0 || h == 0 {
				continue
			}
			tx, ty := textOrigin(p.Rect, size)
			rl.BeginScissorMode(x, y, w, h)
			rl.DrawText(p.Text, tx, ty, size, color(p.Color))
			rl.EndScissorMode()
		}
	}
}
