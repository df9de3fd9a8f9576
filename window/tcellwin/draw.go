package tcellwin

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/grindlemire/go-weld"
	"github.com/mattn/go-runewidth"
)

func cellColor(c weld.RGBA) tcell.Color {
	r, g, b, _ := c.Bytes()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// cells returns the cell span covered by r, clipped to the screen.
func cells(s tcell.Screen, r weld.Rect) (x0, y0, x1, y1 int) {
	cols, rows := s.Size()
	r = r.Intersect(weld.NewRect(0, 0, float32(cols), float32(rows)))
	if r.IsEmpty() {
		return 0, 0, 0, 0
	}
	return round(r.X), round(r.Y), round(r.Right()), round(r.Bottom())
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

func fillRect(s tcell.Screen, p weld.RectPrimitive) {
	if p.Color.A == 0 {
		return
	}
	style := tcell.StyleDefault.Background(cellColor(p.Color))
	x0, y0, x1, y1 := cells(s, p.Rect)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawText writes the text on the middle row of its box, keeping each
// cell's background.
func drawText(s tcell.Screen, p weld.TextPrimitive) {
	x0, y0, x1, y1 := cells(s, p.Rect)
	if y1 <= y0 {
		return
	}
	y := y0 + (y1-y0-1)/2
	fg := cellColor(p.Color)

	x := x0
	for _, r := range p.Text {
		w := runewidth.RuneWidth(r)
		if x+w > x1 {
			break
		}
		_, _, style, _ := s.GetContent(x, y)
		s.SetContent(x, y, r, nil, style.Foreground(fg))
		x += w
	}
}
