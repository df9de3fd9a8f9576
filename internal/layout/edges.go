package layout

// Edges represents per-side spacing values (padding or margin).
// Auto sides resolve to zero.
type Edges struct {
	Top, Right, Bottom, Left Value
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(v Value) Edges {
	return Edges{Top: v, Right: v, Bottom: v, Left: v}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h Value) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l Value) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Resolve converts the edges to concrete insets. Percentages resolve
// against base, which is the containing block's width as in CSS.
func (e Edges) Resolve(base float32) Insets {
	return Insets{
		Top:    e.Top.Resolve(base, 0),
		Right:  e.Right.Resolve(base, 0),
		Bottom: e.Bottom.Resolve(base, 0),
		Left:   e.Left.Resolve(base, 0),
	}
}

func (e Edges) each(fn func(side string, v Value) error) error {
	for _, s := range []struct {
		name string
		v    Value
	}{{"top", e.Top}, {"right", e.Right}, {"bottom", e.Bottom}, {"left", e.Left}} {
		if err := fn(s.name, s.v); err != nil {
			return err
		}
	}
	return nil
}

// Insets are resolved edge values.
type Insets struct {
	Top, Right, Bottom, Left float32
}

// Horizontal returns the sum of Left and Right.
func (i Insets) Horizontal() float32 {
	return i.Left + i.Right
}

// Vertical returns the sum of Top and Bottom.
func (i Insets) Vertical() float32 {
	return i.Top + i.Bottom
}

// IsZero returns true if all inset values are zero.
func (i Insets) IsZero() bool {
	return i == Insets{}
}
