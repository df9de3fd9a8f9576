// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package weld

import "github.com/grindlemire/go-weld/internal/layout"

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Column        = layout.Column
	Row           = layout.Row
	ColumnReverse = layout.ColumnReverse
	RowReverse    = layout.RowReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Align specifies how children are aligned along the cross axis.
type Align = layout.Align

const (
	AlignAuto    = layout.AlignAuto
	AlignStart   = layout.AlignStart
	AlignEnd     = layout.AlignEnd
	AlignCenter  = layout.AlignCenter
	AlignStretch = layout.AlignStretch
)

// Wrap controls whether children may break onto multiple lines.
type Wrap = layout.Wrap

const (
	NoWrap      = layout.NoWrap
	WrapForward = layout.WrapForward
	WrapReverse = layout.WrapReverse
)

// TextDirection controls whether rows run left-to-right or right-to-left.
type TextDirection = layout.TextDirection

const (
	LTR = layout.LTR
	RTL = layout.RTL
)

// Value represents a dimension value (point, percent, or auto).
type Value = layout.Value

// Unit specifies how a Value is interpreted.
type Unit = layout.Unit

const (
	UnitAuto    = layout.UnitAuto
	UnitPoint   = layout.UnitPoint
	UnitPercent = layout.UnitPercent
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Size represents a width/height pair.
type Size = layout.Size

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Insets are resolved Edges.
type Insets = layout.Insets

// StyleError describes a style the solver rejected.
type StyleError = layout.StyleError

// ErrInvalidStyle is matched by every *StyleError.
var ErrInvalidStyle = layout.ErrInvalidStyle

// Pt creates a Value of n viewport units (pixels or terminal cells).
func Pt(n float32) Value {
	return layout.Pt(n)
}

// Percent creates a Value representing a percentage of available space.
func Percent(p float32) Value {
	return layout.Percent(p)
}

// Auto creates a Value that sizes to content.
func Auto() Value {
	return layout.Auto()
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float32) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(v Value) Edges {
	return layout.EdgeAll(v)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h Value) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l Value) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}
