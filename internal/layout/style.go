package layout

import "fmt"

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Column        Direction = iota // Children laid out top-to-bottom
	Row                            // Children laid out left-to-right
	ColumnReverse                  // Children laid out bottom-to-top
	RowReverse                     // Children laid out right-to-left
)

func (d Direction) isRow() bool {
	return d == Row || d == RowReverse
}

func (d Direction) isReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignAuto    Align = iota // Inherit parent's AlignItems (AlignSelf only)
	AlignStart                // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Wrap controls whether children may flow onto multiple lines.
type Wrap uint8

const (
	NoWrap      Wrap = iota // Single line; children may shrink
	WrapForward             // Break onto new lines after the main axis fills
	WrapReverse             // As WrapForward, lines stack from the cross end
)

// TextDirection is the inline direction passed to Calculate.
// RTL mirrors the main axis of row containers.
type TextDirection uint8

const (
	LTR TextDirection = iota
	RTL
)

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Flex container properties
	Direction      Direction
	JustifyContent Justify
	AlignItems     Align
	Wrap           Wrap
	Gap            float32 // Space between children (main axis) and lines (cross axis)

	// Flex item properties
	FlexGrow   float32 // How much to grow relative to siblings
	FlexShrink float32 // How much to shrink relative to siblings (default 1)
	FlexBasis  Value   // Initial main size (auto = use Width/Height or content)
	AlignSelf  Align   // Override parent's AlignItems (AlignAuto = inherit)

	// Spacing
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with the solver's defaults.
func DefaultStyle() Style {
	return Style{
		Width:      Auto(),
		Height:     Auto(),
		MinWidth:   Auto(), // No minimum
		MinHeight:  Auto(),
		MaxWidth:   Auto(), // No maximum
		MaxHeight:  Auto(),
		Direction:  Column,
		AlignItems: AlignStretch,
		FlexShrink: 1,
	}
}

// Validate reports the first property that the solver cannot lay out:
// non-finite amounts, negative sizes or padding, and negative flex factors.
// Margins may be negative.
func (s Style) Validate() error {
	sizes := []struct {
		name string
		v    Value
	}{
		{"width", s.Width}, {"height", s.Height},
		{"min-width", s.MinWidth}, {"min-height", s.MinHeight},
		{"max-width", s.MaxWidth}, {"max-height", s.MaxHeight},
		{"flex-basis", s.FlexBasis},
	}
	for _, sz := range sizes {
		if err := checkValue(sz.name, sz.v, false); err != nil {
			return err
		}
	}
	if err := s.Padding.each(func(side string, v Value) error {
		return checkValue("padding-"+side, v, false)
	}); err != nil {
		return err
	}
	if err := s.Margin.each(func(side string, v Value) error {
		return checkValue("margin-"+side, v, true)
	}); err != nil {
		return err
	}

	factors := []struct {
		name string
		f    float32
	}{{"gap", s.Gap}, {"flex-grow", s.FlexGrow}, {"flex-shrink", s.FlexShrink}}
	for _, f := range factors {
		if !isFinite(f.f) {
			return &StyleError{Property: f.name, Value: fmt.Sprint(f.f), Reason: "not a finite number"}
		}
		if f.f < 0 {
			return &StyleError{Property: f.name, Value: fmt.Sprint(f.f), Reason: "must not be negative"}
		}
	}
	if s.Direction > RowReverse {
		return &StyleError{Property: "flex-direction", Value: fmt.Sprint(s.Direction), Reason: "unknown direction"}
	}
	if s.Wrap > WrapReverse {
		return &StyleError{Property: "flex-wrap", Value: fmt.Sprint(s.Wrap), Reason: "unknown wrap mode"}
	}
	return nil
}

func checkValue(name string, v Value, allowNegative bool) error {
	if v.Unit > UnitPercent {
		return &StyleError{Property: name, Value: fmt.Sprint(v.Unit), Reason: "unknown unit"}
	}
	if v.IsAuto() {
		return nil
	}
	if !v.finite() {
		return &StyleError{Property: name, Value: v.String(), Reason: "not a finite number"}
	}
	if !allowNegative && v.Amount < 0 {
		return &StyleError{Property: name, Value: v.String(), Reason: "must not be negative"}
	}
	return nil
}
