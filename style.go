package weld

import (
	"fmt"

	"github.com/grindlemire/go-weld/internal/layout"
)

// StyleKind names the layout property a Style sets.
type StyleKind uint8

const (
	StyleWidth StyleKind = iota + 1
	StyleHeight
	StyleMinWidth
	StyleMinHeight
	StyleMaxWidth
	StyleMaxHeight
	StylePadding
	StyleMargin
	StyleFlex
	StyleFlexGrow
	StyleFlexShrink
	StyleFlexBasis
	StyleFlexDirection
	StyleJustifyContent
	StyleAlignItems
	StyleAlignSelf
	StyleFlexWrap
	StyleGap
)

var styleKindNames = [...]string{
	StyleWidth:          "width",
	StyleHeight:         "height",
	StyleMinWidth:       "min-width",
	StyleMinHeight:      "min-height",
	StyleMaxWidth:       "max-width",
	StyleMaxHeight:      "max-height",
	StylePadding:        "padding",
	StyleMargin:         "margin",
	StyleFlex:           "flex",
	StyleFlexGrow:       "flex-grow",
	StyleFlexShrink:     "flex-shrink",
	StyleFlexBasis:      "flex-basis",
	StyleFlexDirection:  "flex-direction",
	StyleJustifyContent: "justify-content",
	StyleAlignItems:     "align-items",
	StyleAlignSelf:      "align-self",
	StyleFlexWrap:       "flex-wrap",
	StyleGap:            "gap",
}

func (k StyleKind) String() string {
	if int(k) < len(styleKindNames) && styleKindNames[k] != "" {
		return styleKindNames[k]
	}
	return fmt.Sprintf("StyleKind(%d)", uint8(k))
}

// Side selects edges for Padding and Margin styles.
type Side uint8

const (
	SideTop Side = 1 << iota
	SideRight
	SideBottom
	SideLeft

	SideAll        = SideTop | SideRight | SideBottom | SideLeft
	SideVertical   = SideTop | SideBottom
	SideHorizontal = SideLeft | SideRight
)

// Style is one layout property. A component carries a list of them;
// later entries of the same kind override earlier ones, and edge styles
// override per side. Flex is applied before everything else, so
// FlexGrow, FlexShrink and FlexBasis win over it in any order.
// Style values are comparable.
type Style struct {
	Kind   StyleKind
	Value  Value   // sizes and flex-basis
	Edges  Edges   // padding and margin
	Sides  Side    // which of Edges apply
	Number float32 // flex factors and gap
	Enum   uint8   // direction, justify, align and wrap
}

// Width sets the border-box width.
func Width(v Value) Style { return Style{Kind: StyleWidth, Value: v} }

// Height sets the border-box height.
func Height(v Value) Style { return Style{Kind: StyleHeight, Value: v} }

// MinWidth sets the minimum width.
func MinWidth(v Value) Style { return Style{Kind: StyleMinWidth, Value: v} }

// MinHeight sets the minimum height.
func MinHeight(v Value) Style { return Style{Kind: StyleMinHeight, Value: v} }

// MaxWidth sets the maximum width.
func MaxWidth(v Value) Style { return Style{Kind: StyleMaxWidth, Value: v} }

// MaxHeight sets the maximum height.
func MaxHeight(v Value) Style { return Style{Kind: StyleMaxHeight, Value: v} }

// Padding sets the same padding on all sides.
func Padding(v Value) Style {
	return Style{Kind: StylePadding, Edges: layout.EdgeAll(v), Sides: SideAll}
}

// PaddingTRBL sets padding per side in CSS order.
func PaddingTRBL(t, r, b, l Value) Style {
	return Style{Kind: StylePadding, Edges: layout.EdgeTRBL(t, r, b, l), Sides: SideAll}
}

// PaddingOn sets padding only on the given sides.
func PaddingOn(sides Side, v Value) Style {
	return Style{Kind: StylePadding, Edges: layout.EdgeAll(v), Sides: sides}
}

// Margin sets the same margin on all sides.
func Margin(v Value) Style {
	return Style{Kind: StyleMargin, Edges: layout.EdgeAll(v), Sides: SideAll}
}

// MarginTRBL sets margin per side in CSS order.
func MarginTRBL(t, r, b, l Value) Style {
	return Style{Kind: StyleMargin, Edges: layout.EdgeTRBL(t, r, b, l), Sides: SideAll}
}

// MarginOn sets margin only on the given sides.
func MarginOn(sides Side, v Value) Style {
	return Style{Kind: StyleMargin, Edges: layout.EdgeAll(v), Sides: sides}
}

// Flex is the CSS shorthand `flex: n`: grow n, shrink 1, basis 0.
func Flex(n float32) Style { return Style{Kind: StyleFlex, Number: n} }

// FlexGrow sets how much of the free space the component takes.
func FlexGrow(f float32) Style { return Style{Kind: StyleFlexGrow, Number: f} }

// FlexShrink sets how much the component gives up when space runs out.
func FlexShrink(f float32) Style { return Style{Kind: StyleFlexShrink, Number: f} }

// FlexBasis sets the initial main size before growing or shrinking.
func FlexBasis(v Value) Style { return Style{Kind: StyleFlexBasis, Value: v} }

// FlexDirection sets the main axis for children.
func FlexDirection(d Direction) Style { return Style{Kind: StyleFlexDirection, Enum: uint8(d)} }

// JustifyContent distributes children along the main axis.
func JustifyContent(j Justify) Style { return Style{Kind: StyleJustifyContent, Enum: uint8(j)} }

// AlignItems aligns children on the cross axis.
func AlignItems(a Align) Style { return Style{Kind: StyleAlignItems, Enum: uint8(a)} }

// AlignSelf overrides the parent's AlignItems for this component.
func AlignSelf(a Align) Style { return Style{Kind: StyleAlignSelf, Enum: uint8(a)} }

// FlexWrap lets children break onto multiple lines.
func FlexWrap(w Wrap) Style { return Style{Kind: StyleFlexWrap, Enum: uint8(w)} }

// Gap sets the space between children and between wrapped lines.
func Gap(n float32) Style { return Style{Kind: StyleGap, Number: n} }

func (s Style) String() string {
	switch s.Kind {
	case StyleWidth, StyleHeight, StyleMinWidth, StyleMinHeight,
		StyleMaxWidth, StyleMaxHeight, StyleFlexBasis:
		return fmt.Sprintf("%s: %s", s.Kind, s.Value)
	case StylePadding, StyleMargin:
		return fmt.Sprintf("%s: %s %s %s %s", s.Kind, s.Edges.Top, s.Edges.Right, s.Edges.Bottom, s.Edges.Left)
	case StyleFlex, StyleFlexGrow, StyleFlexShrink, StyleGap:
		return fmt.Sprintf("%s: %g", s.Kind, s.Number)
	default:
		return fmt.Sprintf("%s: %d", s.Kind, s.Enum)
	}
}

// applyTo writes the property into a solver style.
func (s Style) applyTo(ls *layout.Style) {
	switch s.Kind {
	case StyleWidth:
		ls.Width = s.Value
	case StyleHeight:
		ls.Height = s.Value
	case StyleMinWidth:
		ls.MinWidth = s.Value
	case StyleMinHeight:
		ls.MinHeight = s.Value
	case StyleMaxWidth:
		ls.MaxWidth = s.Value
	case StyleMaxHeight:
		ls.MaxHeight = s.Value
	case StylePadding:
		applySides(&ls.Padding, s.Edges, s.Sides)
	case StyleMargin:
		applySides(&ls.Margin, s.Edges, s.Sides)
	case StyleFlex:
		ls.FlexGrow = s.Number
		ls.FlexShrink = 1
		ls.FlexBasis = layout.Pt(0)
	case StyleFlexGrow:
		ls.FlexGrow = s.Number
	case StyleFlexShrink:
		ls.FlexShrink = s.Number
	case StyleFlexBasis:
		ls.FlexBasis = s.Value
	case StyleFlexDirection:
		ls.Direction = layout.Direction(s.Enum)
	case StyleJustifyContent:
		ls.JustifyContent = layout.Justify(s.Enum)
	case StyleAlignItems:
		ls.AlignItems = layout.Align(s.Enum)
	case StyleAlignSelf:
		ls.AlignSelf = layout.Align(s.Enum)
	case StyleFlexWrap:
		ls.Wrap = layout.Wrap(s.Enum)
	case StyleGap:
		ls.Gap = s.Number
	}
}

func applySides(dst *layout.Edges, src layout.Edges, sides Side) {
	if sides&SideTop != 0 {
		dst.Top = src.Top
	}
	if sides&SideRight != 0 {
		dst.Right = src.Right
	}
	if sides&SideBottom != 0 {
		dst.Bottom = src.Bottom
	}
	if sides&SideLeft != 0 {
		dst.Left = src.Left
	}
}

// resolveStyles folds a style list over the solver defaults. Flex
// shorthands go first so the longhands they expand to can override them.
func resolveStyles(styles []Style) layout.Style {
	ls := layout.DefaultStyle()
	for _, s := range styles {
		if s.Kind == StyleFlex {
			s.applyTo(&ls)
		}
	}
	for _, s := range styles {
		if s.Kind != StyleFlex {
			s.applyTo(&ls)
		}
	}
	return ls
}
