package layout

import (
	"math"
	"strconv"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content/flex
	UnitPoint               // Absolute viewport units
	UnitPercent             // Percentage of parent's available space
)

// String returns the unit suffix used by Value.String.
func (u Unit) String() string {
	switch u {
	case UnitPoint:
		return "pt"
	case UnitPercent:
		return "%"
	default:
		return "auto"
	}
}

// Value represents a dimension that can be a point value, a percentage, or auto.
type Value struct {
	Amount float32
	Unit   Unit
}

// Auto returns a Value that should be computed from content/flex.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Pt returns a Value representing an absolute number of viewport units.
func Pt(n float32) Value {
	return Value{Amount: n, Unit: UnitPoint}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float32) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the concrete value given available space.
// For UnitAuto, returns the fallback value.
func (v Value) Resolve(available, fallback float32) float32 {
	switch v.Unit {
	case UnitPoint:
		return v.Amount
	case UnitPercent:
		return available * v.Amount / 100
	default:
		return fallback
	}
}

// IsAuto returns true if this value should be computed from content/flex.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// IsDefined is the inverse of IsAuto.
func (v Value) IsDefined() bool {
	return v.Unit != UnitAuto
}

func (v Value) String() string {
	if v.Unit == UnitAuto {
		return "auto"
	}
	return strconv.FormatFloat(float64(v.Amount), 'g', -1, 32) + v.Unit.String()
}

func (v Value) finite() bool {
	return isFinite(v.Amount)
}

func isFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
