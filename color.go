package weld

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// RGBA is a colour with float components in [0, 1].
// The zero value is transparent black.
type RGBA struct {
	R, G, B, A float32
}

// RGB returns an opaque colour from 8-bit components.
func RGB(r, g, b uint8) RGBA {
	return RGBA8(r, g, b, 255)
}

// RGBA8 returns a colour from 8-bit components.
func RGBA8(r, g, b, a uint8) RGBA {
	return RGBA{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// HexColor parses a hex colour string.
// Supported formats: "#RGB", "#RRGGBB" and "#RRGGBBAA". The "#" is optional.
func HexColor(hex string) (RGBA, error) {
	s := strings.TrimPrefix(hex, "#")

	switch len(s) {
	case 8, 6:
		var c [4]uint8
		c[3] = 255
		for i := 0; i < len(s)/2; i++ {
			v, err := parseHexByte(s[i*2 : i*2+2])
			if err != nil {
				return RGBA{}, fmt.Errorf("hex colour %q: %w", hex, err)
			}
			c[i] = v
		}
		return RGBA8(c[0], c[1], c[2], c[3]), nil
	case 3:
		// #RGB -> expand to #RRGGBB
		var c [3]uint8
		for i := range c {
			v, err := parseHexNibble(s[i])
			if err != nil {
				return RGBA{}, fmt.Errorf("hex colour %q: %w", hex, err)
			}
			c[i] = v<<4 | v
		}
		return RGB(c[0], c[1], c[2]), nil
	default:
		return RGBA{}, fmt.Errorf("hex colour %q: expected #RGB, #RRGGBB or #RRGGBBAA", hex)
	}
}

// MustHex is HexColor for constants; it panics on malformed input.
func MustHex(hex string) RGBA {
	c, err := HexColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHexByte parses a two-character hex string into a byte.
func parseHexByte(s string) (uint8, error) {
	if len(s) != 2 {
		return 0, errors.New("invalid hex byte")
	}
	high, err := parseHexNibble(s[0])
	if err != nil {
		return 0, err
	}
	low, err := parseHexNibble(s[1])
	if err != nil {
		return 0, err
	}
	return high<<4 | low, nil
}

// parseHexNibble parses a single hex character into a nibble (0-15).
func parseHexNibble(c byte) (uint8, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex character %q", c)
	}
}

// Bytes returns the colour as 8-bit components, clamped and rounded.
func (c RGBA) Bytes() (r, g, b, a uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)
}

func toByte(f float32) uint8 {
	f = max(0, min(1, f))
	return uint8(math.Round(float64(f) * 255))
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float32) RGBA {
	c.A = a
	return c
}

// Hex formats the colour as "#RRGGBB", or "#RRGGBBAA" when not opaque.
func (c RGBA) Hex() string {
	r, g, b, a := c.Bytes()
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

// Luminance returns the relative luminance of the colour (0.0-1.0).
// Uses the W3C formula for calculating relative luminance.
func (c RGBA) Luminance() float64 {
	// Convert to linear RGB (sRGB gamma correction)
	linearize := func(v float32) float64 {
		f := float64(max(0, min(1, v)))
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}

	// W3C relative luminance formula
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

// IsLight returns true if the colour is perceptually light.
func (c RGBA) IsLight() bool {
	return c.Luminance() > 0.2
}

// Common colours.
var (
	Transparent = RGBA{}
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Red         = RGB(205, 49, 49)
	Green       = RGB(13, 188, 121)
	Blue        = RGB(36, 114, 200)
	Gray        = RGB(102, 102, 102)
)
