package core

import "fmt"

// Color represents an opaque 8-bit RGB color. Alpha is fixed at 0xff.
// Like Vec3, Color is an immutable value type.
type Color struct {
	R, G, B uint8
}

// Named colors.
var (
	White   = Color{255, 255, 255}
	Black   = Color{0, 0, 0}
	Grey    = Color{127, 127, 127}
	Red     = Color{255, 0, 0}
	Green   = Color{0, 255, 0}
	Blue    = Color{0, 0, 255}
	Yellow  = Color{255, 255, 0}
	Magenta = Color{255, 0, 255}
	Cyan    = Color{0, 255, 255}
)

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// RGBA returns the color as an RGBA quadruple with full alpha
func (c Color) RGBA() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, 0xff}
}

// Add returns the channel-wise sum of two colors, saturating at 255
func (c Color) Add(addend Color) Color {
	return Color{
		R: saturate(int(c.R) + int(addend.R)),
		G: saturate(int(c.G) + int(addend.G)),
		B: saturate(int(c.B) + int(addend.B)),
	}
}

// Multiply returns the channel-wise product of two colors, normalized so
// that multiplying by white is the identity
func (c Color) Multiply(multiplier Color) Color {
	return Color{
		R: uint8(int(c.R) * int(multiplier.R) / 0xff),
		G: uint8(int(c.G) * int(multiplier.G) / 0xff),
		B: uint8(int(c.B) * int(multiplier.B) / 0xff),
	}
}

// Scale returns the color with each channel scaled by factor, clamped to
// 255. Negative factors are rejected.
func (c Color) Scale(factor float64) (Color, error) {
	if factor < 0 {
		return Color{}, fmt.Errorf("can't scale color values by negative amount %g", factor)
	}
	return Color{
		R: saturate(int(float64(c.R) * factor)),
		G: saturate(int(float64(c.G) * factor)),
		B: saturate(int(float64(c.B) * factor)),
	}, nil
}

func saturate(channel int) uint8 {
	if channel > 255 {
		return 255
	}
	return uint8(channel)
}
