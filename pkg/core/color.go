package core

import "math"

// Color is an (r,g,b) triple, unclamped internally; clamping only happens
// at output encoding time (pkg/render).
type Color struct {
	R, G, B float64
}

// NewColor creates a new color.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

var (
	Black = NewColor(0, 0, 0)
	White = NewColor(1, 1, 1)
)

// Add returns the sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors.
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar.
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the Hadamard (component-wise) product of two colors.
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Lerp linearly interpolates between c and other by t in [0,1].
func (c Color) Lerp(other Color, t float64) Color {
	return c.Add(other.Subtract(c).Multiply(t))
}

// Clamp returns a copy of c with each channel clamped to [minVal, maxVal].
func (c Color) Clamp(minVal, maxVal float64) Color {
	clamp := func(v float64) float64 {
		return math.Max(minVal, math.Min(maxVal, v))
	}
	return Color{clamp(c.R), clamp(c.G), clamp(c.B)}
}

// Equals compares two colors with the system-wide absolute tolerance.
func (c Color) Equals(other Color) bool {
	return FloatEqual(c.R, other.R) && FloatEqual(c.G, other.G) && FloatEqual(c.B, other.B)
}
