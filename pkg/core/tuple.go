// Package core provides the linear algebra primitives shared by every other
// package in the ray tracer: homogeneous tuples, colors, rays, and 4x4
// matrices.
package core

import (
	"errors"
	"fmt"
	"math"

	"github.com/davelpz/rray/pkg/rrerr"
)

const epsilon = 1e-5

var errZeroLength = errors.New("cannot normalize a zero-length tuple")

// Tuple is a homogeneous (x,y,z,w) value. w=1 denotes a point, w=0 a vector.
// Arithmetic on tuples preserves w the way the underlying operation implies
// (point-point is a vector, point+vector is a point, and so on); callers
// that mix kinds incorrectly get whatever w falls out rather than a panic,
// matching the teacher's permissive Vec3 arithmetic.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a tuple with w=1.
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a tuple with w=0.
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether this tuple is a point (w != 0).
func (t Tuple) IsPoint() bool { return t.W != 0 }

// IsVector reports whether this tuple is a vector (w == 0).
func (t Tuple) IsVector() bool { return t.W == 0 }

func (t Tuple) String() string {
	return fmt.Sprintf("{%.4g, %.4g, %.4g, %.4g}", t.X, t.Y, t.Z, t.W)
}

// Add returns the sum of two tuples.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the difference of two tuples.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the additive inverse of the tuple.
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar.
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Magnitude returns the Euclidean length of the tuple.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit-length tuple in the same direction. Normalizing a
// zero-length tuple returns it unchanged rather than dividing by zero; the
// geometry error is raised by callers that require a non-zero vector.
func (t Tuple) Normalize() Tuple {
	mag := t.Magnitude()
	if mag == 0 {
		return t
	}
	return Tuple{t.X / mag, t.Y / mag, t.Z / mag, t.W / mag}
}

// NormalizeChecked is like Normalize but returns an error for a zero-length
// tuple instead of silently returning it unchanged. Build-phase code that
// must reject a degenerate vector (e.g. a zero-length triangle edge) uses
// this; render-phase shading code uses the silent Normalize, since spec §7
// treats numerical degeneracies there as a miss, never a fatal error.
func (t Tuple) NormalizeChecked() (Tuple, error) {
	if t.Magnitude() == 0 {
		return t, rrerr.Geometry(errZeroLength)
	}
	return t.Normalize(), nil
}

// Dot returns the dot product of two tuples.
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the cross product of two vectors. Only meaningful for
// vectors (w=0); the result always carries w=0.
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns v reflected about normal n: v - 2*(v.n)*n.
func Reflect(v, n Tuple) Tuple {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// Equals compares two tuples with the system-wide absolute tolerance.
func (t Tuple) Equals(other Tuple) bool {
	return math.Abs(t.X-other.X) < epsilon &&
		math.Abs(t.Y-other.Y) < epsilon &&
		math.Abs(t.Z-other.Z) < epsilon &&
		math.Abs(t.W-other.W) < epsilon
}

// FloatEqual compares two floats with the system-wide absolute tolerance.
func FloatEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}
