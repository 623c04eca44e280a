// Package transform composes translate/scale/rotate/shear descriptors into
// a single 4x4 matrix and its cached inverse (spec 4.B).
package transform

import (
	"math"

	"github.com/davelpz/rray/pkg/core"
)

// Descriptor is one primitive transform operation in a transform list.
type Descriptor interface {
	matrix() core.Matrix4
}

type translate struct{ dx, dy, dz float64 }

func (t translate) matrix() core.Matrix4 {
	return core.NewMatrix4([16]float64{
		1, 0, 0, t.dx,
		0, 1, 0, t.dy,
		0, 0, 1, t.dz,
		0, 0, 0, 1,
	})
}

// Translate returns a translation descriptor.
func Translate(dx, dy, dz float64) Descriptor { return translate{dx, dy, dz} }

type scale struct{ sx, sy, sz float64 }

func (s scale) matrix() core.Matrix4 {
	return core.NewMatrix4([16]float64{
		s.sx, 0, 0, 0,
		0, s.sy, 0, 0,
		0, 0, s.sz, 0,
		0, 0, 0, 1,
	})
}

// Scale returns a scale descriptor.
func Scale(sx, sy, sz float64) Descriptor { return scale{sx, sy, sz} }

// Axis identifies the rotation axis for Rotate.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

type rotate struct {
	axis     Axis
	radians  float64
}

// matrix returns the canonical rotation matrix about the x, y or z axis, the
// same convention the teacher's Vec3.Rotate uses for each axis in turn.
func (r rotate) matrix() core.Matrix4 {
	c, s := math.Cos(r.radians), math.Sin(r.radians)
	switch r.axis {
	case AxisX:
		return core.NewMatrix4([16]float64{
			1, 0, 0, 0,
			0, c, -s, 0,
			0, s, c, 0,
			0, 0, 0, 1,
		})
	case AxisY:
		return core.NewMatrix4([16]float64{
			c, 0, s, 0,
			0, 1, 0, 0,
			-s, 0, c, 0,
			0, 0, 0, 1,
		})
	default: // AxisZ
		return core.NewMatrix4([16]float64{
			c, -s, 0, 0,
			s, c, 0, 0,
			0, 0, 1, 0,
			0, 0, 0, 1,
		})
	}
}

// Rotate returns a rotation descriptor; angleDeg is converted to radians
// internally, as spec 4.B requires.
func Rotate(axis Axis, angleDeg float64) Descriptor {
	return rotate{axis: axis, radians: angleDeg * math.Pi / 180.0}
}

type shear struct{ xy, xz, yx, yz, zx, zy float64 }

func (s shear) matrix() core.Matrix4 {
	return core.NewMatrix4([16]float64{
		1, s.xy, s.xz, 0,
		s.yx, 1, s.yz, 0,
		s.zx, s.zy, 1, 0,
		0, 0, 0, 1,
	})
}

// Shear returns a shear descriptor.
func Shear(xy, xz, yx, yz, zx, zy float64) Descriptor {
	return shear{xy, xz, yx, yz, zx, zy}
}

// Transform is a matrix paired with its cached inverse.
type Transform struct {
	Matrix  core.Matrix4
	Inverse core.Matrix4
}

// Identity is the identity transform.
func Identity() Transform {
	return Transform{Matrix: core.Identity4(), Inverse: core.Identity4()}
}

// Compose builds a Transform from a list of descriptors. Per spec 4.B, the
// descriptors are combined by left-multiplication starting from identity:
// acc = M_k * acc for each subsequent entry. The net effect is that the
// FIRST entry in the list is applied first (innermost) to an object, and
// each later entry wraps around the accumulated result (outermost). This
// is pinned by scenario T-COMP in spec.md §8: transforms
// [scale 2, translate (5,0,0)] scale the unit sphere first, then translate
// it, producing a world-space sphere of radius 2 centered at (5,0,0).
func Compose(descriptors ...Descriptor) (Transform, error) {
	acc := core.Identity4()
	for _, d := range descriptors {
		acc = d.matrix().Mul(acc)
	}
	inv, err := acc.Inverse()
	if err != nil {
		return Transform{}, err
	}
	return Transform{Matrix: acc, Inverse: inv}, nil
}
