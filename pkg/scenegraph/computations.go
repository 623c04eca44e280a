// Package scenegraph ties shapes, materials, and lights together into a
// renderable World: ray/world intersection, the hit pre-computation
// pipeline, and recursive reflective/refractive shading (spec 4.J, 4.L).
package scenegraph

import (
	"github.com/davelpz/rray/pkg/core"
	"github.com/davelpz/rray/pkg/shape"
)

const overPointEpsilon = 1e-5

// Computations is the hit pre-computation structure fed to shading (spec
// 4.L): everything the lighting equation and recursive reflect/refract
// rays need, derived once per hit.
type Computations struct {
	T          float64
	Shape      *shape.Shape
	Point      core.Tuple
	Eye        core.Tuple
	Normal     core.Tuple
	Inside     bool
	OverPoint  core.Tuple
	UnderPoint core.Tuple
	ReflectV   core.Tuple
	N1, N2     float64
}

// prepareComputations builds the Computations for intersection hit within
// the full sorted intersection list xs, which is needed to walk the n1/n2
// container stack (spec 4.J).
func prepareComputations(hit shape.Intersection, ray core.Ray, xs []shape.Intersection) Computations {
	point := ray.At(hit.T)
	eye := ray.Direction.Negate()
	normal := hit.Shape.NormalAt(point, hit)

	inside := false
	if normal.Dot(eye) < 0 {
		inside = true
		normal = normal.Negate()
	}

	over := point.Add(normal.Multiply(overPointEpsilon))
	under := point.Subtract(normal.Multiply(overPointEpsilon))
	reflectV := core.Reflect(ray.Direction, normal)

	n1, n2 := refractiveIndices(hit, xs)

	return Computations{
		T:          hit.T,
		Shape:      hit.Shape,
		Point:      point,
		Eye:        eye,
		Normal:     normal,
		Inside:     inside,
		OverPoint:  over,
		UnderPoint: under,
		ReflectV:   reflectV,
		N1:         n1,
		N2:         n2,
	}
}

// refractiveIndices walks xs forward, maintaining a container stack:
// every time a shape is seen it enters the stack, the second time it is
// seen it leaves. n1 is the refractive index of the last container before
// the given hit is processed (or 1.0 if none); n2 is the same after the
// hit's shape has been pushed/popped (spec 4.J).
func refractiveIndices(hit shape.Intersection, xs []shape.Intersection) (n1, n2 float64) {
	var containers []*shape.Shape

	for _, x := range xs {
		isHit := x.Shape == hit.Shape && x.T == hit.T

		if isHit {
			if len(containers) == 0 {
				n1 = 1.0
			} else {
				n1 = containers[len(containers)-1].Material.RefractiveIndex
			}
		}

		if idx := indexOf(containers, x.Shape); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Shape)
		}

		if isHit {
			if len(containers) == 0 {
				n2 = 1.0
			} else {
				n2 = containers[len(containers)-1].Material.RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

func indexOf(containers []*shape.Shape, s *shape.Shape) int {
	for i, c := range containers {
		if c == s {
			return i
		}
	}
	return -1
}
