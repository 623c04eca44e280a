package core

import "math"

// AABB represents an axis-aligned bounding box, used by shape/group/CSG
// nodes as the cached acceleration bounds described in spec 4.H.
type AABB struct {
	Min Tuple // Minimum corner (a point)
	Max Tuple // Maximum corner (a point)
}

// NewAABB creates a new AABB from min and max points.
func NewAABB(min, max Tuple) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints creates an AABB that bounds all given points.
func NewAABBFromPoints(points ...Tuple) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	min := points[0]
	max := points[0]

	for _, point := range points[1:] {
		min.X = math.Min(min.X, point.X)
		min.Y = math.Min(min.Y, point.Y)
		min.Z = math.Min(min.Z, point.Z)

		max.X = math.Max(max.X, point.X)
		max.Y = math.Max(max.Y, point.Y)
		max.Z = math.Max(max.Z, point.Z)
	}
	min.W, max.W = 1, 1

	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects with this AABB using the slab method.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		var lo, hi, origin, direction float64

		switch axis {
		case 0:
			lo, hi, origin, direction = aabb.Min.X, aabb.Max.X, ray.Origin.X, ray.Direction.X
		case 1:
			lo, hi, origin, direction = aabb.Min.Y, aabb.Max.Y, ray.Origin.Y, ray.Direction.Y
		case 2:
			lo, hi, origin, direction = aabb.Min.Z, aabb.Max.Z, ray.Origin.Z, ray.Direction.Z
		}

		if math.Abs(direction) < 1e-8 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (lo - origin) * invDirection
		t2 := (hi - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}

// Union returns an AABB that bounds both this AABB and another.
func (aabb AABB) Union(other AABB) AABB {
	min := NewPoint(
		math.Min(aabb.Min.X, other.Min.X),
		math.Min(aabb.Min.Y, other.Min.Y),
		math.Min(aabb.Min.Z, other.Min.Z),
	)
	max := NewPoint(
		math.Max(aabb.Max.X, other.Max.X),
		math.Max(aabb.Max.Y, other.Max.Y),
		math.Max(aabb.Max.Z, other.Max.Z),
	)
	return AABB{Min: min, Max: max}
}

// Center returns the center point of the AABB.
func (aabb AABB) Center() Tuple {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the size (extent) of the AABB along each axis.
func (aabb AABB) Size() Tuple {
	return aabb.Max.Subtract(aabb.Min)
}

// SurfaceArea returns the surface area of the AABB.
func (aabb AABB) SurfaceArea() float64 {
	size := aabb.Size()
	return 2.0 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the longest extent.
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	if size.X > size.Y && size.X > size.Z {
		return 0
	}
	if size.Y > size.Z {
		return 1
	}
	return 2
}

// Transform returns the AABB that bounds this AABB's eight corners after
// being transformed by m. Used when a group composes a child's parent-space
// bbox with the child's own transform.
func (aabb AABB) Transform(m Matrix4) AABB {
	corners := [8]Tuple{
		NewPoint(aabb.Min.X, aabb.Min.Y, aabb.Min.Z),
		NewPoint(aabb.Min.X, aabb.Min.Y, aabb.Max.Z),
		NewPoint(aabb.Min.X, aabb.Max.Y, aabb.Min.Z),
		NewPoint(aabb.Min.X, aabb.Max.Y, aabb.Max.Z),
		NewPoint(aabb.Max.X, aabb.Min.Y, aabb.Min.Z),
		NewPoint(aabb.Max.X, aabb.Min.Y, aabb.Max.Z),
		NewPoint(aabb.Max.X, aabb.Max.Y, aabb.Min.Z),
		NewPoint(aabb.Max.X, aabb.Max.Y, aabb.Max.Z),
	}
	for i, c := range corners {
		corners[i] = m.MulTuple(c)
	}
	return NewAABBFromPoints(corners[:]...)
}
