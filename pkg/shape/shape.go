// Package shape implements the scene graph node (spec 4.G): every node —
// primitive, group, or CSG — carries its own transform and an optional
// parent back-reference, and intersection/normal queries recurse down (or
// walk up) that tree exactly as the teacher's geometry.Shape interface
// dispatches, generalized from a flat shape list to a nested tree.
package shape

import (
	"github.com/davelpz/rray/pkg/core"
	"github.com/davelpz/rray/pkg/material"
	"github.com/davelpz/rray/pkg/primitive"
	"github.com/davelpz/rray/pkg/transform"
)

// Kind tags which of the three node variants a Shape is.
type Kind int

const (
	KindPrimitive Kind = iota
	KindGroup
	KindCSG
)

// Shape is a node in the scene graph. Exactly one of Primitive, the group
// fields (children/bbox), or the CSG fields (Operation/Left/Right) is
// populated, selected by kind.
type Shape struct {
	Transform transform.Transform
	Material  *material.Material // only meaningful for KindPrimitive
	Parent    *Shape             // nil at the tree root

	kind      Kind
	Primitive *primitive.Primitive

	children []*Shape
	bbox     core.AABB // cached local-frame bbox (spec 4.H "parent space")

	Operation CSGOperation
	Left      *Shape
	Right     *Shape
}

// Intersection is a world-ray hit against a specific leaf Shape, carrying
// whatever local-space hit data (U,V) its primitive needs for shading.
type Intersection struct {
	T     float64
	Shape *Shape
	U, V  float64
}

// NewPrimitive wraps a primitive.Primitive as a leaf Shape with an
// identity transform and the default material; callers customize both via
// SetTransform/SetMaterial.
func NewPrimitive(p *primitive.Primitive) *Shape {
	return &Shape{kind: KindPrimitive, Primitive: p, Transform: transform.Identity(), Material: material.NewDefault()}
}

// SetTransform attaches a transform (with cached inverse) to the shape.
func (s *Shape) SetTransform(t transform.Transform) { s.Transform = t }

// SetMaterial attaches a material to a primitive shape.
func (s *Shape) SetMaterial(m *material.Material) { s.Material = m }

// Kind reports the node variant.
func (s *Shape) Kind() Kind { return s.kind }

// Intersect implements spec 4.G's intersect(ray): ray is expressed in this
// shape's PARENT's frame (or world space at the tree root); it is
// transformed into this shape's own local frame once, then dispatched by
// kind.
func (s *Shape) Intersect(ray core.Ray) []Intersection {
	localRay := ray.Transform(s.Transform.Inverse)

	switch s.kind {
	case KindPrimitive:
		hits := primitive.Intersect(s.Primitive, localRay)
		out := make([]Intersection, len(hits))
		for i, h := range hits {
			out[i] = Intersection{T: h.T, Shape: s, U: h.U, V: h.V}
		}
		return out
	case KindGroup:
		return s.intersectGroup(localRay)
	case KindCSG:
		return s.intersectCSG(localRay)
	default:
		return nil
	}
}

// WorldToObject converts a world-space point into this shape's own object
// space by recursing up the parent chain first, per spec 4.G normal_at
// step 1.
func (s *Shape) WorldToObject(worldPoint core.Tuple) core.Tuple {
	p := worldPoint
	if s.Parent != nil {
		p = s.Parent.WorldToObject(p)
	}
	return s.Transform.Inverse.MulTuple(p)
}

// NormalToWorld converts an object-space normal into world space by
// applying transpose(inverse_transform), re-zeroing w, normalizing, then
// recursing up the parent chain (spec 4.G normal_at step 3).
func (s *Shape) NormalToWorld(objectNormal core.Tuple) core.Tuple {
	n := s.Transform.Inverse.Transpose().MulTuple(objectNormal)
	n.W = 0
	n = n.Normalize()
	if s.Parent != nil {
		n = s.Parent.NormalToWorld(n)
	}
	return n
}

// NormalAt returns the world-space normal at a world-space point on a
// primitive leaf shape, given the local hit data from its Intersection.
func (s *Shape) NormalAt(worldPoint core.Tuple, hit Intersection) core.Tuple {
	objectPoint := s.WorldToObject(worldPoint)
	objectNormal := primitive.NormalAt(s.Primitive, objectPoint, primitive.Hit{T: hit.T, U: hit.U, V: hit.V})
	return s.NormalToWorld(objectNormal)
}

// Bounds returns this shape's bounding box as seen in its PARENT's frame:
// its own local-frame bbox with its own transform applied.
func (s *Shape) Bounds() core.AABB {
	return s.localBounds().Transform(s.Transform.Matrix)
}

func (s *Shape) localBounds() core.AABB {
	switch s.kind {
	case KindPrimitive:
		return primitive.Bounds(s.Primitive)
	case KindGroup:
		return s.bbox
	case KindCSG:
		return s.Left.Bounds().Union(s.Right.Bounds())
	default:
		return core.NewAABB(core.NewPoint(0, 0, 0), core.NewPoint(0, 0, 0))
	}
}
