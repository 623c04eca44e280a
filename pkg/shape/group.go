package shape

import (
	"github.com/davelpz/rray/pkg/core"
	"github.com/davelpz/rray/pkg/transform"
)

// NewGroup creates an empty group with an identity transform. Children are
// attached via AddChild; call Finalize once the tree is complete to cache
// bounding boxes and run subdivision (spec §5's single-threaded build
// phase).
func NewGroup() *Shape {
	return &Shape{kind: KindGroup, Transform: transform.Identity()}
}

// AddChild appends a child and sets its Parent back-reference.
func (s *Shape) AddChild(child *Shape) {
	child.Parent = s
	s.children = append(s.children, child)
}

// Children returns the group's direct children.
func (s *Shape) Children() []*Shape { return s.children }

// Finalize recomputes bounding boxes bottom-up for this node and (for
// groups) subdivides children whose count exceeds threshold along the
// bbox's longest axis, grounded on the teacher's core/bvh.go buildBVH /
// findBestSplitSimple approach (simplified to a split at the bbox's
// midpoint), adapted from a whole-scene
// BVH into a per-group, build-time-only subdivision (spec 4.H: "a
// build-time optimization; semantics of intersection are unchanged").
func (s *Shape) Finalize(threshold int) {
	switch s.kind {
	case KindGroup:
		for _, c := range s.children {
			c.Finalize(threshold)
		}
		s.recomputeBBox()
		s.subdivide(threshold)
	case KindCSG:
		s.Left.Finalize(threshold)
		s.Right.Finalize(threshold)
	}
}

func (s *Shape) recomputeBBox() {
	if len(s.children) == 0 {
		s.bbox = core.NewAABB(core.NewPoint(0, 0, 0), core.NewPoint(0, 0, 0))
		return
	}
	box := s.children[0].Bounds()
	for _, c := range s.children[1:] {
		box = box.Union(c.Bounds())
	}
	s.bbox = box
}

// subdivide splits children > threshold into two sub-groups along the
// bbox's longest axis at the midpoint of its extent, recursively. Each
// child goes to the side its bbox center falls on; if every child lands on
// one side, no split is made.
func (s *Shape) subdivide(threshold int) {
	if len(s.children) <= threshold {
		return
	}

	axis := s.bbox.LongestAxis()
	lo, hi := axisExtent(s.bbox, axis)
	if hi <= lo {
		return
	}
	splitPos := (lo + hi) * 0.5

	var left, right []*Shape
	for _, c := range s.children {
		center := c.Bounds().Center()
		if axisValue(center, axis) < splitPos {
			left = append(left, c)
		} else {
			right = append(right, c)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return // degenerate split: all children landed on one side
	}

	leftGroup := NewGroup()
	for _, c := range left {
		leftGroup.AddChild(c)
	}
	rightGroup := NewGroup()
	for _, c := range right {
		rightGroup.AddChild(c)
	}

	leftGroup.recomputeBBox()
	leftGroup.subdivide(threshold)
	rightGroup.recomputeBBox()
	rightGroup.subdivide(threshold)

	s.children = []*Shape{leftGroup, rightGroup}
	leftGroup.Parent = s
	rightGroup.Parent = s
}

func axisExtent(box core.AABB, axis int) (lo, hi float64) {
	switch axis {
	case 0:
		return box.Min.X, box.Max.X
	case 1:
		return box.Min.Y, box.Max.Y
	default:
		return box.Min.Z, box.Max.Z
	}
}

func axisValue(p core.Tuple, axis int) float64 {
	switch axis {
	case 0:
		return p.X
	case 1:
		return p.Y
	default:
		return p.Z
	}
}

// intersectGroup implements spec 4.H: reject on the cached bbox slab test
// in local space, otherwise concatenate each child's intersections
// (children receive the already-localized ray) and sort by t.
func (s *Shape) intersectGroup(localRay core.Ray) []Intersection {
	if !s.bbox.Hit(localRay, negInf, posInf) {
		return nil
	}
	var out []Intersection
	for _, c := range s.children {
		out = append(out, c.Intersect(localRay)...)
	}
	sortIntersections(out)
	return out
}
