package shape

import (
	"github.com/davelpz/rray/pkg/core"
	"github.com/davelpz/rray/pkg/transform"
)

// CSGOperation selects the boolean combination rule (spec 4.I).
type CSGOperation int

const (
	OpUnion CSGOperation = iota
	OpIntersection
	OpDifference
)

// NewCSG creates a CSG node combining left and right with op. Both
// children's Parent is set to the new node so the "x.shape ∈ left" test
// in filter can walk the parent chain by identity.
func NewCSG(op CSGOperation, left, right *Shape) *Shape {
	csg := &Shape{kind: KindCSG, Operation: op, Left: left, Right: right, Transform: transform.Identity()}
	left.Parent = csg
	right.Parent = csg
	return csg
}

// intersectCSG implements spec 4.I: intersect both sides with the
// (already localized) ray, merge sorted, then filter.
func (s *Shape) intersectCSG(localRay core.Ray) []Intersection {
	left := s.Left.Intersect(localRay)
	right := s.Right.Intersect(localRay)

	merged := make([]Intersection, 0, len(left)+len(right))
	merged = append(merged, left...)
	merged = append(merged, right...)
	sortIntersections(merged)

	return filterCSG(s.Operation, merged, s)
}

// filterCSG implements spec 4.I's filter loop. lhit classifies each
// intersection by walking x.Shape.Parent up until it reaches csg.Left or
// csg.Right, by pointer identity.
func filterCSG(op CSGOperation, merged []Intersection, csg *Shape) []Intersection {
	inl, inr := false, false
	var out []Intersection

	for _, x := range merged {
		lhit := belongsTo(x.Shape, csg.Left)
		if intersectionAllowed(op, lhit, inl, inr) {
			out = append(out, x)
		}
		if lhit {
			inl = !inl
		} else {
			inr = !inr
		}
	}
	return out
}

// belongsTo walks s.Parent upward until it reaches root (by identity) or
// runs out of ancestors.
func belongsTo(s *Shape, root *Shape) bool {
	for cur := s; cur != nil; cur = cur.Parent {
		if cur == root {
			return true
		}
	}
	return false
}

func intersectionAllowed(op CSGOperation, lhit, inl, inr bool) bool {
	switch op {
	case OpUnion:
		return (lhit && !inr) || (!lhit && !inl)
	case OpIntersection:
		return (lhit && inr) || (!lhit && inl)
	case OpDifference:
		return (lhit && !inr) || (!lhit && inl)
	default:
		return false
	}
}
