package shape

import (
	"testing"

	"github.com/davelpz/rray/pkg/core"
	"github.com/davelpz/rray/pkg/primitive"
	"github.com/davelpz/rray/pkg/transform"
)

func TestIntersectionAllowedTruthTable(t *testing.T) {
	cases := []struct {
		op               CSGOperation
		lhit, inl, inr   bool
		want             bool
	}{
		{OpUnion, true, true, true, false},
		{OpUnion, true, true, false, true},
		{OpUnion, true, false, true, false},
		{OpUnion, true, false, false, true},
		{OpUnion, false, true, true, false},
		{OpUnion, false, true, false, false},
		{OpUnion, false, false, true, true},
		{OpUnion, false, false, false, true},

		{OpIntersection, true, true, true, true},
		{OpIntersection, true, true, false, false},
		{OpIntersection, true, false, true, true},
		{OpIntersection, true, false, false, false},
		{OpIntersection, false, true, true, true},
		{OpIntersection, false, true, false, true},
		{OpIntersection, false, false, true, false},
		{OpIntersection, false, false, false, false},

		{OpDifference, true, true, true, false},
		{OpDifference, true, true, false, true},
		{OpDifference, true, false, true, false},
		{OpDifference, true, false, false, true},
		{OpDifference, false, true, true, true},
		{OpDifference, false, true, false, true},
		{OpDifference, false, false, true, false},
		{OpDifference, false, false, false, false},
	}

	for _, c := range cases {
		got := intersectionAllowed(c.op, c.lhit, c.inl, c.inr)
		if got != c.want {
			t.Errorf("intersectionAllowed(%v, lhit=%v, inl=%v, inr=%v) = %v, want %v",
				c.op, c.lhit, c.inl, c.inr, got, c.want)
		}
	}
}

func TestBelongsToWalksParentChain(t *testing.T) {
	left := NewPrimitive(primitive.NewSphere())
	right := NewPrimitive(primitive.NewCube())
	csg := NewCSG(OpUnion, left, right)

	if !belongsTo(left, csg.Left) {
		t.Errorf("left should belong to csg.Left")
	}
	if belongsTo(left, csg.Right) {
		t.Errorf("left should not belong to csg.Right")
	}
	if !belongsTo(right, csg.Right) {
		t.Errorf("right should belong to csg.Right")
	}
}

func TestFilterCSGUnionKeepsOutsideHits(t *testing.T) {
	left := NewPrimitive(primitive.NewSphere())
	right := NewPrimitive(primitive.NewSphere())
	csg := NewCSG(OpUnion, left, right)

	merged := []Intersection{
		{T: 1, Shape: left},
		{T: 2, Shape: right},
		{T: 3, Shape: left},
		{T: 4, Shape: right},
	}
	got := filterCSG(OpUnion, merged, csg)
	if len(got) != 2 {
		t.Fatalf("expected 2 surviving hits for union, got %d", len(got))
	}
	if got[0].T != 1 || got[1].T != 4 {
		t.Errorf("expected outer hits t=1,4 to survive union filter, got %v", got)
	}
}

func TestCSGDifferenceEndToEnd(t *testing.T) {
	left := NewPrimitive(primitive.NewSphere())
	right := NewPrimitive(primitive.NewSphere())
	rightTr, _ := transform.Compose(transform.Translate(0, 0, 0.5))
	right.SetTransform(rightTr)

	csg := NewCSG(OpDifference, left, right)

	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	xs := csg.Intersect(ray)
	if len(xs) == 0 {
		t.Fatal("expected at least one surviving hit carving the right sphere out of the left")
	}
	if !core.FloatEqual(xs[0].T, 4) {
		t.Errorf("expected the difference's first hit to be the left sphere's entry at t=4, got t=%f", xs[0].T)
	}
}
