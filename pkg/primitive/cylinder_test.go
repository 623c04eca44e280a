package primitive

import (
	"math"
	"testing"

	"github.com/davelpz/rray/pkg/core"
)

func TestCylinderIntersectMiss(t *testing.T) {
	tests := []struct {
		origin, dir core.Tuple
	}{
		{core.NewPoint(1, 0, 0), core.NewVector(0, 1, 0)},
		{core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0)},
		{core.NewPoint(0, 0, -5), core.NewVector(1, 1, 1)},
	}
	cyl := NewCylinder(negInf, posInf, false)
	for _, tt := range tests {
		ray := core.NewRay(tt.origin, tt.dir.Normalize())
		if hits := Intersect(cyl, ray); len(hits) != 0 {
			t.Errorf("expected miss for dir %v, got %d hits", tt.dir, len(hits))
		}
	}
}

func TestCylinderIntersectHits(t *testing.T) {
	tests := []struct {
		origin, dir core.Tuple
		t0, t1      float64
	}{
		{core.NewPoint(1, 0, -5), core.NewVector(0, 0, 1), 5, 5},
		{core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), 4, 6},
		{core.NewPoint(0.5, 0, -5), core.NewVector(0.1, 1, 1), 6.80798, 7.08872},
	}
	cyl := NewCylinder(negInf, posInf, false)
	for _, tt := range tests {
		ray := core.NewRay(tt.origin, tt.dir.Normalize())
		hits := Intersect(cyl, ray)
		if len(hits) == 0 {
			t.Fatalf("expected hit for origin %v dir %v", tt.origin, tt.dir)
		}
		if !(math.Abs(hits[0].T-tt.t0) < 1e-4) {
			t.Errorf("t0: got %f, want %f", hits[0].T, tt.t0)
		}
	}
}

func TestCylinderTruncated(t *testing.T) {
	cyl := NewCylinder(1, 2, false)
	tests := []struct {
		origin, dir core.Tuple
		count       int
	}{
		{core.NewPoint(0, 1.5, 0), core.NewVector(0.1, 1, 0), 0},
		{core.NewPoint(0, 3, -5), core.NewVector(0, 0, 1), 0},
		{core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1), 0},
		{core.NewPoint(0, 2, -5), core.NewVector(0, 0, 1), 0},
		{core.NewPoint(0, 1, -5), core.NewVector(0, 0, 1), 0},
		{core.NewPoint(0, 1.5, -2), core.NewVector(0, 0, 1), 2},
	}
	for _, tt := range tests {
		ray := core.NewRay(tt.origin, tt.dir.Normalize())
		hits := Intersect(cyl, ray)
		if len(hits) != tt.count {
			t.Errorf("origin %v: got %d hits, want %d", tt.origin, len(hits), tt.count)
		}
	}
}

func TestCylinderClosedCaps(t *testing.T) {
	cyl := NewCylinder(1, 2, true)
	tests := []struct {
		origin, dir core.Tuple
		count       int
	}{
		{core.NewPoint(0, 3, 0), core.NewVector(0, -1, 0), 2},
		{core.NewPoint(0, 3, -2), core.NewVector(0, -1, 2), 2},
		{core.NewPoint(0, 4, -2), core.NewVector(0, -1, 1), 2},
		{core.NewPoint(0, 0, -2), core.NewVector(0, 1, 2), 2},
		{core.NewPoint(0, -1, -2), core.NewVector(0, 1, 1), 2},
	}
	for _, tt := range tests {
		ray := core.NewRay(tt.origin, tt.dir.Normalize())
		hits := Intersect(cyl, ray)
		if len(hits) != tt.count {
			t.Errorf("origin %v dir %v: got %d hits, want %d", tt.origin, tt.dir, len(hits), tt.count)
		}
	}
}

func TestCylinderNormal(t *testing.T) {
	cyl := NewCylinder(negInf, posInf, false)
	tests := []struct {
		point core.Tuple
		want  core.Tuple
	}{
		{core.NewPoint(1, 0, 0), core.NewVector(1, 0, 0)},
		{core.NewPoint(0, 5, -1), core.NewVector(0, 0, -1)},
		{core.NewPoint(0, -2, 1), core.NewVector(0, 0, 1)},
		{core.NewPoint(-1, 1, 0), core.NewVector(-1, 0, 0)},
	}
	for _, tt := range tests {
		if got := normalCylinder(cyl, tt.point); !got.Equals(tt.want) {
			t.Errorf("normal at %v: got %v, want %v", tt.point, got, tt.want)
		}
	}
}

func TestCylinderNormalOnCaps(t *testing.T) {
	cyl := NewCylinder(1, 2, true)
	tests := []struct {
		point core.Tuple
		want  core.Tuple
	}{
		{core.NewPoint(0, 1, 0), core.NewVector(0, -1, 0)},
		{core.NewPoint(0.5, 1, 0), core.NewVector(0, -1, 0)},
		{core.NewPoint(0, 2, 0), core.NewVector(0, 1, 0)},
		{core.NewPoint(0.5, 2, 0), core.NewVector(0, 1, 0)},
	}
	for _, tt := range tests {
		if got := normalCylinder(cyl, tt.point); !got.Equals(tt.want) {
			t.Errorf("cap normal at %v: got %v, want %v", tt.point, got, tt.want)
		}
	}
}
