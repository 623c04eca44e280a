package primitive

import (
	"testing"

	"github.com/davelpz/rray/pkg/core"
)

func TestCubeIntersectFaces(t *testing.T) {
	tests := []struct {
		name         string
		origin, dir  core.Tuple
		t1, t2       float64
	}{
		{"+x", core.NewPoint(5, 0.5, 0), core.NewVector(-1, 0, 0), 4, 6},
		{"-x", core.NewPoint(-5, 0.5, 0), core.NewVector(1, 0, 0), 4, 6},
		{"+y", core.NewPoint(0.5, 5, 0), core.NewVector(0, -1, 0), 4, 6},
		{"-y", core.NewPoint(0.5, -5, 0), core.NewVector(0, 1, 0), 4, 6},
		{"+z", core.NewPoint(0.5, 0, 5), core.NewVector(0, 0, -1), 4, 6},
		{"-z", core.NewPoint(0.5, 0, -5), core.NewVector(0, 0, 1), 4, 6},
		{"inside", core.NewPoint(0, 0.5, 0), core.NewVector(0, 0, 1), -1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.dir)
			hits := Intersect(NewCube(), ray)
			if len(hits) != 2 {
				t.Fatalf("expected 2 hits, got %d", len(hits))
			}
			if !core.FloatEqual(hits[0].T, tt.t1) || !core.FloatEqual(hits[1].T, tt.t2) {
				t.Errorf("expected t=%f,%f, got t=%f,%f", tt.t1, tt.t2, hits[0].T, hits[1].T)
			}
		})
	}
}

func TestCubeIntersectMiss(t *testing.T) {
	ray := core.NewRay(core.NewPoint(-2, 0, 0), core.NewVector(0.2673, 0.5345, 0.8018))
	if hits := Intersect(NewCube(), ray); len(hits) != 0 {
		t.Errorf("expected miss, got %d hits", len(hits))
	}
}

func TestCubeNormal(t *testing.T) {
	tests := []struct {
		point core.Tuple
		want  core.Tuple
	}{
		{core.NewPoint(1, 0.5, -0.8), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -0.2, 0.9), core.NewVector(-1, 0, 0)},
		{core.NewPoint(-0.4, 1, -0.1), core.NewVector(0, 1, 0)},
		{core.NewPoint(0.3, -1, -0.7), core.NewVector(0, -1, 0)},
		{core.NewPoint(-0.6, 0.3, 1), core.NewVector(0, 0, 1)},
		{core.NewPoint(0.4, 0.4, -1), core.NewVector(0, 0, -1)},
		{core.NewPoint(1, 1, 1), core.NewVector(1, 0, 0)},
		{core.NewPoint(-1, -1, -1), core.NewVector(-1, 0, 0)},
	}
	for _, tt := range tests {
		if got := normalCube(tt.point); !got.Equals(tt.want) {
			t.Errorf("normal at %v: got %v, want %v", tt.point, got, tt.want)
		}
	}
}
