package primitive

import (
	"testing"

	"github.com/davelpz/rray/pkg/core"
)

func TestDedupeCollapsesNearbyHits(t *testing.T) {
	hits := []Hit{{T: 1.0}, {T: 1.0000001}, {T: 5.0}}
	got := dedupe(hits)
	if len(got) != 2 {
		t.Fatalf("expected 2 deduped hits, got %d: %v", len(got), got)
	}
}

func TestDedupeKeepsDistinctHits(t *testing.T) {
	hits := []Hit{{T: 1.0}, {T: 2.0}, {T: 3.0}}
	got := dedupe(hits)
	if len(got) != 3 {
		t.Errorf("expected 3 distinct hits preserved, got %d", len(got))
	}
}

func TestIntersectReturnsSortedHits(t *testing.T) {
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	hits := Intersect(NewSphere(), ray)
	for i := 1; i < len(hits); i++ {
		if hits[i].T < hits[i-1].T {
			t.Fatalf("hits not sorted: %v", hits)
		}
	}
}

func TestCubeBoundsMatchesSphereBounds(t *testing.T) {
	cubeBox := Bounds(NewCube())
	sphereBox := Bounds(NewSphere())
	if !cubeBox.Min.Equals(sphereBox.Min) || !cubeBox.Max.Equals(sphereBox.Max) {
		t.Errorf("expected both unit-scale bounds to match: cube=%v sphere=%v", cubeBox, sphereBox)
	}
}
