package scenegraph

import (
	"math"
	"testing"

	"github.com/davelpz/rray/pkg/core"
	"github.com/davelpz/rray/pkg/material"
	"github.com/davelpz/rray/pkg/primitive"
	"github.com/davelpz/rray/pkg/shape"
	"github.com/davelpz/rray/pkg/transform"
)

func TestPrepareComputationsOutsideHit(t *testing.T) {
	s := shape.NewPrimitive(primitive.NewSphere())
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	hit := shape.Intersection{T: 4, Shape: s}

	comps := prepareComputations(hit, ray, []shape.Intersection{hit})
	if comps.Inside {
		t.Errorf("expected outside hit, got Inside=true")
	}
	if !comps.Point.Equals(core.NewPoint(0, 0, -1)) {
		t.Errorf("Point: got %v", comps.Point)
	}
	if !comps.Eye.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Eye: got %v", comps.Eye)
	}
	if !comps.Normal.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Normal: got %v", comps.Normal)
	}
}

func TestPrepareComputationsInsideHitNegatesNormal(t *testing.T) {
	s := shape.NewPrimitive(primitive.NewSphere())
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	hit := shape.Intersection{T: 1, Shape: s}

	comps := prepareComputations(hit, ray, []shape.Intersection{hit})
	if !comps.Inside {
		t.Errorf("expected inside hit, got Inside=false")
	}
	if !comps.Normal.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("expected negated normal, got %v", comps.Normal)
	}
}

func TestPrepareComputationsOverAndUnderPointOffsets(t *testing.T) {
	s := shape.NewPrimitive(primitive.NewSphere())
	tr, _ := transform.Compose(transform.Translate(0, 0, 1))
	s.SetTransform(tr)
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	hit := shape.Intersection{T: 5, Shape: s}

	comps := prepareComputations(hit, ray, []shape.Intersection{hit})
	if comps.OverPoint.Z >= comps.Point.Z {
		t.Errorf("over point should be nudged toward the camera (smaller z), got over=%v point=%v", comps.OverPoint, comps.Point)
	}
	if comps.UnderPoint.Z <= comps.Point.Z {
		t.Errorf("under point should be nudged away from the camera (larger z), got under=%v point=%v", comps.UnderPoint, comps.Point)
	}
}

func TestRefractiveIndicesThroughOverlappingSpheresN1N2(t *testing.T) {
	a := shape.NewPrimitive(primitive.NewSphere())
	aTr, _ := transform.Compose(transform.Scale(2, 2, 2))
	a.SetTransform(aTr)
	a.Material = material.NewDefault()
	a.Material.RefractiveIndex = 1.5

	b := shape.NewPrimitive(primitive.NewSphere())
	bTr, _ := transform.Compose(transform.Translate(0, 0, -0.25))
	b.SetTransform(bTr)
	b.Material = material.NewDefault()
	b.Material.RefractiveIndex = 2.0

	c := shape.NewPrimitive(primitive.NewSphere())
	cTr, _ := transform.Compose(transform.Translate(0, 0, 0.25))
	c.SetTransform(cTr)
	c.Material = material.NewDefault()
	c.Material.RefractiveIndex = 2.5

	ray := core.NewRay(core.NewPoint(0, 0, -4), core.NewVector(0, 0, 1))
	xs := []shape.Intersection{
		{T: 2, Shape: a}, {T: 2.75, Shape: b}, {T: 3.25, Shape: c},
		{T: 4.75, Shape: b}, {T: 5.25, Shape: c}, {T: 6, Shape: a},
	}

	wantN1 := []float64{1.0, 1.5, 2.0, 2.5, 2.5, 1.5}
	wantN2 := []float64{1.5, 2.0, 2.5, 2.5, 1.5, 1.0}

	for i, x := range xs {
		n1, n2 := refractiveIndices(x, xs)
		if !core.FloatEqual(n1, wantN1[i]) || !core.FloatEqual(n2, wantN2[i]) {
			t.Errorf("hit %d: got n1=%f n2=%f, want n1=%f n2=%f", i, n1, n2, wantN1[i], wantN2[i])
		}
	}
}

func TestReflectVComputedFromIncomingRayAndNormal(t *testing.T) {
	s := shape.NewPrimitive(primitive.NewPlane())
	ray := core.NewRay(core.NewPoint(0, 1, -1), core.NewVector(0, -math.Sqrt2/2, math.Sqrt2/2))
	hit := shape.Intersection{T: math.Sqrt2, Shape: s}

	comps := prepareComputations(hit, ray, []shape.Intersection{hit})
	want := core.NewVector(0, math.Sqrt2/2, math.Sqrt2/2)
	if !comps.ReflectV.Equals(want) {
		t.Errorf("ReflectV: got %v, want %v", comps.ReflectV, want)
	}
}
