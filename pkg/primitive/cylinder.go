package primitive

import (
	"math"

	"github.com/davelpz/rray/pkg/core"
)

const cylEpsilon = 1e-8

// intersectCylinder solves the quadratic in (x,z) for the infinite
// cylinder, clips to [Minimum,Maximum] on y, and tests the end caps when
// Closed, grounded on the teacher's geometry/cylinder.go hitBody/hitCap
// split (generalized from "closest hit" to the full set of valid roots).
func intersectCylinder(p *Primitive, ray core.Ray) []Hit {
	var hits []Hit

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if math.Abs(a) > cylEpsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		c := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		disc := b*b - 4*a*c
		if disc < 0 {
			return intersectCaps(p, ray, nil)
		}

		sqrtD := math.Sqrt(disc)
		t0 := (-b - sqrtD) / (2 * a)
		t1 := (-b + sqrtD) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := ray.Origin.Y + t0*ray.Direction.Y
		if p.Minimum < y0 && y0 < p.Maximum {
			hits = append(hits, Hit{T: t0})
		}
		y1 := ray.Origin.Y + t1*ray.Direction.Y
		if p.Minimum < y1 && y1 < p.Maximum {
			hits = append(hits, Hit{T: t1})
		}
	}

	return intersectCaps(p, ray, hits)
}

// checkCap reports whether the intersection at t is within radius r of the
// shape's y axis at the capping plane.
func checkCap(ray core.Ray, t, r float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return x*x+z*z <= r*r+cylEpsilon
}

// intersectCaps adds end-cap hits (cylinder: constant radius 1; cone:
// radius varies linearly with y) to an existing hit list when the
// primitive is closed.
func intersectCaps(p *Primitive, ray core.Ray, hits []Hit) []Hit {
	if !p.Closed || math.Abs(ray.Direction.Y) < cylEpsilon {
		return hits
	}

	t := (p.Minimum - ray.Origin.Y) / ray.Direction.Y
	r := capRadius(p, p.Minimum)
	if checkCap(ray, t, r) {
		hits = append(hits, Hit{T: t})
	}

	t = (p.Maximum - ray.Origin.Y) / ray.Direction.Y
	r = capRadius(p, p.Maximum)
	if checkCap(ray, t, r) {
		hits = append(hits, Hit{T: t})
	}
	return hits
}

func capRadius(p *Primitive, y float64) float64 {
	if p.Kind == KindCone {
		return math.Abs(y)
	}
	return 1
}

func normalCylinder(p *Primitive, point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z
	if dist < 1 && point.Y >= p.Maximum-cylEpsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= p.Minimum+cylEpsilon {
		return core.NewVector(0, -1, 0)
	}
	return core.NewVector(point.X, 0, point.Z)
}
