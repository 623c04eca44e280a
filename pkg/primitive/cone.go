package primitive

import (
	"math"

	"github.com/davelpz/rray/pkg/core"
)

// intersectCone solves the quadratic x²+z²-y²=0, handling the degenerate
// linear case when the ray runs parallel to the cone's slope (a≈0, b≠0),
// clips to [Minimum,Maximum], and reuses the cylinder's cap logic (spec
// 4.F groups cylinder/cone intersection together).
func intersectCone(p *Primitive, ray core.Ray) []Hit {
	var hits []Hit

	a := ray.Direction.X*ray.Direction.X - ray.Direction.Y*ray.Direction.Y + ray.Direction.Z*ray.Direction.Z
	b := 2*ray.Origin.X*ray.Direction.X - 2*ray.Origin.Y*ray.Direction.Y + 2*ray.Origin.Z*ray.Direction.Z
	c := ray.Origin.X*ray.Origin.X - ray.Origin.Y*ray.Origin.Y + ray.Origin.Z*ray.Origin.Z

	if math.Abs(a) < cylEpsilon {
		if math.Abs(b) < cylEpsilon {
			return intersectCaps(p, ray, nil)
		}
		t := -c / (2 * b)
		y := ray.Origin.Y + t*ray.Direction.Y
		if p.Minimum < y && y < p.Maximum {
			hits = append(hits, Hit{T: t})
		}
		return intersectCaps(p, ray, hits)
	}

	disc := b*b - 4*a*c
	if disc < -cylEpsilon {
		return intersectCaps(p, ray, nil)
	}
	if disc < 0 {
		disc = 0
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

	return intersectCaps(p, ray, hits)
}

func normalCone(p *Primitive, point core.Tuple) core.Tuple {
	dist := point.X*point.X + point.Z*point.Z
	if dist < p.Maximum*p.Maximum && point.Y >= p.Maximum-cylEpsilon {
		return core.NewVector(0, 1, 0)
	}
	if dist < p.Minimum*p.Minimum && point.Y <= p.Minimum+cylEpsilon {
		return core.NewVector(0, -1, 0)
	}
	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return core.NewVector(point.X, y, point.Z)
}
