package primitive

import (
	"math"

	"github.com/davelpz/rray/pkg/core"
)

// intersectSphere solves the standard quadratic for a unit sphere at the
// origin, grounded on the teacher's geometry/sphere.go Hit, generalized
// here to return both roots (not just the nearer in-range one) since CSG
// and group traversal need the complete hit list.
func intersectSphere(ray core.Ray) []Hit {
	sphereToRay := ray.Origin.Subtract(core.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return []Hit{{T: t1}, {T: t2}}
}

func normalSphere(point core.Tuple) core.Tuple {
	return core.NewVector(point.X, point.Y, point.Z)
}
