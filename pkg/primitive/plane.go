package primitive

import (
	"math"

	"github.com/davelpz/rray/pkg/core"
)

const planeEpsilon = 1e-5

// intersectPlane tests against the y=0 plane: miss if the ray is (nearly)
// parallel to it, else a single hit at t = -origin.y / direction.y (spec
// 4.F).
func intersectPlane(ray core.Ray) []Hit {
	if math.Abs(ray.Direction.Y) < planeEpsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return []Hit{{T: t}}
}

func normalPlane() core.Tuple {
	return core.NewVector(0, 1, 0)
}
