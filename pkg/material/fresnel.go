package material

import (
	"math"

	"github.com/davelpz/rray/pkg/core"
)

// RefractVector computes the refracted direction of unit vector uv across a
// boundary with normal n (facing against uv, so uv·n <= 0), given the ratio
// of refractive indices n1/n2,
// following Snell's law exactly as the teacher's dielectric.go refractVector
// does. Callers must check for total internal reflection (sin2t > 1 in
// Reflectance) before calling this.
func RefractVector(uv, n core.Tuple, refractionRatio float64) core.Tuple {
	cosTheta := math.Min(-uv.Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(refractionRatio)
	perpLenSq := rOutPerp.X*rOutPerp.X + rOutPerp.Y*rOutPerp.Y + rOutPerp.Z*rOutPerp.Z
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - perpLenSq)))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance computes the Fresnel reflectance via Schlick's approximation,
// grounded on the teacher's dielectric.go Reflectance helper. cosine is the
// cosine of the angle between the incident ray and the normal; refractionRatio
// is n1/n2 (the ratio of refractive indices across the boundary).
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0

	cos := cosine
	if refractionRatio > 1 {
		sin2t := refractionRatio * refractionRatio * (1 - cosine*cosine)
		if sin2t > 1 {
			return 1 // total internal reflection
		}
		cos = math.Sqrt(1 - sin2t)
	}
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
