package scenegraph

import (
	"math"
	"sort"

	"github.com/davelpz/rray/pkg/core"
	"github.com/davelpz/rray/pkg/material"
	"github.com/davelpz/rray/pkg/shape"
)

// MaxRecursionDepth is the hard constant bound on reflection/refraction
// recursion (spec §5 Resource limits: "default 5").
const MaxRecursionDepth = 5

const hitEpsilon = 1e-5

// World holds the finalized scene graph and lights, immutable for the
// entire render phase (spec 4.J; spec §5's shared-immutable-scene
// requirement).
type World struct {
	Root   *shape.Shape
	Lights []Light
}

// NewWorld wraps a finalized root shape (typically a top-level group) and
// its lights.
func NewWorld(root *shape.Shape, lights []Light) *World {
	return &World{Root: root, Lights: lights}
}

// IntersectWorld concatenates intersections from the root shape and
// returns them sorted by t ascending (spec 4.J).
func (w *World) IntersectWorld(ray core.Ray) []shape.Intersection {
	if w.Root == nil {
		return nil
	}
	xs := w.Root.Intersect(ray)
	sortIntersectionsByT(xs)
	return xs
}

// Hit returns the intersection with the smallest non-negative t, or false
// if none exists.
func Hit(xs []shape.Intersection) (shape.Intersection, bool) {
	for _, x := range xs {
		if x.T >= 0 {
			return x, true
		}
	}
	return shape.Intersection{}, false
}

// ColorAt traces ray through the world, returning the shaded color at its
// first hit, or background (black) on a miss, recursing up to remaining
// bounces for reflection/refraction (spec 4.J).
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}

	xs := w.IntersectWorld(ray)
	hit, ok := Hit(xs)
	if !ok {
		return core.Black
	}

	comps := prepareComputations(hit, ray, xs)
	return w.shadeHit(comps, remaining)
}

// shadeHit sums the direct-lighting surface color over every light with
// the recursive reflected and refracted contributions, Fresnel-mixing the
// two when both are present (spec 4.J).
func (w *World) shadeHit(comps Computations, remaining int) core.Color {
	mat := comps.Shape.Material

	surface := core.Black
	for _, light := range w.Lights {
		attenuation := w.shadowAttenuation(light, comps.OverPoint)
		surface = surface.Add(material.Lighting(mat, comps.Shape, material.Light{
			Position:  light.Centroid(),
			Intensity: light.Color,
		}, comps.Point, comps.Eye, comps.Normal, attenuation))
	}

	reflected := w.reflectedColor(comps, remaining)
	refracted := w.refractedColor(comps, remaining)

	if mat.Reflective > 0 && mat.Transparency > 0 {
		reflectance := material.Reflectance(comps.Eye.Dot(comps.Normal), comps.N1/comps.N2)
		return surface.
			Add(reflected.Multiply(reflectance)).
			Add(refracted.Multiply(1 - reflectance))
	}

	return surface.Add(reflected).Add(refracted)
}

// reflectedColor returns the recursive reflected contribution, zero when
// the material isn't reflective.
func (w *World) reflectedColor(comps Computations, remaining int) core.Color {
	if comps.Shape.Material.Reflective == 0 {
		return core.Black
	}
	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	color := w.ColorAt(reflectRay, remaining-1)
	return color.Multiply(comps.Shape.Material.Reflective)
}

// refractedColor returns the recursive refracted contribution, zero when
// the material isn't transparent or total internal reflection occurs
// (spec 4.J: sin²θt = (n1/n2)²·(1−cos²θi) > 1).
func (w *World) refractedColor(comps Computations, remaining int) core.Color {
	mat := comps.Shape.Material
	if mat.Transparency == 0 {
		return core.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.Eye.Dot(comps.Normal)
	sin2t := nRatio * nRatio * (1 - cosI*cosI)
	if sin2t > 1 {
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := comps.Normal.Multiply(nRatio*cosI - cosT).Subtract(comps.Eye.Multiply(nRatio))
	refractRay := core.NewRay(comps.UnderPoint, direction)

	color := w.ColorAt(refractRay, remaining-1)
	return color.Multiply(mat.Transparency)
}

// shadowAttenuation returns 0 when point is blocked from light by any
// non-transparent shape, 1 when fully visible, and the fraction of
// unblocked samples for an area light (spec 4.E).
func (w *World) shadowAttenuation(light Light, point core.Tuple) float64 {
	samples := light.SamplePositions()
	visible := 0
	for _, sample := range samples {
		if !w.isShadowed(point, sample) {
			visible++
		}
	}
	return float64(visible) / float64(len(samples))
}

// isShadowed casts a ray from point toward lightPos and reports whether
// any non-transparent shape occludes it before reaching the light.
func (w *World) isShadowed(point, lightPos core.Tuple) bool {
	pointToLight := lightPos.Subtract(point)
	distance := pointToLight.Magnitude()
	direction := pointToLight.Normalize()

	ray := core.NewRay(point, direction)
	xs := w.IntersectWorld(ray)

	for _, x := range xs {
		if x.T < hitEpsilon || x.T > distance {
			continue
		}
		if x.Shape.Material.Transparency == 0 {
			return true
		}
	}
	return false
}

func sortIntersectionsByT(xs []shape.Intersection) {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}
