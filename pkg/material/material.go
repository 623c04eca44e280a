// Package material implements the Phong lighting model and the Fresnel
// helpers used by recursive reflection/refraction (spec 4.E).
package material

import (
	"math"

	"github.com/davelpz/rray/pkg/core"
	"github.com/davelpz/rray/pkg/pattern"
)

// Material holds the Phong coefficients and surface pattern (spec §6.
// Material schema: ambient, diffuse, specular, shininess, reflective,
// transparency, refractive_index, plus a Pattern).
type Material struct {
	Pattern         *pattern.Pattern
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// NewDefault returns the default material: solid white, (ambient, diffuse,
// specular, shininess) = (0.1, 0.9, 0.9, 200), no reflectivity or
// transparency, refractive_index 1.0 (spec §6 Defaults).
func NewDefault() *Material {
	return &Material{
		Pattern:         pattern.NewSolid(core.NewColor(1, 1, 1)),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1.0,
	}
}

// Light is the minimal point/area light capability the lighting equation
// needs: a position to aim the light vector at and an intensity color.
// pkg/scenegraph builds one from each of its lights (the light's centroid
// and color) for every shading call.
type Light struct {
	Position  core.Tuple
	Intensity core.Color
}

// Lighting evaluates the Phong model at a single light for one shading
// point, per spec 4.E. shadowAttenuation is 0 when the point is fully
// shadowed from this light, 1 when fully lit, and a fraction in between for
// an area light's jittered samples.
func Lighting(m *Material, shape pattern.ObjectSpaceConverter, light Light, point, eyeVec, normal core.Tuple, shadowAttenuation float64) core.Color {
	surfaceColor := pattern.ColorAt(m.Pattern, point, shape)
	effectiveColor := surfaceColor.MultiplyColor(light.Intensity)

	ambient := effectiveColor.Multiply(m.Ambient)
	if shadowAttenuation <= 0 {
		return ambient
	}

	lightVec := light.Position.Subtract(point).Normalize()
	lightDotNormal := lightVec.Dot(normal)

	var diffuse, specular core.Color
	if lightDotNormal > 0 {
		diffuse = effectiveColor.Multiply(m.Diffuse * lightDotNormal)

		reflectVec := core.Reflect(lightVec.Negate(), normal)
		reflectDotEye := reflectVec.Dot(eyeVec)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = light.Intensity.Multiply(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse.Add(specular).Multiply(shadowAttenuation))
}
