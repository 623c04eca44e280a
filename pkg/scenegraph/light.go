package scenegraph

import "github.com/davelpz/rray/pkg/core"

// LightKind distinguishes a point light from an area light (spec §6).
type LightKind int

const (
	LightPoint LightKind = iota
	LightArea
)

// Light is a point or rectangular-area light source. Area lights are
// defined by a corner and two edge vectors (uvec, vvec) spanning a
// parallelogram, sampled at Samples deterministic jittered positions for
// shadow testing.
type Light struct {
	Kind     LightKind
	Color    core.Color
	Position core.Tuple // LightPoint

	Corner     core.Tuple // LightArea
	UVec, VVec core.Tuple
	Samples    int
}

// NewPointLight creates a point light.
func NewPointLight(position core.Tuple, color core.Color) Light {
	return Light{Kind: LightPoint, Position: position, Color: color}
}

// NewAreaLight creates a rectangular area light spanning corner,
// corner+uvec, corner+vvec. samples is rounded up to the next perfect
// square n*n, and SamplePositions yields one jittered point per cell of the
// resulting n×n grid.
func NewAreaLight(corner, uvec, vvec core.Tuple, color core.Color, samples int) Light {
	if samples < 1 {
		samples = 1
	}
	return Light{Kind: LightArea, Corner: corner, UVec: uvec, VVec: vvec, Color: color, Samples: samples}
}

// Centroid returns the light's representative position used as the light
// vector's target in the Phong equation: the light's own position for a
// point light, or the parallelogram's center for an area light.
func (l Light) Centroid() core.Tuple {
	if l.Kind == LightPoint {
		return l.Position
	}
	return l.Corner.Add(l.UVec.Multiply(0.5)).Add(l.VVec.Multiply(0.5))
}

// SamplePositions returns the deterministic jittered sample points used
// for shadow testing: a single point for a point light, or one point per
// grid cell for an area light, offset within its cell by a pseudo-random
// amount seeded by the sample's index (spec 4.E: "For area lights,
// attenuation is the mean over all jittered sample positions").
func (l Light) SamplePositions() []core.Tuple {
	if l.Kind == LightPoint {
		return []core.Tuple{l.Position}
	}

	n := 1
	for n*n < l.Samples {
		n++
	}
	points := make([]core.Tuple, 0, n*n)
	for v := 0; v < n; v++ {
		for u := 0; u < n; u++ {
			// Deterministic jitter in the open interval (0,1): a
			// multiplicative hash of the sample index, then an
			// xor-shift-multiply mixing step.
			seed := uint32(v*n+u+1) * 2654435761
			ju := (float64(seed>>8) + 0.5) / (1 << 24)
			seed = (seed ^ seed>>13) * 2246822519
			jv := (float64(seed>>8) + 0.5) / (1 << 24)
			fu := (float64(u) + ju) / float64(n)
			fv := (float64(v) + jv) / float64(n)
			p := l.Corner.Add(l.UVec.Multiply(fu)).Add(l.VVec.Multiply(fv))
			points = append(points, p)
		}
	}
	return points
}
