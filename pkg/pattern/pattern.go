// Package pattern implements the recursive procedural pattern system
// described in spec 4.D: every pattern carries its own transform, and
// composite patterns sample sub-patterns recursively in their own local
// space.
package pattern

import (
	"math"

	"github.com/davelpz/rray/pkg/core"
	"github.com/davelpz/rray/pkg/noise"
	"github.com/davelpz/rray/pkg/transform"
)

// Kind tags the pattern variant, dispatched in Pattern.colorAtObject.
type Kind int

const (
	KindSolid Kind = iota
	KindStripe
	KindGradient
	KindRing
	KindChecker
	KindBlend
	KindPerturbed
	KindNoise
	KindImage
)

// ObjectSpaceConverter is the minimal shape capability pattern sampling
// needs: converting a world-space point into the shape's own object space
// (spec 4.D step 1). Implemented by pkg/shape.Shape.
type ObjectSpaceConverter interface {
	WorldToObject(worldPoint core.Tuple) core.Tuple
}

var sharedNoise = noise.New()

// Pattern is the tagged-variant procedural color sampler.
type Pattern struct {
	Kind        Kind
	Color       core.Color // KindSolid
	A, B        *Pattern   // binary kinds, and KindNoise's endpoints
	Inner       *Pattern   // KindPerturbed
	Scale       float64    // KindPerturbed, KindNoise
	Octaves     int        // KindPerturbed, KindNoise
	Persistence float64    // KindPerturbed, KindNoise
	Texture     *Texture   // KindImage

	xform transform.Transform
}

// SetTransform attaches a transform (with its cached inverse) to the
// pattern. Patterns built via the New* constructors default to identity.
func (p *Pattern) SetTransform(t transform.Transform) { p.xform = t }

// NewSolid creates a solid-color pattern.
func NewSolid(c core.Color) *Pattern {
	return &Pattern{Kind: KindSolid, Color: c, xform: transform.Identity()}
}

// AsPattern wraps a plain color as a solid sub-pattern; used by the scene
// loader to accept both color_x and pattern_x forms uniformly (spec §9
// Open Question).
func AsPattern(c core.Color) *Pattern { return NewSolid(c) }

// NewStripe, NewGradient, NewRing, NewChecker, NewBlend create the binary
// composite patterns.
func NewStripe(a, b *Pattern) *Pattern   { return &Pattern{Kind: KindStripe, A: a, B: b, xform: transform.Identity()} }
func NewGradient(a, b *Pattern) *Pattern { return &Pattern{Kind: KindGradient, A: a, B: b, xform: transform.Identity()} }
func NewRing(a, b *Pattern) *Pattern     { return &Pattern{Kind: KindRing, A: a, B: b, xform: transform.Identity()} }
func NewChecker(a, b *Pattern) *Pattern  { return &Pattern{Kind: KindChecker, A: a, B: b, xform: transform.Identity()} }
func NewBlend(a, b *Pattern) *Pattern    { return &Pattern{Kind: KindBlend, A: a, B: b, xform: transform.Identity()} }

// NewPerturbed creates a pattern that samples inner at a noise-displaced
// point.
func NewPerturbed(inner *Pattern, scale float64, octaves int, persistence float64) *Pattern {
	return &Pattern{Kind: KindPerturbed, Inner: inner, Scale: scale, Octaves: octaves, Persistence: persistence, xform: transform.Identity()}
}

// NewNoise creates a pattern that linearly blends a and b by octave-summed
// noise.
func NewNoise(a, b *Pattern, scale float64, octaves int, persistence float64) *Pattern {
	return &Pattern{Kind: KindNoise, A: a, B: b, Scale: scale, Octaves: octaves, Persistence: persistence, xform: transform.Identity()}
}

// NewImage creates a texture-mapped pattern.
func NewImage(tex *Texture) *Pattern {
	return &Pattern{Kind: KindImage, Texture: tex, xform: transform.Identity()}
}

// ColorAt implements spec 4.D's color_at(pattern, world_point, shape): it
// converts world_point into the shape's object space once, then evaluates
// the (possibly recursive) pattern tree against that object-space point.
func ColorAt(p *Pattern, worldPoint core.Tuple, shape ObjectSpaceConverter) core.Color {
	objectPoint := shape.WorldToObject(worldPoint)
	return p.colorAtObject(objectPoint)
}

// colorAtObject evaluates this pattern (and recursively its sub-patterns)
// at a fixed object-space point. Each pattern applies its OWN inverse
// transform to the shared object-space point to find its local sample
// point; recursion always passes the same object-space point down, never
// the parent's already-localized point, so sibling patterns with different
// transforms are independent.
func (p *Pattern) colorAtObject(objectPoint core.Tuple) core.Color {
	local := p.xform.Inverse.MulTuple(objectPoint)

	switch p.Kind {
	case KindSolid:
		return p.Color
	case KindStripe:
		if isEven(local.X) {
			return p.A.colorAtObject(objectPoint)
		}
		return p.B.colorAtObject(objectPoint)
	case KindGradient:
		ca := p.A.colorAtObject(objectPoint)
		cb := p.B.colorAtObject(objectPoint)
		frac := local.X - math.Floor(local.X)
		return ca.Lerp(cb, frac)
	case KindRing:
		r := math.Sqrt(local.X*local.X + local.Z*local.Z)
		if isEven(r) {
			return p.A.colorAtObject(objectPoint)
		}
		return p.B.colorAtObject(objectPoint)
	case KindChecker:
		sum := math.Floor(local.X) + math.Floor(local.Y) + math.Floor(local.Z)
		if isEven(sum) {
			return p.A.colorAtObject(objectPoint)
		}
		return p.B.colorAtObject(objectPoint)
	case KindBlend:
		ca := p.A.colorAtObject(objectPoint)
		cb := p.B.colorAtObject(objectPoint)
		return ca.Add(cb).Multiply(0.5)
	case KindPerturbed:
		disp := sharedNoise.Vec3(local, p.Octaves, p.Persistence).Multiply(p.Scale)
		displaced := objectPoint.Add(disp)
		return p.Inner.colorAtObject(displaced)
	case KindNoise:
		n := sharedNoise.Sum(local.Multiply(p.Scale), p.Octaves, p.Persistence)
		t := (n + 1) / 2
		ca := p.A.colorAtObject(objectPoint)
		cb := p.B.colorAtObject(objectPoint)
		return ca.Lerp(cb, t)
	case KindImage:
		u, v := planarProjection(local)
		return p.Texture.Bilinear(u, v)
	default:
		return core.Black
	}
}

// isEven reports whether floor(v) is an even integer, the parity test
// shared by stripe/ring/checker.
func isEven(v float64) bool {
	f := int64(math.Floor(v))
	return ((f % 2) + 2) % 2 == 0
}

// planarProjection maps a local-space point to (u,v) in [0,1) by dropping
// the y coordinate, the default projection per spec 4.D ("planar unless
// otherwise indicated").
func planarProjection(p core.Tuple) (float64, float64) {
	u := p.X - math.Floor(p.X)
	v := p.Z - math.Floor(p.Z)
	return u, v
}

// SphericalProjection maps a local-space point on/around the unit sphere
// to (u,v), offered as the alternate projection spec 4.D mentions.
func SphericalProjection(p core.Tuple) (float64, float64) {
	theta := math.Atan2(p.X, p.Z)
	radius := math.Sqrt(p.X*p.X + p.Y*p.Y + p.Z*p.Z)
	phi := math.Acos(p.Y / radius)
	u := (theta / (2 * math.Pi)) + 0.5
	v := 1 - phi/math.Pi
	return u, v
}
