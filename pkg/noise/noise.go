// Package noise provides the deterministic 3D octave-summed gradient noise
// used by the perturbed/noise pattern kinds (spec 4.C).
package noise

import (
	"github.com/aquilax/go-perlin"

	"github.com/davelpz/rray/pkg/core"
)

// seed is fixed so renders are deterministic, as spec 4.C requires.
const seed = 42

// Noise wraps a single-octave gradient noise generator and sums octaves
// itself, rather than relying on go-perlin's built-in octave mixing, so the
// summation formula matches spec 4.C exactly.
type Noise struct {
	gen *perlin.Perlin
}

// New creates a noise generator. alpha/beta tune go-perlin's own internal
// persistence/frequency (held at neutral values since Sum below does its
// own octave bookkeeping); n=1 asks go-perlin for a single octave per call.
func New() *Noise {
	return &Noise{gen: perlin.NewPerlin(2, 2, 1, seed)}
}

// at3D returns a single octave of gradient noise at point p, in [-1, 1].
func (n *Noise) at3D(p core.Tuple) float64 {
	return n.gen.Noise3D(p.X, p.Y, p.Z)
}

// Sum computes the amplitude-normalized octave sum described in spec 4.C:
//
//	sum = 0; amp = 1; freq = 1
//	for i in 0..octaves: sum += amp * noise(freq*p); amp *= persistence; freq *= 2
//	result = sum / (sum of amplitudes)
func (n *Noise) Sum(p core.Tuple, octaves int, persistence float64) float64 {
	if octaves <= 0 {
		octaves = 1
	}
	var sum, amp, freq, ampTotal float64
	amp, freq = 1, 1
	for i := 0; i < octaves; i++ {
		scaled := core.NewPoint(p.X*freq, p.Y*freq, p.Z*freq)
		sum += amp * n.at3D(scaled)
		ampTotal += amp
		amp *= persistence
		freq *= 2
	}
	if ampTotal == 0 {
		return 0
	}
	return sum / ampTotal
}

// Vec3 returns three independent noise lookups offset from p, used by the
// "perturbed" pattern kind to build a displacement vector (spec 4.D).
func (n *Noise) Vec3(p core.Tuple, octaves int, persistence float64) core.Tuple {
	offsetY := core.NewPoint(p.X+19.1, p.Y+33.4, p.Z+7.2)
	offsetZ := core.NewPoint(p.X+47.7, p.Y+11.3, p.Z+91.8)
	return core.NewVector(
		n.Sum(p, octaves, persistence),
		n.Sum(offsetY, octaves, persistence),
		n.Sum(offsetZ, octaves, persistence),
	)
}
