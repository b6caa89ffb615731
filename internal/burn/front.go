package burn

import (
	"paper-burn/internal/noise"

	"github.com/go-gl/mathgl/mgl64"
)

// Front is the burn-front scalar field: distance from the ignition corner
// perturbed by fractal noise. It does not depend on time.
type Front struct {
	Ignition mgl64.Vec2
	Strength float64
	Scale    float64
}

// NewFront builds the field described by p.
func NewFront(p Params) Front {
	return Front{
		Ignition: p.IgnitionPoint(),
		Strength: p.NoiseStrength,
		Scale:    p.NoiseScale,
	}
}

// Distance returns the straight-line distance from p to the ignition point.
func (f Front) Distance(p mgl64.Vec2) float64 {
	return p.Sub(f.Ignition).Len()
}

// Value returns the front value at p.
func (f Front) Value(p mgl64.Vec2) float64 {
	return f.ValueWithNoise(p, noise.FBM(p[0]*f.Scale, p[1]*f.Scale))
}

// ValueWithNoise returns the front value at p with the fbm term replaced by n.
func (f Front) ValueWithNoise(p mgl64.Vec2, n float64) float64 {
	return f.Distance(p) + f.Strength*n
}
