package burn

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Sampler returns the base texture color at a surface coordinate.
type Sampler interface {
	Sample(u, v float64) mgl64.Vec4
}

// Sample is the shaded result for one surface point.
type Sample struct {
	Color mgl64.Vec4
	Zone  Zone
	Diff  float64
}

// Shader turns a surface point and a progress value into a color and a
// vertex offset. It holds no mutable state.
type Shader struct {
	params Params
	front  Front
	tex    Sampler

	burn mgl64.Vec3
	hot  mgl64.Vec3
	ash  mgl64.Vec3
}

// NewShader binds params to a texture sampler.
func NewShader(p Params, tex Sampler) *Shader {
	return &Shader{
		params: p,
		front:  NewFront(p),
		tex:    tex,
		burn:   mgl64.Vec3(p.BurnColor),
		hot:    mgl64.Vec3(p.HotColor),
		ash:    mgl64.Vec3(p.AshColor),
	}
}

// Front exposes the burn-front field.
func (s *Shader) Front() Front { return s.front }

// Threshold is the front value the burn has reached at progress.
func (s *Shader) Threshold(progress float64) float64 {
	return progress*s.params.FrontSpeed - s.params.FrontOffset
}

// Diff returns how far p lies ahead of the burn threshold.
func (s *Shader) Diff(p mgl64.Vec2, progress float64) float64 {
	return s.front.Value(p) - s.Threshold(progress)
}

// Shade classifies p and computes its color. Void points are fully
// transparent; every other zone is opaque.
func (s *Shader) Shade(p mgl64.Vec2, progress float64) Sample {
	diff := s.Diff(p, progress)
	return s.shadeDiff(p, progress, diff)
}

func (s *Shader) shadeDiff(p mgl64.Vec2, progress, diff float64) Sample {
	prm := s.params
	zone := prm.Zone(diff)
	out := Sample{Zone: zone, Diff: diff}

	switch zone {
	case ZoneVoid:
		// Zero value is transparent black.
	case ZoneEmber:
		pulse := prm.PulseBase + prm.PulseAmplitude*math.Sin(progress*prm.PulseRate+p[0]*prm.PulseSpread)
		g := 1 - diff/prm.EmberBand
		fire := mix3(s.burn, s.hot, g*g)
		out.Color = fire.Mul(pulse * prm.EmberGain).Vec4(1)
	case ZoneChar:
		g := (diff - prm.EmberBand) / (prm.CharBand - prm.EmberBand)
		base := s.tex.Sample(p[0], p[1]).Vec3()
		out.Color = mix3(s.ash, base.Mul(prm.CharDarken), g).Vec4(1)
	case ZoneIntact:
		out.Color = s.tex.Sample(p[0], p[1])
	}
	return out
}

// Displace returns the z offset for a mesh vertex at p. The lift grows with
// progress, saturating at CurlRamp, and fades with distance from ignition.
func (s *Shader) Displace(p mgl64.Vec2, progress float64) float64 {
	prm := s.params
	curl := smoothstep(0, prm.CurlRamp, progress) * prm.CurlMax
	wave := math.Sin(p[0]*prm.WaveFrequency+progress) * prm.WaveAmplitude
	return wave * curl * (1 - s.front.Distance(p))
}

func mix3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := mgl64.Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
