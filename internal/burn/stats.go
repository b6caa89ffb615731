package burn

import (
	"fmt"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises the front field sampled over a w×h grid of pixel centres.
type Stats struct {
	Samples int
	Min     float64
	Max     float64
	Mean    float64
	StdDev  float64
	P10     float64
	P50     float64
	P90     float64

	// ConsumedAt is the progress at which the threshold passes Max, leaving
	// the sampled surface entirely void.
	ConsumedAt float64
	// Consumes reports whether ConsumedAt lies within the progress ceiling.
	Consumes bool
}

// FrontStats samples the front at every pixel centre of a w×h frame.
func FrontStats(p Params, w, h int) (Stats, error) {
	if w <= 0 || h <= 0 {
		return Stats{}, fmt.Errorf("%w: stats grid %dx%d", ErrInvalidConfig, w, h)
	}
	if err := p.Validate(); err != nil {
		return Stats{}, err
	}
	front := NewFront(p)
	values := make([]float64, 0, w*h)
	for y := 0; y < h; y++ {
		v := 1 - (float64(y)+0.5)/float64(h)
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / float64(w)
			values = append(values, front.Value(mgl64.Vec2{u, v}))
		}
	}
	sort.Float64s(values)

	s := Stats{
		Samples: len(values),
		Min:     floats.Min(values),
		Max:     floats.Max(values),
	}
	s.Mean, s.StdDev = stat.MeanStdDev(values, nil)
	s.P10 = stat.Quantile(0.1, stat.Empirical, values, nil)
	s.P50 = stat.Quantile(0.5, stat.Empirical, values, nil)
	s.P90 = stat.Quantile(0.9, stat.Empirical, values, nil)
	s.ConsumedAt = (s.Max + p.FrontOffset) / p.FrontSpeed
	s.Consumes = s.ConsumedAt < p.MaxProgress
	return s, nil
}

// CoverageAt reports the fraction of a w×h grid in each zone at progress
// without shading any colour.
func CoverageAt(p Params, w, h int, progress float64) ([zoneCount]float64, error) {
	var out [zoneCount]float64
	if w <= 0 || h <= 0 {
		return out, fmt.Errorf("%w: coverage grid %dx%d", ErrInvalidConfig, w, h)
	}
	front := NewFront(p)
	threshold := progress*p.FrontSpeed - p.FrontOffset
	total := float64(w * h)
	for y := 0; y < h; y++ {
		v := 1 - (float64(y)+0.5)/float64(h)
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / float64(w)
			out[p.Zone(front.Value(mgl64.Vec2{u, v})-threshold)]++
		}
	}
	for i := range out {
		out[i] /= total
	}
	return out, nil
}
