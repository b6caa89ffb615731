package burn

import (
	"errors"
	"fmt"
	"math"

	"paper-burn/internal/core"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/sync/errgroup"
)

// Frame is the per-tick output handed to hosts.
type Frame struct {
	W, H     int
	Segments int

	// Pixels is RGBA, row 0 at the top. Alpha is 0 (void) or 255.
	Pixels []byte
	Zones  *core.ByteGrid
	// Offsets holds z per mesh vertex, (Segments+1)^2, row 0 at the top.
	Offsets []float64

	Progress float64
	Counts   [zoneCount]int
}

func newFrame(w, h, segments int) *Frame {
	return &Frame{
		W:        w,
		H:        h,
		Segments: segments,
		Pixels:   make([]byte, 4*w*h),
		Zones:    core.NewByteGrid(w, h),
		Offsets:  make([]float64, (segments+1)*(segments+1)),
	}
}

// PixelUV returns the surface coordinate at the centre of pixel (x, y).
func (f *Frame) PixelUV(x, y int) mgl64.Vec2 {
	return mgl64.Vec2{
		(float64(x) + 0.5) / float64(f.W),
		1 - (float64(y)+0.5)/float64(f.H),
	}
}

// VertexUV returns the surface coordinate of mesh vertex (i, j).
func (f *Frame) VertexUV(i, j int) mgl64.Vec2 {
	s := float64(f.Segments)
	return mgl64.Vec2{float64(i) / s, 1 - float64(j)/s}
}

// Coverage returns the fraction of pixels classified as z.
func (f *Frame) Coverage(z Zone) float64 {
	total := f.W * f.H
	if total == 0 || int(z) >= len(f.Counts) {
		return 0
	}
	return float64(f.Counts[z]) / float64(total)
}

// evaluate shades every pixel and mesh vertex at a single progress value.
// Rows are spread over at most workers goroutines; evaluate returns only
// after all of them finish. Progress and Counts are left untouched on error.
func (f *Frame) evaluate(s *Shader, progress float64, workers int) error {
	if s == nil {
		return errors.New("burn: evaluate frame without shader")
	}
	if math.IsNaN(progress) || math.IsInf(progress, 0) {
		return fmt.Errorf("burn: evaluate frame at non-finite progress %g", progress)
	}
	if workers < 1 {
		workers = 1
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for y := 0; y < f.H; y++ {
		g.Go(func() error {
			return f.shadeRow(s, progress, y)
		})
	}
	stride := f.Segments + 1
	for j := 0; j < stride; j++ {
		g.Go(func() error {
			row := f.Offsets[j*stride : (j+1)*stride]
			for i := range row {
				row[i] = s.Displace(f.VertexUV(i, j), progress)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("burn: evaluate frame at %g: %w", progress, err)
	}

	f.Progress = progress
	for z := range f.Counts {
		f.Counts[z] = f.Zones.Count(uint8(z))
	}
	return nil
}

func (f *Frame) shadeRow(s *Shader, progress float64, y int) error {
	zones := f.Zones.Row(y)
	if len(f.Pixels) < (y+1)*f.W*4 {
		return fmt.Errorf("burn: row %d buffers shorter than width %d", y, f.W)
	}
	pix := f.Pixels[y*f.W*4 : (y+1)*f.W*4]
	for x := 0; x < f.W; x++ {
		out := s.Shade(f.PixelUV(x, y), progress)
		zones[x] = uint8(out.Zone)
		p := pix[x*4 : x*4+4 : x*4+4]
		if out.Zone == ZoneVoid {
			p[0], p[1], p[2], p[3] = 0, 0, 0, 0
			continue
		}
		p[0] = toByte(out.Color[0])
		p[1] = toByte(out.Color[1])
		p[2] = toByte(out.Color[2])
		p[3] = 0xff
	}
	return nil
}

// toByte clamps over-bright ember values to full intensity.
func toByte(v float64) uint8 {
	return uint8(mgl64.Clamp(v, 0, 1)*255 + 0.5)
}
