package texture

import (
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/vector"
)

// coverageMask rasterizes closed outlines into an anti-aliased alpha mask of
// size w by h, anchored at the canvas origin given by off. An outline wound
// against the one enclosing it cuts a hole.
func coverageMask(off image.Point, w, h int, outlines ...[]mgl64.Vec2) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return mask
	}
	z := vector.NewRasterizer(w, h)
	ox, oy := float64(off.X), float64(off.Y)
	for _, o := range outlines {
		if len(o) < 3 {
			continue
		}
		z.MoveTo(float32(o[0][0]-ox), float32(o[0][1]-oy))
		for _, p := range o[1:] {
			z.LineTo(float32(p[0]-ox), float32(p[1]-oy))
		}
		z.ClosePath()
	}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// outline traces a closed polygon around centre with radius(theta). The
// polygon runs counter-clockwise in canvas space, or clockwise when reverse
// is set.
func outline(centre mgl64.Vec2, maxRadius float64, reverse bool, radius func(theta float64) float64) []mgl64.Vec2 {
	n := int(math.Ceil(2 * math.Pi * maxRadius / 2))
	n = clampInt(n, 24, 512)
	pts := make([]mgl64.Vec2, n)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(n)
		if reverse {
			theta = -theta
		}
		r := radius(theta)
		pts[i] = centre.Add(mgl64.Vec2{math.Cos(theta) * r, math.Sin(theta) * r})
	}
	return pts
}

// circle is an outline of constant radius.
func circle(centre mgl64.Vec2, r float64, reverse bool) []mgl64.Vec2 {
	return outline(centre, r, reverse, func(float64) float64 { return r })
}

// maskBounds returns the canvas pixels covered by a disc of radius reach
// around centre, clipped to the canvas.
func (c *canvas) maskBounds(centre mgl64.Vec2, reach float64) image.Rectangle {
	r := image.Rect(
		int(math.Floor(centre[0]-reach)), int(math.Floor(centre[1]-reach)),
		int(math.Ceil(centre[0]+reach)), int(math.Ceil(centre[1]+reach)),
	)
	return r.Intersect(image.Rect(0, 0, c.w, c.h))
}

// multiplyMask multiplies tone over every canvas pixel the mask covers,
// scaling the blend by mask coverage times weight(x, y).
func (c *canvas) multiplyMask(r image.Rectangle, mask *image.Alpha, tone mgl64.Vec3, weight func(x, y int) float64) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			a := mask.AlphaAt(x-r.Min.X, y-r.Min.Y).A
			if a == 0 {
				continue
			}
			c.multiply(x, y, tone, float64(a)/255*weight(x, y))
		}
	}
}
