package texture

import (
	"image"
	"math"

	"paper-burn/internal/noise"
	"paper-burn/pkg/core"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	paperLight = hexColor(0xf5e6c8)
	paperMid   = hexColor(0xe8d5b5)
	paperDark  = hexColor(0xd4c09e)
	stainTone  = rgb(160, 120, 80)
	ringTone   = rgb(120, 90, 60)
	edgeTone   = rgb(80, 60, 40)
)

const (
	stainRadiusMin = 20.0
	stainRadiusMax = 120.0
	stainAlphaMax  = 0.05

	ringRadius = 120.0
	ringWidth  = 15.0
	ringAlpha  = 0.15

	vignetteInner = 0.3
	vignetteOuter = 0.8
	vignetteAlpha = 0.3
)

// canvas is the raster target shared by every compositing pass.
type canvas struct {
	img   *image.NRGBA
	w, h  int
	scale float64
	seed  int64
	rng   *core.RNG
}

func newCanvas(img *image.NRGBA, seed int64) *canvas {
	b := img.Bounds()
	return &canvas{
		img:   img,
		w:     b.Dx(),
		h:     b.Dy(),
		scale: float64(b.Dx()) / referenceWidth,
		seed:  seed,
		rng:   core.NewRNG(seed),
	}
}

// paintGradient fills the sheet with a diagonal three-stop gradient.
func (c *canvas) paintGradient() {
	fw, fh := float64(c.w), float64(c.h)
	den := fw*fw + fh*fh
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			t := mgl64.Clamp((px*fw+py*fh)/den, 0, 1)
			var col mgl64.Vec3
			if t < 0.5 {
				col = mix(paperLight, paperMid, t/0.5)
			} else {
				col = mix(paperMid, paperDark, (t-0.5)/0.5)
			}
			c.set(x, y, col)
		}
	}
}

// paintStains multiplies soft, ragged blobs over the paper to fake foxing.
// Each blob's outline wobbles with value noise and is rasterized with
// anti-aliased coverage.
func (c *canvas) paintStains(count int) {
	for i := 0; i < count; i++ {
		cx := c.rng.Range(0, float64(c.w))
		cy := c.rng.Range(0, float64(c.h))
		r := c.rng.Range(stainRadiusMin, stainRadiusMax) * c.scale
		alpha := c.rng.Range(0, stainAlphaMax)
		ox := c.rng.Range(0, 256)
		oy := c.rng.Range(0, 256)
		if r <= 0 || alpha <= 0 {
			continue
		}
		centre := mgl64.Vec2{cx, cy}
		edge := outline(centre, r, false, func(theta float64) float64 {
			return r * (0.8 + 0.2*noise.Noise(ox+math.Cos(theta)*2, oy+math.Sin(theta)*2))
		})
		bounds := c.maskBounds(centre, r+1)
		if bounds.Empty() {
			continue
		}
		mask := coverageMask(bounds.Min, bounds.Dx(), bounds.Dy(), edge)
		c.multiplyMask(bounds, mask, stainTone, func(x, y int) float64 {
			dx, dy := float64(x)+0.5-cx, float64(y)+0.5-cy
			soft := 1 - 0.5*smoothstep(0.5*r, r, math.Hypot(dx, dy))
			ragged := 0.6 + 0.8*noise.Noise(ox+dx/r*3, oy+dy/r*3)
			return alpha * soft * ragged
		})
	}
}

// paintCoffeeRing strokes a faint ring near the top-right corner.
func (c *canvas) paintCoffeeRing() {
	centre := mgl64.Vec2{float64(c.w) * 0.8, float64(c.h) * 0.2}
	r := ringRadius * c.scale
	half := math.Max(ringWidth*c.scale, 1) / 2

	bounds := c.maskBounds(centre, r+half+1)
	if bounds.Empty() {
		return
	}
	band := [][]mgl64.Vec2{circle(centre, r+half, false)}
	if r > half {
		band = append(band, circle(centre, r-half, true))
	}
	mask := coverageMask(bounds.Min, bounds.Dx(), bounds.Dy(), band...)
	c.multiplyMask(bounds, mask, ringTone, func(int, int) float64 { return ringAlpha })
}

// paintVignette darkens the edges with a radial multiply.
func (c *canvas) paintVignette() {
	cx, cy := float64(c.w)/2, float64(c.h)/2
	maxDim := math.Max(float64(c.w), float64(c.h))
	r0, r1 := maxDim*vignetteInner, maxDim*vignetteOuter
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy)
			t := mgl64.Clamp((d-r0)/(r1-r0), 0, 1)
			if t == 0 {
				continue
			}
			c.multiply(x, y, edgeTone, vignetteAlpha*t)
		}
	}
}

func (c *canvas) get(x, y int) mgl64.Vec3 {
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+3 : i+3]
	return mgl64.Vec3{float64(p[0]) / 255, float64(p[1]) / 255, float64(p[2]) / 255}
}

func (c *canvas) set(x, y int, col mgl64.Vec3) {
	i := c.img.PixOffset(x, y)
	p := c.img.Pix[i : i+4 : i+4]
	p[0] = toByte(col[0])
	p[1] = toByte(col[1])
	p[2] = toByte(col[2])
	p[3] = 0xff
}

// multiply composites src over the opaque sheet with a multiply blend.
func (c *canvas) multiply(x, y int, src mgl64.Vec3, alpha float64) {
	if alpha <= 0 {
		return
	}
	dst := c.get(x, y)
	blended := mgl64.Vec3{dst[0] * src[0], dst[1] * src[1], dst[2] * src[2]}
	c.set(x, y, mix(dst, blended, mgl64.Clamp(alpha, 0, 1)))
}

func mix(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func smoothstep(edge0, edge1, x float64) float64 {
	t := mgl64.Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func toByte(v float64) uint8 {
	return uint8(mgl64.Clamp(v, 0, 1)*255 + 0.5)
}

func rgb(r, g, b uint8) mgl64.Vec3 {
	return mgl64.Vec3{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

func hexColor(v uint32) mgl64.Vec3 {
	return rgb(uint8(v>>16), uint8(v>>8), uint8(v))
}
