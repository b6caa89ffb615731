package texture

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/draw"
)

// ErrNoSurface reports that no drawable raster could be allocated.
var ErrNoSurface = errors.New("texture: no drawable surface")

// referenceWidth is the canvas width the layout constants are expressed in.
const referenceWidth = 1024.0

// Config controls the generated letter sheet.
type Config struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	StainCount int     `yaml:"stainCount"`
	Grain      float64 `yaml:"grain"`
	Letter     Letter  `yaml:"letter"`
}

// DefaultConfig returns an A4-proportioned sheet.
func DefaultConfig() Config {
	return Config{
		Width:      1024,
		Height:     1448,
		StainCount: 50,
		Grain:      0.04,
		Letter:     DefaultLetter(),
	}
}

// Texture is the immutable base image of one animation instance.
type Texture struct {
	img  *image.NRGBA
	seed int64
}

// Synthesize paints the letter sheet. Stain placement and line jitter are
// drawn from seed, so equal seeds give identical textures.
func Synthesize(cfg Config, seed int64) (*Texture, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNoSurface, cfg.Width, cfg.Height)
	}
	img := image.NewNRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	if len(img.Pix) == 0 {
		return nil, ErrNoSurface
	}
	c := newCanvas(img, seed)

	c.paintGradient()
	c.paintGrain(cfg.Grain)
	c.paintStains(cfg.StainCount)
	c.paintCoffeeRing()
	if err := c.paintLetter(cfg.Letter); err != nil {
		return nil, fmt.Errorf("texture: render letter: %w", err)
	}
	c.paintVignette()

	return &Texture{img: img, seed: seed}, nil
}

// Image exposes the raster. Callers must treat it as read-only.
func (t *Texture) Image() image.Image { return t.img }

// Size returns the raster dimensions.
func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Seed reports the seed the texture was synthesized with.
func (t *Texture) Seed() int64 { return t.seed }

// Sample returns the bilinearly filtered color at UV (u, v) with v=0 at the
// bottom edge. Channels are normalized to [0, 1].
func (t *Texture) Sample(u, v float64) mgl64.Vec4 {
	w, h := t.Size()
	px := u*float64(w) - 0.5
	py := (1-v)*float64(h) - 0.5

	x0 := math.Floor(px)
	y0 := math.Floor(py)
	fx := px - x0
	fy := py - y0

	ix0, iy0 := clampInt(int(x0), 0, w-1), clampInt(int(y0), 0, h-1)
	ix1, iy1 := clampInt(int(x0)+1, 0, w-1), clampInt(int(y0)+1, 0, h-1)

	a := t.texel(ix0, iy0)
	b := t.texel(ix1, iy0)
	c := t.texel(ix0, iy1)
	d := t.texel(ix1, iy1)

	top := a.Mul(1 - fx).Add(b.Mul(fx))
	bottom := c.Mul(1 - fx).Add(d.Mul(fx))
	return top.Mul(1 - fy).Add(bottom.Mul(fy))
}

// Resample returns a copy scaled to w×h with Catmull-Rom filtering.
func (t *Texture) Resample(w, h int) (*Texture, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNoSurface, w, h)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), t.img, t.img.Bounds(), draw.Src, nil)
	return &Texture{img: dst, seed: t.seed}, nil
}

func (t *Texture) texel(x, y int) mgl64.Vec4 {
	i := t.img.PixOffset(x, y)
	p := t.img.Pix[i : i+4 : i+4]
	return mgl64.Vec4{
		float64(p[0]) / 255,
		float64(p[1]) / 255,
		float64(p[2]) / 255,
		float64(p[3]) / 255,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
