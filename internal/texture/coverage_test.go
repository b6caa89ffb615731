package texture

import (
	"image"
	"math"
	"testing"

	"paper-burn/pkg/core"

	"github.com/go-gl/mathgl/mgl64"
)

func whiteCanvas(w, h int, seed int64) *canvas {
	c := newCanvas(image.NewNRGBA(image.Rect(0, 0, w, h)), seed)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c.set(x, y, mgl64.Vec3{1, 1, 1})
		}
	}
	return c
}

func TestCoverageMaskAnnulus(t *testing.T) {
	centre := mgl64.Vec2{16, 16}
	mask := coverageMask(image.Point{}, 32, 32, circle(centre, 10, false), circle(centre, 6, true))
	cases := []struct {
		x, y int
		want uint8
	}{
		{16, 16, 0},
		{24, 16, 0xff},
		{16, 7, 0xff},
		{30, 16, 0},
		{0, 0, 0},
	}
	for _, tc := range cases {
		if got := mask.AlphaAt(tc.x, tc.y).A; got != tc.want {
			t.Fatalf("coverage at (%d,%d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}

	// Same winding fills the hole.
	solid := coverageMask(image.Point{}, 32, 32, circle(centre, 10, false), circle(centre, 6, false))
	if got := solid.AlphaAt(16, 16).A; got != 0xff {
		t.Fatalf("same-winding centre coverage %d, want 255", got)
	}
}

func TestCoverageMaskEdgeIsAntiAliased(t *testing.T) {
	mask := coverageMask(image.Point{}, 32, 32, circle(mgl64.Vec2{16, 16}, 9.5, false))
	partial := 0
	for x := 0; x < 32; x++ {
		if a := mask.AlphaAt(x, 16).A; a > 0 && a < 0xff {
			partial++
		}
	}
	if partial == 0 {
		t.Fatal("no partially covered pixels along the disc edge")
	}
}

func TestCoverageMaskOffset(t *testing.T) {
	off := image.Point{X: 100, Y: 40}
	mask := coverageMask(off, 20, 20, circle(mgl64.Vec2{110, 50}, 5, false))
	if got := mask.AlphaAt(10, 10).A; got != 0xff {
		t.Fatalf("offset disc centre coverage %d, want 255", got)
	}
	if got := mask.AlphaAt(0, 0).A; got != 0 {
		t.Fatalf("offset mask corner coverage %d, want 0", got)
	}
}

func TestCoffeeRingDarkensBandOnly(t *testing.T) {
	c := whiteCanvas(512, 724, 1)
	c.paintCoffeeRing()
	cx, cy := 0.8*512.0, 0.2*724.0
	r := ringRadius * c.scale

	onRing := c.get(int(cx+r), int(cy))
	if onRing[0] >= 1 {
		t.Fatalf("ring pixel %v not darkened", onRing)
	}
	for _, p := range [][2]int{{int(cx), int(cy)}, {0, 700}, {int(cx + r*1.5), int(cy)}} {
		if got := c.get(p[0], p[1]); got != (mgl64.Vec3{1, 1, 1}) {
			t.Fatalf("pixel %v outside the ring changed to %v", p, got)
		}
	}
}

func TestStainsStayInsideTheirDiscs(t *testing.T) {
	const seed = 23
	c := whiteCanvas(256, 362, seed)
	c.paintStains(1)

	rng := core.NewRNG(seed)
	cx := rng.Range(0, 256)
	cy := rng.Range(0, 362)
	r := rng.Range(stainRadiusMin, stainRadiusMax) * c.scale
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			if c.get(x, y)[0] >= 1 {
				continue
			}
			if d := math.Hypot(float64(x)+0.5-cx, float64(y)+0.5-cy); d > r+1 {
				t.Fatalf("pixel (%d,%d) stained %.1f from a stain of radius %.1f", x, y, d, r)
			}
		}
	}
}
