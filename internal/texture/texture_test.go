package texture

import (
	"bytes"
	"errors"
	"image"
	"math"
	"testing"
)

func smallConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 128
	cfg.Height = 181
	return cfg
}

func pixels(t *testing.T, tex *Texture) []byte {
	t.Helper()
	img, ok := tex.Image().(*image.NRGBA)
	if !ok {
		t.Fatalf("unexpected image type %T", tex.Image())
	}
	return img.Pix
}

func TestSynthesizeDeterministicPerSeed(t *testing.T) {
	cfg := smallConfig()
	a, err := Synthesize(cfg, 11)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	b, err := Synthesize(cfg, 11)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if !bytes.Equal(pixels(t, a), pixels(t, b)) {
		t.Fatal("same seed produced different textures")
	}

	c, err := Synthesize(cfg, 12)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if bytes.Equal(pixels(t, a), pixels(t, c)) {
		t.Fatal("different seeds produced identical textures")
	}
}

func TestSynthesizeSizeAndOpacity(t *testing.T) {
	cfg := smallConfig()
	tex, err := Synthesize(cfg, 1)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	w, h := tex.Size()
	if w != cfg.Width || h != cfg.Height {
		t.Fatalf("size %dx%d, want %dx%d", w, h, cfg.Width, cfg.Height)
	}
	if tex.Seed() != 1 {
		t.Fatalf("seed %d, want 1", tex.Seed())
	}
	pix := pixels(t, tex)
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0xff {
			t.Fatalf("pixel %d alpha %d, want opaque", i/4, pix[i])
		}
	}
}

func TestSynthesizeRejectsEmptySurface(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = size[0], size[1]
		if _, err := Synthesize(cfg, 1); !errors.Is(err, ErrNoSurface) {
			t.Fatalf("size %v: expected ErrNoSurface, got %v", size, err)
		}
	}
}

func TestVignetteDarkensCorners(t *testing.T) {
	cfg := smallConfig()
	cfg.StainCount = 0
	cfg.Grain = 0
	cfg.Letter = Letter{}
	tex, err := Synthesize(cfg, 5)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	luma := func(u, v float64) float64 {
		c := tex.Sample(u, v)
		return c[0] + c[1] + c[2]
	}
	center := luma(0.5, 0.5)
	for _, corner := range [][2]float64{{0.01, 0.01}, {0.99, 0.99}} {
		if l := luma(corner[0], corner[1]); l >= center {
			t.Fatalf("corner %v luma %.3f not darker than centre %.3f", corner, l, center)
		}
	}
}

func TestLetterInksTheSheet(t *testing.T) {
	cfg := smallConfig()
	cfg.StainCount = 0
	cfg.Grain = 0
	blank := cfg
	blank.Letter = Letter{}

	written, err := Synthesize(cfg, 9)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	plain, err := Synthesize(blank, 9)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	if bytes.Equal(pixels(t, written), pixels(t, plain)) {
		t.Fatal("letter text left no marks on the sheet")
	}
}

func TestSampleFlipsVertically(t *testing.T) {
	tex := &Texture{img: image.NewNRGBA(image.Rect(0, 0, 2, 2))}
	img := tex.img
	// Top row white, bottom row black.
	for x := 0; x < 2; x++ {
		i := img.PixOffset(x, 0)
		copy(img.Pix[i:i+4], []byte{255, 255, 255, 255})
		i = img.PixOffset(x, 1)
		copy(img.Pix[i:i+4], []byte{0, 0, 0, 255})
	}
	if top := tex.Sample(0.25, 0.75); math.Abs(top[0]-1) > 1e-9 {
		t.Fatalf("v=0.75 sampled %v, want white", top)
	}
	if bottom := tex.Sample(0.25, 0.25); math.Abs(bottom[0]) > 1e-9 {
		t.Fatalf("v=0.25 sampled %v, want black", bottom)
	}
	mid := tex.Sample(0.5, 0.5)
	if math.Abs(mid[0]-0.5) > 1e-9 {
		t.Fatalf("centre sampled %v, want mid grey", mid)
	}
}

func TestResample(t *testing.T) {
	tex, err := Synthesize(smallConfig(), 3)
	if err != nil {
		t.Fatalf("Synthesize: %v", err)
	}
	small, err := tex.Resample(32, 45)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if w, h := small.Size(); w != 32 || h != 45 {
		t.Fatalf("resampled size %dx%d", w, h)
	}
	if small.Seed() != tex.Seed() {
		t.Fatal("resample dropped the seed")
	}
	if _, err := tex.Resample(0, 4); !errors.Is(err, ErrNoSurface) {
		t.Fatalf("expected ErrNoSurface, got %v", err)
	}
}
