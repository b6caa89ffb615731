package main

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"paper-burn/internal/burn"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/stat"
)

type scenario struct {
	W, H int
}

func (s scenario) String() string { return fmt.Sprintf("%dx%d", s.W, s.H) }

type result struct {
	scenario scenario

	ticks      int
	firstEmber int // -1 if never
	fullVoid   int // -1 if never
	peakEmber  float64
	meanEmber  float64
	remainder  float64

	front burn.Stats
}

// parseSizes reads a comma-separated list of WxH sizes.
func parseSizes(list string) ([]scenario, error) {
	var out []scenario
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		ws, hs, ok := strings.Cut(strings.ToLower(part), "x")
		if !ok {
			return nil, fmt.Errorf("size %q is not WxH", part)
		}
		w, err := strconv.Atoi(ws)
		if err != nil || w <= 0 {
			return nil, fmt.Errorf("size %q: bad width", part)
		}
		h, err := strconv.Atoi(hs)
		if err != nil || h <= 0 {
			return nil, fmt.Errorf("size %q: bad height", part)
		}
		out = append(out, scenario{W: w, H: h})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no sizes given")
	}
	return out, nil
}

type runOptions struct {
	dt        float64
	framesDir string
	every     int
}

// run burns one sheet to the ceiling at a fixed dt.
func run(base burn.Config, sc scenario, opts runOptions, log zerolog.Logger) (result, error) {
	cfg := base
	cfg.Width, cfg.Height = sc.W, sc.H
	res := result{scenario: sc, firstEmber: -1, fullVoid: -1}

	front, err := burn.FrontStats(cfg.Params, sc.W, sc.H)
	if err != nil {
		return res, err
	}
	res.front = front

	sheet, err := burn.New(cfg, log)
	if err != nil {
		return res, fmt.Errorf("%s: %w", sc, err)
	}
	dir := ""
	if opts.framesDir != "" {
		dir = filepath.Join(opts.framesDir, sc.String())
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return res, fmt.Errorf("create frame dir: %w", err)
		}
		if err := writePNG(filepath.Join(dir, "texture.png"), sheet.Texture().Image()); err != nil {
			return res, err
		}
	}

	maxTicks := int(math.Ceil(cfg.Params.MaxProgress/(cfg.Params.BurnRate*opts.dt))) + 1
	embers := make([]float64, 0, maxTicks+1)
	for tick := 0; ; tick++ {
		f := sheet.Frame()
		ember := f.Coverage(burn.ZoneEmber)
		embers = append(embers, ember)
		if ember > 0 && res.firstEmber < 0 {
			res.firstEmber = tick
		}
		if ember > res.peakEmber {
			res.peakEmber = ember
		}
		if f.Coverage(burn.ZoneVoid) == 1 && res.fullVoid < 0 {
			res.fullVoid = tick
		}
		if dir != "" && opts.every > 0 && tick%opts.every == 0 {
			if err := writeFrame(filepath.Join(dir, fmt.Sprintf("frame_%05d.png", tick)), f); err != nil {
				return res, err
			}
		}
		if sheet.Uniforms().Done || tick >= maxTicks {
			res.ticks = tick
			res.remainder = 1 - f.Coverage(burn.ZoneVoid)
			break
		}
		sheet.Tick(opts.dt)
	}
	res.meanEmber = stat.Mean(embers, nil)
	return res, nil
}

func writeFrame(path string, f *burn.Frame) error {
	img := &image.NRGBA{
		Pix:    f.Pixels,
		Stride: 4 * f.W,
		Rect:   image.Rect(0, 0, f.W, f.H),
	}
	return writePNG(path, img)
}

func writePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return out.Close()
}
