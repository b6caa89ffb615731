package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// TermPainter draws a frame into a terminal using upper half-block cells, so
// each cell carries two vertically stacked samples.
type TermPainter struct {
	Backdrop color.RGBA
}

// NewTermPainter returns a painter that shows void pixels as backdrop.
func NewTermPainter(backdrop color.RGBA) *TermPainter {
	return &TermPainter{Backdrop: backdrop}
}

// Draw scales the w×h RGBA frame to fit cols×rows cells at (x0, y0),
// nearest-sampling each half cell.
func (p *TermPainter) Draw(screen tcell.Screen, pixels []byte, w, h, x0, y0, cols, rows int) {
	if w <= 0 || h <= 0 || cols <= 0 || rows <= 0 || len(pixels) < 4*w*h {
		return
	}
	sub := rows * 2
	for cy := 0; cy < rows; cy++ {
		top := p.sample(pixels, w, h, cols, sub, cy*2)
		bottom := p.sample(pixels, w, h, cols, sub, cy*2+1)
		for cx := 0; cx < cols; cx++ {
			style := tcell.StyleDefault.
				Foreground(rgb(top(cx))).
				Background(rgb(bottom(cx)))
			screen.SetContent(x0+cx, y0+cy, '▀', nil, style)
		}
	}
}

// FitCells returns the largest cell area with the frame's aspect that fits
// within cols×rows, counting two samples per cell vertically.
func FitCells(w, h, cols, rows int) (int, int) {
	if w <= 0 || h <= 0 || cols <= 0 || rows <= 0 {
		return 0, 0
	}
	fc := cols
	fr := (fc*h/w + 1) / 2
	if fr > rows {
		fr = rows
		fc = fr * 2 * w / h
	}
	if fc < 1 {
		fc = 1
	}
	if fr < 1 {
		fr = 1
	}
	return fc, fr
}

func (p *TermPainter) sample(pixels []byte, w, h, cols, sub, sy int) func(int) color.RGBA {
	y := sy * h / sub
	if y >= h {
		y = h - 1
	}
	return func(cx int) color.RGBA {
		x := cx * w / cols
		if x >= w {
			x = w - 1
		}
		return Over(pixels, y*w+x, p.Backdrop)
	}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
