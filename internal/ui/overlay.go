//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"paper-burn/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay toggles the zone classification view and draws its legend.
type Overlay struct {
	showZones bool
	pixel     *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	o := &Overlay{}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showZones = !o.showZones
	}
}

// ShowZones reports whether the zone view is active.
func (o *Overlay) ShowZones() bool { return o != nil && o.showZones }

// Draw renders the zone legend in the top-left corner while the zone view is on.
func (o *Overlay) Draw(screen *ebiten.Image, zones *core.ByteGrid) {
	if !o.ShowZones() {
		return
	}
	const (
		swatch = 10
		row    = 16
		left   = 8
		top    = 8
	)
	face := basicfont.Face7x13
	for i, e := range zoneLegend(zones) {
		y := top + i*row
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(swatch, swatch)
		op.GeoM.Translate(left, float64(y))
		sw := e.swatch
		if sw.A == 0 {
			sw = color.RGBA{R: 60, G: 60, B: 70, A: 255}
		}
		op.ColorScale.ScaleWithColor(sw)
		screen.DrawImage(o.pixel, op)
		label := fmt.Sprintf("%-6s %5.1f%%", e.label, e.coverage*100)
		text.Draw(screen, label, face, left+swatch+6, y+swatch, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}
