//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"paper-burn/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the sheet view.
type HUD struct {
	surface    core.Surface
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []controlState
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string
	igniteTop    int
	ignite       bool

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for the provided surface and panel width.
func NewHUD(surface core.Surface, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{surface: surface, width: width, igniteTop: controlsTop}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if surface != nil {
		h.title = buildTitle(surface.Name())
	}
	if provider, ok := surface.(core.ParameterControlsProvider); ok {
		h.controls = newControlStates(provider.ParameterControls())
		h.igniteTop = layoutControls(h.controls, width)
	}
	if setter, ok := surface.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Update refreshes the cached snapshot and handles clicks.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	provider, ok := h.surface.(parameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	refreshControlValues(h.controls, h.snapshot)
	h.handleInput()
}

// IgniteRequested reports, once, that the "Ignite again" button was clicked.
func (h *HUD) IgniteRequested() bool {
	if h == nil || !h.ignite {
		return false
	}
	h.ignite = false
	return true
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	h.drawIgnite()
	h.drawStatus()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) handleInput() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	if pointInRect(px, my, igniteRect(h.igniteTop, h.width)) {
		h.ignite = true
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		if pointInRect(px, my, state.minusRect) {
			applyAdjustment(h.floatSetter, state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			applyAdjustment(h.floatSetter, state, 1)
			return
		}
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, labelY, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		valueColor := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if !state.hasValue {
			valueColor = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, labelY, valueColor)

		_, minus := nextValue(state, -1)
		_, plus := nextValue(state, 1)
		h.drawButton(state.minusRect, "-", minus && h.floatSetter != nil)
		h.drawButton(state.plusRect, "+", plus && h.floatSetter != nil)
	}
}

func (h *HUD) drawIgnite() {
	h.drawButton(igniteRect(h.igniteTop, h.width), "Ignite again", h.surface != nil)
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := igniteRect(h.igniteTop, h.width).Max.Y + panelPadding + headerBaseline
	for _, line := range statusLines(h.snapshot) {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 170, G: 170, B: 180, A: 255})
		y += infoSpacing
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}
