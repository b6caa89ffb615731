//go:build ebiten

package app

import (
	"image"
	"image/color"
	"time"

	"paper-burn/internal/core"
	"paper-burn/internal/render"
	"paper-burn/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

var backdrop = color.RGBA{R: 24, G: 22, B: 26, A: 255}

// Game adapts a burning surface to the ebiten.Game interface.
type Game struct {
	surface core.Surface
	painter *render.SheetPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	log     zerolog.Logger

	screenW, screenH int
	hudWidth         int

	dt       float64
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided surface.
func New(surface core.Surface, cfg *Config, log zerolog.Logger) *Game {
	size := surface.Size()
	cam := render.DefaultCamera()
	sw, sh := cam.ScreenSize(size.W, size.H)
	return &Game{
		surface:  surface,
		painter:  render.NewSheetPainter(size.W, size.H, surface.MeshSegments(), cam),
		overlay:  ui.NewOverlay(),
		hud:      ui.NewHUD(surface, cfg.HUDWidth),
		log:      log,
		screenW:  sw,
		screenH:  sh,
		hudWidth: cfg.HUDWidth,
		dt:       cfg.DeltaSeconds(),
		seed:     surface.Seed(),
	}
}

// WindowSize reports the outer window size including the HUD panel.
func (g *Game) WindowSize() (int, int) {
	return g.screenW + g.hudWidth, g.screenH
}

// Reset reignites the sheet with the provided seed. A failed restart keeps
// the current sheet burning.
func (g *Game) Reset(seed int64) {
	if g.surface == nil {
		return
	}
	if err := g.surface.Restart(seed); err != nil {
		g.log.Error().Err(err).Int64("seed", seed).Msg("ignite again failed")
		return
	}
	g.seed = seed
	g.tickOnce = false
}

// Update handles per-frame logic and advances the burn.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.surface == nil {
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.Update(g.screenW)
	if g.hud.IgniteRequested() {
		g.Reset(g.seed)
	}

	if !g.paused || g.tickOnce {
		g.surface.Tick(g.dt)
		g.tickOnce = false
	}
	return nil
}

// Draw renders the sheet, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backdrop)
	if g.surface == nil {
		return
	}
	view := screen.SubImage(image.Rect(0, 0, g.screenW, g.screenH)).(*ebiten.Image)
	if g.overlay.ShowZones() {
		g.painter.DrawZones(view, g.surface.Zones().Cells(), g.surface.Offsets())
	} else {
		g.painter.Draw(view, g.surface.Pixels(), g.surface.Offsets())
	}
	g.overlay.Draw(view, g.surface.Zones())
	g.hud.Draw(screen, g.screenW, g.screenH)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.WindowSize()
}
