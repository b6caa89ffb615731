package main

import (
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"paper-burn/internal/app"
	"paper-burn/internal/burn"
	"paper-burn/internal/core"
	"paper-burn/internal/logging"
	"paper-burn/internal/render"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

var backdrop = color.RGBA{R: 24, G: 22, B: 26, A: 255}

func main() {
	cfg := app.NewConfig()
	cfg.BindBurn(flag.CommandLine)
	logPath := flag.String("log", "", "write JSON logs to this file (terminal output is reserved for the preview)")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	log := logging.New(logOut, cfg.LogLevel, false)

	burnCfg, err := cfg.BurnConfig()
	if err != nil {
		fatal(log, err, "invalid configuration")
	}
	sheet, err := burn.New(burnCfg, log)
	if err != nil {
		fatal(log, err, "failed to create sheet")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal(log, err, "failed to open terminal")
	}
	if err := screen.Init(); err != nil {
		fatal(log, err, "failed to init terminal")
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault.Background(tcell.NewRGBColor(int32(backdrop.R), int32(backdrop.G), int32(backdrop.B))))
	screen.Clear()

	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	tps := cfg.TPS
	if tps <= 0 {
		tps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	v := &viewer{screen: screen, sheet: sheet, painter: render.NewTermPainter(backdrop), clock: core.NewFrameClock(0), log: log}
	for {
		select {
		case ev := <-events:
			if !v.handle(ev) {
				return
			}
		case <-ticker.C:
			v.step()
		}
	}
}

type viewer struct {
	screen  tcell.Screen
	sheet   *burn.Controller
	painter *render.TermPainter
	clock   *core.FrameClock
	log     zerolog.Logger
	paused  bool
}

func (v *viewer) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Key() == tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				v.paused = !v.paused
				v.clock.Reset()
			case 'r':
				v.restart(v.sheet.Seed())
			case 's':
				v.restart(time.Now().UnixNano())
			}
		}
	}
	return true
}

func (v *viewer) restart(seed int64) {
	if err := v.sheet.Restart(seed); err != nil {
		v.log.Error().Err(err).Int64("seed", seed).Msg("ignite again failed")
		return
	}
	v.clock.Reset()
}

func (v *viewer) step() {
	dt := v.clock.Delta()
	if v.paused {
		dt = 0
	}
	v.sheet.Tick(dt)

	cols, rows := v.screen.Size()
	if rows < 2 || cols < 1 {
		return
	}
	size := v.sheet.Size()
	fc, fr := render.FitCells(size.W, size.H, cols, rows-1)
	x0 := (cols - fc) / 2
	v.screen.Clear()
	v.painter.Draw(v.screen, v.sheet.Pixels(), size.W, size.H, x0, 0, fc, fr)

	u := v.sheet.Uniforms()
	status := fmt.Sprintf(" progress %.2f/%.1f  seed %d  void %.0f%%  [r] ignite again  [s] new sheet  [space] pause  [q] quit",
		u.Progress, u.MaxProgress, u.Seed, v.sheet.Frame().Coverage(burn.ZoneVoid)*100)
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for i, r := range status {
		if i >= cols {
			break
		}
		v.screen.SetContent(i, rows-1, r, nil, style)
	}
	v.screen.Show()
}

func fatal(log zerolog.Logger, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}
