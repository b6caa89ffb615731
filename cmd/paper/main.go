//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"paper-burn/internal/app"
	"paper-burn/internal/burn"
	"paper-burn/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	log := logging.New(os.Stderr, cfg.LogLevel, cfg.Pretty)

	burnCfg, err := cfg.BurnConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	sheet, err := burn.New(burnCfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create sheet")
	}

	game := app.New(sheet, cfg, log)
	w, h := game.WindowSize()

	ebiten.SetWindowTitle("paper-burn")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
