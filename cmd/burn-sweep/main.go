package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"paper-burn/internal/app"
	"paper-burn/internal/logging"

	"golang.org/x/sync/errgroup"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindBurn(flag.CommandLine)
	sizes := flag.String("sizes", "300x420,420x300,256x256,64x512", "comma-separated WxH frame sizes to sweep")
	workers := flag.Int("workers", runtime.NumCPU(), "scenarios evaluated in parallel")
	framesDir := flag.String("frames", "", "write the texture and frames as PNG under this directory")
	every := flag.Int("every", 30, "with -frames, write every Nth tick")
	flag.Parse()

	log := logging.New(os.Stderr, cfg.LogLevel, true)

	base, err := cfg.BurnConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	scenarios, err := parseSizes(*sizes)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -sizes")
	}
	if *workers < 1 {
		*workers = 1
	}
	base.Workers = max(1, base.Workers / *workers)

	opts := runOptions{dt: cfg.DeltaSeconds(), framesDir: *framesDir, every: *every}
	results := make([]result, len(scenarios))
	var g errgroup.Group
	g.SetLimit(*workers)
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := run(base, sc, opts, log)
			if err != nil {
				return err
			}
			results[i] = res
			log.Debug().Str("size", sc.String()).Int("ticks", res.ticks).Msg("scenario finished")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("sweep failed")
	}

	fmt.Println(renderReport(results, opts.dt))
	for _, r := range results {
		if r.remainder > 0 {
			log.Warn().Str("size", r.scenario.String()).Float64("remainder", r.remainder).Msg("sheet not fully consumed at ceiling")
		}
	}
}
