//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"koozle/internal/app"
	"koozle/internal/config"
	"koozle/internal/game"
	"koozle/internal/render"
	"koozle/pkg/logger"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:], os.Getenv)
	if err != nil {
		logger.Log.Fatal(err)
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	log := logger.Log

	cat, err := game.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.WithError(err).Fatal("load catalog")
	}
	palette, err := render.NewPalette(cat)
	if err != nil {
		log.WithError(err).Fatal("build palette")
	}

	opts := cfg.GameOptions()
	g := app.New(opts, cat, palette, log, cfg.TickInterval, cfg.Scale, cfg.HUDWidth, cfg.Seed)

	ebiten.SetWindowTitle("Świetlik Koozle")
	ebiten.SetWindowSize(opts.Room.Cols*cfg.Scale+cfg.HUDWidth, opts.Room.Rows*cfg.Scale)

	log.WithField("seed", cfg.Seed).Info("starting")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
