package main

import (
	"flag"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"koozle/internal/config"
	"koozle/internal/game"
	"koozle/internal/tui"
	"koozle/pkg/core"
	"koozle/pkg/logger"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:], os.Getenv)
	if err != nil {
		logger.Log.Fatal(err)
	}

	// The terminal belongs to the UI; logs go to a file when asked for.
	var out io.Writer = io.Discard
	if path := os.Getenv("KOOZLE_LOG_FILE"); path != "" {
		f, err := tea.LogToFile(path, "koozle")
		if err != nil {
			logger.Log.Fatal(err)
		}
		defer f.Close()
		out = f
	}
	logger.Init(cfg.LogLevel, cfg.LogFormat, out)
	log := logger.Log

	cat, err := game.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		log.WithError(err).Fatal("load catalog")
	}

	opts := cfg.GameOptions()
	seed := cfg.Seed
	newSession := func() *game.Session {
		s := game.NewSession(opts, cat, core.NewRNG(seed), log)
		seed++
		return s
	}

	p := tea.NewProgram(tui.NewModel(newSession, cfg.TickInterval), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.WithError(err).Error("terminal ui")
		os.Exit(1)
	}
}
