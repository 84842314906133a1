// Package config holds the command-line and environment settings shared by
// the window, terminal and sweep binaries.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"koozle/internal/game"
)

// Config is bound to flags by Bind and overlaid from the environment by
// FromEnv.
type Config struct {
	Seed           int64
	Rows           int
	Cols           int
	Fill           float64
	TickInterval   time.Duration
	RoomBaseXP     int
	ItemDropChance float64
	RoomsToWin     int
	MaxSteps       int
	CatalogPath    string

	Scale    int
	HUDWidth int

	LogLevel  string
	LogFormat string
}

// NewConfig returns the defaults.
func NewConfig() *Config {
	opts := game.DefaultOptions()
	return &Config{
		Seed:           time.Now().UnixNano(),
		Rows:           opts.Room.Rows,
		Cols:           opts.Room.Cols,
		Fill:           opts.Room.Fill,
		TickInterval:   120 * time.Millisecond,
		RoomBaseXP:     opts.RoomBaseXP,
		ItemDropChance: opts.ItemDropChance,
		RoomsToWin:     opts.RoomsToWin,
		MaxSteps:       opts.MaxSteps,
		Scale:          32,
		HUDWidth:       240,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Bind registers the config's flags on fs.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed")
	fs.IntVar(&c.Rows, "rows", c.Rows, "room height including walls")
	fs.IntVar(&c.Cols, "cols", c.Cols, "room width including walls")
	fs.Float64Var(&c.Fill, "fill", c.Fill, "chance an interior cell starts alive")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "time between generations")
	fs.IntVar(&c.RoomBaseXP, "room-xp", c.RoomBaseXP, "base xp for clearing a room")
	fs.Float64Var(&c.ItemDropChance, "drop", c.ItemDropChance, "item drop chance per room")
	fs.IntVar(&c.RoomsToWin, "rooms", c.RoomsToWin, "rooms to clear for victory (0 = endless)")
	fs.IntVar(&c.MaxSteps, "max-steps", c.MaxSteps, "generations before a room is forced complete (0 = no cap)")
	fs.StringVar(&c.CatalogPath, "catalog", c.CatalogPath, "mob and item catalog YAML (empty = built in)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale per cell")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "log format (text or json)")
}

// FromEnv overlays KOOZLE_SEED, LOG_LEVEL and LOG_FORMAT when set.
func (c *Config) FromEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := strings.TrimSpace(getenv("KOOZLE_SEED")); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("KOOZLE_SEED: %w", err)
		}
		c.Seed = seed
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := getenv("LOG_FORMAT"); v != "" {
		c.LogFormat = v
	}
	return nil
}

// Validate reports every out-of-range setting.
func (c *Config) Validate() error {
	var errs []error
	if c.Rows < 3 || c.Cols < 3 {
		errs = append(errs, fmt.Errorf("room must be at least 3x3, got %dx%d", c.Rows, c.Cols))
	}
	if c.Fill < 0 || c.Fill > 1 {
		errs = append(errs, fmt.Errorf("fill %.2f outside [0,1]", c.Fill))
	}
	if c.ItemDropChance < 0 || c.ItemDropChance > 1 {
		errs = append(errs, fmt.Errorf("drop chance %.2f outside [0,1]", c.ItemDropChance))
	}
	if c.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("tick interval must be positive"))
	}
	if c.RoomBaseXP < 0 || c.RoomsToWin < 0 || c.MaxSteps < 0 {
		errs = append(errs, fmt.Errorf("room xp, rooms and max steps must not be negative"))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be at least 1"))
	}
	return errors.Join(errs...)
}

// Parse builds a Config from defaults, then the environment, then args on
// fs, and validates the result.
func Parse(fs *flag.FlagSet, args []string, getenv func(string) string) (*Config, error) {
	cfg := NewConfig()
	if err := cfg.FromEnv(getenv); err != nil {
		return nil, err
	}
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// GameOptions converts the config into session options.
func (c *Config) GameOptions() game.Options {
	opts := game.DefaultOptions()
	opts.Room.Rows = c.Rows
	opts.Room.Cols = c.Cols
	opts.Room.Fill = c.Fill
	opts.RoomBaseXP = c.RoomBaseXP
	opts.ItemDropChance = c.ItemDropChance
	opts.RoomsToWin = c.RoomsToWin
	opts.MaxSteps = c.MaxSteps
	return opts
}
