package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(vals map[string]string) func(string) string {
	return func(k string) string { return vals[k] }
}

func TestDefaultsValidate(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 120*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, 15, cfg.RoomBaseXP)
	assert.InDelta(t, 0.4, cfg.ItemDropChance, 1e-9)

	opts := cfg.GameOptions()
	assert.Equal(t, 12, opts.Room.Rows)
	assert.Equal(t, 1, opts.Room.MinChanges)
	assert.Equal(t, 3, opts.Room.MaxChanges)
}

func TestBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.Bind(fs)

	require.NoError(t, fs.Parse([]string{"-seed", "7", "-rows", "20", "-fill", "0.5", "-tick", "50ms", "-rooms", "0", "-catalog", "x.yaml"}))
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 20, cfg.Rows)
	assert.Equal(t, 50*time.Millisecond, cfg.TickInterval)
	assert.Equal(t, "x.yaml", cfg.CatalogPath)

	opts := cfg.GameOptions()
	assert.Equal(t, 20, opts.Room.Rows)
	assert.InDelta(t, 0.5, opts.Room.Fill, 1e-9)
	assert.Equal(t, 0, opts.RoomsToWin)
}

func TestFromEnv(t *testing.T) {
	cfg := NewConfig()
	require.NoError(t, cfg.FromEnv(env(map[string]string{
		"KOOZLE_SEED": " 99 ",
		"LOG_LEVEL":   "debug",
		"LOG_FORMAT":  "json",
	})))
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	before := *cfg
	require.NoError(t, cfg.FromEnv(env(nil)))
	assert.Equal(t, before, *cfg)

	assert.Error(t, cfg.FromEnv(env(map[string]string{"KOOZLE_SEED": "abc"})))
}

func TestValidateRejects(t *testing.T) {
	for name, mutate := range map[string]func(*Config){
		"tiny room":     func(c *Config) { c.Rows = 2 },
		"fill":          func(c *Config) { c.Fill = 1.5 },
		"drop":          func(c *Config) { c.ItemDropChance = -0.1 },
		"tick":          func(c *Config) { c.TickInterval = 0 },
		"negative caps": func(c *Config) { c.MaxSteps = -1 },
		"scale":         func(c *Config) { c.Scale = 0 },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := NewConfig()
			mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestParseFlagsOverrideEnv(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := Parse(fs, []string{"-log-level", "warn"}, env(map[string]string{
		"KOOZLE_SEED": "5",
		"LOG_LEVEL":   "debug",
	}))
	require.NoError(t, err)
	assert.Equal(t, int64(5), cfg.Seed)
	assert.Equal(t, "warn", cfg.LogLevel)

	fs = flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err = Parse(fs, []string{"-fill", "2"}, env(nil))
	assert.Error(t, err)
}
