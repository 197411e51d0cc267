// Package config loads driver settings from the environment and command-line flags.
package config

import (
	"flag"
	"fmt"
	"strings"
	"unicode/utf8"

	"eca/internal/automaton"
	"eca/internal/core"

	"github.com/caarlos0/env/v11"
)

// Config represents the settings for a headless run. Environment variables
// provide defaults and flags override them.
type Config struct {
	Rule        int    `env:"ECA_RULE" envDefault:"90"`
	State       string `env:"ECA_STATE"`
	Width       int    `env:"ECA_WIDTH" envDefault:"29"`
	Generations int    `env:"ECA_GENERATIONS" envDefault:"10"`
	Random      bool   `env:"ECA_RANDOM"`
	Seed        int64  `env:"ECA_SEED" envDefault:"42"`
	TPS         int    `env:"ECA_TPS"`
	Edge        string `env:"ECA_EDGE" envDefault:"compat"`
	On          string `env:"ECA_ON" envDefault:"*"`
	Off         string `env:"ECA_OFF" envDefault:" "`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram rule number (0-255)")
	fs.StringVar(&c.State, "state", c.State, "initial generation of 0s and 1s; overrides -width and -random")
	fs.IntVar(&c.Width, "width", c.Width, "cell count for generated initial states")
	fs.IntVar(&c.Generations, "n", c.Generations, "generations to print after the initial one")
	fs.BoolVar(&c.Random, "random", c.Random, "seed the initial state randomly instead of a single center cell")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for -random")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second; 0 prints without delay")
	fs.StringVar(&c.Edge, "edge", c.Edge, "left boundary handling: compat or strict")
	fs.StringVar(&c.On, "on", c.On, "glyph for live cells")
	fs.StringVar(&c.Off, "off", c.Off, "glyph for dead cells")
}

// Parse loads defaults from the environment and then applies flags from args.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var c Config
	if err := ParseEnv(&c); err != nil {
		return Config{}, err
	}
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if c.Generations < 0 {
		return Config{}, fmt.Errorf("generations must not be negative: %d", c.Generations)
	}
	return c, nil
}

// InitialState resolves the first generation: the explicit state if set, a
// random row from Seed when Random is set, or a single centered cell.
func (c Config) InitialState() string {
	if c.State != "" {
		return c.State
	}
	if c.Width <= 0 {
		return ""
	}
	if c.Random {
		return core.NewRNG(c.Seed).BinaryString(c.Width)
	}
	return strings.Repeat("0", c.Width/2) + "1" + strings.Repeat("0", c.Width-c.Width/2-1)
}

// Automaton builds the automaton described by c.
func (c Config) Automaton() (*automaton.Automaton, error) {
	edge, err := automaton.ParseEdge(c.Edge)
	if err != nil {
		return nil, err
	}
	return automaton.NewWithConfig(automaton.Config{Rule: c.Rule, Initial: c.InitialState(), Edge: edge})
}

// Glyphs returns the first rune of On and Off, falling back to '*' and ' '.
func (c Config) Glyphs() (on, off rune) {
	on, off = '*', ' '
	if r, size := utf8.DecodeRuneInString(c.On); size > 0 {
		on = r
	}
	if r, size := utf8.DecodeRuneInString(c.Off); size > 0 {
		off = r
	}
	return on, off
}
