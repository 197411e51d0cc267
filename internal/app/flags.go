package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim    string
	Scale  int
	TPS    int
	Seed   int64
	Rule   int
	Width  int
	Height int
	Edge   string
	Random bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "elementary", Scale: 3, TPS: 30, Seed: 42, Rule: 90, Width: 256, Height: 256, Edge: "compat"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram rule number (0-255)")
	fs.IntVar(&c.Width, "w", c.Width, "cells per generation")
	fs.IntVar(&c.Height, "h", c.Height, "generations kept on screen")
	fs.StringVar(&c.Edge, "edge", c.Edge, "left boundary handling: compat or strict")
	fs.BoolVar(&c.Random, "random", c.Random, "seed the first row randomly")
}

// SimOptions converts the flags into the key/value form sim factories accept.
func (c *Config) SimOptions() map[string]string {
	return map[string]string{
		"w":      strconv.Itoa(c.Width),
		"h":      strconv.Itoa(c.Height),
		"rule":   strconv.Itoa(c.Rule),
		"edge":   c.Edge,
		"random": strconv.FormatBool(c.Random),
	}
}
