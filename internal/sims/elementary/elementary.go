package elementary

import (
	"strconv"

	"eca/internal/automaton"
	"eca/internal/core"
)

// Config holds parameters for the elementary cellular automaton viewer.
type Config struct {
	Width  int
	Height int
	Rule   uint8
	Edge   automaton.Edge
	Random bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: 90}
}

// FromMap populates a Config from a string map. Invalid values keep the default.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			if rule, err := automaton.ParseRule(parsed); err == nil {
				c.Rule = uint8(rule)
			}
		}
	}
	if v, ok := cfg["edge"]; ok {
		if edge, err := automaton.ParseEdge(v); err == nil {
			c.Edge = edge
		}
	}
	if v, ok := cfg["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Random = parsed
		}
	}
	return c
}

// Elementary projects successive generations of a 1D automaton vertically:
// row 0 holds the newest generation and older ones scroll downwards.
type Elementary struct {
	cfg  Config
	grid *core.ByteGrid
	ca   *automaton.Automaton
}

// New creates a viewer with the given dimensions and rule.
func New(w, h int, rule uint8) *Elementary {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height, cfg.Rule = w, h, rule
	return NewWithConfig(cfg)
}

// NewWithConfig creates a viewer seeded with a single centered cell.
func NewWithConfig(cfg Config) *Elementary {
	grid := core.NewByteGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = grid.W, grid.H
	e := &Elementary{cfg: cfg, grid: grid}
	e.Reset(0)
	return e
}

// Name returns the simulation identifier.
func (e *Elementary) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (e *Elementary) Size() core.Size { return core.Size{W: e.grid.W, H: e.grid.H} }

// Cells exposes the render buffer.
func (e *Elementary) Cells() []uint8 { return e.grid.Cells() }

// Rule returns the active rule number.
func (e *Elementary) Rule() uint8 { return e.cfg.Rule }

// Generation returns the newest generation as a '0'/'1' string.
func (e *Elementary) Generation() string { return e.ca.State() }

// Reset clears the history and seeds the top row. With Random set the row is
// filled from seed, otherwise a single cell is switched on in the center.
func (e *Elementary) Reset(seed int64) {
	e.grid.Clear()
	var initial string
	if e.cfg.Random {
		initial = core.NewRNG(seed).BinaryString(e.grid.W)
	} else {
		row := make([]byte, e.grid.W)
		for i := range row {
			row[i] = '0'
		}
		row[e.grid.W/2] = '1'
		initial = string(row)
	}
	e.restart(initial)
}

// SetRule switches to rule while keeping the newest generation.
func (e *Elementary) SetRule(rule uint8) {
	e.cfg.Rule = rule
	e.restart(e.ca.State())
}

func (e *Elementary) restart(initial string) {
	ca, err := automaton.NewWithConfig(automaton.Config{
		Rule:    int(e.cfg.Rule),
		Initial: initial,
		Edge:    e.cfg.Edge,
	})
	if err != nil {
		panic(err)
	}
	e.ca = ca
	ca.AppendCells(e.grid.Row(0)[:0])
}

// Step computes the next generation and scrolls history downwards.
func (e *Elementary) Step() {
	e.grid.ScrollDown()
	e.ca.Next()
	e.ca.AppendCells(e.grid.Row(0)[:0])
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
