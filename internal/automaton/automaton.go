// Package automaton implements a one-dimensional binary elementary cellular
// automaton with zero-valued boundaries.
package automaton

import (
	"fmt"
	"iter"
)

// Edge selects how the left neighbor is read near the start of the row.
type Edge uint8

const (
	// EdgeCompat reads the left neighbor only when i-1 > 0, so cells 0 and 1
	// both see the boundary value. Kept for output compatibility.
	EdgeCompat Edge = iota
	// EdgeStrict reads the left neighbor whenever i-1 >= 0.
	EdgeStrict
)

// ParseEdge maps "compat" or "strict" to an Edge. The empty string is compat.
func ParseEdge(s string) (Edge, error) {
	switch s {
	case "", "compat":
		return EdgeCompat, nil
	case "strict":
		return EdgeStrict, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidEdge, s)
}

func (e Edge) String() string {
	switch e {
	case EdgeCompat:
		return "compat"
	case EdgeStrict:
		return "strict"
	}
	return fmt.Sprintf("Edge(%d)", uint8(e))
}

// Config holds the construction parameters for an Automaton.
type Config struct {
	Rule    int
	Initial string
	Edge    Edge
}

// Automaton owns a rule and the current generation. It keeps no history and is
// not safe for concurrent use.
type Automaton struct {
	rule Rule
	edge Edge
	cur  []uint8
	nxt  []uint8
}

// New validates the initial state and then the rule, returning an automaton
// positioned at the initial generation.
func New(rule int, initial string) (*Automaton, error) {
	return NewWithConfig(Config{Rule: rule, Initial: initial})
}

// MustNew is like New but panics on invalid input.
func MustNew(rule int, initial string) *Automaton {
	a, err := New(rule, initial)
	if err != nil {
		panic(err)
	}
	return a
}

// NewWithConfig is New with an explicit edge mode.
func NewWithConfig(cfg Config) (*Automaton, error) {
	cells, err := parseState(cfg.Initial)
	if err != nil {
		return nil, err
	}
	rule, err := ParseRule(cfg.Rule)
	if err != nil {
		return nil, err
	}
	if cfg.Edge != EdgeCompat && cfg.Edge != EdgeStrict {
		return nil, fmt.Errorf("%w: %d", ErrInvalidEdge, uint8(cfg.Edge))
	}
	return &Automaton{rule: rule, edge: cfg.Edge, cur: cells, nxt: make([]uint8, len(cells))}, nil
}

func parseState(s string) ([]uint8, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: state is empty", ErrInvalidState)
	}
	cells := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			cells[i] = 1
		default:
			return nil, fmt.Errorf("%w: %q at index %d", ErrInvalidState, s[i], i)
		}
	}
	return cells, nil
}

// Rule returns the rule number.
func (a *Automaton) Rule() Rule { return a.rule }

// Edge returns the configured edge mode.
func (a *Automaton) Edge() Edge { return a.edge }

// Len returns the fixed generation length.
func (a *Automaton) Len() int { return len(a.cur) }

// State returns the current generation as a string of '0' and '1'.
func (a *Automaton) State() string {
	buf := make([]byte, len(a.cur))
	for i, c := range a.cur {
		buf[i] = '0' + c
	}
	return string(buf)
}

// AppendCells appends the current generation as 0/1 values to dst.
func (a *Automaton) AppendCells(dst []uint8) []uint8 {
	return append(dst, a.cur...)
}

// pattern packs the neighborhood of cell i into a value in [0,7].
func (a *Automaton) pattern(i int) uint8 {
	var left, right uint8
	if i-1 > 0 || (a.edge == EdgeStrict && i-1 == 0) {
		left = a.cur[i-1]
	}
	if i+1 < len(a.cur) {
		right = a.cur[i+1]
	}
	return left<<2 | a.cur[i]<<1 | right
}

// Next advances one generation and returns it. Every cell is computed from the
// previous generation before any is replaced.
func (a *Automaton) Next() string {
	for i := range a.cur {
		a.nxt[i] = a.rule.Output(a.pattern(i))
	}
	a.cur, a.nxt = a.nxt, a.cur
	return a.State()
}

// Generations yields an endless sequence of successive generations. Each pull
// advances the automaton; earlier generations are not retained.
func (a *Automaton) Generations() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			if !yield(a.Next()) {
				return
			}
		}
	}
}
