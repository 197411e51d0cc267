package config

import (
	"errors"
	"flag"
	"strings"
	"testing"

	"eca/internal/automaton"
)

func TestParseDefaults(t *testing.T) {
	c, err := Parse(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Rule != 90 || c.Generations != 10 || c.Width != 29 || c.Edge != "compat" {
		t.Fatalf("unexpected defaults %+v", c)
	}
	if got := c.InitialState(); got != "00000000000000100000000000000" {
		t.Fatalf("initial state = %q", got)
	}
}

func TestParseReadsEnvAndFlags(t *testing.T) {
	t.Setenv("ECA_RULE", "30")
	t.Setenv("ECA_GENERATIONS", "4")
	t.Setenv("ECA_STATE", "0110")

	c, err := Parse(flag.NewFlagSet("test", flag.ContinueOnError), []string{"-rule", "110", "-edge", "strict"})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if c.Rule != 110 {
		t.Fatalf("expected flag rule 110, got %d", c.Rule)
	}
	if c.Generations != 4 || c.State != "0110" {
		t.Fatalf("expected env values, got %+v", c)
	}
	a, err := c.Automaton()
	if err != nil {
		t.Fatalf("automaton: %v", err)
	}
	if a.Rule() != 110 || a.Edge() != automaton.EdgeStrict || a.State() != "0110" {
		t.Fatalf("automaton rule=%d edge=%s state=%q", a.Rule(), a.Edge(), a.State())
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("ECA_RULE", "ninety")
	_, err := Parse(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}

func TestParseRejectsNegativeGenerations(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	if _, err := Parse(fs, []string{"-n", "-1"}); err == nil {
		t.Fatal("expected error for negative generations")
	}
}

func TestInitialStateRandomIsSeeded(t *testing.T) {
	c := Config{Width: 40, Random: true, Seed: 3}
	a, b := c.InitialState(), c.InitialState()
	if a != b || len(a) != 40 || strings.Trim(a, "01") != "" {
		t.Fatalf("random state %q / %q", a, b)
	}
}

func TestAutomatonPropagatesValidationErrors(t *testing.T) {
	if _, err := (Config{Rule: 256, State: "00200"}).Automaton(); !errors.Is(err, automaton.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState first, got %v", err)
	}
	if _, err := (Config{Rule: 256, State: "00100"}).Automaton(); !errors.Is(err, automaton.ErrInvalidRule) {
		t.Fatalf("expected ErrInvalidRule, got %v", err)
	}
	if _, err := (Config{Rule: 90, Width: 0}).Automaton(); !errors.Is(err, automaton.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState for empty state, got %v", err)
	}
	if _, err := (Config{Rule: 90, State: "1", Edge: "wrap"}).Automaton(); !errors.Is(err, automaton.ErrInvalidEdge) {
		t.Fatalf("expected ErrInvalidEdge, got %v", err)
	}
}

func TestGlyphs(t *testing.T) {
	on, off := Config{On: "#", Off: "."}.Glyphs()
	if on != '#' || off != '.' {
		t.Fatalf("glyphs = %q %q", on, off)
	}
	on, off = Config{}.Glyphs()
	if on != '*' || off != ' ' {
		t.Fatalf("fallback glyphs = %q %q", on, off)
	}
}
