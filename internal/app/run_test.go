package app

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"strings"
	"testing"

	"eca/internal/automaton"
	"eca/internal/config"
	"eca/internal/render"
	"eca/internal/sims/elementary"
)

func TestRunPrintsGenerations(t *testing.T) {
	cfg := config.Config{Rule: 90, Width: 29, Generations: 2, Edge: "compat"}
	var out bytes.Buffer
	if err := Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := strings.Join([]string{
		"Rule: 90, Initial State: 00000000000000100000000000000",
		render.Text("00000000000000100000000000000"),
		render.Text("00000000000001010000000000000"),
		render.Text("00000000000010001000000000000"),
	}, "\n") + "\n"
	if out.String() != want {
		t.Fatalf("output:\n%q\nwant:\n%q", out.String(), want)
	}
}

func TestRunCustomGlyphsAndPacing(t *testing.T) {
	cfg := config.Config{Rule: 204, State: "0110", Generations: 3, TPS: 1000, On: "#", Off: "."}
	var out bytes.Buffer
	if err := Run(context.Background(), cfg, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header plus 4 generations, got %d lines", len(lines))
	}
	for _, line := range lines[1:] {
		if line != ".##." {
			t.Fatalf("identity rule printed %q", line)
		}
	}
}

func TestRunZeroGenerations(t *testing.T) {
	var out bytes.Buffer
	if err := Run(context.Background(), config.Config{Rule: 1, State: "1"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := strings.Count(out.String(), "\n"); n != 2 {
		t.Fatalf("expected only header and initial generation, got %d lines", n)
	}
}

func TestRunPropagatesValidationErrors(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), config.Config{Rule: 256, State: "00200"}, &out)
	if !errors.Is(err, automaton.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("nothing should be written on invalid input, got %q", out.String())
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := Run(ctx, config.Config{Rule: 90, State: "00100", Generations: 5}, &out)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	w.n++
	if w.n > 2 {
		return 0, errors.New("disk full")
	}
	return len(p), nil
}

func TestRunReportsWriteErrors(t *testing.T) {
	err := Run(context.Background(), config.Config{Rule: 90, State: "00100", Generations: 3}, &failingWriter{})
	if err == nil || !strings.Contains(err.Error(), "write generation 1") {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestViewerFlagsFeedSimFactory(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("viewer", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-rule", "30", "-w", "12", "-h", "6", "-edge", "strict"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := elementary.FromMap(cfg.SimOptions())
	if c.Rule != 30 || c.Width != 12 || c.Height != 6 || c.Edge != automaton.EdgeStrict || c.Random {
		t.Fatalf("unexpected sim config %+v", c)
	}
}
