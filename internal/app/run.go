package app

import (
	"context"
	"fmt"
	"io"

	"eca/internal/config"
	"eca/internal/core"
	"eca/internal/render"
)

// Run prints the rule, the initial generation and cfg.Generations further
// generations to w. With cfg.TPS > 0 output is paced to that rate.
func Run(ctx context.Context, cfg config.Config, w io.Writer) error {
	ca, err := cfg.Automaton()
	if err != nil {
		return err
	}
	on, off := cfg.Glyphs()

	fmt.Fprintf(w, "Rule: %d, Initial State: %s\n", ca.Rule(), ca.State())
	fmt.Fprintln(w, render.Glyphs(ca.State(), on, off))
	if cfg.Generations == 0 {
		return nil
	}

	var pace *core.FixedStep
	if cfg.TPS > 0 {
		pace = core.NewFixedStep(cfg.TPS)
	}
	printed := 0
	for gen := range ca.Generations() {
		if pace != nil {
			if err := pace.Wait(ctx); err != nil {
				return err
			}
		} else if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, render.Glyphs(gen, on, off)); err != nil {
			return fmt.Errorf("write generation %d: %w", printed+1, err)
		}
		printed++
		if printed == cfg.Generations {
			break
		}
	}
	return nil
}
