package main

import (
	"context"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssb/css"
	"cssb/selector"
	"cssb/state"
)

type rendered string

func (r rendered) String() string { return string(r) }

// runCombine joins two selector strings with a combinator. Both sides are
// parsed and rendered in canonical part order first; the combinator itself is
// passed through untouched.
func runCombine(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() != 3 {
		return fmt.Errorf("expected LEFT COMBINATOR RIGHT, got %d argument(s)", cmd.Args().Len())
	}

	canonical := func(s string) (string, error) {
		sel, err := css.ParseSelector(s)
		if err != nil {
			return "", err
		}
		return sel.Canonical()
	}

	left, err := canonical(cmd.Args().Get(0))
	if err != nil {
		return fmt.Errorf("unable to parse left selector: %w", err)
	}
	right, err := canonical(cmd.Args().Get(2))
	if err != nil {
		return fmt.Errorf("unable to parse right selector: %w", err)
	}

	comb := cmd.Args().Get(1)
	out := selector.Combine(rendered(left), comb, rendered(right)).String()

	env.Log.Debug("Combined selectors", zap.String("left", left), zap.String("combinator", comb), zap.String("right", right))
	fmt.Println(out)
	return nil
}
