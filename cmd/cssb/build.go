package main

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssb/css"
	"cssb/selector"
	"cssb/state"
)

// runBuild composes one selector from the typed part flags and prints it.
// Part order is fixed by CSS, so flags may be given in any order on the
// command line - the parts are always appended element, id, class, attribute,
// pseudo-class, pseudo-element.
func runBuild(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	env.Slugify = cmd.Bool("slugify")

	name := func(v string, derive func(string) string) string {
		if env.Slugify {
			return derive(v)
		}
		return v
	}

	b := selector.New()
	if v := cmd.String("element"); v != "" {
		b.Element(v)
	}
	if v := cmd.String("id"); v != "" {
		b.ID(name(v, css.IDName))
	}
	for _, v := range cmd.StringSlice("class") {
		b.Class(name(v, css.ClassName))
	}
	for _, v := range cmd.StringSlice("attr") {
		b.Attr(v)
	}
	for _, v := range cmd.StringSlice("pseudo-class") {
		b.PseudoClass(v)
	}
	if v := cmd.String("pseudo-element"); v != "" {
		b.PseudoElement(v)
	}

	out, err := b.Result()
	if err != nil {
		return fmt.Errorf("unable to build selector: %w", err)
	}
	if out == "" {
		return errors.New("no selector parts given")
	}

	env.Log.Debug("Built selector", zap.String("selector", out))
	fmt.Println(out)
	return nil
}
