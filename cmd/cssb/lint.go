package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssb/archive"
	"cssb/css"
	"cssb/state"
)

// runLint parses every given stylesheet and reports all selector part order
// and cardinality violations at once. Zip archives are walked for ".css"
// entries.
func runLint(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no input files given")
	}

	p := css.NewParser(env.Log)

	lintOne := func(name string, data []byte) error {
		var err error
		if cmd.Bool("list") {
			sheet := p.Parse(data, name)
			for _, s := range sheet.Selectors() {
				fmt.Printf("%s: %s\n", name, s)
			}
			for _, w := range sheet.Warnings {
				err = multierr.Append(err, fmt.Errorf("%s: %s", name, w))
			}
			return err
		}
		return p.Lint(data, name)
	}

	var err error
	for _, fname := range cmd.Args().Slice() {
		if strings.EqualFold(filepath.Ext(fname), ".zip") {
			walkErr := archive.Walk(fname, func(name string, data []byte) error {
				err = multierr.Append(err, lintOne(fname+":"+name, data))
				return nil
			})
			if walkErr != nil {
				err = multierr.Append(err, fmt.Errorf("unable to process '%s': %w", fname, walkErr))
			}
			env.Rpt.Store("input/"+fname, fname)
			continue
		}

		data, er := os.ReadFile(fname)
		if er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to read '%s': %w", fname, er))
			continue
		}
		env.Rpt.Store("input/"+fname, fname)
		err = multierr.Append(err, lintOne(fname, data))
	}

	if err != nil {
		env.Log.Debug("Lint finished", zap.Int("violations", len(multierr.Errors(err))))
		return err
	}
	env.Log.Info("No selector violations found", zap.Int("files", cmd.Args().Len()))
	return nil
}
