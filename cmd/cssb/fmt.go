package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"cssb/css"
	"cssb/state"
)

// runFmt re-renders a stylesheet: canonical selector order, sorted
// properties, indentation from the configuration.
func runFmt(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	env.Overwrite = cmd.Bool("overwrite")

	if cmd.Args().Len() == 0 {
		return errors.New("no input file given")
	}
	if cmd.Args().Len() > 2 {
		env.Log.Warn("Malformed command line, too many arguments", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	src := cmd.Args().Get(0)
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read '%s': %w", src, err)
	}
	env.Rpt.Store("input/"+src, src)

	sheet := css.NewParser(env.Log).Parse(data, src)
	env.Rpt.StoreData("parsed/"+src+".txt", []byte(sheet.Dump()))
	for _, w := range sheet.Warnings {
		env.Log.Warn("Selector kept as-is", zap.String("reason", w))
	}

	opts := css.WriteOpts{
		Indent:     env.Cfg.Format.IndentString(),
		BlankLines: env.Cfg.Format.BlankLines,
	}

	out := os.Stdout
	if dst := cmd.Args().Get(1); dst != "" {
		if !env.Overwrite {
			if _, err := os.Stat(dst); err == nil {
				return fmt.Errorf("destination '%s' already exists, use --overwrite", dst)
			}
		}
		out, err = os.Create(dst)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dst, err)
		}
		defer out.Close()
		env.Log.Info("Writing reformatted stylesheet", zap.String("file", dst))
	}

	if _, err := sheet.Write(out, opts); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	return nil
}
