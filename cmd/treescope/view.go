package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/treescope/treescope/debug"
	"github.com/treescope/treescope/render"
	"github.com/treescope/treescope/totree"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	var prog *vm.Program
	if cfg.Filter != "" {
		prog, err = expr.Compile(cfg.Filter)
		if err != nil {
			return fmt.Errorf("%w: bad filter %q: %w", cli.ErrUsage, cfg.Filter, err)
		}
	}
	if len(args) == 0 {
		return viewReader(cfg, cc.Out, os.Stdin, prog)
	}
	for _, file := range args {
		if err := viewFile(cfg, cc.Out, file, prog); err != nil {
			return err
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string, prog *vm.Program) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := viewReader(cfg, w, f, prog); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

// viewReader renders each JSON value in the stream, one per line or
// block.  With a filter, only values for which the filter expression
// is true are shown.
func viewReader(cfg *ViewConfig, w io.Writer, r io.Reader, prog *vm.Program) error {
	dec := json.NewDecoder(r)
	opts := cfg.renderOpts(w)
	if debug.Render() {
		debug.Logf("view options: depth=%d compact=%d ansi=%v\n",
			opts.MaxDepth, opts.CompactThreshold, opts.UseANSI)
	}
	for i := 0; ; i++ {
		var v any
		if err := dec.Decode(&v); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if prog != nil {
			out, err := expr.Run(prog, v)
			if err != nil {
				return fmt.Errorf("error filtering document %d: %w", i, err)
			}
			if keep, ok := out.(bool); !ok || !keep {
				continue
			}
		}
		if err := render.Render(totree.From(v), w, opts); err != nil {
			return fmt.Errorf("error rendering document %d: %w", i, err)
		}
		if _, err := w.Write([]byte("\n")); err != nil {
			return err
		}
	}
}
