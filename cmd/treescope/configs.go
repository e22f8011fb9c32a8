package main

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/treescope/treescope/render"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='render with color'"`
	Depth   int  `cli:"name=depth desc='max render depth, -1 for no limit'"`
	Compact int  `cli:"name=compact desc='weight threshold for compact layout, -1 to disable'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

// renderOpts builds render options from the global flags.  Color is on
// when -color is given, off when writing to a non-terminal, and
// otherwise follows isatty.
func (cfg *MainConfig) renderOpts(w io.Writer) *render.Options {
	opts := render.DefaultOptions()
	opts.MaxDepth = cfg.Depth
	opts.CompactThreshold = cfg.Compact
	if cfg.Color {
		opts.UseANSI = true
		opts.Colors = render.NewColors()
		return opts
	}
	colorSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorSet = opt.Value != nil
		break
	}
	if colorSet {
		opts.UseANSI = false
		return opts
	}
	f, ok := w.(*os.File)
	if ok && isatty.IsTerminal(f.Fd()) {
		opts.UseANSI = true
		opts.Colors = render.NewColors()
		return opts
	}
	opts.UseANSI = false
	return opts
}

type ViewConfig struct {
	*MainConfig

	Filter string `cli:"name=filter desc='expression selecting which documents to show'"`

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool   `cli:"name=r desc='reverse the diff'"`
	Text    bool   `cli:"name=text desc='diff rendered text instead of trees'"`
	Patch   string `cli:"name=patch desc='merge patch file applied to b before diffing'"`
	Loop    string `cli:"name=loop desc='command to produce values to diff in a loop'"`
	LoopLim int    `cli:"name=loopLim desc='max number of times to loop'"`

	Tol       float64
	LoopEvery time.Duration

	Diff *cli.Command
}

func (cfg *DiffConfig) mkTol() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		tol, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return nil, err
		}
		cfg.Tol = tol
		return tol, nil
	}
}

func (cfg *DiffConfig) mkLoopEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.LoopEvery = d
		return d, nil
	}
}
