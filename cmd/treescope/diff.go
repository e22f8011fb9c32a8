package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/treescope/treescope/ir"
	"github.com/treescope/treescope/libdiff"
	"github.com/treescope/treescope/render"
	"github.com/treescope/treescope/totree"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Loop != "" {
		return loopDiff(cfg, cc, args)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff takes exactly two files", cli.ErrUsage)
	}
	a, err := loadTree(args[0], "")
	if err != nil {
		return err
	}
	b, err := loadTree(args[1], cfg.Patch)
	if err != nil {
		return err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	ropts := cfg.renderOpts(cc.Out)
	if cfg.Text {
		return textDiff(cc.Out, a, b, ropts)
	}
	d := libdiff.Diff(a, b, &libdiff.Options{MaxRelativeError: cfg.Tol})
	if err := render.RenderDelta(d, cc.Out, ropts); err != nil {
		return err
	}
	_, err = cc.Out.Write([]byte("\n"))
	return err
}

// loadTree reads a JSON document from file ("-" for stdin) and converts
// it to a tree.  A non-empty patch names a JSON merge patch file applied
// to the raw document first.
func loadTree(file, patch string) (*ir.Node, error) {
	var (
		raw []byte
		err error
	)
	if file == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	if patch != "" {
		p, err := os.ReadFile(patch)
		if err != nil {
			return nil, fmt.Errorf("could not read patch %q: %w", patch, err)
		}
		raw, err = jsonpatch.MergePatch(raw, p)
		if err != nil {
			return nil, fmt.Errorf("could not apply patch %q: %w", patch, err)
		}
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", file, err)
	}
	return totree.From(v), nil
}

// textDiff compares the rendered text of the two trees line by line
// rather than structurally.
func textDiff(w io.Writer, a, b *ir.Node, ropts *render.Options) error {
	popts := *ropts
	popts.UseANSI = false
	aText := render.String(a, &popts)
	bText := render.String(b, &popts)
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(aText, bText, true)
	if ropts.UseANSI {
		_, err := io.WriteString(w, dmp.DiffPrettyText(diffs))
		if err != nil {
			return err
		}
		_, err = w.Write([]byte("\n"))
		return err
	}
	_, err := io.WriteString(w, dmp.PatchToText(dmp.PatchMake(aText, diffs)))
	return err
}

// loopDiff runs a command repeatedly and diffs each output against the
// previous one.
func loopDiff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: -loop takes no file arguments", cli.ErrUsage)
	}
	if err := agent.Listen(agent.Options{}); err != nil {
		fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
	}
	ropts := cfg.renderOpts(cc.Out)
	dopts := &libdiff.Options{MaxRelativeError: cfg.Tol}
	var prev *ir.Node
	ticker := time.NewTicker(cfg.LoopEvery)
	defer ticker.Stop()
	for i := 0; cfg.LoopLim < 0 || i < cfg.LoopLim; i++ {
		if i > 0 {
			<-ticker.C
		}
		out, err := exec.Command("sh", "-c", cfg.Loop).Output()
		if err != nil {
			return fmt.Errorf("loop command failed: %w", err)
		}
		var v any
		if err := json.Unmarshal(out, &v); err != nil {
			return fmt.Errorf("error decoding loop output: %w", err)
		}
		cur := totree.From(v)
		if prev != nil {
			d := libdiff.Diff(prev, cur, dopts)
			if !d.IsSame() {
				if err := render.RenderDelta(d, cc.Out, ropts); err != nil {
					return err
				}
				if _, err := cc.Out.Write([]byte("\n")); err != nil {
					return err
				}
			}
		}
		prev = cur
	}
	return nil
}
