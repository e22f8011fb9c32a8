// Package treescope renders structured values and structural diffs.
//
// It is the convenience surface over the core packages: totree converts
// Go values into trees, libdiff compares two trees, and render turns
// trees and deltas into text.  Programs needing finer control (custom
// tolerances, colors, depth budgets) use those packages directly; this
// package wires them together with defaults.
package treescope

import (
	"io"

	"github.com/treescope/treescope/debug"
	"github.com/treescope/treescope/ir"
	"github.com/treescope/treescope/libdiff"
	"github.com/treescope/treescope/render"
	"github.com/treescope/treescope/totree"
)

// From converts any Go value into a tree via totree.From.
func From(v any) *ir.Node {
	return totree.From(v)
}

// Diff computes the structural difference between two trees.  A nil
// opts uses libdiff.DefaultOptions.
func Diff(from, to *ir.Node, opts *libdiff.Options) *libdiff.Delta {
	return libdiff.Diff(from, to, opts)
}

// Render writes the textual form of node to w.  A nil opts uses
// render.DefaultOptions.
func Render(node *ir.Node, w io.Writer, opts *render.Options) error {
	return render.Render(node, w, opts)
}

// RenderDelta writes the textual form of a delta to w.
func RenderDelta(d *libdiff.Delta, w io.Writer, opts *render.Options) error {
	return render.RenderDelta(d, w, opts)
}

// RenderDiff diffs two trees and writes the result to w in one step.
func RenderDiff(from, to *ir.Node, w io.Writer, dopts *libdiff.Options, ropts *render.Options) error {
	d := libdiff.Diff(from, to, dopts)
	if debug.Diff() {
		debug.Logf("diff of %v and %v: same=%v\n", from, to, d.IsSame())
	}
	return render.RenderDelta(d, w, ropts)
}

// String renders a value directly, converting it first.
func String(v any) string {
	return render.MustString(totree.From(v))
}

// DiffString diffs two Go values and returns the rendered delta.
func DiffString(from, to any, dopts *libdiff.Options, ropts *render.Options) string {
	d := libdiff.Diff(totree.From(from), totree.From(to), dopts)
	return render.DeltaString(d, ropts)
}
