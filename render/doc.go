// Package render lays out ir trees and libdiff deltas as indented,
// width-aware text.
//
// One layout algorithm serves both: a structural node renders on a single
// line when its leaf weight fits Options.CompactThreshold, otherwise one
// child per indented line; value subtrees beyond Options.MaxDepth become
// an ellipsis while field names, labels and map keys stay visible.  Delta
// rendering adds -/+ markup for changed positions, colored via fatih/color
// when Options.UseANSI is set.
//
// # Usage
//
//	n := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2), ir.FromInt(3)})
//	s := render.MustString(n) // "[ 1, 2, 3 ]"
//
//	d := libdiff.Diff(a, b, nil)
//	err := render.RenderDelta(d, os.Stdout, render.DefaultOptions())
//
// The output is for human reading: it is not valid syntax of any source
// language and there is no parser for it.
//
// # Related Packages
//
//   - github.com/treescope/treescope/ir - the tree representation
//   - github.com/treescope/treescope/libdiff - structural diffs
package render
