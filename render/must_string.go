package render

import (
	"bytes"

	"github.com/treescope/treescope/ir"
	"github.com/treescope/treescope/libdiff"
)

// String renders a tree to a string with the given options.
func String(node *ir.Node, opts *Options) string {
	buf := bytes.NewBuffer(nil)
	if err := Render(node, buf, opts); err != nil {
		panic(err)
	}
	return buf.String()
}

// DeltaString renders a delta to a string with the given options.
func DeltaString(d *libdiff.Delta, opts *Options) string {
	buf := bytes.NewBuffer(nil)
	if err := RenderDelta(d, buf, opts); err != nil {
		panic(err)
	}
	return buf.String()
}

// MustString renders with default options.
func MustString(node *ir.Node) string {
	return String(node, nil)
}
