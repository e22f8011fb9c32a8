package render

import (
	"io"
	"sync"

	"github.com/treescope/treescope/ir"
	"github.com/treescope/treescope/libdiff"
)

// RenderDelta lays out a delta tree with the same layout algorithm as
// Render: Same positions render as the plain subtree, Changed positions as
// the old form marked "-" and the new form marked "+", structural deltas
// as the bracket layout of the corresponding tree variant.  With
// Options.UseANSI the +/- markers carry terminal color escapes.
func RenderDelta(d *libdiff.Delta, w io.Writer, opts *Options) error {
	rs := newState(w, opts)
	return rs.delta(d)
}

// markers returns the marker coloring functions, identity unless UseANSI.
func (rs *renderState) markers() (del, ins func(string) string) {
	if !rs.opts.UseANSI {
		return colorDefault, colorDefault
	}
	c := rs.opts.Colors
	if c == nil {
		c = defaultColors()
	}
	return c.Delete, c.Insert
}

var defaultColors = sync.OnceValue(NewColors)

// DeltaWeight is the rendered leaf count of a delta subtree; Changed
// positions weigh both sides.
func DeltaWeight(d *libdiff.Delta) int {
	switch d.Op {
	case libdiff.Same:
		return Weight(d.Node)
	case libdiff.Changed:
		w := 0
		if d.From != nil {
			w += Weight(d.From)
		}
		if d.To != nil {
			w += Weight(d.To)
		}
		return w
	case libdiff.Recurse:
		switch d.Type {
		case ir.FieldType, ir.ArgType:
			return DeltaWeight(d.Kids[0])
		case ir.EntryType:
			return DeltaWeight(d.Kids[0]) + DeltaWeight(d.Kids[1])
		case ir.OpaqueType:
			return 1 + DeltaWeight(d.Kids[0])
		default:
			if len(d.Kids) == 0 {
				return 1
			}
			w := 0
			for _, k := range d.Kids {
				w += DeltaWeight(k)
			}
			return w
		}
	default:
		panic("render: delta op")
	}
}

func (rs *renderState) delta(d *libdiff.Delta) error {
	switch d.Op {
	case libdiff.Same:
		return rs.node(d.Node)
	case libdiff.Changed:
		return rs.changed(d)
	case libdiff.Recurse:
		return rs.deltaRecurse(d)
	default:
		panic("render: delta op")
	}
}

func (rs *renderState) changed(d *libdiff.Delta) error {
	if rs.compactFor(DeltaWeight(d)) {
		return rs.changedInline(d)
	}
	return rs.changedBlock(d)
}

func (rs *renderState) changedInline(d *libdiff.Delta) error {
	del, ins := rs.markers()
	oneline := rs.oneline
	rs.oneline = true
	defer func() { rs.oneline = oneline }()
	if d.From != nil {
		if err := rs.puts(del("-")); err != nil {
			return err
		}
		if err := rs.node(d.From); err != nil {
			return err
		}
		if d.To != nil {
			if err := rs.puts(" "); err != nil {
				return err
			}
		}
	}
	if d.To != nil {
		if err := rs.puts(ins("+")); err != nil {
			return err
		}
		return rs.node(d.To)
	}
	return nil
}

// changedBlock renders the old subtree with every line prefixed "-" and
// the new one prefixed "+".
func (rs *renderState) changedBlock(d *libdiff.Delta) error {
	del, ins := rs.markers()
	if d.From != nil {
		if err := rs.marked(del("-"), "-", d.From); err != nil {
			return err
		}
		if d.To != nil {
			if err := rs.nl(); err != nil {
				return err
			}
		}
	}
	if d.To != nil {
		return rs.marked(ins("+"), "+", d.To)
	}
	return nil
}

func (rs *renderState) marked(marker, rawMarker string, n *ir.Node) error {
	if err := rs.puts(marker); err != nil {
		return err
	}
	prefix := rs.prefix
	rs.prefix = prefix + rawMarker
	err := rs.node(n)
	rs.prefix = prefix
	return err
}

func (rs *renderState) deltaRecurse(d *libdiff.Delta) error {
	if rs.pruned(d.Type) {
		return rs.ellipsis()
	}
	compact := rs.compactFor(DeltaWeight(d))
	switch d.Type {
	case ir.TupleType:
		defer rs.down()()
		return rs.composite("(", ")", false, compact, len(d.Kids),
			func(i int) error { return rs.delta(d.Kids[i]) })
	case ir.ArrayType:
		defer rs.down()()
		return rs.composite("[", "]", true, compact, len(d.Kids),
			func(i int) error { return rs.delta(d.Kids[i]) })
	case ir.RecordType, ir.MapType:
		defer rs.down()()
		return rs.composite("{", "}", true, compact, len(d.Kids),
			func(i int) error { return rs.delta(d.Kids[i]) })
	case ir.FieldType:
		name := quoteField(d.Name)
		if c := rs.opts.Colors; c != nil {
			name = c.Color(ir.RecordType, FieldColor, name)
		}
		if err := rs.puts(name + ": "); err != nil {
			return err
		}
		return rs.delta(d.Kids[0])
	case ir.CtorType:
		name := d.Name
		if c := rs.opts.Colors; c != nil {
			name = c.Color(ir.CtorType, NameColor, name)
		}
		if err := rs.puts(name); err != nil {
			return err
		}
		defer rs.down()()
		return rs.composite("(", ")", false, compact, len(d.Kids),
			func(i int) error { return rs.delta(d.Kids[i]) })
	case ir.ArgType:
		if d.Name != "" {
			label := d.Name
			if c := rs.opts.Colors; c != nil {
				label = c.Color(ir.CtorType, FieldColor, label)
			}
			if err := rs.puts(label + "="); err != nil {
				return err
			}
		}
		return rs.delta(d.Kids[0])
	case ir.EntryType:
		if err := rs.delta(d.Kids[0]); err != nil {
			return err
		}
		if err := rs.puts(": "); err != nil {
			return err
		}
		return rs.delta(d.Kids[1])
	case ir.OpaqueType:
		tag := d.Name
		if c := rs.opts.Colors; c != nil {
			tag = c.Color(ir.OpaqueType, NameColor, tag)
		}
		if err := rs.puts("<" + tag + ": "); err != nil {
			return err
		}
		restore := rs.down()
		err := rs.delta(d.Kids[0])
		restore()
		if err != nil {
			return err
		}
		return rs.puts(">")
	default:
		panic("render: delta type")
	}
}
