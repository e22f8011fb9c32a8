package render

import (
	"io"
	"strconv"
	"strings"

	"github.com/treescope/treescope/ir"
)

// Ellipsis is the placeholder for value subtrees pruned by MaxDepth.
const Ellipsis = "..."

type renderState struct {
	w    io.Writer
	opts *Options

	depth   int    // multi-line nesting level
	budget  int    // remaining value levels, <0 unlimited
	prefix  string // per-line prefix inside changed blocks
	oneline bool   // inside a compact parent
}

func newState(w io.Writer, opts *Options) *renderState {
	opts = opts.clean()
	return &renderState{
		w:      w,
		opts:   opts,
		budget: opts.MaxDepth,
	}
}

// Render lays out a tree as text.  Rendering never fails on well-formed
// trees; the only error source is the writer.
func Render(node *ir.Node, w io.Writer, opts *Options) error {
	return newState(w, opts).node(node)
}

func (rs *renderState) puts(s string) error {
	_, err := rs.w.Write([]byte(s))
	return err
}

func (rs *renderState) nl() error {
	indent := strings.Repeat(" ", rs.opts.Indent*rs.depth)
	return rs.puts("\n" + rs.prefix + indent)
}

// down consumes one level of depth budget for the children of a value
// node; the returned func restores it.
func (rs *renderState) down() func() {
	if rs.budget > 0 {
		rs.budget--
		return func() { rs.budget++ }
	}
	return func() {}
}

func (rs *renderState) pruned(t ir.Type) bool {
	return rs.budget == 0 && !t.IsWrapper()
}

func (rs *renderState) ellipsis() error {
	return rs.puts(Ellipsis)
}

func (rs *renderState) compactFor(weight int) bool {
	if rs.oneline {
		return true
	}
	t := rs.opts.CompactThreshold
	return t >= 0 && weight <= t
}

// composite lays out n children between open and close, either on one
// line or one child per indented line.  Both forms emit the same token
// sequence; only separators and indentation differ.
func (rs *renderState) composite(open, close string, pad, compact bool, n int, item func(i int) error) error {
	if n == 0 {
		return rs.puts(open + close)
	}
	if compact {
		oneline := rs.oneline
		rs.oneline = true
		defer func() { rs.oneline = oneline }()
		sep := open
		if pad {
			sep += " "
		}
		if err := rs.puts(sep); err != nil {
			return err
		}
		for i := range n {
			if i > 0 {
				if err := rs.puts(", "); err != nil {
					return err
				}
			}
			if err := item(i); err != nil {
				return err
			}
		}
		if pad {
			close = " " + close
		}
		return rs.puts(close)
	}
	if err := rs.puts(open); err != nil {
		return err
	}
	rs.depth++
	for i := range n {
		if err := rs.nl(); err != nil {
			return err
		}
		if err := item(i); err != nil {
			return err
		}
		if i < n-1 {
			if err := rs.puts(","); err != nil {
				return err
			}
		}
	}
	rs.depth--
	if err := rs.nl(); err != nil {
		return err
	}
	return rs.puts(close)
}

func (rs *renderState) node(n *ir.Node) error {
	if rs.pruned(n.Type) {
		return rs.ellipsis()
	}
	switch n.Type {
	case ir.LiteralType:
		return rs.literal(n)
	case ir.TupleType:
		return rs.itemsNode(n, "(", ")", false)
	case ir.ArrayType:
		return rs.itemsNode(n, "[", "]", true)
	case ir.RecordType:
		return rs.recordNode(n)
	case ir.FieldType:
		return rs.fieldNode(n)
	case ir.CtorType:
		return rs.ctorNode(n)
	case ir.ArgType:
		return rs.argNode(n)
	case ir.MapType:
		return rs.mapNode(n)
	case ir.EntryType:
		return rs.entryNode(n)
	case ir.OpaqueType:
		return rs.opaqueNode(n)
	default:
		panic("render: type")
	}
}

func (rs *renderState) literal(n *ir.Node) error {
	var v string
	switch n.Kind {
	case ir.StringKind:
		v = strconv.Quote(n.Text)
	case ir.CharKind:
		r, _ := firstRune(n.Text)
		v = strconv.QuoteRune(r)
	default:
		v = n.Text
	}
	if c := rs.opts.Colors; c != nil {
		v = c.LiteralColor(n.Kind, v)
	}
	return rs.puts(v)
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func (rs *renderState) itemsNode(n *ir.Node, open, close string, pad bool) error {
	defer rs.down()()
	return rs.composite(open, close, pad, rs.compactFor(Weight(n)), len(n.Values),
		func(i int) error { return rs.node(n.Values[i]) })
}

func (rs *renderState) recordNode(n *ir.Node) error {
	defer rs.down()()
	return rs.composite("{", "}", true, rs.compactFor(Weight(n)), len(n.Values),
		func(i int) error { return rs.node(n.Values[i]) })
}

func (rs *renderState) fieldNode(n *ir.Node) error {
	name := quoteField(n.Name)
	if c := rs.opts.Colors; c != nil {
		name = c.Color(ir.RecordType, FieldColor, name)
	}
	if err := rs.puts(name + ": "); err != nil {
		return err
	}
	return rs.node(n.Values[0])
}

func (rs *renderState) ctorNode(n *ir.Node) error {
	name := n.Name
	if c := rs.opts.Colors; c != nil {
		name = c.Color(ir.CtorType, NameColor, name)
	}
	if err := rs.puts(name); err != nil {
		return err
	}
	defer rs.down()()
	// ctor(): even an argument-less constructor keeps its parens so the
	// token stream stays unambiguous
	return rs.composite("(", ")", false, rs.compactFor(Weight(n)), len(n.Values),
		func(i int) error { return rs.node(n.Values[i]) })
}

func (rs *renderState) argNode(n *ir.Node) error {
	if n.Name != "" {
		label := n.Name
		if c := rs.opts.Colors; c != nil {
			label = c.Color(ir.CtorType, FieldColor, label)
		}
		if err := rs.puts(label + "="); err != nil {
			return err
		}
	}
	return rs.node(n.Values[0])
}

func (rs *renderState) mapNode(n *ir.Node) error {
	defer rs.down()()
	return rs.composite("{", "}", true, rs.compactFor(Weight(n)), len(n.Values),
		func(i int) error { return rs.node(n.Values[i]) })
}

func (rs *renderState) entryNode(n *ir.Node) error {
	if err := rs.node(n.Values[0]); err != nil {
		return err
	}
	if err := rs.puts(": "); err != nil {
		return err
	}
	return rs.node(n.Values[1])
}

func (rs *renderState) opaqueNode(n *ir.Node) error {
	tag := n.Name
	if c := rs.opts.Colors; c != nil {
		tag = c.Color(ir.OpaqueType, NameColor, tag)
	}
	switch n.Detail {
	case ir.NoDetail:
		return rs.puts("<" + tag + ">")
	case ir.TextDetail:
		return rs.puts("<" + tag + ": " + n.Text + ">")
	case ir.ChildDetail:
		if err := rs.puts("<" + tag + ": "); err != nil {
			return err
		}
		restore := rs.down()
		err := rs.node(n.Values[0])
		restore()
		if err != nil {
			return err
		}
		return rs.puts(">")
	default:
		panic("render: opaque detail")
	}
}
