package render

// NoMaxDepth disables depth pruning.
const NoMaxDepth = -1

// Options configures rendering.  Use DefaultOptions and adjust fields;
// a zero field falls back to its documented default, except UseANSI which
// is plain false (DefaultOptions sets it to true).
type Options struct {
	// MaxDepth is the value-depth budget: value subtrees deeper than
	// this render as an ellipsis.  Field, argument and entry wrappers do
	// not consume budget, so a record's field names stay visible even
	// when its values are pruned.  Default 4, NoMaxDepth disables.
	MaxDepth int

	// CompactThreshold selects the single-line layout for structural
	// nodes whose rendered leaf count is at or below it.  Default 8.
	// Negative forces multi-line everywhere.
	CompactThreshold int

	// UseANSI colors the +/- markup of rendered deltas.  It has no
	// effect on plain tree rendering.  Default true (via
	// DefaultOptions).
	UseANSI bool

	// Indent is the number of spaces per nesting level in multi-line
	// layout.  Default 2.
	Indent int

	// Colors optionally colorizes plain tree output (field names,
	// literals, tags).  Nil renders without markup.  Delta markers use
	// these colors too when UseANSI is set, falling back to NewColors.
	Colors *Colors
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() *Options {
	return &Options{
		MaxDepth:         4,
		CompactThreshold: 8,
		UseANSI:          true,
		Indent:           2,
	}
}

func (o *Options) clean() *Options {
	if o == nil {
		return DefaultOptions()
	}
	res := *o
	if res.MaxDepth == 0 {
		res.MaxDepth = 4
	}
	if res.CompactThreshold == 0 {
		res.CompactThreshold = 8
	}
	if res.Indent <= 0 {
		res.Indent = 2
	}
	return &res
}
