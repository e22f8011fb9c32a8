package libdiff

import (
	"github.com/treescope/treescope/ir"
)

// Options configures Diff.  The zero value is the default configuration.
type Options struct {
	// MaxRelativeError is the tolerance used when comparing two double
	// literals: x and y are considered the same when
	//
	//	|x-y| <= MaxRelativeError * max(|x|, |y|, 1)
	//
	// Non-finite values (NaN, ±Inf) are compared by text instead, since
	// the formula is undefined for NaN and unbounded for Inf.  Negative
	// values are treated as 0.  Default 0.
	MaxRelativeError float64
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() *Options {
	return &Options{}
}

// Diff compares from and to and produces a parallel delta tree.  Diff is
// total: every pair of trees produces a delta, there is no error path.
//
// Matching is structural.  Nodes of different variants, constructors with
// different names, arities or labels, maps with different entry counts and
// opaques with different tags or detail shapes become whole-node Changed
// replacements with no partial recursion.  Arrays and tuples are matched
// positionally (no sequence alignment, keeping the diff linear and
// deterministic); trailing extras on the longer side are one-sided Changed
// entries.  Record fields are matched by name: shared and removed fields in
// from's order, fields only in to appended after.
//
// Subtrees that come out equal collapse to a single Same node, so
// rendering can skip them cheaply.
func Diff(from, to *ir.Node, opts *Options) *Delta {
	if opts == nil {
		opts = DefaultOptions()
	}
	return diff(from, to, 0, opts)
}

// maxDiffDepth guards native recursion depth.  Beyond it, subtrees are
// compared whole with the stack-bounded ir.Equal and reported as a single
// Same or atomic Changed.
const maxDiffDepth = 10000

func diff(from, to *ir.Node, depth int, opts *Options) *Delta {
	if depth >= maxDiffDepth {
		if ir.Equal(from, to) {
			return MakeSame(from)
		}
		return MakeChanged(from, to)
	}
	if from.Type != to.Type {
		return MakeChanged(from, to)
	}
	switch from.Type {
	case ir.LiteralType:
		return diffLiteral(from, to, opts)
	case ir.TupleType, ir.ArrayType:
		return diffItems(from, to, depth, opts)
	case ir.RecordType:
		return diffRecord(from, to, depth, opts)
	case ir.CtorType:
		return diffCtor(from, to, depth, opts)
	case ir.MapType:
		return diffMap(from, to, depth, opts)
	case ir.OpaqueType:
		return diffOpaque(from, to, depth, opts)
	case ir.FieldType, ir.ArgType, ir.EntryType:
		// wrappers are diffed by their enclosing structural node
		panic("diff: bare wrapper node")
	default:
		panic("diff: type")
	}
}

func diffLiteral(from, to *ir.Node, opts *Options) *Delta {
	if from.Kind != to.Kind {
		return MakeChanged(from, to)
	}
	if from.Kind == ir.DoubleKind {
		if doublesWithin(from.Text, to.Text, opts.MaxRelativeError) {
			return MakeSame(from)
		}
		return MakeChanged(from, to)
	}
	if from.Text == to.Text {
		return MakeSame(from)
	}
	return MakeChanged(from, to)
}

// diffItems matches tuple or array elements positionally.  The overlapping
// prefix is diffed index-wise; extra trailing elements on the longer side
// are each a one-sided Changed.
func diffItems(from, to *ir.Node, depth int, opts *Options) *Delta {
	nf, nt := len(from.Values), len(to.Values)
	n := max(nf, nt)
	kids := make([]*Delta, 0, n)
	for i := range n {
		switch {
		case i >= nt:
			kids = append(kids, MakeChanged(from.Values[i], nil))
		case i >= nf:
			kids = append(kids, MakeChanged(nil, to.Values[i]))
		default:
			kids = append(kids, diff(from.Values[i], to.Values[i], depth+1, opts))
		}
	}
	return recurse(from, from, kids)
}

func diffRecord(from, to *ir.Node, depth int, opts *Options) *Delta {
	toFields := make(map[string]*ir.Node, len(to.Values))
	for _, f := range to.Values {
		toFields[f.Name] = f
	}
	fromNames := make(map[string]bool, len(from.Values))
	kids := make([]*Delta, 0, len(from.Values))
	for _, f := range from.Values {
		fromNames[f.Name] = true
		tf, ok := toFields[f.Name]
		if !ok {
			kids = append(kids, MakeChanged(f, nil))
			continue
		}
		val := diff(f.Values[0], tf.Values[0], depth+1, opts)
		kids = append(kids, recurse(f, f, []*Delta{val}))
	}
	for _, f := range to.Values {
		if !fromNames[f.Name] {
			kids = append(kids, MakeChanged(nil, f))
		}
	}
	return recurse(from, from, kids)
}

func diffCtor(from, to *ir.Node, depth int, opts *Options) *Delta {
	if from.Name != to.Name || len(from.Values) != len(to.Values) {
		return MakeChanged(from, to)
	}
	for i := range from.Values {
		if from.Values[i].Name != to.Values[i].Name {
			// positional/labeled shape mismatch
			return MakeChanged(from, to)
		}
	}
	kids := make([]*Delta, len(from.Values))
	for i, a := range from.Values {
		val := diff(a.Values[0], to.Values[i].Values[0], depth+1, opts)
		kids[i] = recurse(a, a, []*Delta{val})
	}
	return recurse(from, from, kids)
}

func diffMap(from, to *ir.Node, depth int, opts *Options) *Delta {
	if len(from.Values) != len(to.Values) {
		return MakeChanged(from, to)
	}
	kids := make([]*Delta, len(from.Values))
	for i, e := range from.Values {
		te := to.Values[i]
		key := diff(e.Values[0], te.Values[0], depth+1, opts)
		val := diff(e.Values[1], te.Values[1], depth+1, opts)
		kids[i] = recurse(e, e, []*Delta{key, val})
	}
	return recurse(from, from, kids)
}

func diffOpaque(from, to *ir.Node, depth int, opts *Options) *Delta {
	if from.Name != to.Name || from.Detail != to.Detail {
		return MakeChanged(from, to)
	}
	switch from.Detail {
	case ir.NoDetail:
		return MakeSame(from)
	case ir.TextDetail:
		if from.Text == to.Text {
			return MakeSame(from)
		}
		return MakeChanged(from, to)
	case ir.ChildDetail:
		kid := diff(from.Values[0], to.Values[0], depth+1, opts)
		return recurse(from, from, []*Delta{kid})
	default:
		panic("diff: opaque detail")
	}
}
