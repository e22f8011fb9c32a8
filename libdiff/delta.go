package libdiff

import (
	"fmt"

	"github.com/treescope/treescope/ir"
)

// Op discriminates delta nodes.
type Op int

const (
	// Same marks a subtree that is structurally equal on both sides
	// (possibly up to the double tolerance).  No child deltas are kept.
	Same Op = iota
	// Changed marks an atomic replacement: the two sides have
	// incompatible shapes or differing leaf values.  One side may be
	// absent (nil).
	Changed
	// Recurse marks a structural node whose children were diffed
	// independently.
	Recurse
)

func (o Op) String() string {
	switch o {
	case Same:
		return "Same"
	case Changed:
		return "Changed"
	case Recurse:
		return "Recurse"
	default:
		return "<unknown op>"
	}
}

// Delta is the structural representation of a diff between two ir trees.
// It mirrors the ir.Node shapes: a Recurse delta carries the variant data
// of the structural node it stands for (Type, Name, Detail) and one child
// delta per child position, wrapper positions included.
//
// Deltas are produced once by Diff and are read-only afterward.
type Delta struct {
	Op Op

	// Same
	Node *ir.Node

	// Changed; either may be nil for an absent counterpart
	From *ir.Node
	To   *ir.Node

	// Recurse
	Type   ir.Type
	Name   string
	Detail ir.Detail
	Kids   []*Delta
}

func MakeSame(node *ir.Node) *Delta {
	return &Delta{Op: Same, Node: node}
}

func MakeChanged(from, to *ir.Node) *Delta {
	return &Delta{Op: Changed, From: from, To: to}
}

// recurse builds a structural delta in the shape of proto, collapsing to
// Same(collapse) when every child is Same.
func recurse(proto *ir.Node, collapse *ir.Node, kids []*Delta) *Delta {
	allSame := true
	for _, k := range kids {
		if k.Op != Same {
			allSame = false
			break
		}
	}
	if allSame {
		return MakeSame(collapse)
	}
	return &Delta{
		Op:     Recurse,
		Type:   proto.Type,
		Name:   proto.Name,
		Detail: proto.Detail,
		Kids:   kids,
	}
}

// Reverse returns the delta seen from the other side: every Changed swaps
// from and to, Same positions are unchanged.
func Reverse(d *Delta) *Delta {
	switch d.Op {
	case Same:
		return d
	case Changed:
		return MakeChanged(d.To, d.From)
	case Recurse:
		kids := make([]*Delta, len(d.Kids))
		for i, k := range d.Kids {
			kids[i] = Reverse(k)
		}
		res := *d
		res.Kids = kids
		return &res
	default:
		panic(fmt.Sprintf("reverse: %s", d.Op))
	}
}

// IsSame reports whether the delta records no differences at all.
func (d *Delta) IsSame() bool {
	return d.Op == Same
}
