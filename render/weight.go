package render

import (
	"github.com/treescope/treescope/ir"
)

// Weight is the rendered leaf count of a subtree, the quantity compared
// against Options.CompactThreshold.  Wrapper nodes contribute their
// payload only; empty structural nodes count 1.
func Weight(n *ir.Node) int {
	if n.Type.IsLeaf() {
		return 1
	}
	switch n.Type {
	case ir.OpaqueType:
		if n.Detail == ir.ChildDetail {
			return 1 + Weight(n.Values[0])
		}
		return 1
	case ir.FieldType, ir.ArgType:
		return Weight(n.Values[0])
	case ir.EntryType:
		return Weight(n.Values[0]) + Weight(n.Values[1])
	default:
		if len(n.Values) == 0 {
			return 1
		}
		w := 0
		for _, v := range n.Values {
			w += Weight(v)
		}
		return w
	}
}
