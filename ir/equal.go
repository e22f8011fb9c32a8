package ir

// Equal reports structural equality: same variant, same kind/name/detail
// and recursively equal children in the same order.  Literal text is
// compared exactly, so doubles with different producer formatting are not
// equal here (tolerance lives in the diff layer).
//
// The traversal uses an explicit work stack so pathologically deep trees
// cannot exhaust native stack space.
func Equal(a, b *Node) bool {
	type pair struct{ a, b *Node }
	stack := []pair{{a, b}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case p.a == p.b:
			continue
		case p.a == nil || p.b == nil:
			return false
		}
		if !shallowEqual(p.a, p.b) {
			return false
		}
		for i := range p.a.Values {
			stack = append(stack, pair{p.a.Values[i], p.b.Values[i]})
		}
	}
	return true
}

// shallowEqual compares everything about a node except its subtrees.
func shallowEqual(a, b *Node) bool {
	if a.Type != b.Type || a.Name != b.Name {
		return false
	}
	if a.Type == LiteralType && a.Kind != b.Kind {
		return false
	}
	if a.Type == OpaqueType && a.Detail != b.Detail {
		return false
	}
	if a.Text != b.Text {
		return false
	}
	return len(a.Values) == len(b.Values)
}
