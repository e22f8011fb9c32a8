package ir

import (
	"strconv"
	"strings"
)

// Node is a single value in a treescope tree.  The IR works as a recursive
// tagged union: which fields are meaningful depends on Type.
//
//   - LiteralType: Kind and Text (Text is the exact rendered form chosen by
//     the producer; strings and chars store the raw value and are quoted at
//     render time)
//   - TupleType, ArrayType: Values
//   - RecordType: Values holds FieldType nodes
//   - FieldType: Name and Values[0]
//   - CtorType: Name, Values holds ArgType nodes
//   - ArgType: Values[0]; Name is the label, empty for positional arguments
//   - MapType: Values holds EntryType nodes
//   - EntryType: Values[0] is the key, Values[1] the value
//   - OpaqueType: Name is the tag; Detail selects Text, Values[0], or nothing
//
// Nodes are built bottom-up and never mutated after construction.
type Node struct {
	Type   Type
	Kind   Kind
	Detail Detail

	Name   string
	Text   string
	Values []*Node
}

func Literal(kind Kind, text string) *Node {
	return &Node{Type: LiteralType, Kind: kind, Text: text}
}

func FromInt(v int64) *Node {
	return Literal(IntKind, strconv.FormatInt(v, 10))
}

// FromDouble formats v with the shortest round-tripping representation,
// keeping a decimal point so 1.0 stays distinguishable from the int 1.
// Producers that want their own formatting use Literal(DoubleKind, text).
func FromDouble(v float64) *Node {
	text := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(text, ".eENI") {
		text += ".0"
	}
	return Literal(DoubleKind, text)
}

func FromBool(v bool) *Node {
	return Literal(BoolKind, strconv.FormatBool(v))
}

func FromChar(v rune) *Node {
	return Literal(CharKind, string(v))
}

func FromString(v string) *Node {
	return Literal(StringKind, v)
}

// Unit is the empty tuple.
func Unit() *Node {
	return &Node{Type: TupleType}
}

func FromTuple(items []*Node) *Node {
	return &Node{Type: TupleType, Values: items}
}

func FromSlice(items []*Node) *Node {
	return &Node{Type: ArrayType, Values: items}
}

// Field wraps a named record value.
func Field(name string, val *Node) *Node {
	return &Node{Type: FieldType, Name: name, Values: []*Node{val}}
}

// Record builds a record from already-wrapped FieldType nodes.
func Record(fields []*Node) *Node {
	return &Node{Type: RecordType, Values: fields}
}

// FieldVal is a convenience pair for FromFieldVals.
type FieldVal struct {
	Name string
	Val  *Node
}

// FromFieldVals wraps plain name/value pairs into Field nodes, preserving
// the given order.
func FromFieldVals(fvs []FieldVal) *Node {
	fields := make([]*Node, len(fvs))
	for i := range fvs {
		fields[i] = Field(fvs[i].Name, fvs[i].Val)
	}
	return Record(fields)
}

// Positional wraps a constructor argument without a label.
func Positional(val *Node) *Node {
	return &Node{Type: ArgType, Values: []*Node{val}}
}

// Labeled wraps a constructor argument with a label.
func Labeled(label string, val *Node) *Node {
	return &Node{Type: ArgType, Name: label, Values: []*Node{val}}
}

// Ctor builds a constructor application from already-wrapped ArgType
// nodes.  Positional and labeled arguments may be freely interleaved;
// order is preserved.
func Ctor(name string, args []*Node) *Node {
	return &Node{Type: CtorType, Name: name, Values: args}
}

// CtorOf wraps vals as positional arguments of name.
func CtorOf(name string, vals ...*Node) *Node {
	args := make([]*Node, len(vals))
	for i, v := range vals {
		args[i] = Positional(v)
	}
	return Ctor(name, args)
}

// Entry wraps a map key/value pair.
func Entry(key, val *Node) *Node {
	return &Node{Type: EntryType, Values: []*Node{key, val}}
}

// KeyVal is a convenience pair for FromEntries.
type KeyVal struct {
	Key *Node
	Val *Node
}

// FromEntries wraps plain key/value pairs into Entry nodes, preserving the
// given order.
func FromEntries(kvs []KeyVal) *Node {
	entries := make([]*Node, len(kvs))
	for i := range kvs {
		entries[i] = Entry(kvs[i].Key, kvs[i].Val)
	}
	return &Node{Type: MapType, Values: entries}
}

// Opaque is the escape hatch for values that should not be shown
// structurally.
func Opaque(tag string) *Node {
	return &Node{Type: OpaqueType, Name: tag}
}

func OpaqueText(tag, text string) *Node {
	return &Node{Type: OpaqueType, Name: tag, Detail: TextDetail, Text: text}
}

func OpaqueChild(tag string, child *Node) *Node {
	return &Node{Type: OpaqueType, Name: tag, Detail: ChildDetail, Values: []*Node{child}}
}

// Children returns the node's direct children.  The returned slice is the
// node's own storage and must not be modified.
func (n *Node) Children() []*Node {
	return n.Values
}

// WithChildren returns a copy of n holding kids in place of its children.
// Together with Children it lets generic tree algorithms rebuild nodes
// without variant-specific code.
func (n *Node) WithChildren(kids []*Node) *Node {
	res := *n
	res.Values = kids
	return &res
}

func (n *Node) Clone() *Node {
	kids := make([]*Node, len(n.Values))
	for i, v := range n.Values {
		kids[i] = v.Clone()
	}
	return n.WithChildren(kids)
}

// Visit walks the tree in depth-first order, calling f before and after
// each node's children.  Returning false from the pre-order call skips the
// node's children.
func (n *Node) Visit(f func(n *Node, isPost bool) bool) {
	dive := f(n, false)
	if dive {
		for _, v := range n.Values {
			v.Visit(f)
		}
	}
	f(n, true)
}

// Depth returns the value depth of the tree.  Wrapper nodes do not count:
// a record of literals has depth 2 regardless of the Field nodes between.
func Depth(n *Node) int {
	d := 0
	for _, v := range n.Values {
		if vd := Depth(v); vd > d {
			d = vd
		}
	}
	if n.Type.IsWrapper() {
		return d
	}
	return d + 1
}

// Get returns the value of the named record field, or nil.
func Get(n *Node, field string) *Node {
	if n.Type != RecordType {
		return nil
	}
	for _, f := range n.Values {
		if f.Name == field {
			return f.Values[0]
		}
	}
	return nil
}
