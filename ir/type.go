package ir

import "fmt"

type Type int

const (
	LiteralType Type = iota
	TupleType
	ArrayType
	RecordType
	FieldType
	CtorType
	ArgType
	MapType
	EntryType
	OpaqueType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		LiteralType: "Literal",
		TupleType:   "Tuple",
		ArrayType:   "Array",
		RecordType:  "Record",
		FieldType:   "Field",
		CtorType:    "Ctor",
		ArgType:     "Arg",
		MapType:     "Map",
		EntryType:   "Entry",
		OpaqueType:  "Opaque",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Literal": LiteralType,
		"Tuple":   TupleType,
		"Array":   ArrayType,
		"Record":  RecordType,
		"Field":   FieldType,
		"Ctor":    CtorType,
		"Arg":     ArgType,
		"Map":     MapType,
		"Entry":   EntryType,
		"Opaque":  OpaqueType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		LiteralType,
		TupleType,
		ArrayType,
		RecordType,
		FieldType,
		CtorType,
		ArgType,
		MapType,
		EntryType,
		OpaqueType,
	}
}

// IsLeaf reports whether nodes of this type never have children.
// Opaque nodes may carry a child detail, so they are not leaves.
func (t Type) IsLeaf() bool {
	return t == LiteralType
}

// IsWrapper reports whether the type is a field, argument or map entry
// wrapper.  Wrapper nodes are part of the tree so generic traversal needs
// no per-variant special case, but they do not count toward value depth.
func (t Type) IsWrapper() bool {
	switch t {
	case FieldType, ArgType, EntryType:
		return true
	default:
		return false
	}
}

// Kind discriminates literal nodes.
type Kind int

const (
	IntKind Kind = iota
	DoubleKind
	BoolKind
	CharKind
	StringKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		IntKind:    "Int",
		DoubleKind: "Double",
		BoolKind:   "Bool",
		CharKind:   "Char",
		StringKind: "String",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func Kinds() []Kind {
	return []Kind{IntKind, DoubleKind, BoolKind, CharKind, StringKind}
}

// Detail discriminates what an opaque node carries.
type Detail int

const (
	NoDetail Detail = iota
	TextDetail
	ChildDetail
)

func (d Detail) String() string {
	switch d {
	case NoDetail:
		return "None"
	case TextDetail:
		return "Text"
	case ChildDetail:
		return "Child"
	default:
		return "<unknown detail>"
	}
}
