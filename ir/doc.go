// Package ir provides the intermediate representation (IR) for structured
// values: a uniform, inspectable tree that diffing and rendering operate on.
//
// # Overview
//
// Every value shown by treescope is first converted into an ir.Node tree.
// The IR is a closed set of variants implemented as a single recursive
// tagged-union struct, so the diff and layout engines dispatch exhaustively
// on Type and adding a variant is an all-sites-updated change.
//
// # Node Types
//
//   - LiteralType: int, double, bool, char and string leaves (Kind)
//   - TupleType: ordered items; the empty tuple is unit
//   - ArrayType: ordered items
//   - RecordType: ordered named fields (FieldType wrappers)
//   - CtorType: a named constructor with positional or labeled arguments
//     (ArgType wrappers)
//   - MapType: ordered key/value entries (EntryType wrappers)
//   - OpaqueType: escape hatch for values not shown structurally
//
// Field, argument and entry wrappers are themselves tree nodes, so generic
// traversal (Children, WithChildren, Visit, Depth) needs no per-variant
// special case.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	n := ir.FromFieldVals([]ir.FieldVal{
//	    {Name: "name", Val: ir.FromString("alice")},
//	    {Name: "age", Val: ir.FromInt(30)},
//	})
//	xs := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//	c := ir.Ctor("Some", []*ir.Node{ir.Positional(ir.FromBool(true))})
//
// Construction from already-valid arguments cannot fail; values that fit no
// variant are represented via Opaque.  Nodes are finite and acyclic by
// construction contract: cycle detection is the converter's job (see the
// totree package), not the IR's.
//
// # Related Packages
//
//   - github.com/treescope/treescope/libdiff - structural diffs of IR trees
//   - github.com/treescope/treescope/render - lay out IR trees as text
//   - github.com/treescope/treescope/totree - convert Go values to IR
package ir
