// Package totree converts Go values into ir trees.
//
// The core packages (ir, libdiff, render) only consume already-built
// trees; totree is the conversion boundary.  A type takes control of its
// own representation by implementing ToTree, whether the method is
// hand-written or generated; everything else goes through a reflection
// fallback that maps structs to records, slices to arrays, Go maps to map
// nodes (sorted by rendered key for determinism) and everything
// unrepresentable to Opaque nodes.
//
// Trees handed to the core must be finite; totree is where that contract
// is enforced.  Circular references through pointers are cut with an
// OpaqueText("cycle", <type>) sentinel.
package totree
