// Package libdiff computes structural differences between ir trees.
//
// Diff produces a Delta tree that mirrors the input shapes: positions
// where both sides agree collapse to Same, incompatible shapes or
// differing leaves become atomic Changed replacements, and compatible
// structural nodes recurse child-wise.  Double literals may be compared
// with a configurable relative tolerance.
//
// A delta may be flipped with Reverse and rendered with the render
// package.
package libdiff
