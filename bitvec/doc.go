// Package bitvec provides fixed-width bit vectors packed into uint64 words.
//
// A Vector represents a subset of a dense integer universe [0, width).
// Every set operation (And, Or, AndNot, Subset, Count, …) runs word-parallel,
// which is what makes power-set search over attribute universes tractable.
//
// Vectors are plain values around a shared word slice: copying a Vector copies
// the view, not the bits. Use Clone before mutating a vector that someone else
// may still read. All mining algorithms in this module treat vectors they did
// not allocate as read-only.
//
// Width discipline:
//   - The checked surface (Set, Clear, FromIndices) reports ErrOutOfRange.
//   - Binary set operations require operands of equal width; violating that is
//     a programmer error and panics. Callers entering from external input must
//     validate widths first (core.Context does exactly that).
package bitvec
