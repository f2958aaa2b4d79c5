// Package core defines the immutable formal context and its closure operator.
//
// A Context is the bit-vector encoding of a binary incidence relation between
// n objects and m attributes, held in both orientations at once:
//
//	object-major  — one width-m vector per object (its attributes)
//	attribute-major — one width-n vector per attribute (its extent)
//
// The two tables are mutual transposes; New verifies the invariant and the
// tables are never mutated afterwards, so a Context is safe to share across
// goroutines and across any number of mining runs.
//
// On top of the Context sit the three Galois primitives:
//
//	Extent(D)  — objects holding every attribute of D (AND of columns)
//	Intent(O)  — attributes held by every object of O (AND of rows)
//	Closure(D) — Intent(Extent(D)): extensive, monotone, idempotent
//
// plus the scalar measures Support (extent size), Coverage (size of the
// union of extents, the clustering measure) and DeltaStability (minimum
// extent loss under any single-attribute specialization).
//
// By the usual FCA convention, Extent(∅) is the full object set and
// Intent(∅) is the full attribute set.
package core
