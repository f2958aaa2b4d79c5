// Package order provides the lattice-order bookkeeping over an enumerated
// intent set: a deterministic topological sort (ascending cardinality with a
// lexicographic tie-break), Hasse-diagram cover relations resolved through
// per-attribute descendant masks, transitive closure, and the two scalar
// summary indices (linearity and distributivity) of the intent lattice.
//
// Cover relations are encoded as bit vectors over intent indices:
// UpperCovers(intents)[i] holds the indices of the immediate supersets of
// intents[i]. Since the input is sorted, covers always point to strictly
// larger indices, which keeps transitive closure a single backward sweep.
package order
