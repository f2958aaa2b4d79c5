// Package keys analyzes the generators of a closure system: for every intent
// it finds all keys (inclusion-minimal descriptions closing to that intent),
// the passkeys (keys of minimum cardinality), and iterates full equivalence
// classes (every description sharing one closure).
//
// List and ListPasskeys work on the already-enumerated intents, never on the
// raw context: a levelwise breadth-first pass over candidate descriptions of
// increasing cardinality, pruned by the fact that every subset of a key is
// itself a key. Each candidate's closure is resolved by intersecting
// per-attribute descendant masks over the intent list, so no closure is
// recomputed from the incidence data.
//
// Both functions require the intents sorted in ascending cardinality
// (order.TopologicalSort produces exactly that).
//
// EquivalenceClass iterates {D : Closure(D) = I} for one intent I, walking
// down from I by removing attribute subsets in increasing size. With the
// levelwise option (default) a branch is pruned as soon as its extent grows
// past I's extent — removing even more attributes can only grow it further.
// The pruning pays off mostly for classes near the top intent; for classes
// near the bottom it degenerates to testing every subset, which is the
// documented limitation of the approach.
package keys
