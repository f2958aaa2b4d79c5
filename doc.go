// Package galois mines characteristic attribute sets from binary
// (object × attribute) datasets under Formal Concept Analysis.
//
// 🚀 What is galois?
//
//	A compact, pure-Go library for exploring the Galois closure system
//	induced by a binary incidence relation:
//		• Core primitives: immutable bit-vector contexts, extent/intent/closure
//		• Intent enumeration: canonicity-based Close-by-One, every intent exactly once
//		• Generators: keys, passkeys and full equivalence classes per intent
//		• Implications: proper premises, pseudo-intents, canonical &
//		  canonical-direct bases, saturation, unit-basis transform
//		• Constrained search: minimal rare descriptions, minimal broad
//		  clusterings (MRG-Exp and pyramidal orders), Δ-equivalent keys
//		• Lattice order: Hasse covers, linearity & distributivity indices
//
// ✨ Why choose galois?
//
//   - Word-parallel – every set operation is bitwise over packed uint64 words
//   - Deterministic – fixed attribute order, canonical traversals, no dupes
//   - Lazy – enumerations are pull-based iterators; stop pulling, stop paying
//   - Pure Go core – the library has no side effects, no I/O, no logging
//
// Everything is organized under flat topic packages:
//
//	bitvec/       — fixed-width bit vectors and word-parallel set algebra
//	core/         — the immutable Context and the closure operator
//	intents/      — Close-by-One enumeration of all closed descriptions
//	keys/         — keys, passkeys and equivalence-class iteration
//	implications/ — implication bases and saturation
//	search/       — constrained minimal-description mining
//	order/        — lattice order bookkeeping and summary indices
//	contextio/    — adapters between external shapes and the Context
//	mine/         — tabular front ends (concepts, implications, descriptions)
//	cmd/galois    — command-line interface over the front ends
//
// Quick ASCII example (5 objects × 6 attributes):
//
//	    a b c d e f
//	 o1 ×       × ×
//	 o2 ×     ×   ×
//	 o3   ×     × ×
//	 o4   ×   ×   ×
//	 o5   × ×
//
//	has exactly 13 closed descriptions, from closure(∅)=∅ up to the
//	full attribute set (the empty-extent top intent).
//
// Dive into README.md and the per-package example tests for full usage.
//
//	go get github.com/lbrehon/galois
package galois
