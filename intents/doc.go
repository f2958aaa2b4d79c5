// Package intents enumerates every closed description (intent) of a formal
// context, each exactly once, via canonicity-based Close-by-One completion.
//
// The traversal starts at Closure(∅) and extends each discovered intent I
// with one attribute a at a time, in increasing index order, accepting
// J = Closure(I ∪ {a}) only when J agrees with I on every attribute below a
// (the canonicity test). Rejected candidates are reached again later along
// their canonical generation path, so no intent is ever produced twice and
// none is missed — including the full attribute set, which is always closed.
//
// Two surfaces are offered:
//
//	Enumerate — a lazy, non-restartable Enumerator pulled with Next, so a
//	            caller wanting only the first k intents pays only for those.
//	All       — drains an Enumerator into a slice, firing the OnIntent hook.
//
// Intents come out in depth-first canonical order: parents before their
// canonical children, but with no global total order. Callers needing one
// (ascending cardinality, say) should sort with the order package.
package intents
