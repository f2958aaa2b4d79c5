// Package search enumerates inclusion-minimal descriptions under numeric
// constraints, reusing the canonical bottom-up expansion discipline of the
// intent enumerator:
//
//   - MinimalRare lists minimal descriptions whose support stays at or below
//     a ceiling (support is anti-monotone, so satisfied nodes are leaves).
//   - MinimalBroadClusterings lists minimal attribute sets whose coverage,
//     the union of their extents, reaches a floor. Two traversal policies
//     are available: MRGExp expands levelwise and reports the smallest
//     solutions first, Pyramidal descends depth-first and commits to
//     low-index attributes before trying later ones.
//   - DeltaEquivalentKeys relaxes key mining by a support surplus; with a
//     zero surplus it reproduces the keys of the given intent.
//
// All three are lazy iterators: stop pulling and the unexplored remainder is
// never paid for.
package search
