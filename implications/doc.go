// Package implications derives implication bases from a sorted intent list
// and its keys: the canonical-direct basis built on proper premises, and the
// canonical (Duquenne-Guigues) basis built on pseudo-intents.
//
// Conclusions are reduced: each implication carries only the attributes that
// the rest of the basis cannot already infer from its premise, while the
// Intent field keeps the index of the full closure. Saturate reconstructs
// closures from a basis, and UnitBasis splits implications into
// single-attribute conclusions for rule-by-rule consumption.
package implications
