// Package mine assembles the whole pipeline behind three front ends:
//
//   - Concepts: one row per intent with its extent, support, Δ-stability,
//     keys, passkeys, proper premises and (optionally) pseudo-intents.
//   - Implications: one row per rule of a chosen basis, with the reduced
//     conclusion, the full closure and the premise's extent.
//   - Descriptions: one row per attribute subset with its characteristic
//     class flags; guarded against attribute universes too large to
//     enumerate exhaustively.
//
// The predicate probes (IsClosed, IsKey, IsPasskey, IsProperPremise,
// IsPseudoIntent) answer the same class-membership questions for a single
// description without materialising any table.
package mine
