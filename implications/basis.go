package implications

import (
	"sort"

	"github.com/lbrehon/galois/bitvec"
	"github.com/lbrehon/galois/keys"
)

// pair is the internal implication form used during basis construction: a
// premise whose conclusion is the full intent at the given index.
type pair struct {
	premise bitvec.Vector
	intent  int
}

func checkSorted(intents []bitvec.Vector) error {
	if len(intents) == 0 {
		return ErrNoIntents
	}
	for i := 1; i < len(intents); i++ {
		if intents[i-1].Count() > intents[i].Count() {
			return ErrNotSorted
		}
	}
	return nil
}

// saturate extends premise with every implication whose premise it contains,
// to a fixed point. Implications already fired are dropped from the next
// pass, so the loop runs at most len(impls) rounds.
func saturate(premise bitvec.Vector, impls []pair, intents []bitvec.Vector) bitvec.Vector {
	closure := premise.Clone()
	unused := make([]pair, len(impls))
	copy(unused, impls)

	for changed := true; changed; {
		changed = false
		kept := unused[:0]
		for _, im := range unused {
			if im.premise.Subset(closure) {
				closure.OrWith(intents[im.intent])
				changed = true
			} else {
				kept = append(kept, im)
			}
		}
		unused = kept
	}
	return closure
}

// Saturate computes the implicational closure of premise under basis: the
// fixed point of firing every implication whose premise is contained. Fired
// implications contribute their full intent, so saturating with a complete
// basis reproduces the context closure of premise.
func Saturate(premise bitvec.Vector, basis []Implication, intents []bitvec.Vector) bitvec.Vector {
	impls := make([]pair, len(basis))
	for i, im := range basis {
		impls[i] = pair{premise: im.Premise, intent: im.Intent}
	}
	return saturate(premise, impls, intents)
}

// ProperPremises filters the key list down to proper premises: keys whose
// intent is not already implied by the closures of their immediate subsets.
// The returned slice keeps the keys.Key form, Description being the premise.
//
// The subset closures accumulate in key order, so each key is tested with a
// single pass over its attributes.
func ProperPremises(intents []bitvec.Vector, ks []keys.Key) ([]keys.Key, error) {
	if err := checkSorted(intents); err != nil {
		return nil, err
	}
	found := make(map[string]int, len(ks))
	for _, k := range ks {
		found[k.Description.Key()] = k.Intent
	}

	var out []keys.Key
	for _, k := range ks {
		if isProperPremise(k, intents, found) {
			out = append(out, k)
		}
	}
	return out, nil
}

func isProperPremise(k keys.Key, intents []bitvec.Vector, found map[string]int) bool {
	intent := intents[k.Intent]
	if k.Description.Equal(intent) {
		return false
	}
	if k.Description.Count() == 0 {
		return true
	}

	cumulative := k.Description.Clone()
	proper := true
	k.Description.ForEach(func(a int) bool {
		sub := k.Description.Clone()
		_ = sub.Clear(a)
		cumulative.OrWith(intents[found[sub.Key()]])
		if cumulative.Equal(intent) {
			proper = false
			return false
		}
		return true
	})
	return proper
}

// pseudoCandidate tracks one accepted pseudo-intent candidate: the key it
// came from, its current saturation, and the index of its full closure.
type pseudoCandidate struct {
	key     bitvec.Vector
	pintent bitvec.Vector
	intent  int
}

func candidatePairs(list []pseudoCandidate) []pair {
	out := make([]pair, len(list))
	for i, c := range list {
		out[i] = pair{premise: c.pintent, intent: c.intent}
	}
	return out
}

// PseudoIntents computes the pseudo-intents of the lattice from a candidate
// premise list, normally the proper premises. Candidates whose saturation
// under the pseudo-intents found so far already reaches their closure are
// discarded; accepting a new pseudo-intent resaturates every candidate of
// equal or larger size, since the new rule may now complete them.
//
// The result reuses keys.Key, Description being the pseudo-intent itself.
func PseudoIntents(intents []bitvec.Vector, candidates []keys.Key) ([]keys.Key, error) {
	if err := checkSorted(intents); err != nil {
		return nil, err
	}

	var list []pseudoCandidate
	for _, cand := range candidates {
		saturated := saturate(cand.Description, candidatePairs(list), intents)
		if saturated.Equal(intents[cand.Intent]) {
			continue
		}
		list = addPseudoIntent(cand.Description, saturated, cand.Intent, list, intents)
	}

	out := make([]keys.Key, len(list))
	for i, c := range list {
		out[i] = keys.Key{Description: c.pintent, Intent: c.intent}
	}
	return out, nil
}

// addPseudoIntent inserts a new pseudo-intent keeping the list sorted by
// ascending cardinality, then resaturates the tail: candidates at or after
// the insertion point are recomputed against the prefix and dropped once
// their saturation reaches their full closure.
func addPseudoIntent(key, pintent bitvec.Vector, intentIdx int, list []pseudoCandidate, intents []bitvec.Vector) []pseudoCandidate {
	next := pseudoCandidate{key: key, pintent: pintent, intent: intentIdx}
	if len(list) == 0 || list[len(list)-1].pintent.Count() < pintent.Count() {
		return append(list, next)
	}

	newIdx := 0
	for j := len(list) - 1; j >= 0; j-- {
		if list[j].pintent.Equal(pintent) {
			return list
		}
		if j > 0 && list[j-1].pintent.Count() < pintent.Count() {
			newIdx = j
			break
		}
	}
	list = append(list, pseudoCandidate{})
	copy(list[newIdx+1:], list[newIdx:])
	list[newIdx] = next

	for idx := newIdx; idx < len(list); idx++ {
		prefix := candidatePairs(list[:idx])
		var kept []pseudoCandidate
		for _, c := range list[idx:] {
			resaturated := saturate(c.key, prefix, intents)
			if !resaturated.Equal(intents[c.intent]) {
				kept = append(kept, pseudoCandidate{key: c.key, pintent: resaturated, intent: c.intent})
			}
		}
		sort.SliceStable(kept, func(a, b int) bool {
			return kept[a].pintent.Count() < kept[b].pintent.Count()
		})
		list = append(list[:idx], kept...)
	}
	return list
}

// Build assembles the implication basis of the given kind from a sorted
// intent list and its keys (as produced by keys.List). Conclusions are
// reduced: each rule concludes only what the rest of the basis cannot infer
// from its premise, which can leave a conclusion empty for premises kept
// purely for minimality of the basis.
func Build(kind Kind, intents []bitvec.Vector, ks []keys.Key) ([]Implication, error) {
	if kind != CanonicalDirect && kind != Canonical {
		return nil, ErrUnknownKind
	}
	premises, err := ProperPremises(intents, ks)
	if err != nil {
		return nil, err
	}
	if kind == Canonical {
		premises, err = PseudoIntents(intents, premises)
		if err != nil {
			return nil, err
		}
	}

	all := make([]pair, len(premises))
	for i, p := range premises {
		all[i] = pair{premise: p.Description, intent: p.Intent}
	}

	basis := make([]Implication, len(premises))
	rest := make([]pair, 0, len(all))
	for i, p := range premises {
		rest = append(rest[:0], all[:i]...)
		rest = append(rest, all[i+1:]...)
		pseudoClosure := saturate(p.Description, rest, intents)
		basis[i] = Implication{
			Premise:    p.Description,
			Conclusion: intents[p.Intent].AndNot(pseudoClosure),
			Intent:     p.Intent,
		}
	}
	return basis, nil
}

// UnitBasis expands a basis into unit form: one implication per conclusion
// attribute. Implications with empty conclusions are dropped.
func UnitBasis(basis []Implication) []Implication {
	var out []Implication
	for _, im := range basis {
		im.Conclusion.ForEach(func(a int) bool {
			unit := bitvec.New(im.Conclusion.Width())
			_ = unit.Set(a)
			out = append(out, Implication{Premise: im.Premise, Conclusion: unit, Intent: im.Intent})
			return true
		})
	}
	return out
}
