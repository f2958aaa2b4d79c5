package keys

import (
	"github.com/lbrehon/galois/bitvec"
)

// checkSorted verifies ascending-cardinality order of the intent list.
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

// descendantMasks builds, per attribute, the set of intent indices whose
// intent contains that attribute. Meets are then resolved by intersecting
// masks instead of recomputing closures.
func descendantMasks(intents []bitvec.Vector) []bitvec.Vector {
	m := intents[0].Width()
	masks := make([]bitvec.Vector, m)
	for a := range masks {
		masks[a] = bitvec.New(len(intents))
	}
	for i, intent := range intents {
		intent.ForEach(func(a int) bool {
			_ = masks[a].Set(i)
			return true
		})
	}
	return masks
}

// List returns every key of every intent, paired with the index of the
// intent it generates. The intents must be sorted by ascending cardinality.
//
// The search is a breadth-first levelwise pass: a description is a key
// candidate only if all of its single-attribute-removed subsets are keys,
// and it is accepted only if none of those subsets generates the same
// intent. Accepted keys of non-top intents are extended by attributes above
// their maximum, so every candidate is generated exactly once.
func List(intents []bitvec.Vector) ([]Key, error) {
	return listKeys(intents, false)
}

// ListPasskeys returns, for every intent, only its minimum-cardinality keys.
// Ties are all returned. Same sortedness requirement as List.
func ListPasskeys(intents []bitvec.Vector) ([]Key, error) {
	return listKeys(intents, true)
}

func listKeys(intents []bitvec.Vector, onlyPasskeys bool) ([]Key, error) {
	if err := checkSorted(intents); err != nil {
		return nil, err
	}
	m := intents[0].Width()
	nIntents := len(intents)
	masks := descendantMasks(intents)

	// The empty description is always the unique key of the bottom intent.
	empty := bitvec.New(m)
	found := map[string]int{empty.Key(): 0}
	out := []Key{{Description: empty, Intent: 0}}

	passkeySize := make([]int, nIntents)
	for i := range passkeySize {
		passkeySize[i] = m + 1
	}
	passkeySize[0] = 0

	queue := make([]bitvec.Vector, 0, m)
	for a := 0; a < m; a++ {
		v := bitvec.New(m)
		_ = v.Set(a)
		queue = append(queue, v)
	}

	for len(queue) > 0 {
		cand := queue[0]
		queue = queue[1:]
		idx := cand.Indices()

		// every subset of a key is a key: all immediate subsets must be known
		subIntents := make([]int, len(idx))
		missing := false
		for i, a := range idx {
			sub := cand.Clone()
			_ = sub.Clear(a)
			si, ok := found[sub.Key()]
			if !ok {
				missing = true
				break
			}
			subIntents[i] = si
		}
		if missing {
			continue
		}

		// resolve the candidate's intent via descendant-mask intersection;
		// the top intent contains every attribute, so the meet always exists
		common := bitvec.Full(nIntents)
		cand.ForEach(func(a int) bool {
			common.AndWith(masks[a])
			return true
		})
		meet, _ := common.NextSet(0)

		if onlyPasskeys && passkeySize[meet] < cand.Count() {
			continue
		}

		// minimality: no immediate subset may generate the same intent
		minimal := true
		for _, si := range subIntents {
			if si == meet {
				minimal = false
				break
			}
		}
		if !minimal {
			continue
		}

		found[cand.Key()] = meet
		out = append(out, Key{Description: cand, Intent: meet})
		if onlyPasskeys {
			passkeySize[meet] = cand.Count()
		}
		if meet != nIntents-1 {
			maxAttr := idx[len(idx)-1]
			for a := maxAttr + 1; a < m; a++ {
				ext := cand.Clone()
				_ = ext.Set(a)
				queue = append(queue, ext)
			}
		}
	}
	return out, nil
}

// GroupByIntent buckets keys per intent index.
func GroupByIntent(ks []Key, nIntents int) [][]bitvec.Vector {
	out := make([][]bitvec.Vector, nIntents)
	for _, k := range ks {
		out[k.Intent] = append(out[k.Intent], k.Description)
	}
	return out
}

// MinimalMembers filters an equivalence class down to its inclusion-minimal
// members, i.e. the keys of the class's intent.
func MinimalMembers(class []bitvec.Vector) []bitvec.Vector {
	var minimal []bitvec.Vector
	for _, d := range class {
		kept := minimal[:0]
		for _, k := range minimal {
			if !d.Subset(k) {
				kept = append(kept, k)
			}
		}
		minimal = append(kept, d)
	}
	return minimal
}

// SmallestMembers filters an equivalence class down to its minimum-cardinality
// members, i.e. the passkeys of the class's intent. The input must arrive in
// non-increasing cardinality order, which is what ClassIterator produces.
func SmallestMembers(class []bitvec.Vector) []bitvec.Vector {
	var best []bitvec.Vector
	for _, d := range class {
		switch {
		case len(best) == 0 || d.Count() == best[len(best)-1].Count():
			best = append(best, d)
		case d.Count() < best[len(best)-1].Count():
			best = []bitvec.Vector{d}
		}
	}
	return best
}
