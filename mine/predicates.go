package mine

import (
	"math/bits"
	"sort"

	"github.com/lbrehon/galois/bitvec"
	"github.com/lbrehon/galois/core"
	"github.com/lbrehon/galois/search"
)

// IsClosed reports whether d is its own closure.
func IsClosed(fctx *core.Context, d bitvec.Vector) (bool, error) {
	if fctx == nil {
		return false, ErrNilContext
	}
	cl, err := fctx.Closure(d)
	if err != nil {
		return false, err
	}
	return cl.Equal(d), nil
}

// IsKey reports whether d is a minimal generator: dropping any single
// attribute changes the closure.
func IsKey(fctx *core.Context, d bitvec.Vector) (bool, error) {
	if fctx == nil {
		return false, ErrNilContext
	}
	cl, err := fctx.Closure(d)
	if err != nil {
		return false, err
	}
	minimal := true
	d.ForEach(func(a int) bool {
		sub := d.Clone()
		_ = sub.Clear(a)
		subCl, cerr := fctx.Closure(sub)
		if cerr != nil {
			err = cerr
			minimal = false
			return false
		}
		if subCl.Equal(cl) {
			minimal = false
			return false
		}
		return true
	})
	return minimal, err
}

// IsPasskey reports whether d is a minimum-size generator of its closure:
// a key no other key of the same intent undercuts in size.
func IsPasskey(fctx *core.Context, d bitvec.Vector) (bool, error) {
	isKey, err := IsKey(fctx, d)
	if err != nil || !isKey {
		return false, err
	}
	cl, err := fctx.Closure(d)
	if err != nil {
		return false, err
	}
	it, err := search.DeltaEquivalentKeys(fctx, cl, 0)
	if err != nil {
		return false, err
	}
	rs, err := it.Collect()
	if err != nil {
		return false, err
	}
	for _, r := range rs {
		if r.Description.Count() < d.Count() {
			return false, nil
		}
	}
	return true, nil
}

// IsProperPremise reports whether d is a proper premise: non-closed, and
// its closure is not recovered by d together with the closures of its
// single-attribute-removed subsets.
func IsProperPremise(fctx *core.Context, d bitvec.Vector) (bool, error) {
	if fctx == nil {
		return false, ErrNilContext
	}
	cl, err := fctx.Closure(d)
	if err != nil {
		return false, err
	}
	if cl.Equal(d) {
		return false, nil
	}
	union := d.Clone()
	proper := true
	d.ForEach(func(a int) bool {
		sub := d.Clone()
		_ = sub.Clear(a)
		subCl, cerr := fctx.Closure(sub)
		if cerr != nil {
			err = cerr
			proper = false
			return false
		}
		union.OrWith(subCl)
		if union.Equal(cl) {
			proper = false
			return false
		}
		return true
	})
	return proper, err
}

// IsPseudoIntent reports whether d is a pseudo-intent: non-closed, and the
// closure of every smaller pseudo-intent inside d stays strictly inside d.
// The smaller pseudo-intents are found recursively over d's subsets, so the
// probe is exponential in the size of d, fine for hand-sized descriptions.
func IsPseudoIntent(fctx *core.Context, d bitvec.Vector) (bool, error) {
	if fctx == nil {
		return false, ErrNilContext
	}
	subs, err := subPseudoIntents(fctx, d)
	if err != nil {
		return false, err
	}
	return isPseudoIntentGiven(fctx, d, subs)
}

// subPseudoIntents lists the pseudo-intents strictly inside d, smallest
// first, each tested against those found before it.
func subPseudoIntents(fctx *core.Context, d bitvec.Vector) ([]bitvec.Vector, error) {
	pool := d.Indices()
	n := len(pool)

	// proper subsets of d in ascending size order
	masks := make([]uint, 0, 1<<uint(n))
	for mask := uint(0); mask < 1<<uint(n)-1; mask++ {
		masks = append(masks, mask)
	}
	sort.SliceStable(masks, func(i, j int) bool {
		return bits.OnesCount(masks[i]) < bits.OnesCount(masks[j])
	})

	var subs []bitvec.Vector
	for _, mask := range masks {
		sub := bitvec.New(d.Width())
		for i := 0; i < n; i++ {
			if mask&(1<<uint(i)) != 0 {
				_ = sub.Set(pool[i])
			}
		}
		ok, err := isPseudoIntentGiven(fctx, sub, subs)
		if err != nil {
			return nil, err
		}
		if ok {
			subs = append(subs, sub)
		}
	}
	return subs, nil
}

func isPseudoIntentGiven(fctx *core.Context, d bitvec.Vector, subs []bitvec.Vector) (bool, error) {
	cl, err := fctx.Closure(d)
	if err != nil {
		return false, err
	}
	if cl.Equal(d) {
		return false, nil
	}
	for _, q := range subs {
		if !q.ProperSubset(d) {
			continue
		}
		qCl, err := fctx.Closure(q)
		if err != nil {
			return false, err
		}
		if !qCl.ProperSubset(d) {
			return false, nil
		}
	}
	return true, nil
}
