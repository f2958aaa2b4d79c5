package search

import (
	"github.com/lbrehon/galois/bitvec"
	"github.com/lbrehon/galois/core"
)

// DeltaKeyIterator lazily yields the Δ-equivalent keys of one intent:
// inclusion-minimal subsets D of the intent with
// support(D) ≤ support(intent) + surplus. With surplus 0 these are exactly
// the keys of the intent.
type DeltaKeyIterator struct {
	fctx    *core.Context
	cols    []bitvec.Vector
	ceiling int
	pool    []int
	opts    Options
	stack   []poolFrame
	emptyOK bool
	done    bool
	err     error
}

// poolFrame mirrors frame but walks positions of the intent's attribute
// pool instead of the whole attribute universe.
type poolFrame struct {
	desc bitvec.Vector
	acc  bitvec.Vector
	next int
}

// DeltaEquivalentKeys prepares a lazy search for the Δ-equivalent keys of a
// closed description. Candidates draw only from the intent's own attributes;
// the support ceiling is support(intent) + surplus, so the predicate is the
// same anti-monotone rarity test MinimalRare uses, restricted to the
// intent's downset.
func DeltaEquivalentKeys(fctx *core.Context, intent bitvec.Vector, surplus int, opts ...Option) (*DeltaKeyIterator, error) {
	if fctx == nil {
		return nil, ErrNilContext
	}
	if surplus < 0 {
		return nil, ErrInvalidThreshold
	}
	closed, err := fctx.Closure(intent)
	if err != nil {
		return nil, err
	}
	if !closed.Equal(intent) {
		return nil, ErrNotClosed
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	supp, err := fctx.Support(intent)
	if err != nil {
		return nil, err
	}
	it := &DeltaKeyIterator{
		fctx:    fctx,
		cols:    fctx.Columns(),
		ceiling: supp + surplus,
		pool:    intent.Indices(),
		opts:    o,
	}
	if fctx.Objects() <= it.ceiling {
		it.emptyOK = true
		return it, nil
	}
	it.stack = append(it.stack, poolFrame{
		desc: bitvec.New(fctx.Attributes()),
		acc:  fctx.TotalExtent(),
		next: 0,
	})
	return it, nil
}

// Next returns the next Δ-equivalent key with its support. The boolean is
// false once the search is exhausted or cancelled; Err distinguishes the two.
func (it *DeltaKeyIterator) Next() (Result, bool) {
	if it.err != nil || it.done {
		return Result{}, false
	}
	if it.emptyOK {
		it.done = true
		return Result{Description: bitvec.New(it.fctx.Attributes()), Value: it.fctx.Objects()}, true
	}

outer:
	for len(it.stack) > 0 {
		select {
		case <-it.opts.Ctx.Done():
			it.err = it.opts.Ctx.Err()
			return Result{}, false
		default:
		}

		f := &it.stack[len(it.stack)-1]
		for f.next < len(it.pool) {
			p := f.next
			f.next++
			a := it.pool[p]
			ext := f.acc.And(it.cols[a])
			supp := ext.Count()
			desc := f.desc.Clone()
			_ = desc.Set(a)
			if supp <= it.ceiling {
				if it.minimal(desc) {
					return Result{Description: desc, Value: supp}, true
				}
				continue
			}
			it.stack = append(it.stack, poolFrame{desc: desc, acc: ext, next: p + 1})
			continue outer
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	it.done = true
	return Result{}, false
}

// minimal checks that dropping any single attribute breaks the surplus bound.
func (it *DeltaKeyIterator) minimal(desc bitvec.Vector) bool {
	ok := true
	desc.ForEach(func(b int) bool {
		sub := desc.Clone()
		_ = sub.Clear(b)
		supp, err := it.fctx.Support(sub)
		if err != nil {
			it.err = err
			ok = false
			return false
		}
		if supp <= it.ceiling {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// Err reports the error, if any, that terminated the search early.
func (it *DeltaKeyIterator) Err() error { return it.err }

// Collect drains the iterator and returns every remaining result.
func (it *DeltaKeyIterator) Collect() ([]Result, error) {
	var out []Result
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, r)
	}
	return out, it.err
}
