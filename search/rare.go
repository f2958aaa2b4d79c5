package search

import (
	"github.com/lbrehon/galois/bitvec"
	"github.com/lbrehon/galois/core"
)

// RareIterator lazily yields the inclusion-minimal descriptions whose
// support does not exceed the ceiling, in canonical depth-first order.
type RareIterator struct {
	fctx       *core.Context
	cols       []bitvec.Vector
	maxSupport int
	opts       Options
	stack      []frame
	emptyRare  bool
	done       bool
	err        error
}

// MinimalRare prepares a lazy search for minimal rare descriptions:
// inclusion-minimal D with support(D) ≤ maxSupport. Support only shrinks as
// a description grows, so the search runs bottom-up and never extends a
// description that already qualifies.
func MinimalRare(fctx *core.Context, maxSupport int, opts ...Option) (*RareIterator, error) {
	if fctx == nil {
		return nil, ErrNilContext
	}
	if maxSupport < 0 {
		return nil, ErrInvalidThreshold
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	it := &RareIterator{
		fctx:       fctx,
		cols:       fctx.Columns(),
		maxSupport: maxSupport,
		opts:       o,
	}
	if fctx.Objects() <= maxSupport {
		// the empty description already qualifies and subsumes everything
		it.emptyRare = true
		return it, nil
	}
	it.stack = append(it.stack, frame{
		desc: bitvec.New(fctx.Attributes()),
		acc:  fctx.TotalExtent(),
		next: 0,
	})
	return it, nil
}

// Next returns the next minimal rare description with its support. The
// boolean is false once the search is exhausted or cancelled; Err
// distinguishes the two.
func (it *RareIterator) Next() (Result, bool) {
	if it.err != nil || it.done {
		return Result{}, false
	}
	if it.emptyRare {
		it.done = true
		return Result{Description: bitvec.New(it.fctx.Attributes()), Value: it.fctx.Objects()}, true
	}
	m := it.fctx.Attributes()

outer:
	for len(it.stack) > 0 {
		select {
		case <-it.opts.Ctx.Done():
			it.err = it.opts.Ctx.Err()
			return Result{}, false
		default:
		}

		f := &it.stack[len(it.stack)-1]
		for f.next < m {
			a := f.next
			f.next++
			ext := f.acc.And(it.cols[a])
			supp := ext.Count()
			desc := f.desc.Clone()
			_ = desc.Set(a)
			if supp <= it.maxSupport {
				// a qualifying node is a leaf: any extension keeps a
				// qualifying proper subset and cannot be minimal
				if it.allSubsetsFrequent(desc) {
					return Result{Description: desc, Value: supp}, true
				}
				continue
			}
			it.stack = append(it.stack, frame{desc: desc, acc: ext, next: a + 1})
			continue outer
		}
		it.stack = it.stack[:len(it.stack)-1]
	}
	it.done = true
	return Result{}, false
}

// allSubsetsFrequent checks minimality: dropping any single attribute must
// push the support back above the ceiling.
func (it *RareIterator) allSubsetsFrequent(desc bitvec.Vector) bool {
	minimal := true
	desc.ForEach(func(b int) bool {
		sub := desc.Clone()
		_ = sub.Clear(b)
		supp, err := it.fctx.Support(sub)
		if err != nil {
			it.err = err
			minimal = false
			return false
		}
		if supp <= it.maxSupport {
			minimal = false
			return false
		}
		return true
	})
	return minimal
}

// Err reports the error, if any, that terminated the search early.
func (it *RareIterator) Err() error { return it.err }

// Collect drains the iterator and returns every remaining result.
func (it *RareIterator) Collect() ([]Result, error) {
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
