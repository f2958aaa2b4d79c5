package keys

import (
	"github.com/lbrehon/galois/bitvec"
	"github.com/lbrehon/galois/core"
)

// ClassIterator lazily walks the equivalence class of one intent: every
// description whose closure is that intent. Single-use, deterministic.
type ClassIterator struct {
	cols   []bitvec.Vector
	total  bitvec.Vector // extent of the intent
	intent bitvec.Vector
	opts   ClassOptions

	queue   [][]int // attribute-removal sets, FIFO ⇒ increasing size
	started bool
}

// EquivalenceClass prepares iteration over {D : Closure(D) = intent}.
// The intent must be closed (ErrNotClosed otherwise). The first Next call
// yields the intent itself; following calls yield smaller members obtained
// by removing attribute subsets of increasing size.
func EquivalenceClass(fctx *core.Context, intent bitvec.Vector, opts ...ClassOption) (*ClassIterator, error) {
	if fctx == nil {
		return nil, ErrNilContext
	}
	cl, err := fctx.Closure(intent)
	if err != nil {
		return nil, err
	}
	if !cl.Equal(intent) {
		return nil, ErrNotClosed
	}
	o := DefaultClassOptions()
	for _, opt := range opts {
		opt(&o)
	}
	total, err := fctx.Extent(intent)
	if err != nil {
		return nil, err
	}
	it := &ClassIterator{
		cols:   fctx.Columns(),
		total:  total,
		intent: intent,
		opts:   o,
	}
	intent.ForEach(func(a int) bool {
		it.queue = append(it.queue, []int{a})
		return true
	})
	return it, nil
}

// conjunct intersects the attribute extents selected by d, short-circuiting
// once empty. Empty d yields the full object set.
func (it *ClassIterator) conjunct(d bitvec.Vector) bitvec.Vector {
	ext := bitvec.Full(it.total.Width())
	d.ForEach(func(a int) bool {
		ext.AndWith(it.cols[a])
		return ext.Any()
	})
	return ext
}

// Next returns the next member of the class, or false when exhausted.
func (it *ClassIterator) Next() (bitvec.Vector, bool) {
	if !it.started {
		it.started = true
		return it.intent, true
	}
	for len(it.queue) > 0 {
		removal := it.queue[0]
		it.queue = it.queue[1:]

		member := it.intent.Clone()
		for _, a := range removal {
			_ = member.Clear(a)
		}

		inClass := it.conjunct(member).Equal(it.total)

		// Extend the removal set with larger intent attributes. Levelwise
		// pruning stops here for out-of-class members: removing even more
		// attributes only grows the extent further away.
		if inClass || !it.opts.Levelwise {
			last := removal[len(removal)-1]
			it.intent.ForEach(func(a int) bool {
				if a > last {
					next := make([]int, len(removal), len(removal)+1)
					copy(next, removal)
					it.queue = append(it.queue, append(next, a))
				}
				return true
			})
		}
		if inClass {
			return member, true
		}
	}
	return bitvec.Vector{}, false
}

// Collect drains the iterator into a slice.
func (it *ClassIterator) Collect() []bitvec.Vector {
	var out []bitvec.Vector
	for {
		d, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, d)
	}
}
