package search

import (
	"github.com/lbrehon/galois/bitvec"
	"github.com/lbrehon/galois/core"
)

// ClusteringIterator lazily yields the inclusion-minimal attribute sets
// whose coverage (union of extents) reaches the floor. The traversal policy
// only changes the emission order, never the solution set.
type ClusteringIterator struct {
	fctx        *core.Context
	cols        []bitvec.Vector
	minCoverage int
	policy      Policy
	opts        Options
	nodes       []frame
	emptyBroad  bool
	done        bool
	err         error
}

// MinimalBroadClusterings prepares a lazy search for minimal broad
// clusterings: inclusion-minimal D with coverage(D) ≥ minCoverage. Coverage
// only grows as a description grows, so qualifying nodes are leaves and the
// search extends only descriptions still below the floor.
func MinimalBroadClusterings(fctx *core.Context, minCoverage int, policy Policy, opts ...Option) (*ClusteringIterator, error) {
	if fctx == nil {
		return nil, ErrNilContext
	}
	if minCoverage < 0 {
		return nil, ErrInvalidThreshold
	}
	if policy != MRGExp && policy != Pyramidal {
		return nil, ErrUnknownPolicy
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	it := &ClusteringIterator{
		fctx:        fctx,
		cols:        fctx.Columns(),
		minCoverage: minCoverage,
		policy:      policy,
		opts:        o,
	}
	if minCoverage == 0 {
		// the empty clustering covers nothing, which is already enough
		it.emptyBroad = true
		return it, nil
	}
	it.nodes = append(it.nodes, frame{
		desc: bitvec.New(fctx.Attributes()),
		acc:  bitvec.New(fctx.Objects()),
		next: 0,
	})
	return it, nil
}

// Next returns the next minimal broad clustering with its coverage. The
// boolean is false once the search is exhausted or cancelled; Err
// distinguishes the two.
func (it *ClusteringIterator) Next() (Result, bool) {
	if it.err != nil || it.done {
		return Result{}, false
	}
	if it.emptyBroad {
		it.done = true
		return Result{Description: bitvec.New(it.fctx.Attributes()), Value: 0}, true
	}
	m := it.fctx.Attributes()

outer:
	for len(it.nodes) > 0 {
		select {
		case <-it.opts.Ctx.Done():
			it.err = it.opts.Ctx.Err()
			return Result{}, false
		default:
		}

		// MRGExp consumes the node list as a FIFO queue (levelwise),
		// Pyramidal as a LIFO stack (depth-first in input order).
		// Nodes are addressed by position: appends may reallocate the slice.
		pos := 0
		if it.policy == Pyramidal {
			pos = len(it.nodes) - 1
		}
		for it.nodes[pos].next < m {
			a := it.nodes[pos].next
			it.nodes[pos].next++
			cover := it.nodes[pos].acc.Or(it.cols[a])
			cov := cover.Count()
			desc := it.nodes[pos].desc.Clone()
			_ = desc.Set(a)
			if cov >= it.minCoverage {
				if it.allSubsetsNarrow(desc) {
					return Result{Description: desc, Value: cov}, true
				}
				continue
			}
			it.nodes = append(it.nodes, frame{desc: desc, acc: cover, next: a + 1})
			if it.policy == Pyramidal {
				continue outer
			}
		}
		if it.policy == Pyramidal {
			it.nodes = it.nodes[:len(it.nodes)-1]
		} else {
			it.nodes = it.nodes[1:]
		}
	}
	it.done = true
	return Result{}, false
}

// allSubsetsNarrow checks minimality: dropping any single attribute must
// push the coverage back below the floor.
func (it *ClusteringIterator) allSubsetsNarrow(desc bitvec.Vector) bool {
	minimal := true
	desc.ForEach(func(b int) bool {
		sub := desc.Clone()
		_ = sub.Clear(b)
		cov, err := it.fctx.Coverage(sub)
		if err != nil {
			it.err = err
			minimal = false
			return false
		}
		if cov >= it.minCoverage {
			minimal = false
			return false
		}
		return true
	})
	return minimal
}

// Err reports the error, if any, that terminated the search early.
func (it *ClusteringIterator) Err() error { return it.err }

// Collect drains the iterator and returns every remaining result.
func (it *ClusteringIterator) Collect() ([]Result, error) {
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
