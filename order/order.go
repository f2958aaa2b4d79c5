package order

import (
	"errors"
	"sort"

	"github.com/lbrehon/galois/bitvec"
)

// Sentinel errors for order computations.
var (
	// ErrNotSorted is returned when a relation requires topologically sorted
	// input and the input is not.
	ErrNotSorted = errors.New("order: intents must be sorted by ascending cardinality")

	// ErrNoElements is returned for empty element lists.
	ErrNoElements = errors.New("order: element list is empty")

	// ErrInconsistent signals an index computation that produced more related
	// pairs than pairs exist; it indicates corrupt input relations.
	ErrInconsistent = errors.New("order: relation has more edges than element pairs")
)

// TopologicalSort orders elements by ascending cardinality, breaking ties by
// the ascending-index-sequence order of bitvec.Compare. The second result
// maps original indices to sorted positions.
func TopologicalSort(elems []bitvec.Vector) ([]bitvec.Vector, []int) {
	type tagged struct {
		v    bitvec.Vector
		orig int
	}
	tmp := make([]tagged, len(elems))
	for i, v := range elems {
		tmp[i] = tagged{v: v, orig: i}
	}
	sort.SliceStable(tmp, func(i, j int) bool {
		ci, cj := tmp[i].v.Count(), tmp[j].v.Count()
		if ci != cj {
			return ci < cj
		}
		return tmp[i].v.Compare(tmp[j].v) < 0
	})
	sorted := make([]bitvec.Vector, len(elems))
	origToSorted := make([]int, len(elems))
	for pos, tg := range tmp {
		sorted[pos] = tg.v
		origToSorted[tg.orig] = pos
	}
	return sorted, origToSorted
}

// IsTopologicallySorted reports whether cardinalities are non-decreasing.
func IsTopologicallySorted(elems []bitvec.Vector) bool {
	for i := 1; i < len(elems); i++ {
		if elems[i-1].Count() > elems[i].Count() {
			return false
		}
	}
	return true
}

// UpperCovers computes the Hasse diagram of the intent lattice: result[i]
// holds the indices (over the intent list) of the immediate supersets of
// intents[i]. Requires topologically sorted intents containing the top
// (full) intent, which every complete enumeration does.
//
// For each attribute a outside intents[i], the smallest intent containing
// intents[i] ∪ {a} is an upper neighbour candidate; subtracting neighbours
// reachable transitively leaves exactly the covers.
func UpperCovers(intents []bitvec.Vector) ([]bitvec.Vector, error) {
	nI := len(intents)
	if nI == 0 {
		return nil, ErrNoElements
	}
	if !IsTopologicallySorted(intents) {
		return nil, ErrNotSorted
	}
	m := intents[0].Width()

	attrDesc := make([]bitvec.Vector, m)
	for a := range attrDesc {
		attrDesc[a] = bitvec.New(nI)
	}
	for i, intent := range intents {
		intent.ForEach(func(a int) bool {
			_ = attrDesc[a].Set(i)
			return true
		})
	}

	covers := make([]bitvec.Vector, nI)
	trans := make([]bitvec.Vector, nI)
	for i := nI - 1; i >= 0; i-- {
		intent := intents[i]

		common := bitvec.Full(nI)
		intent.ForEach(func(a int) bool {
			common.AndWith(attrDesc[a])
			return true
		})

		children := bitvec.New(nI)
		for a := 0; a < m; a++ {
			if intent.Test(a) {
				continue
			}
			if j, ok := common.And(attrDesc[a]).NextSet(0); ok {
				_ = children.Set(j)
			}
		}

		transChildren := bitvec.New(nI)
		children.ForEach(func(j int) bool {
			transChildren.OrWith(trans[j])
			return true
		})
		trans[i] = children.Or(transChildren)
		covers[i] = children.AndNot(transChildren)
	}
	return covers, nil
}

// LowerCovers inverts an upper-cover relation: result[j] holds the indices
// of the immediate subsets of intents[j].
func LowerCovers(upper []bitvec.Vector) []bitvec.Vector {
	lower := make([]bitvec.Vector, len(upper))
	for j := range lower {
		lower[j] = bitvec.New(len(upper))
	}
	for i, ups := range upper {
		ups.ForEach(func(j int) bool {
			_ = lower[j].Set(i)
			return true
		})
	}
	return lower
}

// TransitiveClosure expands a cover relation whose edges point to strictly
// larger indices (as UpperCovers guarantees) into the full reachability
// relation.
func TransitiveClosure(covers []bitvec.Vector) []bitvec.Vector {
	nI := len(covers)
	trans := make([]bitvec.Vector, nI)
	for i := nI - 1; i >= 0; i-- {
		t := covers[i].Clone()
		covers[i].ForEach(func(j int) bool {
			t.OrWith(trans[j])
			return true
		})
		trans[i] = t
	}
	return trans
}

// CountEdges sums the set bits of a relation, i.e. its number of edges.
func CountEdges(rel []bitvec.Vector) int {
	n := 0
	for _, r := range rel {
		n += r.Count()
	}
	return n
}
