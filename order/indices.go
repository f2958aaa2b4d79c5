package order

import (
	"github.com/lbrehon/galois/bitvec"
)

// LinearityIndex is the share of comparable element pairs in the lattice:
// nTransEdges comparable pairs out of n*(n-1)/2. With includeTopBottom false,
// pairs involving the top or bottom element are discounted on both sides,
// since those are comparable to everything and inflate the index.
func LinearityIndex(nTransEdges, nElements int, includeTopBottom bool) (float64, error) {
	nComparable := nTransEdges
	nPairs := nElements * (nElements - 1) / 2
	if !includeTopBottom {
		nComparable -= 2*nElements - 3
		nPairs -= 2*nElements - 3
	}
	if nComparable > nPairs {
		return 0, ErrInconsistent
	}
	if nPairs <= 0 {
		return 0, nil
	}
	return float64(nComparable) / float64(nPairs), nil
}

// DistributivityIndex is the share of intent pairs whose set union is itself
// an intent. Comparable pairs always qualify, so the count starts from
// nTransEdges; the incomparable qualifying pairs are found by walking, per
// intent, the pairs of its lower covers whose union reconstructs it, then
// descending through grandcovers that preserve the union.
//
// lower must be the immediate-subset relation (see LowerCovers) and intents
// must be topologically sorted.
func DistributivityIndex(intents []bitvec.Vector, lower []bitvec.Vector, nTransEdges int, includeTopBottom bool) (float64, error) {
	if len(intents) == 0 {
		return 0, ErrNoElements
	}
	if !IsTopologicallySorted(intents) {
		return 0, ErrNotSorted
	}

	nDistr := nTransEdges
	for i, intent := range intents {
		covers := lower[i].Indices()

		type pair struct{ mother, father int }
		var queue []pair
		for pi, mother := range covers {
			for _, father := range covers[pi+1:] {
				if intents[mother].Or(intents[father]).Equal(intent) {
					queue = append(queue, pair{mother, father})
				}
			}
		}

		visited := map[pair]bool{}
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			if visited[p] || visited[pair{p.father, p.mother}] {
				continue
			}
			visited[p] = true
			nDistr++

			motherIntent, fatherIntent := intents[p.mother], intents[p.father]
			lower[p.father].ForEach(func(gfather int) bool {
				if motherIntent.Or(intents[gfather]).Equal(intent) {
					queue = append(queue, pair{p.mother, gfather})
				}
				return true
			})
			lower[p.mother].ForEach(func(gmother int) bool {
				if intents[gmother].Or(fatherIntent).Equal(intent) {
					queue = append(queue, pair{gmother, p.father})
				}
				return true
			})
		}
	}

	n := len(intents)
	nPairs := n * (n - 1) / 2
	if !includeTopBottom {
		nDistr -= 2*n - 3
		nPairs -= 2*n - 3
	}
	if nDistr > nPairs {
		return 0, ErrInconsistent
	}
	if nPairs <= 0 {
		return 0, nil
	}
	return float64(nDistr) / float64(nPairs), nil
}
