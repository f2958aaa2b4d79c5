package search_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbrehon/galois/bitvec"
	"github.com/lbrehon/galois/core"
	"github.com/lbrehon/galois/search"
)

func animalContext(t *testing.T) *core.Context {
	t.Helper()
	sets := [][]int{{0, 4, 5}, {0, 3, 5}, {1, 4, 5}, {1, 3, 5}, {1, 2}}
	rows := make([]bitvec.Vector, len(sets))
	for i, s := range sets {
		v, err := bitvec.FromIndices(6, s...)
		require.NoError(t, err)
		rows[i] = v
	}
	ctx, err := core.FromRows(rows)
	require.NoError(t, err)
	return ctx
}

func resultSets(rs []search.Result) [][]int {
	out := make([][]int, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.Description.Indices())
	}
	return out
}

func sortSets(sets [][]int) [][]int {
	sort.Slice(sets, func(i, j int) bool {
		a, b := sets[i], sets[j]
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		for k := range a {
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}
		return false
	})
	return sets
}

// subsets enumerates all 2^6 descriptions of the fixture.
func subsets(t *testing.T) []bitvec.Vector {
	t.Helper()
	out := make([]bitvec.Vector, 0, 64)
	for mask := 0; mask < 64; mask++ {
		d := bitvec.New(6)
		for a := 0; a < 6; a++ {
			if mask&(1<<a) != 0 {
				require.NoError(t, d.Set(a))
			}
		}
		out = append(out, d)
	}
	return out
}

func TestMinimalRare_AnimalScenario(t *testing.T) {
	ctx := animalContext(t)
	it, err := search.MinimalRare(ctx, 1)
	require.NoError(t, err)
	rs, err := it.Collect()
	require.NoError(t, err)

	// canonical depth-first emission order
	assert.Equal(t, [][]int{
		{0, 1}, {0, 3}, {0, 4}, {1, 3}, {1, 4}, {2}, {3, 4},
	}, resultSets(rs))
	wantSupp := []int{0, 1, 1, 1, 1, 1, 0}
	for i, r := range rs {
		assert.Equal(t, wantSupp[i], r.Value, "support of %v", r.Description)
	}
}

func TestMinimalRare_MatchesBruteForce(t *testing.T) {
	ctx := animalContext(t)
	all := subsets(t)

	for maxSupport := 0; maxSupport <= 5; maxSupport++ {
		rare := map[string]bool{}
		for _, d := range all {
			supp, err := ctx.Support(d)
			require.NoError(t, err)
			rare[d.Key()] = supp <= maxSupport
		}
		var want [][]int
		for _, d := range all {
			if !rare[d.Key()] {
				continue
			}
			minimal := true
			d.ForEach(func(a int) bool {
				sub := d.Clone()
				require.NoError(t, sub.Clear(a))
				if rare[sub.Key()] {
					minimal = false
					return false
				}
				return true
			})
			if minimal {
				want = append(want, d.Indices())
			}
		}

		it, err := search.MinimalRare(ctx, maxSupport)
		require.NoError(t, err)
		rs, err := it.Collect()
		require.NoError(t, err)
		assert.Equal(t, sortSets(want), sortSets(resultSets(rs)), "maxSupport=%d", maxSupport)
	}
}

func TestMinimalRare_EmptyDescription(t *testing.T) {
	ctx := animalContext(t)
	it, err := search.MinimalRare(ctx, 5)
	require.NoError(t, err)
	rs, err := it.Collect()
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, []int{}, rs[0].Description.Indices())
	assert.Equal(t, 5, rs[0].Value)
}

func TestMinimalRare_Lazy(t *testing.T) {
	ctx := animalContext(t)
	it, err := search.MinimalRare(ctx, 1)
	require.NoError(t, err)
	first, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, first.Description.Indices())
	// stop pulling here; the remainder stays unexplored
}

func TestMinimalRare_Errors(t *testing.T) {
	_, err := search.MinimalRare(nil, 1)
	assert.ErrorIs(t, err, search.ErrNilContext)

	_, err = search.MinimalRare(animalContext(t), -1)
	assert.ErrorIs(t, err, search.ErrInvalidThreshold)
}

func TestMinimalRare_Cancellation(t *testing.T) {
	fctx := animalContext(t)
	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	it, err := search.MinimalRare(fctx, 1, search.WithContext(cctx))
	require.NoError(t, err)
	_, ok := it.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, it.Err(), context.Canceled)
}

func TestMinimalBroadClusterings_MRGExp(t *testing.T) {
	ctx := animalContext(t)
	it, err := search.MinimalBroadClusterings(ctx, 4, search.MRGExp)
	require.NoError(t, err)
	rs, err := it.Collect()
	require.NoError(t, err)

	// levelwise emission: all pairs before any triple
	assert.Equal(t, [][]int{
		{5}, {0, 1}, {1, 3}, {1, 4}, {3, 4}, {0, 2, 3}, {0, 2, 4},
	}, resultSets(rs))
	wantCov := []int{4, 5, 4, 4, 4, 4, 4}
	for i, r := range rs {
		assert.Equal(t, wantCov[i], r.Value, "coverage of %v", r.Description)
	}
}

func TestMinimalBroadClusterings_Pyramidal(t *testing.T) {
	ctx := animalContext(t)
	it, err := search.MinimalBroadClusterings(ctx, 4, search.Pyramidal)
	require.NoError(t, err)
	rs, err := it.Collect()
	require.NoError(t, err)

	// depth-first emission: branches through low-index attributes first
	assert.Equal(t, [][]int{
		{0, 1}, {0, 2, 3}, {0, 2, 4}, {1, 3}, {1, 4}, {3, 4}, {5},
	}, resultSets(rs))
}

func TestMinimalBroadClusterings_SameSolutionSet(t *testing.T) {
	ctx := animalContext(t)
	for cov := 1; cov <= 5; cov++ {
		a, err := search.MinimalBroadClusterings(ctx, cov, search.MRGExp)
		require.NoError(t, err)
		ra, err := a.Collect()
		require.NoError(t, err)
		b, err := search.MinimalBroadClusterings(ctx, cov, search.Pyramidal)
		require.NoError(t, err)
		rb, err := b.Collect()
		require.NoError(t, err)
		assert.Equal(t, sortSets(resultSets(ra)), sortSets(resultSets(rb)), "minCoverage=%d", cov)
	}
}

func TestMinimalBroadClusterings_PyramidalTieBreak(t *testing.T) {
	// {5} alone reaches the floor, yet pyramidal order surfaces {0,1} first:
	// the search commits to the lowest input index before trying clusters
	// further right.
	ctx := animalContext(t)
	it, err := search.MinimalBroadClusterings(ctx, 4, search.Pyramidal)
	require.NoError(t, err)
	first, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, first.Description.Indices())

	mrg, err := search.MinimalBroadClusterings(ctx, 4, search.MRGExp)
	require.NoError(t, err)
	firstMRG, ok := mrg.Next()
	require.True(t, ok)
	assert.Equal(t, []int{5}, firstMRG.Description.Indices())
}

func TestMinimalBroadClusterings_Edges(t *testing.T) {
	ctx := animalContext(t)

	// floor 0 is satisfied by the empty clustering alone
	it, err := search.MinimalBroadClusterings(ctx, 0, search.MRGExp)
	require.NoError(t, err)
	rs, err := it.Collect()
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, []int{}, rs[0].Description.Indices())

	// an unreachable floor yields nothing
	it, err = search.MinimalBroadClusterings(ctx, 6, search.Pyramidal)
	require.NoError(t, err)
	rs, err = it.Collect()
	require.NoError(t, err)
	assert.Empty(t, rs)

	_, err = search.MinimalBroadClusterings(ctx, -1, search.MRGExp)
	assert.ErrorIs(t, err, search.ErrInvalidThreshold)

	_, err = search.MinimalBroadClusterings(ctx, 4, search.Policy(7))
	assert.ErrorIs(t, err, search.ErrUnknownPolicy)

	_, err = search.MinimalBroadClusterings(nil, 4, search.MRGExp)
	assert.ErrorIs(t, err, search.ErrNilContext)
}

func TestDeltaEquivalentKeys(t *testing.T) {
	ctx := animalContext(t)
	intent, err := bitvec.FromIndices(6, 1, 5)
	require.NoError(t, err)

	// surplus 0 is plain key mining: {b,f} needs both attributes
	it, err := search.DeltaEquivalentKeys(ctx, intent, 0)
	require.NoError(t, err)
	rs, err := it.Collect()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 5}}, resultSets(rs))
	assert.Equal(t, 2, rs[0].Value)

	// one object of slack lets {b} alone stand in for the pair
	it, err = search.DeltaEquivalentKeys(ctx, intent, 1)
	require.NoError(t, err)
	rs, err = it.Collect()
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, resultSets(rs))
	assert.Equal(t, 3, rs[0].Value)

	// enough slack admits the empty description
	it, err = search.DeltaEquivalentKeys(ctx, intent, 3)
	require.NoError(t, err)
	rs, err = it.Collect()
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, []int{}, rs[0].Description.Indices())
}

func TestDeltaEquivalentKeys_ZeroSurplusIsKeyMining(t *testing.T) {
	ctx := animalContext(t)
	for _, d := range subsets(t) {
		closed, err := ctx.Closure(d)
		require.NoError(t, err)
		if !closed.Equal(d) {
			continue
		}
		it, err := search.DeltaEquivalentKeys(ctx, d, 0)
		require.NoError(t, err)
		rs, err := it.Collect()
		require.NoError(t, err)

		// every result closes back to the intent and is minimal for that
		for _, r := range rs {
			cl, err := ctx.Closure(r.Description)
			require.NoError(t, err)
			assert.True(t, cl.Equal(d), "closure(%v) != %v", r.Description, d)
		}
		require.NotEmpty(t, rs, "intent %v has at least one key", d)
	}
}

func TestDeltaEquivalentKeys_Errors(t *testing.T) {
	ctx := animalContext(t)
	notClosed, err := bitvec.FromIndices(6, 0) // closes to {a,f}
	require.NoError(t, err)
	_, err = search.DeltaEquivalentKeys(ctx, notClosed, 0)
	assert.ErrorIs(t, err, search.ErrNotClosed)

	closed, err := bitvec.FromIndices(6, 1, 5)
	require.NoError(t, err)
	_, err = search.DeltaEquivalentKeys(ctx, closed, -1)
	assert.ErrorIs(t, err, search.ErrInvalidThreshold)

	_, err = search.DeltaEquivalentKeys(nil, closed, 0)
	assert.ErrorIs(t, err, search.ErrNilContext)
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "mrg-exp", search.MRGExp.String())
	assert.Equal(t, "pyramidal", search.Pyramidal.String())
	assert.Equal(t, "unknown", search.Policy(7).String())
}
