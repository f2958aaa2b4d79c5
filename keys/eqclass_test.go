package keys_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbrehon/galois/bitvec"
	"github.com/lbrehon/galois/core"
	"github.com/lbrehon/galois/keys"
)

// bruteClass enumerates {D : closure(D) = intent} over all 2^6 subsets.
func bruteClass(t *testing.T, ctx *core.Context, intent bitvec.Vector) map[string]bool {
	t.Helper()
	out := map[string]bool{}
	for mask := 0; mask < 64; mask++ {
		d := bitvec.New(6)
		for a := 0; a < 6; a++ {
			if mask&(1<<a) != 0 {
				require.NoError(t, d.Set(a))
			}
		}
		cl, err := ctx.Closure(d)
		require.NoError(t, err)
		if cl.Equal(intent) {
			out[d.Key()] = true
		}
	}
	return out
}

func classIntents(t *testing.T) []bitvec.Vector {
	t.Helper()
	// a representative sample: bottom-ish, mid, and the top intent
	mk := func(idx ...int) bitvec.Vector {
		v, err := bitvec.FromIndices(6, idx...)
		require.NoError(t, err)
		return v
	}
	return []bitvec.Vector{
		mk(5),             // {f}
		mk(0, 5),          // {a,f}
		mk(1, 5),          // {b,f}
		mk(0, 4, 5),       // {a,e,f}
		bitvec.Full(6),    // top
		bitvec.New(6),     // bottom (closure(∅)=∅ here)
	}
}

func TestEquivalenceClass_MatchesBruteForce(t *testing.T) {
	ctx := animalContext(t)
	for _, intent := range classIntents(t) {
		want := bruteClass(t, ctx, intent)
		for _, levelwise := range []bool{true, false} {
			it, err := keys.EquivalenceClass(ctx, intent, keys.WithLevelwise(levelwise))
			require.NoError(t, err)
			got := map[string]bool{}
			for _, d := range it.Collect() {
				assert.False(t, got[d.Key()], "duplicate member %v", d)
				got[d.Key()] = true
			}
			assert.Equal(t, want, got, "intent %v levelwise=%v", intent, levelwise)
		}
	}
}

func TestEquivalenceClass_EqualsKeyIntervals(t *testing.T) {
	ctx := animalContext(t)
	top := bitvec.Full(6)
	it, err := keys.EquivalenceClass(ctx, top)
	require.NoError(t, err)
	class := it.Collect()

	ks := keys.MinimalMembers(class)

	// every member lies in some interval [K, I]
	for _, d := range class {
		inInterval := false
		for _, k := range ks {
			if k.Subset(d) && d.Subset(top) {
				inInterval = true
				break
			}
		}
		assert.True(t, inInterval, "%v outside all key intervals", d)
	}
	// and every description of some interval is a member
	seen := map[string]bool{}
	for _, d := range class {
		seen[d.Key()] = true
	}
	for mask := 0; mask < 64; mask++ {
		d := bitvec.New(6)
		for a := 0; a < 6; a++ {
			if mask&(1<<a) != 0 {
				require.NoError(t, d.Set(a))
			}
		}
		covered := false
		for _, k := range ks {
			if k.Subset(d) {
				covered = true
				break
			}
		}
		assert.Equal(t, covered, seen[d.Key()], "interval membership mismatch at %v", d)
	}
}

func TestEquivalenceClass_FirstMemberIsIntent(t *testing.T) {
	ctx := animalContext(t)
	f, err := bitvec.FromIndices(6, 5)
	require.NoError(t, err)
	it, err := keys.EquivalenceClass(ctx, f)
	require.NoError(t, err)
	first, ok := it.Next()
	require.True(t, ok)
	assert.True(t, first.Equal(f))
}

func TestEquivalenceClass_RejectsNonClosed(t *testing.T) {
	ctx := animalContext(t)
	a, err := bitvec.FromIndices(6, 0) // closes to {a,f}
	require.NoError(t, err)
	_, err = keys.EquivalenceClass(ctx, a)
	assert.ErrorIs(t, err, keys.ErrNotClosed)

	_, err = keys.EquivalenceClass(nil, a)
	assert.ErrorIs(t, err, keys.ErrNilContext)
}

func TestMinimalAndSmallestMembers(t *testing.T) {
	ctx := animalContext(t)
	top := bitvec.Full(6)
	it, err := keys.EquivalenceClass(ctx, top)
	require.NoError(t, err)
	class := it.Collect()

	minimal := keys.MinimalMembers(class)
	assert.Equal(t,
		[][]int{{0, 1}, {0, 2}, {2, 3}, {2, 4}, {2, 5}, {3, 4}},
		indicesOf(minimal))

	smallest := keys.SmallestMembers(class)
	// all six keys already have minimum size 2
	assert.Equal(t, indicesOf(minimal), indicesOf(smallest))
}
