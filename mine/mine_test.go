package mine_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbrehon/galois/bitvec"
	"github.com/lbrehon/galois/core"
	"github.com/lbrehon/galois/implications"
	"github.com/lbrehon/galois/mine"
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

func mustVec(t *testing.T, idx ...int) bitvec.Vector {
	t.Helper()
	v, err := bitvec.FromIndices(6, idx...)
	require.NoError(t, err)
	return v
}

func findConcept(t *testing.T, rows []mine.ConceptRow, intent bitvec.Vector) mine.ConceptRow {
	t.Helper()
	for _, r := range rows {
		if r.Intent.Equal(intent) {
			return r
		}
	}
	t.Fatalf("concept %v not found", intent)
	return mine.ConceptRow{}
}

func setsOf(vs []bitvec.Vector) [][]int {
	out := make([][]int, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.Indices())
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
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
	return out
}

func TestConcepts(t *testing.T) {
	ctx := animalContext(t)
	rows, err := mine.Concepts(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 13)

	f := findConcept(t, rows, mustVec(t, 5))
	assert.Equal(t, 4, f.Support)
	assert.Equal(t, 2, f.DeltaStability)
	assert.Equal(t, [][]int{{5}}, setsOf(f.Keys))
	assert.Equal(t, [][]int{{5}}, setsOf(f.Passkeys))
	assert.Empty(t, f.ProperPremises)
	assert.Nil(t, f.PseudoIntents) // not requested

	af := findConcept(t, rows, mustVec(t, 0, 5))
	assert.Equal(t, 2, af.Support)
	assert.Equal(t, [][]int{{0}}, setsOf(af.Keys))
	assert.Equal(t, [][]int{{0}}, setsOf(af.ProperPremises))
	assert.Equal(t, []int{0, 1}, af.Extent.Indices())

	top := findConcept(t, rows, bitvec.Full(6))
	assert.Equal(t, 0, top.Support)
	assert.Equal(t, 0, top.DeltaStability)
	assert.Equal(t,
		[][]int{{0, 1}, {0, 2}, {2, 3}, {2, 4}, {2, 5}, {3, 4}},
		setsOf(top.Keys))
}

func TestConcepts_WithPseudoIntents(t *testing.T) {
	ctx := animalContext(t)
	rows, err := mine.Concepts(ctx, mine.WithPseudoIntents())
	require.NoError(t, err)

	top := findConcept(t, rows, bitvec.Full(6))
	assert.Equal(t,
		[][]int{{0, 1, 5}, {1, 2, 5}, {3, 4, 5}},
		setsOf(top.PseudoIntents))

	bf := findConcept(t, rows, mustVec(t, 1, 2))
	assert.Equal(t, [][]int{{2}}, setsOf(bf.PseudoIntents))
}

func TestConcepts_MinSupport(t *testing.T) {
	ctx := animalContext(t)
	rows, err := mine.Concepts(ctx, mine.WithMinSupport(2))
	require.NoError(t, err)
	require.Len(t, rows, 7)
	for _, r := range rows {
		assert.GreaterOrEqual(t, r.Support, 2)
	}

	_, err = mine.Concepts(ctx, mine.WithMinSupport(-1))
	assert.ErrorIs(t, err, mine.ErrInvalidThreshold)
}

func TestImplications(t *testing.T) {
	ctx := animalContext(t)
	rows, err := mine.Implications(ctx, implications.CanonicalDirect)
	require.NoError(t, err)
	require.Len(t, rows, 10)

	for _, r := range rows {
		if r.Premise.Equal(mustVec(t, 0)) {
			assert.Equal(t, []int{5}, r.Conclusion.Indices())
			assert.Equal(t, []int{0, 5}, r.Full.Indices())
			assert.Equal(t, []int{0, 1}, r.Extent.Indices())
			assert.Equal(t, 2, r.Support)
		}
	}

	canonical, err := mine.Implications(ctx, implications.Canonical)
	require.NoError(t, err)
	assert.Len(t, canonical, 7)
}

func TestImplications_UnitBasis(t *testing.T) {
	ctx := animalContext(t)
	rows, err := mine.Implications(ctx, implications.CanonicalDirect, mine.WithUnitBasis())
	require.NoError(t, err)
	// reduced conclusions of the canonical-direct basis hold 13 attributes
	require.Len(t, rows, 13)
	for _, r := range rows {
		assert.Equal(t, 1, r.Conclusion.Count())
	}
}

func TestDescriptions(t *testing.T) {
	ctx := animalContext(t)
	rows, err := mine.Descriptions(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 64)

	byKey := map[string]mine.DescriptionRow{}
	for _, r := range rows {
		byKey[r.Description.Key()] = r
	}

	f := byKey[mustVec(t, 5).Key()]
	assert.True(t, f.IsClosed)
	assert.True(t, f.IsKey)
	assert.True(t, f.IsPasskey)
	assert.False(t, f.IsProperPremise)
	assert.False(t, f.IsPseudoIntent)
	assert.Equal(t, 4, f.Support)

	a := byKey[mustVec(t, 0).Key()]
	assert.False(t, a.IsClosed)
	assert.True(t, a.IsKey)
	assert.True(t, a.IsPasskey)
	assert.True(t, a.IsProperPremise)
	assert.True(t, a.IsPseudoIntent)
	assert.Equal(t, []int{0, 5}, a.Intent.Indices())

	abf := byKey[mustVec(t, 0, 1, 5).Key()]
	assert.False(t, abf.IsClosed)
	assert.False(t, abf.IsKey)
	assert.True(t, abf.IsPseudoIntent)

	empty := byKey[bitvec.New(6).Key()]
	assert.True(t, empty.IsClosed)
	assert.True(t, empty.IsKey)
	assert.Equal(t, 5, empty.Support)
	assert.Equal(t, 1, empty.DeltaStability)
}

func TestPredicates_MatchDescriptionTable(t *testing.T) {
	ctx := animalContext(t)
	rows, err := mine.Descriptions(ctx)
	require.NoError(t, err)

	for _, r := range rows {
		closed, err := mine.IsClosed(ctx, r.Description)
		require.NoError(t, err)
		assert.Equal(t, r.IsClosed, closed, "IsClosed(%v)", r.Description)

		key, err := mine.IsKey(ctx, r.Description)
		require.NoError(t, err)
		assert.Equal(t, r.IsKey, key, "IsKey(%v)", r.Description)

		passkey, err := mine.IsPasskey(ctx, r.Description)
		require.NoError(t, err)
		assert.Equal(t, r.IsPasskey, passkey, "IsPasskey(%v)", r.Description)

		premise, err := mine.IsProperPremise(ctx, r.Description)
		require.NoError(t, err)
		assert.Equal(t, r.IsProperPremise, premise, "IsProperPremise(%v)", r.Description)

		pintent, err := mine.IsPseudoIntent(ctx, r.Description)
		require.NoError(t, err)
		assert.Equal(t, r.IsPseudoIntent, pintent, "IsPseudoIntent(%v)", r.Description)
	}
}

func TestDescriptions_Guard(t *testing.T) {
	rows := make([]bitvec.Vector, 2)
	rows[0] = bitvec.New(mine.MaxDescriptionAttrs + 1)
	rows[1] = bitvec.Full(mine.MaxDescriptionAttrs + 1)
	wide, err := core.FromRows(rows)
	require.NoError(t, err)

	_, err = mine.Descriptions(wide)
	assert.ErrorIs(t, err, mine.ErrTooManyAttributes)
}

func TestNilContexts(t *testing.T) {
	_, err := mine.Concepts(nil)
	assert.ErrorIs(t, err, mine.ErrNilContext)
	_, err = mine.Implications(nil, implications.Canonical)
	assert.ErrorIs(t, err, mine.ErrNilContext)
	_, err = mine.Descriptions(nil)
	assert.ErrorIs(t, err, mine.ErrNilContext)
	_, err = mine.IsClosed(nil, bitvec.New(1))
	assert.ErrorIs(t, err, mine.ErrNilContext)
}
