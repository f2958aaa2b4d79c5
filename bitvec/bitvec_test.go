package bitvec_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lbrehon/galois/bitvec"
)

// mustVec builds a vector or fails the test; keeps fixtures terse.
func mustVec(t *testing.T, width int, idx ...int) bitvec.Vector {
	t.Helper()
	v, err := bitvec.FromIndices(width, idx...)
	require.NoError(t, err)
	return v
}

func TestFromIndices_Errors(t *testing.T) {
	_, err := bitvec.FromIndices(0)
	assert.ErrorIs(t, err, bitvec.ErrBadWidth)

	_, err = bitvec.FromIndices(-3, 1)
	assert.ErrorIs(t, err, bitvec.ErrBadWidth)

	_, err = bitvec.FromIndices(6, 6)
	assert.ErrorIs(t, err, bitvec.ErrOutOfRange)

	_, err = bitvec.FromIndices(6, -1)
	assert.ErrorIs(t, err, bitvec.ErrOutOfRange)
}

func TestSetClearTest(t *testing.T) {
	v := bitvec.New(70) // spans two words
	require.NoError(t, v.Set(0))
	require.NoError(t, v.Set(69))
	assert.True(t, v.Test(0))
	assert.True(t, v.Test(69))
	assert.False(t, v.Test(35))
	assert.False(t, v.Test(70), "out-of-range Test reports false")

	require.NoError(t, v.Clear(0))
	assert.False(t, v.Test(0))
	assert.Equal(t, 1, v.Count())

	assert.True(t, errors.Is(v.Set(70), bitvec.ErrOutOfRange))
	assert.True(t, errors.Is(v.Clear(-1), bitvec.ErrOutOfRange))
}

func TestFullAndTrim(t *testing.T) {
	v := bitvec.Full(70)
	assert.Equal(t, 70, v.Count())
	assert.True(t, v.All())

	// The complement of full must be empty: unused high word bits stay clear.
	assert.True(t, v.Not().None())
}

func TestCloneIndependence(t *testing.T) {
	v := mustVec(t, 6, 1, 3)
	c := v.Clone()
	require.NoError(t, c.Set(5))
	assert.False(t, v.Test(5))
	assert.Equal(t, []int{1, 3}, v.Indices())
	assert.Equal(t, []int{1, 3, 5}, c.Indices())
}

func TestKeyDistinguishesVectors(t *testing.T) {
	a := mustVec(t, 6, 0, 2)
	b := mustVec(t, 6, 0, 3)
	c := mustVec(t, 6, 0, 2)
	assert.NotEqual(t, a.Key(), b.Key())
	assert.Equal(t, a.Key(), c.Key())
}

func TestString(t *testing.T) {
	assert.Equal(t, "{0, 3, 5}", mustVec(t, 6, 0, 3, 5).String())
	assert.Equal(t, "{}", bitvec.New(6).String())
}
