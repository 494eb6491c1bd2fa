package vector

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomFill(t *testing.T) {
	v := Of(100)
	require.NoError(t, v.RandomFill(NewSource(1), 50, -3, 3))
	assert.Equal(t, 51, v.Len())
	assert.Equal(t, 51, v.Cap())

	x, _ := v.At(0)
	assert.Equal(t, 100, x, "existing elements are kept")
	for _, x := range v.Values()[1:] {
		assert.GreaterOrEqual(t, x, -3)
		assert.LessOrEqual(t, x, 3)
	}
}

func TestRandomFillSingleValue(t *testing.T) {
	v := New()
	require.NoError(t, v.RandomFill(NewSource(1), 4, 7, 7))
	assert.Equal(t, []int{7, 7, 7, 7}, v.Values())
}

func TestRandomFillFullRange(t *testing.T) {
	v := New()
	require.NoError(t, v.RandomFill(NewSource(1), 16, math.MinInt, math.MaxInt))
	assert.Equal(t, 16, v.Len())
}

func TestRandomFillInvalid(t *testing.T) {
	v := Of(1, 2)
	assert.ErrorIs(t, v.RandomFill(NewSource(1), 3, 10, 1), ErrInvalidRange)
	assert.ErrorIs(t, v.RandomFill(NewSource(1), -1, 1, 10), ErrInvalidCount)
	assert.ErrorIs(t, v.RandomFill(NewSource(1), math.MaxInt, 0, 0), ErrInvalidCount)
	assert.ErrorIs(t, v.RandomFill(NewSource(1), math.MaxInt-1, 0, 0), ErrInvalidCount)
	assert.Equal(t, []int{1, 2}, v.Values())
	assert.Equal(t, 2, v.Cap())
}

func TestRandomFillReproducible(t *testing.T) {
	a, b := New(), New()
	require.NoError(t, a.RandomFill(NewSource(42), 20, 0, 1000))
	require.NoError(t, b.RandomFill(NewSource(42), 20, 0, 1000))
	assert.True(t, a.Equal(b))
}

func TestShuffle(t *testing.T) {
	v := New()
	for i := 0; i < 64; i++ {
		v.Append(i)
	}
	orig := v.Clone()

	v.Shuffle(NewSource(7))
	assert.Equal(t, 64, v.Len())
	assert.False(t, v.Equal(orig), "64 elements should not stay in order")

	v.SortAsc()
	assert.True(t, v.Equal(orig), "shuffle must be a permutation")
}

func TestShuffleReproducible(t *testing.T) {
	a := Of(1, 2, 3, 4, 5, 6, 7, 8)
	b := a.Clone()
	a.Shuffle(NewSource(3))
	b.Shuffle(NewSource(3))
	assert.True(t, a.Equal(b))
}

func TestShuffleEmpty(t *testing.T) {
	v := New()
	v.Shuffle(TimeSource())
	assert.Zero(t, v.Len())
}

// The demonstration sequence run by the command line entry point.
func TestDemoScenario(t *testing.T) {
	v := New()
	require.NoError(t, v.RandomFill(NewSource(2024), 5, 1, 10))
	require.Equal(t, 5, v.Len())
	for _, x := range v.Values() {
		assert.True(t, x >= 1 && x <= 10, "%d not in [1,10]", x)
	}

	require.NoError(t, v.Insert(2, 42))
	require.Equal(t, 6, v.Len())
	x, err := v.At(2)
	require.NoError(t, err)
	assert.Equal(t, 42, x)

	require.NoError(t, v.RemoveAt(3))
	require.Equal(t, 5, v.Len())

	before := v.Values()
	v.Reverse()
	after := v.Values()
	for i := range before {
		assert.Equal(t, before[i], after[len(after)-1-i])
	}

	v.SortAsc()
	vals := v.Values()
	for i := 1; i < len(vals); i++ {
		assert.LessOrEqual(t, vals[i-1], vals[i])
	}
}
