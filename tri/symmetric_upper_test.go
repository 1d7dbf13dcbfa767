package tri_test

import (
	"slices"
	"testing"

	"github.com/katalvlaran/trimat/tri"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSymUpper returns a mutable symmetric view over the same packed upper
// storage as newUpper: axis length 5, elements equal to their offsets.
func newSymUpper(t *testing.T) *tri.SymmetricUpperMut[int] {
	t.Helper()
	v := tri.WrapSlice([]int{
		0, 1, 2, 3,
		4, 5, 6,
		7, 8,
		9,
	})
	m, err := tri.NewSymmetricUpperMut[int](5, v)
	require.NoError(t, err, "fixture construction must succeed")

	return m
}

// TestSymmetricUpper_At verifies both orientations of every pair: the upper
// half reads like SimpleUpper and the lower half mirrors it.
func TestSymmetricUpper_At(t *testing.T) {
	m := newSymUpper(t)
	cases := []struct{ i, j, want int }{
		{0, 1, 0}, {0, 2, 1}, {0, 3, 2}, {0, 4, 3},
		{1, 0, 0}, {1, 2, 4}, {1, 3, 5}, {1, 4, 6},
		{2, 0, 1}, {2, 1, 4}, {2, 3, 7}, {2, 4, 8},
		{3, 0, 2}, {3, 1, 5}, {3, 2, 7}, {3, 4, 9},
		{4, 0, 3}, {4, 1, 6}, {4, 2, 8}, {4, 3, 9},
	}
	for _, c := range cases {
		got, err := m.At(c.i, c.j)
		require.NoError(t, err, "At(%d,%d)", c.i, c.j)
		assert.Equal(t, c.want, got, "At(%d,%d)", c.i, c.j)
	}
}

// TestSymmetricUpper_IndexAliasing verifies Index(i,j) == Index(j,i) for
// every off-diagonal pair.
func TestSymmetricUpper_IndexAliasing(t *testing.T) {
	m := newSymUpper(t)
	for i := 0; i < m.N(); i++ {
		for j := 0; j < m.N(); j++ {
			if i == j {
				continue
			}
			a, err := m.Index(i, j)
			require.NoError(t, err)
			b, err := m.Index(j, i)
			require.NoError(t, err)
			assert.Equal(t, a, b, "Index(%d,%d) and Index(%d,%d) must alias", i, j, j, i)
		}
	}
}

// TestSymmetricUpper_SetAliases verifies a write through one orientation is
// visible through the other.
func TestSymmetricUpper_SetAliases(t *testing.T) {
	m := newSymUpper(t)
	require.NoError(t, m.Set(3, 1, 10)) // lower-half write mirrors to (1, 3)
	require.NoError(t, m.Set(2, 3, 11))

	got, err := m.At(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 10, got)
	got, err = m.At(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 11, got)
}

// TestSymmetricUpper_RowIndices verifies the concatenated scan: the column
// scan over the rows above first (j < i), then the native row offsets
// (j > i), ordered by the other coordinate ascending.
func TestSymmetricUpper_RowIndices(t *testing.T) {
	m := newSymUpper(t)
	want := map[int][]int{
		0: {0, 1, 2, 3},
		1: {0, 4, 5, 6},
		2: {1, 4, 7, 8},
		3: {2, 5, 7, 9},
		4: {3, 6, 8, 9},
	}
	for i, w := range want {
		seq, err := m.RowIndices(i)
		require.NoError(t, err, "RowIndices(%d)", i)
		assert.Equal(t, w, slices.Collect(seq), "RowIndices(%d)", i)
	}
}

// TestSymmetricUpper_ColIndices verifies columns equal rows by symmetry.
func TestSymmetricUpper_ColIndices(t *testing.T) {
	m := newSymUpper(t)
	for i := 0; i < m.N(); i++ {
		rows, err := m.RowIndices(i)
		require.NoError(t, err)
		cols, err := m.ColIndices(i)
		require.NoError(t, err)
		assert.Equal(t, slices.Collect(rows), slices.Collect(cols), "index %d", i)
	}
}

// TestSymmetricUpper_RowElements verifies Row and Col yield the paired
// values in other-coordinate order.
func TestSymmetricUpper_RowElements(t *testing.T) {
	m := newSymUpper(t)

	row, err := m.Row(3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 7, 9}, slices.Collect(row))

	col, err := m.Col(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 5, 6}, slices.Collect(col))
}

// TestSymmetricUpper_ScanMatchesIndex verifies each scan offset equals
// Index(i, other) for ascending other.
func TestSymmetricUpper_ScanMatchesIndex(t *testing.T) {
	m := newSymUpper(t)
	for i := 0; i < m.N(); i++ {
		seq, err := m.RowIndices(i)
		require.NoError(t, err)
		offsets := slices.Collect(seq)
		require.Len(t, offsets, m.N()-1, "index %d", i)

		k := 0
		for other := 0; other < m.N(); other++ {
			if other == i {
				continue
			}
			want, err := m.Index(i, other)
			require.NoError(t, err)
			assert.Equal(t, want, offsets[k], "index %d, other %d", i, other)
			k++
		}
	}
}

// TestSymmetricUpper_DiagonalRejected verifies ErrDiagonal for every i.
func TestSymmetricUpper_DiagonalRejected(t *testing.T) {
	m := newSymUpper(t)
	for i := 0; i < m.N(); i++ {
		_, err := m.At(i, i)
		assert.ErrorIs(t, err, tri.ErrDiagonal, "At(%d,%d)", i, i)
		assert.ErrorIs(t, m.Set(i, i, 0), tri.ErrDiagonal, "Set(%d,%d)", i, i)
	}
}

// TestSymmetricUpper_OutOfRange verifies axis bounds on both coordinates
// and on the scans.
func TestSymmetricUpper_OutOfRange(t *testing.T) {
	m := newSymUpper(t)

	_, err := m.At(0, 5)
	assert.ErrorIs(t, err, tri.ErrOutOfRange)
	_, err = m.At(-1, 2)
	assert.ErrorIs(t, err, tri.ErrOutOfRange)
	_, err = m.RowIndices(-1)
	assert.ErrorIs(t, err, tri.ErrOutOfRange)
	_, err = m.ColIndices(5)
	assert.ErrorIs(t, err, tri.ErrOutOfRange)
	_, err = m.Col(9)
	assert.ErrorIs(t, err, tri.ErrOutOfRange)
}

// TestSymmetricUpper_ConstructorValidation verifies axis and size checks.
func TestSymmetricUpper_ConstructorValidation(t *testing.T) {
	_, err := tri.NewSymmetricUpper[int](-1, tri.WrapSlice([]int{}))
	assert.ErrorIs(t, err, tri.ErrBadAxis)

	_, err = tri.NewSymmetricUpper[int](4, tri.WrapSlice(make([]int, 10)))
	assert.ErrorIs(t, err, tri.ErrSizeMismatch)
}
