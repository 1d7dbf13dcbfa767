package tri

import "iter"

// SimpleLower is a read view of a packed lower triangle excluding its
// diagonal, over a caller-owned container of Num(n-1) elements.
//
// Logical rows run 1..n-1 and an element (i, j) is valid when j < i; row i
// holds i elements. Internally the view delegates to the diagonal-inclusive
// base arithmetic over an effective size of n-1, mapping logical row i to
// base row i-1:
//
//	n = 5          packed offsets
//	row 1:         [0]
//	row 2:         [1, 2]
//	row 3:         [3, 4, 5]
//	row 4:         [6, 7, 8, 9]
type SimpleLower[T any] struct {
	n   int       // axis length; valid coordinates lie in [0, n)
	vec Vector[T] // caller-owned packed storage, Len() == Num(n-1)
}

// NewSimpleLower builds a read view of axis length n over vec.
// Stage 1 (Validate): n >= 1, Num(n-1) addressable, vec.Len() == Num(n-1).
// Stage 2 (Finalize): wrap; no copying, vec stays caller-owned.
// Returns ErrBadAxis, ErrRangeExceeded or ErrSizeMismatch.
// Complexity: O(1).
func NewSimpleLower[T any](n int, vec Vector[T]) (*SimpleLower[T], error) {
	size, err := packedSize(n)
	if err != nil {
		return nil, err
	}
	if vec.Len() != size {
		return nil, ErrSizeMismatch
	}

	return &SimpleLower[T]{n: n, vec: vec}, nil
}

// N returns the axis length.
// Complexity: O(1).
func (t *SimpleLower[T]) N() int {
	return t.n
}

// Index returns the packed offset of element (i, j).
// Valid coordinates satisfy 0 <= j < i < n; the diagonal is rejected with
// ErrDiagonal, everything else invalid with ErrOutOfRange.
// Complexity: O(1).
func (t *SimpleLower[T]) Index(i, j int) (int, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, coordErrorf("SimpleLower.Index", i, j, ErrOutOfRange)
	}
	if i == j {
		return 0, coordErrorf("SimpleLower.Index", i, j, ErrDiagonal)
	}
	if j > i {
		return 0, coordErrorf("SimpleLower.Index", i, j, ErrOutOfRange)
	}

	// Row i >= 1 is guaranteed here; shift onto the base triangle.
	return LowerIndex(i-1, j), nil
}

// At returns the element stored at (i, j).
// Complexity: O(1).
func (t *SimpleLower[T]) At(i, j int) (T, error) {
	k, err := t.Index(i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return t.vec.At(k), nil
}

// RowStart returns the packed offset of the first element of row i.
// Row 0 does not exist in a no-diagonal lower triangle.
// Complexity: O(1).
func (t *SimpleLower[T]) RowStart(i int) (int, error) {
	if i < 1 || i >= t.n {
		return 0, axisErrorf("SimpleLower.RowStart", i, ErrOutOfRange)
	}

	return LowerRowStart(i - 1), nil
}

// ColStart returns the packed offset of the first element of column j.
// Columns run 0..n-2; column 0 still starts at offset 0 (no shift).
// Complexity: O(1).
func (t *SimpleLower[T]) ColStart(j int) (int, error) {
	if j < 0 || j >= t.n-1 {
		return 0, axisErrorf("SimpleLower.ColStart", j, ErrOutOfRange)
	}

	return LowerColStart(j), nil
}

// RowIndices returns the packed offsets of row i, ascending. The sequence is
// lazy and restartable.
func (t *SimpleLower[T]) RowIndices(i int) (iter.Seq[int], error) {
	if i < 1 || i >= t.n {
		return nil, axisErrorf("SimpleLower.RowIndices", i, ErrOutOfRange)
	}

	return LowerRowIndices(i - 1), nil
}

// ColIndices returns the packed offsets of column j, ascending: one offset
// per row i from j+1 to n-1.
func (t *SimpleLower[T]) ColIndices(j int) (iter.Seq[int], error) {
	if j < 0 || j >= t.n-1 {
		return nil, axisErrorf("SimpleLower.ColIndices", j, ErrOutOfRange)
	}

	return LowerColIndices(j, t.n-1), nil
}

// Row returns the elements of row i in column order.
func (t *SimpleLower[T]) Row(i int) (iter.Seq[T], error) {
	idx, err := t.RowIndices(i)
	if err != nil {
		return nil, err
	}

	return elements(t.vec, idx), nil
}

// Col returns the elements of column j in row order.
func (t *SimpleLower[T]) Col(j int) (iter.Seq[T], error) {
	idx, err := t.ColIndices(j)
	if err != nil {
		return nil, err
	}

	return elements(t.vec, idx), nil
}

// TriIndices enumerates every valid (i, j) pair in row-major order — the
// coordinate pair for each packed offset 0, 1, 2, ... in turn, rows starting
// at 1.
func (t *SimpleLower[T]) TriIndices() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i, j := range LowerTriIndices(t.n - 1) {
			if !yield(i+1, j) {
				return
			}
		}
	}
}

// SimpleLowerMut extends SimpleLower with write access. It requires a
// MutVector and shares all read operations with the read view.
type SimpleLowerMut[T any] struct {
	SimpleLower[T]
	mut MutVector[T] // same container as vec, with write capability
}

// NewSimpleLowerMut builds a mutable view of axis length n over vec.
// Validation is identical to NewSimpleLower.
func NewSimpleLowerMut[T any](n int, vec MutVector[T]) (*SimpleLowerMut[T], error) {
	base, err := NewSimpleLower[T](n, vec)
	if err != nil {
		return nil, err
	}

	return &SimpleLowerMut[T]{SimpleLower: *base, mut: vec}, nil
}

// Set assigns v at (i, j), with the same coordinate contract as Index.
// Complexity: O(1).
func (t *SimpleLowerMut[T]) Set(i, j int, v T) error {
	k, err := t.Index(i, j)
	if err != nil {
		return err
	}
	t.mut.Set(k, v)

	return nil
}
