package tri

import "iter"

// SimpleUpper is a read view of a packed upper triangle excluding its
// diagonal, over a caller-owned container of Num(n-1) elements.
//
// Logical columns run 1..n-1 and an element (i, j) is valid when i < j; row
// i holds n-1-i elements. The view delegates to the diagonal-inclusive base
// arithmetic over an effective size of n-1, mapping the absolute column j to
// the in-row offset j-(i+1):
//
//	n = 5          packed offsets
//	row 0:         [0, 1, 2, 3]
//	row 1:            [4, 5, 6]
//	row 2:               [7, 8]
//	row 3:                  [9]
type SimpleUpper[T any] struct {
	n   int       // axis length; valid coordinates lie in [0, n)
	vec Vector[T] // caller-owned packed storage, Len() == Num(n-1)
}

// NewSimpleUpper builds a read view of axis length n over vec.
// Validation mirrors NewSimpleLower: n >= 1, Num(n-1) addressable,
// vec.Len() == Num(n-1).
// Complexity: O(1).
func NewSimpleUpper[T any](n int, vec Vector[T]) (*SimpleUpper[T], error) {
	size, err := packedSize(n)
	if err != nil {
		return nil, err
	}
	if vec.Len() != size {
		return nil, ErrSizeMismatch
	}

	return &SimpleUpper[T]{n: n, vec: vec}, nil
}

// N returns the axis length.
// Complexity: O(1).
func (t *SimpleUpper[T]) N() int {
	return t.n
}

// Index returns the packed offset of element (i, j).
// Valid coordinates satisfy 0 <= i < j < n; the diagonal is rejected with
// ErrDiagonal, everything else invalid with ErrOutOfRange.
// Complexity: O(1).
func (t *SimpleUpper[T]) Index(i, j int) (int, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, coordErrorf("SimpleUpper.Index", i, j, ErrOutOfRange)
	}
	if i == j {
		return 0, coordErrorf("SimpleUpper.Index", i, j, ErrDiagonal)
	}
	if i > j {
		return 0, coordErrorf("SimpleUpper.Index", i, j, ErrOutOfRange)
	}

	// Column j >= 1 is guaranteed here; shift onto the base triangle.
	return UpperIndex(i, j-(i+1), t.n-1), nil
}

// At returns the element stored at (i, j).
// Complexity: O(1).
func (t *SimpleUpper[T]) At(i, j int) (T, error) {
	k, err := t.Index(i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return t.vec.At(k), nil
}

// RowStart returns the packed offset of the first element of row i.
// Rows run 0..n-2.
// Complexity: O(1).
func (t *SimpleUpper[T]) RowStart(i int) (int, error) {
	if i < 0 || i >= t.n-1 {
		return 0, axisErrorf("SimpleUpper.RowStart", i, ErrOutOfRange)
	}

	return UpperRowStart(i, t.n-1), nil
}

// ColStart returns the packed offset of the first element of column j.
// Column 0 does not exist in a no-diagonal upper triangle.
// Complexity: O(1).
func (t *SimpleUpper[T]) ColStart(j int) (int, error) {
	if j < 1 || j >= t.n {
		return 0, axisErrorf("SimpleUpper.ColStart", j, ErrOutOfRange)
	}

	return UpperColStart(j - 1), nil
}

// RowIndices returns the packed offsets of row i, ascending. The sequence is
// lazy and restartable.
func (t *SimpleUpper[T]) RowIndices(i int) (iter.Seq[int], error) {
	if i < 0 || i >= t.n-1 {
		return nil, axisErrorf("SimpleUpper.RowIndices", i, ErrOutOfRange)
	}

	return UpperRowIndices(i, t.n-1), nil
}

// ColIndices returns the packed offsets of column j, ascending: one offset
// per row i from 0 to j-1.
func (t *SimpleUpper[T]) ColIndices(j int) (iter.Seq[int], error) {
	if j < 1 || j >= t.n {
		return nil, axisErrorf("SimpleUpper.ColIndices", j, ErrOutOfRange)
	}

	return UpperColIndices(j-1, t.n-1), nil
}

// Row returns the elements of row i in column order.
func (t *SimpleUpper[T]) Row(i int) (iter.Seq[T], error) {
	idx, err := t.RowIndices(i)
	if err != nil {
		return nil, err
	}

	return elements(t.vec, idx), nil
}

// Col returns the elements of column j in row order.
func (t *SimpleUpper[T]) Col(j int) (iter.Seq[T], error) {
	idx, err := t.ColIndices(j)
	if err != nil {
		return nil, err
	}

	return elements(t.vec, idx), nil
}

// TriIndices enumerates every valid (i, j) pair in row-major order — the
// coordinate pair for each packed offset 0, 1, 2, ... in turn, columns
// starting one past the row.
func (t *SimpleUpper[T]) TriIndices() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i, j := range UpperTriIndices(t.n - 1) {
			if !yield(i, j+1) {
				return
			}
		}
	}
}

// SimpleUpperMut extends SimpleUpper with write access.
type SimpleUpperMut[T any] struct {
	SimpleUpper[T]
	mut MutVector[T] // same container as vec, with write capability
}

// NewSimpleUpperMut builds a mutable view of axis length n over vec.
// Validation is identical to NewSimpleUpper.
func NewSimpleUpperMut[T any](n int, vec MutVector[T]) (*SimpleUpperMut[T], error) {
	base, err := NewSimpleUpper[T](n, vec)
	if err != nil {
		return nil, err
	}

	return &SimpleUpperMut[T]{SimpleUpper: *base, mut: vec}, nil
}

// Set assigns v at (i, j), with the same coordinate contract as Index.
// Complexity: O(1).
func (t *SimpleUpperMut[T]) Set(i, j int, v T) error {
	k, err := t.Index(i, j)
	if err != nil {
		return err
	}
	t.mut.Set(k, v)

	return nil
}
