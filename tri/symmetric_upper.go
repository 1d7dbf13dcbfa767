package tri

import "iter"

// SymmetricUpper views the same packed storage as SimpleUpper — an upper
// triangle of Num(n-1) elements without its diagonal — as a symmetric
// matrix: any (i, j) with i != j is valid, and (i, j) aliases (j, i).
//
// An access below the diagonal mirrors to the transposed position before the
// upper-triangle arithmetic applies. Row and column scans are the same
// sequence: the n-1 offsets pairing index i with every other index, ordered
// by the other coordinate ascending.
type SymmetricUpper[T any] struct {
	n   int       // axis length; valid coordinates lie in [0, n)
	vec Vector[T] // caller-owned packed storage, Len() == Num(n-1)
}

// NewSymmetricUpper builds a read view of axis length n over vec.
// Validation mirrors NewSimpleUpper: n >= 1, Num(n-1) addressable,
// vec.Len() == Num(n-1).
// Complexity: O(1).
func NewSymmetricUpper[T any](n int, vec Vector[T]) (*SymmetricUpper[T], error) {
	size, err := packedSize(n)
	if err != nil {
		return nil, err
	}
	if vec.Len() != size {
		return nil, ErrSizeMismatch
	}

	return &SymmetricUpper[T]{n: n, vec: vec}, nil
}

// N returns the axis length.
// Complexity: O(1).
func (t *SymmetricUpper[T]) N() int {
	return t.n
}

// Index returns the packed offset of element (i, j). (i, j) and (j, i)
// yield the same offset; the diagonal is rejected with ErrDiagonal.
// Complexity: O(1).
func (t *SymmetricUpper[T]) Index(i, j int) (int, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, coordErrorf("SymmetricUpper.Index", i, j, ErrOutOfRange)
	}
	if i == j {
		return 0, coordErrorf("SymmetricUpper.Index", i, j, ErrDiagonal)
	}
	// Mirror below-diagonal requests to the stored upper half.
	if i > j {
		i, j = j, i
	}

	return UpperIndex(i, j-(i+1), t.n-1), nil
}

// At returns the element stored at (i, j).
// Complexity: O(1).
func (t *SymmetricUpper[T]) At(i, j int) (T, error) {
	k, err := t.Index(i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return t.vec.At(k), nil
}

// RowIndices returns the packed offsets pairing index i with every other
// index 0..n-1, ordered by the other coordinate ascending: first the column
// scan over the rows above (j < i, where i is the column), then the native
// row scan (j > i, where i is the row). Exactly n-1 offsets.
func (t *SymmetricUpper[T]) RowIndices(i int) (iter.Seq[int], error) {
	if i < 0 || i >= t.n {
		return nil, axisErrorf("SymmetricUpper.RowIndices", i, ErrOutOfRange)
	}
	n := t.n

	return func(yield func(int) bool) {
		if i > 0 {
			for k := range UpperColIndices(i-1, n-1) {
				if !yield(k) {
					return
				}
			}
		}
		if i < n-1 {
			for k := range UpperRowIndices(i, n-1) {
				if !yield(k) {
					return
				}
			}
		}
	}, nil
}

// ColIndices is identical to RowIndices by symmetry.
func (t *SymmetricUpper[T]) ColIndices(j int) (iter.Seq[int], error) {
	if j < 0 || j >= t.n {
		return nil, axisErrorf("SymmetricUpper.ColIndices", j, ErrOutOfRange)
	}

	return t.RowIndices(j)
}

// Row returns the elements pairing index i with every other index, ordered
// by the other coordinate ascending.
func (t *SymmetricUpper[T]) Row(i int) (iter.Seq[T], error) {
	idx, err := t.RowIndices(i)
	if err != nil {
		return nil, err
	}

	return elements(t.vec, idx), nil
}

// Col is identical to Row by symmetry.
func (t *SymmetricUpper[T]) Col(j int) (iter.Seq[T], error) {
	return t.Row(j)
}

// SymmetricUpperMut extends SymmetricUpper with write access. (i, j) and
// (j, i) alias the same slot; writers must treat them as one target.
type SymmetricUpperMut[T any] struct {
	SymmetricUpper[T]
	mut MutVector[T] // same container as vec, with write capability
}

// NewSymmetricUpperMut builds a mutable view of axis length n over vec.
// Validation is identical to NewSymmetricUpper.
func NewSymmetricUpperMut[T any](n int, vec MutVector[T]) (*SymmetricUpperMut[T], error) {
	base, err := NewSymmetricUpper[T](n, vec)
	if err != nil {
		return nil, err
	}

	return &SymmetricUpperMut[T]{SymmetricUpper: *base, mut: vec}, nil
}

// Set assigns v at (i, j) — equivalently at (j, i).
// Complexity: O(1).
func (t *SymmetricUpperMut[T]) Set(i, j int, v T) error {
	k, err := t.Index(i, j)
	if err != nil {
		return err
	}
	t.mut.Set(k, v)

	return nil
}
