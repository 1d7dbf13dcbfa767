package tri

import "iter"

// SymmetricLower views the same packed storage as SimpleLower — a lower
// triangle of Num(n-1) elements without its diagonal — as a symmetric
// matrix: any (i, j) with i != j is valid, and (i, j) aliases (j, i).
//
// An access above the diagonal mirrors to the transposed position before the
// lower-triangle arithmetic applies. Row and column scans are therefore the
// same sequence: the n-1 offsets pairing index i with every other index,
// ordered by the other coordinate ascending.
type SymmetricLower[T any] struct {
	n   int       // axis length; valid coordinates lie in [0, n)
	vec Vector[T] // caller-owned packed storage, Len() == Num(n-1)
}

// NewSymmetricLower builds a read view of axis length n over vec.
// Validation mirrors NewSimpleLower: n >= 1, Num(n-1) addressable,
// vec.Len() == Num(n-1).
// Complexity: O(1).
func NewSymmetricLower[T any](n int, vec Vector[T]) (*SymmetricLower[T], error) {
	size, err := packedSize(n)
	if err != nil {
		return nil, err
	}
	if vec.Len() != size {
		return nil, ErrSizeMismatch
	}

	return &SymmetricLower[T]{n: n, vec: vec}, nil
}

// N returns the axis length.
// Complexity: O(1).
func (t *SymmetricLower[T]) N() int {
	return t.n
}

// Index returns the packed offset of element (i, j). (i, j) and (j, i)
// yield the same offset; the diagonal is rejected with ErrDiagonal.
// Complexity: O(1).
func (t *SymmetricLower[T]) Index(i, j int) (int, error) {
	if i < 0 || i >= t.n || j < 0 || j >= t.n {
		return 0, coordErrorf("SymmetricLower.Index", i, j, ErrOutOfRange)
	}
	if i == j {
		return 0, coordErrorf("SymmetricLower.Index", i, j, ErrDiagonal)
	}
	// Mirror above-diagonal requests to the stored lower half.
	if i < j {
		i, j = j, i
	}

	return LowerIndex(i-1, j), nil
}

// At returns the element stored at (i, j).
// Complexity: O(1).
func (t *SymmetricLower[T]) At(i, j int) (T, error) {
	k, err := t.Index(i, j)
	if err != nil {
		var zero T
		return zero, err
	}

	return t.vec.At(k), nil
}

// RowIndices returns the packed offsets pairing index i with every other
// index 0..n-1, ordered by the other coordinate ascending: first the native
// row scan (j < i, where i is the row), then the column scan over the rows
// below (j > i, where i is the column). Exactly n-1 offsets.
func (t *SymmetricLower[T]) RowIndices(i int) (iter.Seq[int], error) {
	if i < 0 || i >= t.n {
		return nil, axisErrorf("SymmetricLower.RowIndices", i, ErrOutOfRange)
	}
	n := t.n

	return func(yield func(int) bool) {
		if i > 0 {
			for k := range LowerRowIndices(i - 1) {
				if !yield(k) {
					return
				}
			}
		}
		if i < n-1 {
			for k := range LowerColIndices(i, n-1) {
				if !yield(k) {
					return
				}
			}
		}
	}, nil
}

// ColIndices is identical to RowIndices by symmetry.
func (t *SymmetricLower[T]) ColIndices(j int) (iter.Seq[int], error) {
	if j < 0 || j >= t.n {
		return nil, axisErrorf("SymmetricLower.ColIndices", j, ErrOutOfRange)
	}

	return t.RowIndices(j)
}

// Row returns the elements pairing index i with every other index, ordered
// by the other coordinate ascending.
func (t *SymmetricLower[T]) Row(i int) (iter.Seq[T], error) {
	idx, err := t.RowIndices(i)
	if err != nil {
		return nil, err
	}

	return elements(t.vec, idx), nil
}

// Col is identical to Row by symmetry.
func (t *SymmetricLower[T]) Col(j int) (iter.Seq[T], error) {
	return t.Row(j)
}

// SymmetricLowerMut extends SymmetricLower with write access. (i, j) and
// (j, i) alias the same slot; writers must treat them as one target.
type SymmetricLowerMut[T any] struct {
	SymmetricLower[T]
	mut MutVector[T] // same container as vec, with write capability
}

// NewSymmetricLowerMut builds a mutable view of axis length n over vec.
// Validation is identical to NewSymmetricLower.
func NewSymmetricLowerMut[T any](n int, vec MutVector[T]) (*SymmetricLowerMut[T], error) {
	base, err := NewSymmetricLower[T](n, vec)
	if err != nil {
		return nil, err
	}

	return &SymmetricLowerMut[T]{SymmetricLower: *base, mut: vec}, nil
}

// Set assigns v at (i, j) — equivalently at (j, i).
// Complexity: O(1).
func (t *SymmetricLowerMut[T]) Set(i, j int, v T) error {
	k, err := t.Index(i, j)
	if err != nil {
		return err
	}
	t.mut.Set(k, v)

	return nil
}
