package tri

import "iter"

// Base upper-triangle indexing: a row-major packing of an upper triangle
// including the diagonal, for an axis length n. Row i holds n-i elements and
// occupies offsets [Num(n)-Num(n-i), Num(n)-Num(n-i-1)):
//
//	[0, 1, 2, 3]
//	   [4, 5, 6]
//	      [7, 8]
//	         [9]
//
// Column j here is the offset within its row, not the absolute column: the
// element at absolute column c of row i has j = c - i. The shape views
// perform that adjustment. Callers using the base layer directly must keep
// 0 <= i < n and 0 <= j < n-i.

// UpperIndex returns the packed offset of the j-th element of row i.
// Complexity: O(1).
func UpperIndex(i, j, n int) int {
	return Num(n) - Num(n-i) + j
}

// UpperRowStart returns the packed offset of the first element of row i.
// Complexity: O(1).
func UpperRowStart(i, n int) int {
	return Num(n) - Num(n-i)
}

// UpperColStart returns the packed offset of the first element of column j.
// Column j first appears in row 0, at its j-th slot.
// Complexity: O(1).
func UpperColStart(j int) int {
	return j
}

// UpperRowIndices returns the offsets of row i: the contiguous range
// [UpperRowStart(i, n), UpperRowStart(i+1, n)), ascending. The sequence is
// lazy and restartable.
func UpperRowIndices(i, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		end := UpperRowStart(i+1, n)
		for k := UpperRowStart(i, n); k < end; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

// UpperColIndices returns the offsets of absolute column j in a triangle of
// axis length n: one offset per row r from 0 to j, exactly j+1 offsets,
// ascending.
func UpperColIndices(j, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for r := 0; r <= j; r++ {
			if !yield(UpperRowStart(r, n) + j - r) {
				return
			}
		}
	}
}

// UpperTriIndices enumerates every (i, j) with 0 <= i <= j < n in row-major
// order — the coordinate pair for each packed offset 0, 1, 2, ... in turn.
// The yielded j is the absolute column, not the in-row offset.
func UpperTriIndices(n int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}
