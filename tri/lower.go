package tri

import "iter"

// Base lower-triangle indexing: a row-major packing of a lower triangle
// including the diagonal. Row i occupies offsets [Num(i), Num(i+1)), i.e.
// holds i+1 elements:
//
//	[0]
//	[1, 2]
//	[3, 4, 5]
//	[6, 7, 8, 9]
//
// These functions are pure arithmetic with documented preconditions and no
// validation; the shape views built on top of them validate coordinates and
// return sentinel errors. Callers using the base layer directly must keep
// 0 <= j <= i < n.

// LowerIndex returns the packed offset of element (i, j), j <= i.
// Complexity: O(1).
func LowerIndex(i, j int) int {
	return Num(i) + j
}

// LowerRowStart returns the packed offset of the first element of row i.
// Complexity: O(1).
func LowerRowStart(i int) int {
	return Num(i)
}

// LowerColStart returns the packed offset of the first element of column j.
// The first row containing column j is row j, at its j-th slot.
// Complexity: O(1).
func LowerColStart(j int) int {
	return Num(j) + j
}

// LowerRowIndices returns the offsets of row i: the contiguous range
// [LowerRowStart(i), LowerRowStart(i+1)), ascending. The sequence is lazy
// and restartable.
func LowerRowIndices(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		end := LowerRowStart(i + 1)
		for k := LowerRowStart(i); k < end; k++ {
			if !yield(k) {
				return
			}
		}
	}
}

// LowerColIndices returns the offsets of column j in a triangle of n rows:
// one offset per row r from j to n-1, exactly n-j offsets, ascending.
func LowerColIndices(j, n int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for r := j; r < n; r++ {
			if !yield(LowerRowStart(r) + j) {
				return
			}
		}
	}
}

// LowerTriIndices enumerates every (i, j) with 0 <= j <= i < n in row-major
// order — the coordinate pair for each packed offset 0, 1, 2, ... in turn.
func LowerTriIndices(n int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 0; i < n; i++ {
			for j := 0; j <= i; j++ {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}
