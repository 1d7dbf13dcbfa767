// SPDX-License-Identifier: MIT

// Package tri: container capability interfaces.
// The shapes never own storage. They depend only on the minimal read/write
// capabilities below, so any fixed-length random-access collection — a flat
// slice, a memory-mapped region, a column of a larger buffer — can back a
// triangle by implementing Vector (and MutVector for the Mut shapes).
package tri

import "iter"

// Vector is the read capability required from a packed container:
// a fixed length and integer-indexed element access.
//
// At must accept every k in [0, Len()); behavior outside that range is the
// implementation's own (a slice-backed Vector panics like a slice). The
// shapes only pass offsets they have validated against Len().
type Vector[T any] interface {
	// Len returns the number of packed elements.
	// Complexity: O(1).
	Len() int

	// At returns the element at packed offset k.
	// Complexity: O(1) expected.
	At(k int) T
}

// MutVector extends Vector with write access for the Mut shape variants.
type MutVector[T any] interface {
	Vector[T]

	// Set assigns v at packed offset k.
	// Complexity: O(1) expected.
	Set(k int, v T)
}

// packedSize returns Num(n-1), the packed element count of a no-diagonal
// triangle with axis length n, validating n >= 1 and overflow.
func packedSize(n int) (int, error) {
	if n < 1 {
		return 0, ErrBadAxis
	}

	return NumChecked(n - 1)
}

// elements maps a sequence of packed offsets to the elements stored there.
// The returned sequence is restartable whenever idx is.
func elements[T any](vec Vector[T], idx iter.Seq[int]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := range idx {
			if !yield(vec.At(k)) {
				return
			}
		}
	}
}
