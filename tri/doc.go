// Package tri provides index arithmetic for triangular matrices stored in a
// compact one-dimensional layout.
//
// The tri package provides:
//
//   - Closed-form offset arithmetic for row-major packed lower and upper
//     triangles (LowerIndex, UpperIndex and friends), built on triangular
//     numbers (Num).
//   - Diagonal-excluding shape views over caller-owned storage: SimpleLower,
//     SimpleUpper and their Mut variants.
//   - Symmetric views, SymmetricLower and SymmetricUpper, where (i, j) and
//     (j, i) address the same packed slot.
//   - Converters between square [][]T matrices and packed triangles
//     (PackSimpleLower, PackSymmetricUpper, ...).
//
// A packed triangle of axis length n without its diagonal holds Num(n-1)
// elements; the shapes never allocate or mutate storage themselves — they
// compute offsets into a caller-supplied Vector and read or write through it.
//
// All operations are pure given (i, j, n). Concurrent reads are safe; a
// caller mutating shared storage must provide its own synchronization, and
// must treat the symmetric pair (i, j)/(j, i) as one write target.
//
// See the examples in this package for usage patterns.
package tri
