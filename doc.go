// Package trimat provides compact storage arithmetic for triangular
// matrices: closed-form mappings between logical (row, column) coordinates
// and offsets into a packed one-dimensional sequence.
//
// 🚀 What is trimat?
//
//	A small, pure-Go library for working with the half of a square matrix
//	you actually store:
//		• Base packings: row-major lower and upper triangles with diagonal
//		• Simple shapes: upper/lower triangles excluding the diagonal
//		• Symmetric shapes: (i, j) and (j, i) address the same packed slot
//		• Lazy, restartable row/column offset and element scans
//		• Converters between square [][]T matrices and packed triangles
//
// ✨ Why choose trimat?
//
//   - Storage-agnostic – shapes compute offsets into any container that
//     implements the two-method Vector interface
//   - Pure arithmetic – every operation is a closed-form function of
//     (i, j, n); nothing is cached, nothing allocates on the hot path
//   - Typed errors – invalid coordinates surface as sentinel errors,
//     never panics
//
// Everything lives in one subpackage:
//
//	tri/ — triangular numbers, base index arithmetic, shape views, converters
//
// Quick ASCII example, a 4-axis lower triangle without its diagonal:
//
//	row 1: [0]
//	row 2: [1, 2]
//	row 3: [3, 4, 5]
//
//	six packed elements address every unordered pair of four indices.
//
// Dive into the package examples for usage patterns.
//
//	go get github.com/katalvlaran/trimat/tri
package trimat
