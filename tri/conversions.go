// Package tri provides converters between square [][]T matrices and packed
// triangles. Pack* functions allocate a fresh Slice and return a mutable
// shape view over it; Square methods expand a view back into a dense square.
package tri

// squareSize validates that sq is square (every row as long as there are
// rows) and returns its axis length. Returns ErrNonSquare for ragged input
// and ErrBadAxis for an empty matrix.
func squareSize[T any](sq [][]T) (int, error) {
	n := len(sq)
	if n == 0 {
		return 0, ErrBadAxis
	}
	for _, row := range sq {
		if len(row) != n {
			return 0, ErrNonSquare
		}
	}

	return n, nil
}

// PackSimpleLower packs the strict lower triangle of sq — every sq[i][j]
// with j < i — into a fresh container and returns a mutable lower view.
// The diagonal and upper half of sq are ignored.
//
// Time Complexity: O(n²)
// Memory: O(n²)
func PackSimpleLower[T any](sq [][]T) (*SimpleLowerMut[T], error) {
	n, err := squareSize(sq)
	if err != nil {
		return nil, err
	}
	vec, err := NewSlice[T](n)
	if err != nil {
		return nil, err
	}
	view, err := NewSimpleLowerMut[T](n, vec)
	if err != nil {
		return nil, err
	}
	for i, j := range view.TriIndices() {
		if err = view.Set(i, j, sq[i][j]); err != nil {
			return nil, err
		}
	}

	return view, nil
}

// PackSimpleUpper packs the strict upper triangle of sq — every sq[i][j]
// with i < j — into a fresh container and returns a mutable upper view.
// The diagonal and lower half of sq are ignored.
//
// Time Complexity: O(n²)
// Memory: O(n²)
func PackSimpleUpper[T any](sq [][]T) (*SimpleUpperMut[T], error) {
	n, err := squareSize(sq)
	if err != nil {
		return nil, err
	}
	vec, err := NewSlice[T](n)
	if err != nil {
		return nil, err
	}
	view, err := NewSimpleUpperMut[T](n, vec)
	if err != nil {
		return nil, err
	}
	for i, j := range view.TriIndices() {
		if err = view.Set(i, j, sq[i][j]); err != nil {
			return nil, err
		}
	}

	return view, nil
}

// PackSymmetricLower packs the strict lower triangle of a symmetric sq and
// returns a mutable symmetric view. Returns ErrAsymmetric when any
// sq[i][j] != sq[j][i]; the diagonal is ignored.
//
// Time Complexity: O(n²)
// Memory: O(n²)
func PackSymmetricLower[T comparable](sq [][]T) (*SymmetricLowerMut[T], error) {
	n, err := symmetricSize(sq)
	if err != nil {
		return nil, err
	}
	vec, err := NewSlice[T](n)
	if err != nil {
		return nil, err
	}
	view, err := NewSymmetricLowerMut[T](n, vec)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if err = view.Set(i, j, sq[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return view, nil
}

// PackSymmetricUpper packs the strict lower triangle of a symmetric sq and
// returns a mutable symmetric view in the upper orientation. Returns
// ErrAsymmetric when any sq[i][j] != sq[j][i]; the diagonal is ignored.
//
// Time Complexity: O(n²)
// Memory: O(n²)
func PackSymmetricUpper[T comparable](sq [][]T) (*SymmetricUpperMut[T], error) {
	n, err := symmetricSize(sq)
	if err != nil {
		return nil, err
	}
	vec, err := NewSlice[T](n)
	if err != nil {
		return nil, err
	}
	view, err := NewSymmetricUpperMut[T](n, vec)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = view.Set(i, j, sq[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return view, nil
}

// symmetricSize validates shape and symmetry of sq in one pass.
func symmetricSize[T comparable](sq [][]T) (int, error) {
	n, err := squareSize(sq)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if sq[i][j] != sq[j][i] {
				return 0, ErrAsymmetric
			}
		}
	}

	return n, nil
}

// Square expands the view into a dense n×n matrix. Unstored cells — the
// diagonal and the upper half — keep the zero value of T.
//
// Time Complexity: O(n²)
// Memory: O(n²)
func (t *SimpleLower[T]) Square() [][]T {
	sq := newSquare[T](t.n)
	for i, j := range t.TriIndices() {
		v, _ := t.At(i, j) // coordinates from TriIndices are always valid
		sq[i][j] = v
	}

	return sq
}

// Square expands the view into a dense n×n matrix. Unstored cells — the
// diagonal and the lower half — keep the zero value of T.
//
// Time Complexity: O(n²)
// Memory: O(n²)
func (t *SimpleUpper[T]) Square() [][]T {
	sq := newSquare[T](t.n)
	for i, j := range t.TriIndices() {
		v, _ := t.At(i, j)
		sq[i][j] = v
	}

	return sq
}

// Square expands the view into a dense n×n matrix, mirroring every stored
// element across the diagonal. The diagonal keeps the zero value of T.
//
// Time Complexity: O(n²)
// Memory: O(n²)
func (t *SymmetricLower[T]) Square() [][]T {
	sq := newSquare[T](t.n)
	for i := 1; i < t.n; i++ {
		for j := 0; j < i; j++ {
			v, _ := t.At(i, j)
			sq[i][j], sq[j][i] = v, v
		}
	}

	return sq
}

// Square expands the view into a dense n×n matrix, mirroring every stored
// element across the diagonal. The diagonal keeps the zero value of T.
//
// Time Complexity: O(n²)
// Memory: O(n²)
func (t *SymmetricUpper[T]) Square() [][]T {
	sq := newSquare[T](t.n)
	for i := 0; i < t.n; i++ {
		for j := i + 1; j < t.n; j++ {
			v, _ := t.At(i, j)
			sq[i][j], sq[j][i] = v, v
		}
	}

	return sq
}

// newSquare allocates a zeroed n×n [][]T.
func newSquare[T any](n int) [][]T {
	sq := make([][]T, n)
	for i := range sq {
		sq[i] = make([]T, n)
	}

	return sq
}
