// Package tri: Slice is the concrete flat-slice container.
// It is the default MutVector implementation, storing packed elements
// contiguously for cache friendliness; any other fixed-length collection can
// be used instead by implementing Vector/MutVector.
package tri

// Slice is a packed triangle container backed by a flat []T.
type Slice[T any] struct {
	data []T // packed elements, row-major from the first row
}

// NewSlice allocates a zeroed container sized for a no-diagonal triangle of
// axis length n, i.e. Num(n-1) elements.
// Stage 1 (Validate): n >= 1, Num(n-1) within int range.
// Stage 2 (Prepare): allocate the flat backing slice.
// Returns ErrBadAxis or ErrRangeExceeded on invalid n.
// Complexity: O(n²) time and memory (the allocation itself).
func NewSlice[T any](n int) (*Slice[T], error) {
	size, err := packedSize(n)
	if err != nil {
		return nil, err
	}

	return &Slice[T]{data: make([]T, size)}, nil
}

// WrapSlice adopts caller-owned storage without copying. The caller keeps
// ownership; mutations through either alias are visible to both.
// Complexity: O(1).
func WrapSlice[T any](data []T) *Slice[T] {
	return &Slice[T]{data: data}
}

// Len returns the number of packed elements.
// Complexity: O(1).
func (s *Slice[T]) Len() int {
	return len(s.data)
}

// At returns the element at packed offset k. Panics like a slice access for
// k outside [0, Len()); shapes validate offsets before calling.
// Complexity: O(1).
func (s *Slice[T]) At(k int) T {
	return s.data[k]
}

// Set assigns v at packed offset k. Same bounds contract as At.
// Complexity: O(1).
func (s *Slice[T]) Set(k int, v T) {
	s.data[k] = v
}

// Clone returns a deep copy of the container, independent of the original.
// Complexity: O(Len()).
func (s *Slice[T]) Clone() *Slice[T] {
	data := make([]T, len(s.data))
	copy(data, s.data)

	return &Slice[T]{data: data}
}
