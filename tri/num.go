package tri

import "math"

// Num returns the n-th triangular number n·(n+1)/2.
//
// Num(0) == 0. The result is the element count of a packed triangle with n
// rows including its diagonal. No overflow checking is performed; use
// NumChecked when n originates outside the caller's control.
// Complexity: O(1).
func Num(n int) int {
	return n * (n + 1) / 2
}

// NumChecked returns Num(n), rejecting negative n and any n whose
// triangular number does not fit in a platform int.
//
// Stage 1 (Validate): n must be non-negative and below the overflow bound.
// Stage 2 (Execute): compute n·(n+1)/2 with the even factor halved first,
// so the intermediate product never wraps.
// Returns ErrBadAxis for n < 0 and ErrRangeExceeded on overflow.
// Complexity: O(1).
func NumChecked(n int) (int, error) {
	if n < 0 {
		return 0, ErrBadAxis
	}
	if n == math.MaxInt {
		return 0, ErrRangeExceeded
	}
	// Exactly one of n, n+1 is even; halve it before multiplying.
	a, b := n, n+1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	if a != 0 && b > math.MaxInt/a {
		return 0, ErrRangeExceeded
	}

	return a * b, nil
}
