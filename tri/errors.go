// SPDX-License-Identifier: MIT

// Package tri: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the tri
// package. All operations return these sentinels and tests check them via
// errors.Is. Invalid coordinates are programming errors at heart — callers
// deriving (i, j) from untrusted input are expected to pre-validate — but the
// shapes still surface them as typed errors rather than panicking.
package tri

import (
	"errors"
	"fmt"
)

var (
	// ErrBadAxis is returned when an axis length n is not positive.
	// Shape constructors validate n before touching storage.
	ErrBadAxis = errors.New("tri: axis length must be >= 1")

	// ErrOutOfRange indicates that a coordinate lies outside the valid
	// range of the active shape: i or j beyond [0, n), or on the wrong
	// side of the diagonal for a one-sided shape.
	ErrOutOfRange = errors.New("tri: coordinate out of range")

	// ErrDiagonal indicates a request for a diagonal element (i == j) on a
	// shape that excludes the diagonal.
	ErrDiagonal = errors.New("tri: diagonal is not stored")

	// ErrSizeMismatch indicates that a supplied container does not hold
	// exactly Num(n-1) elements for the requested axis length n.
	ErrSizeMismatch = errors.New("tri: container length does not match axis length")

	// ErrRangeExceeded indicates that a triangular number overflows the
	// platform int and the packed size is therefore not addressable.
	ErrRangeExceeded = errors.New("tri: triangular number exceeds int range")

	// ErrNonSquare indicates that a [][]T input to a Pack converter is
	// ragged or not square.
	ErrNonSquare = errors.New("tri: input matrix is not square")

	// ErrAsymmetric indicates that a symmetric Pack converter observed
	// sq[i][j] != sq[j][i].
	ErrAsymmetric = errors.New("tri: input matrix is not symmetric")
)

// coordErrorf wraps a sentinel with the failing method and coordinate pair.
func coordErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("tri: %s(%d,%d): %w", method, i, j, err)
}

// axisErrorf wraps a sentinel with the failing method and a single index.
func axisErrorf(method string, i int, err error) error {
	return fmt.Errorf("tri: %s(%d): %w", method, i, err)
}
