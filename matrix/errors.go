// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// matrix package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Add over different shapes, Mul where a.Width != b.Height, ragged
	// constructor input, or an Augment argument of the wrong height.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrOutOfRange indicates that a row, column or element index is outside
	// valid bounds. Public accessors return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't (Determinant, Pow, Solve).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNegativePower signals a negative exponent passed to Pow; inverses
	// are never computed implicitly.
	ErrNegativePower = errors.New("matrix: negative exponent")

	// ErrSingular signals a linear system without a unique solution.
	ErrSingular = errors.New("matrix: singular matrix")
)
