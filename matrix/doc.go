// SPDX-License-Identifier: MIT

// Package matrix provides an immutable, row-major Matrix value type over
// float64 together with the row-reduction engine built on it.
//
// What:
//
//   - Matrix wraps a rectangular grid of scalars; every operation returns
//     a fresh Matrix and no operation mutates its receiver or arguments.
//   - Construction from rows or from columns (New, NewColumns, FromRows,
//     FromColumns, Identity); row, column and element access materialize
//     vector.Vector snapshots.
//   - Algebra: Add, Sub, Scale, Mul, MulVec, VecMul, Pow, Augment,
//     AugmentVector, Transpose.
//   - Reduction engine: EchelonForm (one forward elimination pass plus a
//     stable sort by leading-entry index), ReducedEchelonForm
//     (Gauss-Jordan), Determinant, Rank and Solve.
//
// Why:
//
//   - Value semantics: results share no mutable state with their inputs,
//     so matrices can be reused and shared across goroutines freely.
//   - The echelon pass performs row additions only, never swaps or
//     scaling, so the product of the reduced diagonal doubles as the
//     determinant.
//
// Complexity:
//
//   - Add/Sub/Scale/Transpose/Augment: O(h·w) time and memory.
//   - Mul: O(h·w·n) for an h×w by w×n product.
//   - EchelonForm, ReducedEchelonForm, Determinant, Rank, Solve: O(n³).
//
// Errors:
//
//   - ErrDimensionMismatch: operand shapes are incompatible.
//   - ErrOutOfRange: row, column or element access outside bounds.
//   - ErrNonSquare: Determinant, Pow or Solve on a non-square matrix.
//   - ErrNegativePower: Pow with a negative exponent.
//   - ErrSingular: Solve on a system without a unique solution.
package matrix
