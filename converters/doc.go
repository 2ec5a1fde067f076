// Package converters provides two-way adapters between linalg value
// types and gonum's mat package:
//   - matrix.Matrix ↔ *mat.Dense
//   - vector.Vector ↔ *mat.VecDense
//
// Use converters to hand matrices to gonum routines (decompositions,
// solvers, formatted printing) and to lift gonum results back into
// immutable linalg values. The From side accepts the mat.Matrix and
// mat.Vector interfaces, so transposes and views convert without an
// intermediate copy on the gonum side.
//
// gonum cannot represent zero-sized values, so ToDense and ToVecDense
// reject the empty matrix and the empty vector with ErrEmptyMatrix and
// ErrEmptyVector; the From direction maps zero-sized inputs to the
// empty linalg values.
package converters
