// Package vector provides an immutable, fixed-length Vector value type
// over float64, plus the free geometry helpers built on it.
//
// What:
//
//   - Vector wraps an ordered sequence of scalars; length is fixed at
//     construction and every operation returns a fresh Vector.
//   - Elementwise arithmetic (Add, Sub, Scale, Neg), Euclidean Magnitude,
//     unit Direction, positional access, exact and tolerant equality.
//   - Free helpers: Dot, Cross (3-D), ScalarTriple, VectorTriple,
//     KroneckerDelta, LeviCivita, plus the constructors E and Zero.
//
// Why:
//
//   - Value semantics make Vectors safe to share across goroutines
//     without coordination; no operation ever mutates its inputs.
//   - The matrix package materializes its row and column views as Vectors.
//
// Complexity:
//
//   - All operations: O(n) time, O(n) memory for an n-element result.
//
// Errors:
//
//   - ErrDimensionMismatch: binary operation over different lengths.
//   - ErrOutOfRange: positional access outside [0, Len).
//   - ErrZeroMagnitude: Direction of a vector with magnitude 0.
package vector
