// SPDX-License-Identifier: MIT

// Package matrix: the Matrix value type, its constructors and accessors.
// Storage is row-major in a flat slice with the index formula i*w + j.
// Constructors copy their input and accessors copy their output, so a
// Matrix shares no mutable state with anything outside it.

package matrix

import (
	"math"
	"strings"

	"github.com/katalvlaran/linalg/vector"
)

// Matrix is an immutable rectangular grid of float64 scalars.
// The zero value is the empty 0×0 matrix.
//
// Invariant: Height == 0 ⟺ Width == 0. A matrix with zero rows or
// zero-length rows normalizes to 0×0, never to 0×N or N×0 with N > 0.
type Matrix struct {
	h, w int
	data []float64 // row-major, len h*w
}

// New builds a Matrix from row slices.
// All rows must share one length; returns ErrDimensionMismatch otherwise.
// Zero rows or zero-length rows normalize to the empty matrix.
func New(rows ...[]float64) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, nil
	}
	w := len(rows[0])
	for _, r := range rows[1:] {
		if len(r) != w {
			return Matrix{}, ErrDimensionMismatch
		}
	}
	if w == 0 {
		return Matrix{}, nil
	}
	data := make([]float64, 0, len(rows)*w)
	for _, r := range rows {
		data = append(data, r...)
	}
	return Matrix{h: len(rows), w: w, data: data}, nil
}

// NewColumns builds a Matrix from column slices.
// All columns must share one length; returns ErrDimensionMismatch
// otherwise. Zero columns or zero-length columns normalize to the
// empty matrix.
func NewColumns(cols ...[]float64) (Matrix, error) {
	if len(cols) == 0 {
		return Matrix{}, nil
	}
	h := len(cols[0])
	for _, c := range cols[1:] {
		if len(c) != h {
			return Matrix{}, ErrDimensionMismatch
		}
	}
	if h == 0 {
		return Matrix{}, nil
	}
	w := len(cols)
	data := make([]float64, h*w)
	for j, col := range cols {
		for i, x := range col {
			data[i*w+j] = x
		}
	}
	return Matrix{h: h, w: w, data: data}, nil
}

// FromRows builds a Matrix by stacking vectors as rows.
func FromRows(rows ...vector.Vector) (Matrix, error) {
	raw := make([][]float64, len(rows))
	for i, r := range rows {
		raw[i] = r.Elems()
	}
	return New(raw...)
}

// FromColumns builds a Matrix by stacking vectors as columns.
func FromColumns(cols ...vector.Vector) (Matrix, error) {
	raw := make([][]float64, len(cols))
	for j, c := range cols {
		raw[j] = c.Elems()
	}
	return NewColumns(raw...)
}

// Identity returns the n×n identity matrix.
// Non-positive n yields the empty matrix.
func Identity(n int) Matrix {
	if n <= 0 {
		return Matrix{}
	}
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}
	return Matrix{h: n, w: n, data: data}
}

// Height returns the number of rows.
func (m Matrix) Height() int { return m.h }

// Width returns the number of columns.
func (m Matrix) Width() int { return m.w }

// IsSquare reports whether Width == Height. The empty matrix is square.
func (m Matrix) IsSquare() bool { return m.w == m.h }

// rowAt returns the backing slice of row i. Callers must not let the
// slice escape the package unchanged; public accessors copy it.
func (m Matrix) rowAt(i int) []float64 {
	return m.data[i*m.w : (i+1)*m.w]
}

// At returns the element at row i, column j.
// Returns ErrOutOfRange outside bounds.
func (m Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.h || j < 0 || j >= m.w {
		return 0, ErrOutOfRange
	}
	return m.data[i*m.w+j], nil
}

// Row returns a fresh Vector snapshot of row i.
// Returns ErrOutOfRange outside [0, Height).
func (m Matrix) Row(i int) (vector.Vector, error) {
	if i < 0 || i >= m.h {
		return vector.Vector{}, ErrOutOfRange
	}
	return vector.FromSlice(m.rowAt(i)), nil
}

// Column returns a fresh Vector snapshot of column j.
// Returns ErrOutOfRange outside [0, Width).
func (m Matrix) Column(j int) (vector.Vector, error) {
	if j < 0 || j >= m.w {
		return vector.Vector{}, ErrOutOfRange
	}
	out := make([]float64, m.h)
	for i := 0; i < m.h; i++ {
		out[i] = m.data[i*m.w+j]
	}
	return vector.FromSlice(out), nil
}

// Rows materializes all rows as a fresh slice of Vectors.
// Every call produces an independent snapshot; there is no shared cursor.
func (m Matrix) Rows() []vector.Vector {
	out := make([]vector.Vector, m.h)
	for i := 0; i < m.h; i++ {
		out[i] = vector.FromSlice(m.rowAt(i))
	}
	return out
}

// Columns materializes all columns as a fresh slice of Vectors.
// Every call produces an independent snapshot; there is no shared cursor.
func (m Matrix) Columns() []vector.Vector {
	out := make([]vector.Vector, m.w)
	for j := 0; j < m.w; j++ {
		col := make([]float64, m.h)
		for i := 0; i < m.h; i++ {
			col[i] = m.data[i*m.w+j]
		}
		out[j] = vector.FromSlice(col)
	}
	return out
}

// Transpose returns the matrix flipped over its main diagonal.
func (m Matrix) Transpose() Matrix {
	if m.h == 0 {
		return Matrix{}
	}
	out := make([]float64, m.w*m.h)
	for i := 0; i < m.h; i++ {
		for j := 0; j < m.w; j++ {
			out[j*m.h+i] = m.data[i*m.w+j]
		}
	}
	return Matrix{h: m.w, w: m.h, data: out}
}

// Equal reports whether m and o have the same shape and exactly equal
// elements. Shape mismatch compares unequal, never errors.
func (m Matrix) Equal(o Matrix) bool {
	if m.h != o.h || m.w != o.w {
		return false
	}
	for i, x := range m.data {
		if x != o.data[i] {
			return false
		}
	}
	return true
}

// EqualApprox reports whether m and o have the same shape and each pair
// of elements differs by at most eps.
func (m Matrix) EqualApprox(o Matrix, eps float64) bool {
	if m.h != o.h || m.w != o.w {
		return false
	}
	for i, x := range m.data {
		if math.Abs(x-o.data[i]) > eps {
			return false
		}
	}
	return true
}

// String renders m in its canonical text form: comma-space-joined rows,
// each in Vector's angle-bracket form, wrapped in parentheses,
// e.g. (<1, 2>, <3, 4>). The empty matrix renders as ().
func (m Matrix) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i := 0; i < m.h; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(vector.FromSlice(m.rowAt(i)).String())
	}
	sb.WriteByte(')')
	return sb.String()
}
