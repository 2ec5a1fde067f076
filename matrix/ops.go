// SPDX-License-Identifier: MIT

// Package matrix: algebraic operations over the Matrix value type.
// Every operation allocates a fresh result; receivers and arguments are
// never written to. Hot loops run over the flat row-major buffer with
// the explicit index formula i*w + j.

package matrix

import "github.com/katalvlaran/linalg/vector"

// Add returns the elementwise sum m + o.
// Both operands must share width and height; returns
// ErrDimensionMismatch otherwise.
func (m Matrix) Add(o Matrix) (Matrix, error) {
	if m.h != o.h || m.w != o.w {
		return Matrix{}, ErrDimensionMismatch
	}
	out := make([]float64, len(m.data))
	for i, x := range m.data {
		out[i] = x + o.data[i]
	}
	return Matrix{h: m.h, w: m.w, data: out}, nil
}

// Sub returns the elementwise difference, defined as m + (o × -1).
// Returns ErrDimensionMismatch when the shapes differ.
func (m Matrix) Sub(o Matrix) (Matrix, error) {
	return m.Add(o.Scale(-1))
}

// Scale returns m with every element multiplied by k.
func (m Matrix) Scale(k float64) Matrix {
	out := make([]float64, len(m.data))
	for i, x := range m.data {
		out[i] = k * x
	}
	return Matrix{h: m.h, w: m.w, data: out}
}

// Mul returns the row-by-column product m × o.
// Requires m.Width == o.Height; returns ErrDimensionMismatch otherwise.
// The result is m.Height × o.Width.
//
// Complexity: O(h·w·n) for an h×w by w×n product. The kernel walks
// i→k→j over the flat buffers and skips zero left-hand entries, which
// keeps sparse-ish inputs cheap without changing the summation order.
func (m Matrix) Mul(o Matrix) (Matrix, error) {
	if m.w != o.h {
		return Matrix{}, ErrDimensionMismatch
	}
	out := make([]float64, m.h*o.w)
	for i := 0; i < m.h; i++ {
		outRow := out[i*o.w : (i+1)*o.w]
		for k := 0; k < m.w; k++ {
			aik := m.data[i*m.w+k]
			if aik == 0 {
				continue
			}
			oRow := o.data[k*o.w : (k+1)*o.w]
			for j, x := range oRow {
				outRow[j] += aik * x
			}
		}
	}
	return Matrix{h: m.h, w: o.w, data: out}, nil
}

// MulVec returns m × v, treating v as a single-column matrix and
// collapsing the single-column result to a Vector.
// Requires m.Width == v.Len(); returns ErrDimensionMismatch otherwise.
func (m Matrix) MulVec(v vector.Vector) (vector.Vector, error) {
	if m.w != v.Len() {
		return vector.Vector{}, ErrDimensionMismatch
	}
	xs := v.Elems()
	out := make([]float64, m.h)
	for i := 0; i < m.h; i++ {
		row := m.rowAt(i)
		var sum float64
		for k, x := range xs {
			sum += row[k] * x
		}
		out[i] = sum
	}
	return vector.FromSlice(out), nil
}

// VecMul returns v × m, treating v as a single-row matrix and collapsing
// the single-row result to a Vector, mirroring MulVec.
// Requires v.Len() == m.Height; returns ErrDimensionMismatch otherwise.
func VecMul(v vector.Vector, m Matrix) (vector.Vector, error) {
	if v.Len() != m.h {
		return vector.Vector{}, ErrDimensionMismatch
	}
	out := make([]float64, m.w)
	for i, x := range v.Elems() {
		if x == 0 {
			continue
		}
		for j, y := range m.rowAt(i) {
			out[j] += x * y
		}
	}
	return vector.FromSlice(out), nil
}

// Pow returns m raised to a non-negative integer power by repeated
// multiplication. m must be square; m⁰ is Identity(m.Width).
// Returns ErrNonSquare for non-square receivers and ErrNegativePower
// for negative exponents: an inverse is never computed implicitly.
func (m Matrix) Pow(n int) (Matrix, error) {
	if !m.IsSquare() {
		return Matrix{}, ErrNonSquare
	}
	if n < 0 {
		return Matrix{}, ErrNegativePower
	}
	result := Identity(m.w)
	var err error
	for x := 0; x < n; x++ {
		if result, err = result.Mul(m); err != nil {
			return Matrix{}, err
		}
	}
	return result, nil
}

// Augment returns m extended on the right with all columns of each
// argument, in argument order.
// Every argument's height must equal m.Height; returns
// ErrDimensionMismatch before any allocation otherwise.
func (m Matrix) Augment(others ...Matrix) (Matrix, error) {
	totalW := m.w
	for _, o := range others {
		if o.h != m.h {
			return Matrix{}, ErrDimensionMismatch
		}
		totalW += o.w
	}
	if m.h == 0 {
		return Matrix{}, nil
	}
	out := make([]float64, m.h*totalW)
	for i := 0; i < m.h; i++ {
		dst := out[i*totalW : (i+1)*totalW]
		off := copy(dst, m.rowAt(i))
		for _, o := range others {
			off += copy(dst[off:], o.rowAt(i))
		}
	}
	return Matrix{h: m.h, w: totalW, data: out}, nil
}

// AugmentVector returns m extended on the right with each vector as one
// column, in argument order.
// Every vector's length must equal m.Height; returns
// ErrDimensionMismatch otherwise.
func (m Matrix) AugmentVector(vs ...vector.Vector) (Matrix, error) {
	cols := make([][]float64, len(vs))
	for j, v := range vs {
		if v.Len() != m.h {
			return Matrix{}, ErrDimensionMismatch
		}
		cols[j] = v.Elems()
	}
	if m.h == 0 {
		return Matrix{}, nil
	}
	totalW := m.w + len(vs)
	out := make([]float64, m.h*totalW)
	for i := 0; i < m.h; i++ {
		dst := out[i*totalW : (i+1)*totalW]
		copy(dst, m.rowAt(i))
		for j, col := range cols {
			dst[m.w+j] = col[i]
		}
	}
	return Matrix{h: m.h, w: totalW, data: out}, nil
}
