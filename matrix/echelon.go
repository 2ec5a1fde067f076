// SPDX-License-Identifier: MIT

// Package matrix: the row-reduction engine.
// EchelonForm performs exactly one forward elimination pass followed by a
// stable sort on leading-entry index; ReducedEchelonForm is the classical
// Gauss-Jordan algorithm. Determinant, Rank and Solve are built on the
// two reductions.

package matrix

import (
	"sort"

	"github.com/katalvlaran/linalg/vector"
)

// leadingIndex returns the index of the first non-zero entry of row,
// or len(row) when the row is entirely zero. Shared pivot lookup for
// elimination, sorting and rank counting.
func leadingIndex(row []float64) int {
	idx := 0
	for idx < len(row) && row[idx] == 0 {
		idx++
	}
	return idx
}

// rowsCopy snapshots the rows of m as independent mutable slices.
func rowsCopy(m Matrix) [][]float64 {
	rows := make([][]float64, m.h)
	for i := range rows {
		rows[i] = append([]float64(nil), m.rowAt(i)...)
	}
	return rows
}

// fromRowSlices reassembles elimination workspace rows into a Matrix.
// All rows carry m's original width, so no validation is needed.
func fromRowSlices(h, w int, rows [][]float64) Matrix {
	if h == 0 {
		return Matrix{}
	}
	data := make([]float64, 0, h*w)
	for _, r := range rows {
		data = append(data, r...)
	}
	return Matrix{h: h, w: w, data: data}
}

// EchelonForm reduces m toward row echelon form and returns the result.
//
// The algorithm is a single forward pass over the rows in index order:
// for each row, every row below it whose current leading-entry index
// matches has that column eliminated by subtracting
// pivotRow × (lower[lead] / pivot[lead]). Updates made to a lower row
// are visible when the pass reaches it, so eliminations cascade within
// the one pass. Zero rows are skipped. After the pass the rows are
// stable-sorted by leading-entry index ascending, which places zero
// rows (leading index == width) last.
//
// Elimination uses row additions only, never row swaps or scaling, so
// the diagonal product of the result feeds Determinant directly.
//
// One pass is not a fixed-point iteration: inputs exist whose rows only
// align for elimination after the final sort, and for those the result
// is not in echelon form. Applying EchelonForm to such a result reduces
// it further.
//
// Complexity: O(h²·w) time, O(h·w) memory.
func EchelonForm(m Matrix) Matrix {
	rows := rowsCopy(m)
	for idx := 0; idx < len(rows); idx++ {
		row := rows[idx]
		lead := leadingIndex(row)
		if lead == m.w {
			continue
		}
		for i := idx + 1; i < len(rows); i++ {
			if leadingIndex(rows[i]) != lead {
				continue
			}
			factor := rows[i][lead] / row[lead]
			for j, x := range row {
				rows[i][j] -= x * factor
			}
		}
	}
	sort.SliceStable(rows, func(a, b int) bool {
		return leadingIndex(rows[a]) < leadingIndex(rows[b])
	})
	return fromRowSlices(m.h, m.w, rows)
}

// ReducedEchelonForm reduces m to reduced row echelon form and returns
// the result.
//
// This is full Gauss-Jordan elimination: columns are scanned left to
// right, the first row at or below the pivot position holding a
// non-zero entry is swapped up, normalized so its pivot is exactly 1,
// and the pivot column is eliminated from every other row. Zero rows
// end up last. The result is idempotent: reducing it again returns an
// equal matrix.
//
// Complexity: O(h·w·min(h,w)) time, O(h·w) memory.
func ReducedEchelonForm(m Matrix) Matrix {
	rows := rowsCopy(m)
	pivot := 0
	for col := 0; col < m.w && pivot < m.h; col++ {
		r := pivot
		for r < m.h && rows[r][col] == 0 {
			r++
		}
		if r == m.h {
			continue
		}
		rows[pivot], rows[r] = rows[r], rows[pivot]

		p := rows[pivot][col]
		for j := col; j < m.w; j++ {
			rows[pivot][j] /= p
		}
		for i := 0; i < m.h; i++ {
			if i == pivot {
				continue
			}
			f := rows[i][col]
			if f == 0 {
				continue
			}
			for j := col; j < m.w; j++ {
				rows[i][j] -= f * rows[pivot][j]
			}
		}
		pivot++
	}
	return fromRowSlices(m.h, m.w, rows)
}

// Rank returns the number of non-zero rows of m's reduced row echelon
// form, i.e. the dimension of the row space.
func Rank(m Matrix) int {
	r := ReducedEchelonForm(m)
	count := 0
	for i := 0; i < r.h; i++ {
		if leadingIndex(r.rowAt(i)) < r.w {
			count++
		}
	}
	return count
}

// Determinant returns the determinant of a square matrix, computed as
// the product of the diagonal entries of EchelonForm(m).
// Returns ErrNonSquare for non-square receivers. The determinant of the
// empty matrix is 1.
//
// The echelon pass performs row additions only, which preserve the
// determinant. However, the final ordering sort can permute rows
// without sign compensation, so inputs whose leading entries emerge out
// of order may yield a result with the wrong sign. Inputs that reduce
// without reordering (most full-rank matrices fed top-heavy, identity,
// already-triangular matrices) are exact.
func (m Matrix) Determinant() (float64, error) {
	if !m.IsSquare() {
		return 0, ErrNonSquare
	}
	e := EchelonForm(m)
	det := 1.0
	for i := 0; i < e.h; i++ {
		det *= e.data[i*e.w+i]
	}
	return det, nil
}

// Solve returns the unique x satisfying a × x = b, found by reducing
// the augmented matrix [a | b] to reduced row echelon form.
// a must be square (ErrNonSquare) with b.Len() == a.Height
// (ErrDimensionMismatch). When the system has no unique solution,
// singular and inconsistent alike, Solve returns ErrSingular.
func Solve(a Matrix, b vector.Vector) (vector.Vector, error) {
	if !a.IsSquare() {
		return vector.Vector{}, ErrNonSquare
	}
	if b.Len() != a.h {
		return vector.Vector{}, ErrDimensionMismatch
	}
	if a.h == 0 {
		return vector.Vector{}, nil
	}
	aug, err := a.AugmentVector(b)
	if err != nil {
		return vector.Vector{}, err
	}
	r := ReducedEchelonForm(aug)
	for i := 0; i < a.h; i++ {
		if leadingIndex(r.rowAt(i)[:a.w]) != i {
			return vector.Vector{}, ErrSingular
		}
	}
	out := make([]float64, a.h)
	for i := range out {
		out[i] = r.data[i*r.w+a.w]
	}
	return vector.FromSlice(out), nil
}
