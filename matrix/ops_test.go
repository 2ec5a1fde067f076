// SPDX-License-Identifier: MIT

// Package matrix_test: unit tests for the algebraic operation set.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// TestAdd ensures elementwise addition, its algebraic laws and the shape guard.
func TestAdd(t *testing.T) {
	a := mustNew(t, []float64{1, 0}, []float64{0, 1})
	b := mustNew(t, []float64{0, 2}, []float64{3, 3})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.True(t, sum.Equal(mustNew(t, []float64{1, 2}, []float64{3, 4})))

	rev, err := b.Add(a) // A + B == B + A
	require.NoError(t, err)
	require.True(t, sum.Equal(rev))

	c := mustNew(t, []float64{5, 6}, []float64{7, 8})
	left, err := sum.Add(c) // (A + B) + C
	require.NoError(t, err)
	bc, err := b.Add(c)
	require.NoError(t, err)
	right, err := a.Add(bc) // A + (B + C)
	require.NoError(t, err)
	require.True(t, left.Equal(right))

	i3 := matrix.Identity(3)
	i2 := matrix.Identity(2)
	_, err = i3.Add(i2)                                  // 3×3 plus 2×2
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch
}

// TestSub ensures subtraction is addition of the negated operand.
func TestSub(t *testing.T) {
	a := mustNew(t, []float64{1, 2}, []float64{3, 4})
	b := mustNew(t, []float64{1, 1}, []float64{1, 1})

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.True(t, diff.Equal(mustNew(t, []float64{0, 1}, []float64{2, 3})))

	viaScale, err := a.Add(b.Scale(-1)) // definitionally the same
	require.NoError(t, err)
	require.True(t, diff.Equal(viaScale))

	self, err := a.Sub(a)
	require.NoError(t, err)
	require.True(t, self.EqualApprox(mustNew(t, []float64{0, 0}, []float64{0, 0}), 0))

	_, err = a.Sub(matrix.Identity(3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestScale ensures elementwise scaling and scalar distributivity.
func TestScale(t *testing.T) {
	a := mustNew(t,
		[]float64{11, 12, 13},
		[]float64{21, 22, 23},
		[]float64{31, 32, 33},
	)
	require.True(t, a.Scale(3).Equal(mustNew(t,
		[]float64{33, 36, 39},
		[]float64{63, 66, 69},
		[]float64{93, 96, 99},
	)))

	// k(A + B) == kA + kB, exact over integer-valued entries
	b := matrix.Identity(3)
	sum, err := a.Add(b)
	require.NoError(t, err)
	kakb, err := a.Scale(5).Add(b.Scale(5))
	require.NoError(t, err)
	require.True(t, sum.Scale(5).Equal(kakb))

	// and within tolerance over fractional entries
	f := mustNew(t, []float64{0.1, 0.2}, []float64{0.3, 0.4})
	g := mustNew(t, []float64{0.5, 0.6}, []float64{0.7, 0.8})
	fg, err := f.Add(g)
	require.NoError(t, err)
	kfkg, err := f.Scale(3).Add(g.Scale(3))
	require.NoError(t, err)
	require.True(t, fg.Scale(3).EqualApprox(kfkg, 1e-12))
}

// TestMul ensures the row-by-column product, identity neutrality and shapes.
func TestMul(t *testing.T) {
	a := mustNew(t,
		[]float64{11, 12, 13},
		[]float64{21, 22, 23},
		[]float64{31, 32, 33},
	)

	sq, err := a.Mul(a)
	require.NoError(t, err)
	require.True(t, sq.Equal(mustNew(t,
		[]float64{776, 812, 848},
		[]float64{1406, 1472, 1538},
		[]float64{2036, 2132, 2228},
	)))

	left, err := matrix.Identity(3).Mul(a) // I × A == A
	require.NoError(t, err)
	require.True(t, left.Equal(a))
	right, err := a.Mul(matrix.Identity(3)) // A × I == A
	require.NoError(t, err)
	require.True(t, right.Equal(a))

	// a 2×3 by 3×1 product collapses to a 2×1 column
	wide := mustNew(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	col := mustNew(t, []float64{1}, []float64{0}, []float64{1})
	prod, err := wide.Mul(col)
	require.NoError(t, err)
	require.Equal(t, 2, prod.Height())
	require.Equal(t, 1, prod.Width())
	require.True(t, prod.Equal(mustNew(t, []float64{4}, []float64{10})))

	_, err = wide.Mul(wide)                              // 2×3 by 2×3: inner dimensions differ
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch
}

// TestMulVec ensures matrix-by-vector collapses to a Vector.
func TestMulVec(t *testing.T) {
	a := mustNew(t,
		[]float64{11, 12, 13},
		[]float64{21, 22, 23},
		[]float64{31, 32, 33},
	)

	got, err := a.MulVec(vector.New(2, 4, 6))
	require.NoError(t, err)
	require.True(t, got.Equal(vector.New(148, 268, 388)))

	_, err = a.MulVec(vector.New(2, 4))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestVecMul ensures vector-by-matrix mirrors MulVec on the left.
func TestVecMul(t *testing.T) {
	a := mustNew(t,
		[]float64{11, 12, 13},
		[]float64{21, 22, 23},
		[]float64{31, 32, 33},
	)

	got, err := matrix.VecMul(vector.New(1, 2, 3), a)
	require.NoError(t, err)
	require.True(t, got.Equal(vector.New(146, 152, 158)))

	// row-times-matrix agrees with transposing and multiplying on the right
	viaT, err := a.Transpose().MulVec(vector.New(1, 2, 3))
	require.NoError(t, err)
	require.True(t, got.Equal(viaT))

	_, err = matrix.VecMul(vector.New(1, 2), a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestPow ensures exponentiation by repeated multiplication and its guards.
func TestPow(t *testing.T) {
	a := mustNew(t, []float64{1, 2}, []float64{3, 4})

	p0, err := a.Pow(0)
	require.NoError(t, err)
	require.True(t, p0.Equal(matrix.Identity(2))) // A⁰ is the identity

	p1, err := a.Pow(1)
	require.NoError(t, err)
	require.True(t, p1.Equal(a))

	p2, err := a.Pow(2)
	require.NoError(t, err)
	aa, err := a.Mul(a)
	require.NoError(t, err)
	require.True(t, p2.Equal(aa)) // A² == A × A
	require.True(t, p2.Equal(mustNew(t, []float64{7, 10}, []float64{15, 22})))

	p3, err := a.Pow(3)
	require.NoError(t, err)
	require.True(t, p3.Equal(mustNew(t, []float64{37, 54}, []float64{81, 118})))

	wide := mustNew(t, []float64{1, 2, 3}, []float64{4, 5, 6})
	_, err = wide.Pow(2)                         // non-square base
	require.ErrorIs(t, err, matrix.ErrNonSquare) // expect ErrNonSquare

	_, err = a.Pow(-1)                               // inverse is never computed
	require.ErrorIs(t, err, matrix.ErrNegativePower) // expect ErrNegativePower

	ep, err := matrix.Matrix{}.Pow(4) // the empty matrix is square
	require.NoError(t, err)
	require.True(t, ep.Equal(matrix.Matrix{}))
}

// TestAugment ensures column-wise concatenation of matrices.
func TestAugment(t *testing.T) {
	a := mustNew(t, []float64{1, 2}, []float64{3, 4})
	b, err := a.Add(matrix.Identity(2))
	require.NoError(t, err)

	got, err := a.Augment(b)
	require.NoError(t, err)
	require.True(t, got.Equal(mustNew(t,
		[]float64{1, 2, 2, 2},
		[]float64{3, 4, 3, 5},
	)))

	// several arguments append in order
	multi, err := a.Augment(matrix.Identity(2), a)
	require.NoError(t, err)
	require.True(t, multi.Equal(mustNew(t,
		[]float64{1, 2, 1, 0, 1, 2},
		[]float64{3, 4, 0, 1, 3, 4},
	)))

	none, err := a.Augment() // no arguments reproduces the receiver
	require.NoError(t, err)
	require.True(t, none.Equal(a))

	_, err = a.Augment(matrix.Identity(3))               // height 3 against height 2
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch

	_, err = matrix.Matrix{}.Augment(a) // the empty matrix accepts only height-0 arguments
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestAugmentVector ensures column-wise concatenation of vectors.
func TestAugmentVector(t *testing.T) {
	a := mustNew(t, []float64{1, 2}, []float64{3, 4})

	c0, err := a.Column(0)
	require.NoError(t, err)
	withCol, err := a.AugmentVector(c0)
	require.NoError(t, err)
	require.True(t, withCol.Equal(mustNew(t,
		[]float64{1, 2, 1},
		[]float64{3, 4, 3},
	)))

	r0, err := a.Row(0)
	require.NoError(t, err)
	withRow, err := a.AugmentVector(r0) // a row fits as a column when square
	require.NoError(t, err)
	require.True(t, withRow.Equal(mustNew(t,
		[]float64{1, 2, 1},
		[]float64{3, 4, 2},
	)))

	both, err := a.AugmentVector(c0, r0)
	require.NoError(t, err)
	require.True(t, both.Equal(mustNew(t,
		[]float64{1, 2, 1, 1},
		[]float64{3, 4, 3, 2},
	)))

	_, err = a.AugmentVector(vector.New(1, 2, 3))        // length 3 against height 2
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch) // expect ErrDimensionMismatch
}
