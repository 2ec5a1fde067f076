package converters

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

var (
	// ErrEmptyMatrix indicates a 0×0 matrix, which gonum cannot allocate.
	ErrEmptyMatrix = errors.New("converters: empty matrix")

	// ErrEmptyVector indicates a length-0 vector, which gonum cannot allocate.
	ErrEmptyVector = errors.New("converters: empty vector")
)

// ToDense copies m into a freshly allocated gonum *mat.Dense.
// Returns ErrEmptyMatrix for the empty matrix.
func ToDense(m matrix.Matrix) (*mat.Dense, error) {
	h, w := m.Height(), m.Width()
	if h == 0 {
		return nil, ErrEmptyMatrix
	}
	data := make([]float64, 0, h*w)
	for _, row := range m.Rows() {
		data = append(data, row.Elems()...)
	}
	return mat.NewDense(h, w, data), nil
}

// FromDense copies any gonum matrix into a linalg Matrix.
// Zero-sized input yields the empty matrix.
func FromDense(d mat.Matrix) (matrix.Matrix, error) {
	r, c := d.Dims()
	if r == 0 || c == 0 {
		return matrix.Matrix{}, nil
	}
	rows := make([][]float64, r)
	for i := range rows {
		rows[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			rows[i][j] = d.At(i, j)
		}
	}
	return matrix.New(rows...)
}

// ToVecDense copies v into a freshly allocated gonum *mat.VecDense.
// Returns ErrEmptyVector for the empty vector.
func ToVecDense(v vector.Vector) (*mat.VecDense, error) {
	if v.Len() == 0 {
		return nil, ErrEmptyVector
	}
	return mat.NewVecDense(v.Len(), v.Elems()), nil
}

// FromVecDense copies any gonum vector into a linalg Vector.
// Zero-sized input yields the empty vector.
func FromVecDense(v mat.Vector) vector.Vector {
	n := v.Len()
	xs := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = v.AtVec(i)
	}
	return vector.FromSlice(xs)
}
