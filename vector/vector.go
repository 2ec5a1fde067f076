package vector

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrDimensionMismatch indicates two operands of different lengths.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange indicates a positional index outside [0, Len).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrZeroMagnitude indicates that a zero vector has no direction.
	ErrZeroMagnitude = errors.New("vector: zero magnitude")
)

// Vector is an immutable, fixed-length sequence of float64 scalars.
// The zero value is the empty vector of length 0.
type Vector struct {
	elems []float64
}

// New returns the Vector holding the given scalars, in order.
func New(elems ...float64) Vector {
	return FromSlice(elems)
}

// FromSlice returns the Vector holding a copy of xs.
// Later mutation of xs does not affect the result.
func FromSlice(xs []float64) Vector {
	if len(xs) == 0 {
		return Vector{}
	}
	return Vector{elems: append([]float64(nil), xs...)}
}

// Zero returns the n-dimensional zero vector.
// Non-positive n yields the empty vector.
func Zero(n int) Vector {
	if n <= 0 {
		return Vector{}
	}
	return Vector{elems: make([]float64, n)}
}

// E returns the standard basis vector with a 1 in the given direction
// and 0 elsewhere, e.g. E(0, 3) is the x axis unit vector.
// Returns ErrOutOfRange unless 0 <= direction < dimensions.
func E(direction, dimensions int) (Vector, error) {
	if direction < 0 || direction >= dimensions {
		return Vector{}, ErrOutOfRange
	}
	out := make([]float64, dimensions)
	out[direction] = 1
	return Vector{elems: out}, nil
}

// Len returns the number of elements.
func (v Vector) Len() int { return len(v.elems) }

// At returns the element at position i.
// Returns ErrOutOfRange outside [0, Len).
func (v Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.elems) {
		return 0, ErrOutOfRange
	}
	return v.elems[i], nil
}

// Elems returns a fresh copy of the elements.
// Mutating the returned slice does not affect v.
func (v Vector) Elems() []float64 {
	return append([]float64(nil), v.elems...)
}

// Magnitude returns the Euclidean norm sqrt(sum(x_i^2)).
// The empty vector and the zero vector both have magnitude 0.
func (v Vector) Magnitude() float64 {
	var sum float64
	for _, x := range v.elems {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Direction returns the unit vector pointing the same way as v.
// Returns ErrZeroMagnitude when the magnitude is 0.
func (v Vector) Direction() (Vector, error) {
	m := v.Magnitude()
	if m == 0 {
		return Vector{}, ErrZeroMagnitude
	}
	out := make([]float64, len(v.elems))
	for i, x := range v.elems {
		out[i] = x / m
	}
	return Vector{elems: out}, nil
}

// Add returns the elementwise sum v + o.
// Returns ErrDimensionMismatch when the lengths differ.
func (v Vector) Add(o Vector) (Vector, error) {
	if len(v.elems) != len(o.elems) {
		return Vector{}, ErrDimensionMismatch
	}
	out := make([]float64, len(v.elems))
	for i, x := range v.elems {
		out[i] = x + o.elems[i]
	}
	return Vector{elems: out}, nil
}

// Sub returns the elementwise difference v - o.
// Returns ErrDimensionMismatch when the lengths differ.
func (v Vector) Sub(o Vector) (Vector, error) {
	if len(v.elems) != len(o.elems) {
		return Vector{}, ErrDimensionMismatch
	}
	out := make([]float64, len(v.elems))
	for i, x := range v.elems {
		out[i] = x - o.elems[i]
	}
	return Vector{elems: out}, nil
}

// Scale returns v scaled elementwise by k.
func (v Vector) Scale(k float64) Vector {
	out := make([]float64, len(v.elems))
	for i, x := range v.elems {
		out[i] = k * x
	}
	return Vector{elems: out}
}

// Neg returns v scaled by -1.
func (v Vector) Neg() Vector {
	return v.Scale(-1)
}

// Equal reports whether v and o have the same length and exactly
// equal elements.
func (v Vector) Equal(o Vector) bool {
	if len(v.elems) != len(o.elems) {
		return false
	}
	for i, x := range v.elems {
		if x != o.elems[i] {
			return false
		}
	}
	return true
}

// EqualApprox reports whether v and o have the same length and each
// pair of elements differs by at most eps.
func (v Vector) EqualApprox(o Vector, eps float64) bool {
	if len(v.elems) != len(o.elems) {
		return false
	}
	for i, x := range v.elems {
		if math.Abs(x-o.elems[i]) > eps {
			return false
		}
	}
	return true
}

// LeadingEntry returns the index of the first non-zero element,
// scanning left to right, or Len() when every element is zero.
func (v Vector) LeadingEntry() int {
	idx := 0
	for idx < len(v.elems) && v.elems[idx] == 0 {
		idx++
	}
	return idx
}

// String renders v in its canonical text form: comma-space-joined
// elements wrapped in angle brackets, e.g. <1, 2, 3>.
// The empty vector renders as <>.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('<')
	for i, x := range v.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte('>')
	return sb.String()
}
