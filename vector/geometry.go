package vector

// KroneckerDelta returns 1 if i == j and 0 otherwise.
func KroneckerDelta(i, j int) float64 {
	if i == j {
		return 1
	}
	return 0
}

// LeviCivita returns the 3-D Levi-Civita symbol over (1, 2, 3):
// +1 for an even permutation, -1 for an odd permutation, 0 when any
// index repeats.
func LeviCivita(i, j, k int) int {
	switch [3]int{i, j, k} {
	case [3]int{1, 2, 3}, [3]int{2, 3, 1}, [3]int{3, 1, 2}:
		return 1
	case [3]int{1, 3, 2}, [3]int{2, 1, 3}, [3]int{3, 2, 1}:
		return -1
	}
	return 0
}

// Dot returns the inner product of a and b, the sum of their
// elementwise products.
// Returns ErrDimensionMismatch when the lengths differ.
func Dot(a, b Vector) (float64, error) {
	if len(a.elems) != len(b.elems) {
		return 0, ErrDimensionMismatch
	}
	var sum float64
	for i, x := range a.elems {
		sum += x * b.elems[i]
	}
	return sum, nil
}

// Cross returns the vector product of a and b: the vector orthogonal
// to both, oriented by the right-hand rule, with magnitude
// |a||b|sin(theta).
// Both operands must have length 3; returns ErrDimensionMismatch
// otherwise.
func Cross(a, b Vector) (Vector, error) {
	if len(a.elems) != 3 || len(b.elems) != 3 {
		return Vector{}, ErrDimensionMismatch
	}
	return Vector{elems: []float64{
		a.elems[1]*b.elems[2] - a.elems[2]*b.elems[1],
		a.elems[2]*b.elems[0] - a.elems[0]*b.elems[2],
		a.elems[0]*b.elems[1] - a.elems[1]*b.elems[0],
	}}, nil
}

// ScalarTriple returns a · (b × c).
func ScalarTriple(a, b, c Vector) (float64, error) {
	bc, err := Cross(b, c)
	if err != nil {
		return 0, err
	}
	return Dot(a, bc)
}

// VectorTriple returns the vector triple product a × (b × c),
// computed through the expansion (a·c)b - (a·b)c.
func VectorTriple(a, b, c Vector) (Vector, error) {
	ac, err := Dot(a, c)
	if err != nil {
		return Vector{}, err
	}
	ab, err := Dot(a, b)
	if err != nil {
		return Vector{}, err
	}
	return b.Scale(ac).Sub(c.Scale(ab))
}
