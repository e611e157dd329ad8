// SPDX-License-Identifier: MIT

package matrix

import "gonum.org/v1/gonum/mat"

// ToGonum copies m into a gonum *mat.Dense so batches can flow into gonum's
// linear-algebra routines (SVD, solvers, ...).
// Complexity: O(r*c).
func ToGonum(m *Dense) (*mat.Dense, error) {
	if m == nil {
		return nil, matrixErrorf("ToGonum", ErrNilMatrix)
	}
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum copies any gonum mat.Matrix into a new Dense.
// Empty gonum matrices are rejected with ErrInvalidDimensions.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := g.Dims()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("FromGonum", err)
	}
	var i, j int
	for i = 0; i < r; i++ {
		base := i * c
		for j = 0; j < c; j++ {
			out.data[base+j] = g.At(i, j)
		}
	}

	return out, nil
}
