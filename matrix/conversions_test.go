package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lorentz/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestGonumRoundTrip(t *testing.T) {
	m := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})

	g, err := matrix.ToGonum(m)
	require.NoError(t, err)
	r, c := g.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	require.Equal(t, 6.0, g.At(1, 2))

	// ToGonum copies: mutating gonum must not touch the source.
	g.Set(0, 0, -1)
	require.Equal(t, 1.0, MustAt(t, m, 0, 0))

	back, err := matrix.FromGonum(g.T())
	require.NoError(t, err)
	require.Equal(t, 3, back.Rows())
	require.Equal(t, -1.0, MustAt(t, back, 0, 0))
	require.Equal(t, 4.0, MustAt(t, back, 0, 1))
}

func TestFromGonum_Errors(t *testing.T) {
	_, err := matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.FromGonum(&mat.Dense{})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestValidateFinite(t *testing.T) {
	ok := NewFilledDense(t, 1, 2, []float64{1, 2})
	require.NoError(t, matrix.ValidateFinite(ok))
	require.NoError(t, matrix.ValidateFinite(hide{ok}))

	bad := NewFilledDense(t, 1, 2, []float64{1, math.Inf(-1)})
	require.ErrorIs(t, matrix.ValidateFinite(bad), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(hide{bad}), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite(nil), matrix.ErrNilMatrix)

	require.ErrorIs(t, matrix.ValidateVecLen(nil, 2), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}
