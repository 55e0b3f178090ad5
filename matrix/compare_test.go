package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvrank/matrix"
	"github.com/stretchr/testify/require"
)

func TestAllClose(t *testing.T) {
	A := MustFrom(t, [][]float64{{1, 2}, {3, 4}})
	B := MustFrom(t, [][]float64{{1, 2}, {3, 4 + 1e-12}})

	ok, err := matrix.AllClose(A, B, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(A, B, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.AllClose(hide{A}, B, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	// negative tolerances are normalized
	ok, err = matrix.AllClose(A, B, 0, -1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = matrix.AllClose(A, B, math.NaN(), 0)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.AllClose(A, MustDense(t, 3, 2), 0, 0)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.AllClose(nil, B, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestVecEqual(t *testing.T) {
	ok, err := matrix.VecEqual([]float64{0.1, 0.2}, []float64{0.1, 0.2})
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.VecEqual([]float64{0.1, 0.2}, []float64{0.1, math.Nextafter(0.2, 1)})
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = matrix.VecEqual([]float64{math.NaN()}, []float64{math.NaN()})
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.VecEqual([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.VecEqual(nil, []float64{1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestVecAllClose(t *testing.T) {
	ok, err := matrix.VecAllClose([]float64{1, 2}, []float64{1 + 1e-10, 2}, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.VecAllClose([]float64{1, math.NaN()}, []float64{1, math.NaN()}, 1, 1)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.VecAllClose([]float64{1}, []float64{1}, 0, math.Inf(1))
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDistances(t *testing.T) {
	a := []float64{0.5, 0.25, 0.25}
	b := []float64{0.25, 0.5, 0.25}

	d1, err := matrix.DistL1(a, b)
	require.NoError(t, err)
	require.InDelta(t, 0.5, d1, 1e-15)

	dInf, err := matrix.DistLInf(a, b)
	require.NoError(t, err)
	require.InDelta(t, 0.25, dInf, 1e-15)

	d1, err = matrix.DistL1(a, a)
	require.NoError(t, err)
	require.Zero(t, d1)

	_, err = matrix.DistL1(a, b[:2])
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.DistLInf(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	dInf, err = matrix.DistLInf([]float64{math.NaN()}, []float64{0})
	require.NoError(t, err)
	require.True(t, math.IsNaN(dInf)) // NaN residual must never look converged
}

func TestVecSum(t *testing.T) {
	require.Equal(t, 0.0, matrix.VecSum(nil))
	require.Equal(t, 1.0, matrix.VecSum([]float64{0.5, 0.25, 0.25}))
}
