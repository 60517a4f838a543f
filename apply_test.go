package intpoly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplyReflectedOperands(t *testing.T) {
	p := New(1, 2, 4)

	got, err := Apply(OpAdd, -1, p)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, got.Coefficients())

	got, err = Apply(OpSub, 1, p)
	require.NoError(t, err)
	require.Equal(t, []int64{-1, -2, -3}, got.Coefficients())

	got, err = Apply(OpMul, uint8(2), *p)
	require.NoError(t, err)
	require.Equal(t, []int64{2, 4, 8}, got.Coefficients())

	got, err = Apply(OpMul, p, uint64(math.MaxInt64))
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), got.Coeff(0))
}

func TestApplyPolynomials(t *testing.T) {
	got, err := Apply(OpMul, New(3, 0, 0), New(4, -5, 7))
	require.NoError(t, err)
	require.True(t, got.Equal(New(12, -15, 21, 0, 0)))

	got, err = Apply(OpSub, New(1, 2, 4), Int(1))
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2, 3}, got.Coefficients())

	got, err = Apply(OpAdd, New(1, 2, 4), New(-1, 2, 4))
	require.NoError(t, err)
	require.Equal(t, []int64{4, 8}, got.Coefficients())
}

func TestApplyRejectsUnsupportedKinds(t *testing.T) {
	p := New(1, 2, 4)
	var nilPoly *Polynomial

	cases := []struct {
		lhs, rhs any
	}{
		{1, 2},
		{p, "x"},
		{p, []int64{1}},
		{p, 1.5},
		{nil, p},
		{nilPoly, p},
		{uint64(math.MaxUint64), p},
		{p, uint(1 << 63)},
	}
	for _, c := range cases {
		_, err := Apply(OpAdd, c.lhs, c.rhs)
		require.ErrorIs(t, err, ErrInvalidArgumentType, "%T %T", c.lhs, c.rhs)
	}
}

func TestApplyUnknownOperation(t *testing.T) {
	_, err := Apply(Op("div"), New(1), New(1))
	require.ErrorIs(t, err, ErrUnknownOperation)
}
