package amount

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWideArithmetic(t *testing.T) {
	top := NewWide(math.MaxUint64)

	t.Run("product of two u64 fits", func(t *testing.T) {
		p, err := Mul(top, top)
		require.NoError(t, err)
		_, err = p.Uint64()
		require.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("product beyond 128 bits overflows", func(t *testing.T) {
		p, err := Mul(top, top)
		require.NoError(t, err)
		_, err = Mul(p, NewWide(2))
		require.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("sub underflow", func(t *testing.T) {
		_, err := Sub(NewWide(1), NewWide(2))
		require.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("div by zero", func(t *testing.T) {
		_, err := Div(NewWide(1), NewWide(0))
		require.ErrorIs(t, err, ErrOverflow)
	})

	t.Run("floor division", func(t *testing.T) {
		q, err := Div(NewWide(7), NewWide(2))
		require.NoError(t, err)
		v, err := q.Uint64()
		require.NoError(t, err)
		assert.Equal(t, uint64(3), v)
	})
}

func TestSqrt(t *testing.T) {
	cases := []struct {
		in   uint64
		want uint64
	}{
		{0, 0}, {1, 1}, {3, 1}, {4, 2}, {99, 9}, {100, 10},
		{1_000_000_000_000, 1_000_000},
	}
	for _, tc := range cases {
		v, err := Sqrt(NewWide(tc.in)).Uint64()
		require.NoError(t, err)
		assert.Equal(t, tc.want, v, "sqrt(%d)", tc.in)
	}

	p, err := Mul(NewWide(math.MaxUint64), NewWide(math.MaxUint64))
	require.NoError(t, err)
	v, err := Sqrt(p).Uint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), v)
}

func TestMulDiv(t *testing.T) {
	v, err := ApplyRate(10_000, 3_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(30), v)

	v, err = MulDiv(math.MaxUint64, math.MaxUint64, math.MaxUint64)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), v)

	_, err = MulDiv(math.MaxUint64, 2, 1)
	require.ErrorIs(t, err, ErrOverflow)

	_, err = MulDiv(1, 1, 0)
	require.ErrorIs(t, err, ErrOverflow)
}

func TestCheckedScalars(t *testing.T) {
	_, err := SubChecked(1, 2)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = AddChecked(math.MaxUint64, 1)
	require.ErrorIs(t, err, ErrOverflow)

	s, err := AddChecked(2, 3)
	require.NoError(t, err)
	assert.Equal(t, uint64(5), s)
}

func TestRates(t *testing.T) {
	assert.Equal(t, "0.3%", FormatRate(3_000_000))
	assert.Equal(t, "100%", FormatRate(Precision))
	assert.Equal(t, "0%", FormatRate(0))

	r, err := ParseRate("0.3%")
	require.NoError(t, err)
	assert.Equal(t, uint64(3_000_000), r)

	r, err = ParseRate("50000000")
	require.NoError(t, err)
	assert.Equal(t, uint64(50_000_000), r)

	_, err = ParseRate("-1")
	require.Error(t, err)
	_, err = ParseRate("abc")
	require.Error(t, err)
}
