package amm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goShieldDEX/internal/core/amount"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
)

func TestInitialIssue(t *testing.T) {
	cases := []struct {
		a, b, want uint64
	}{
		{1, 1, 1},
		{2, 8, 4},
		{3, 5, 3},
		{1_000_000, 1_000_000, 1_000_000},
		{10, 1_000_000_000, 100_000},
		{math.MaxUint64, math.MaxUint64, math.MaxUint64},
	}
	for _, tc := range cases {
		got, err := InitialIssue(tc.a, tc.b)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "issue(%d, %d)", tc.a, tc.b)

		swapped, err := InitialIssue(tc.b, tc.a)
		require.NoError(t, err)
		assert.Equal(t, got, swapped)
	}

	_, err := InitialIssue(0, 5)
	assert.Equal(t, tx.TecINVALID_PARAMS, tx.ResultOf(err))
	_, err = InitialIssue(5, 0)
	assert.Equal(t, tx.TecINVALID_PARAMS, tx.ResultOf(err))
}

func TestProportionalIssue(t *testing.T) {
	shares, err := ProportionalIssue(100, 300, 1_000, 2_000, 500)
	require.NoError(t, err)
	// min(100*500/1000, 300*500/2000) = min(50, 75)
	assert.Equal(t, uint64(50), shares)

	shares, err = ProportionalIssue(4, 9, 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), shares)

	_, err = ProportionalIssue(math.MaxUint64, 1, 1, 1, math.MaxUint64)
	require.ErrorIs(t, err, amount.ErrOverflow)
}

func TestRedeem(t *testing.T) {
	a, b, err := Redeem(10, 1_000, 3_001, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), a)
	assert.Equal(t, uint64(300), b)

	_, _, err = Redeem(0, 1, 1, 1)
	assert.Equal(t, tx.TecINVALID_PARAMS, tx.ResultOf(err))

	_, _, err = Redeem(1, 1, 1, 0)
	require.ErrorIs(t, err, amount.ErrOverflow)
}

func TestIssueThenRedeemNeverPaysMore(t *testing.T) {
	deposits := [][2]uint64{
		{1, 1}, {2, 3}, {7, 1_000_003}, {999_999, 1_000_001},
		{123_456_789, 987_654_321}, {math.MaxUint32, 17},
	}
	for _, d := range deposits {
		shares, err := InitialIssue(d[0], d[1])
		require.NoError(t, err)
		a, b, err := Redeem(shares, d[0], d[1], shares)
		require.NoError(t, err)
		assert.LessOrEqual(t, a, d[0])
		assert.LessOrEqual(t, b, d[1])
	}
}

func TestQuoteSwap(t *testing.T) {
	t.Run("reference trade", func(t *testing.T) {
		q, err := QuoteSwap(1_000_000, 1_000_000, 10_000, 3_000_000, 0)
		require.NoError(t, err)
		assert.Equal(t, SwapQuote{Fee: 30, Tax: 0, NetBid: 9_970, AskAmount: 9_872}, q)
	})

	t.Run("tax is withheld before pricing", func(t *testing.T) {
		q, err := QuoteSwap(1_000_000, 1_000_000, 10_000, 3_000_000, 10_000_000)
		require.NoError(t, err)
		assert.Equal(t, uint64(100), q.Tax)
		assert.Equal(t, uint64(9_870), q.NetBid)
		// 1e6 - floor(1e12 / 1_009_870)
		assert.Equal(t, uint64(1_000_000-990_226), q.AskAmount)
	})

	t.Run("ask follows the curve exactly", func(t *testing.T) {
		bidReserve, askReserve := uint64(5_432_109), uint64(8_765_432)
		q, err := QuoteSwap(bidReserve, askReserve, 77_777, 2_500_000, 1_000_000)
		require.NoError(t, err)
		k, err := amount.Mul(amount.NewWide(bidReserve), amount.NewWide(askReserve))
		require.NoError(t, err)
		next, err := amount.Div(k, amount.NewWide(bidReserve+q.NetBid))
		require.NoError(t, err)
		nextAsk, err := next.Uint64()
		require.NoError(t, err)
		assert.Equal(t, askReserve-nextAsk, q.AskAmount)
	})

	t.Run("fee plus tax above bid", func(t *testing.T) {
		_, err := QuoteSwap(1_000, 1_000, 10, amount.Precision, amount.Precision)
		require.ErrorIs(t, err, amount.ErrOverflow)
	})

	t.Run("empty pool", func(t *testing.T) {
		_, err := QuoteSwap(0, 0, 0, 0, 0)
		require.ErrorIs(t, err, amount.ErrOverflow)
	})
}
