package amm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/amm"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	jtx "github.com/LeJamon/goShieldDEX/internal/testing"
	ammtest "github.com/LeJamon/goShieldDEX/internal/testing/amm"
)

// Reference trade: 1e6/1e6 reserves, 0.3% LP fee, 10_000 bid.
const (
	reserve = 1_000_000
	bid     = 10_000
)

func TestSwap(t *testing.T) {
	t.Run("ReferenceTrade", func(t *testing.T) {
		env := ammtest.NewAMMTestEnv(t)
		pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))

		result := env.Submit(env.Bob, ammtest.Swap(env.Bob, pool).Sell(env.USD, bid).For(env.EUR).Build())
		jtx.RequireTxSuccess(t, result)
		require.True(t, result.HasEvent("swap"))
		require.Equal(t, uint64(9_872), result.Return())

		jtx.RequireBalance(t, env.TestEnv, env.Bob, env.USD, ammtest.DefaultFunding-bid)
		jtx.RequireBalance(t, env.TestEnv, env.Bob, env.EUR, ammtest.DefaultFunding+9_872)
		jtx.RequireReserves(t, env.TestEnv, pool, reserve+bid, reserve-9_872)

		feeA, feeB := env.Accrued(pool)
		require.Equal(t, uint64(30), feeA)
		require.Zero(t, feeB)
	})

	t.Run("ReverseDirection", func(t *testing.T) {
		env := ammtest.NewAMMTestEnv(t)
		pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))

		result := env.Submit(env.Bob, ammtest.Swap(env.Bob, pool).Sell(env.EUR, bid).For(env.USD).Build())
		jtx.RequireTxSuccess(t, result)
		require.Equal(t, uint64(9_872), result.Return())

		feeA, feeB := env.Accrued(pool)
		require.Zero(t, feeA)
		require.Equal(t, uint64(30), feeB)
	})

	t.Run("TaxGoesToFeeReceiver", func(t *testing.T) {
		env := ammtest.NewAMMTestEnv(t)
		env.SetTax(jtx.Percent(1))
		pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))

		result := env.Submit(env.Bob, ammtest.Swap(env.Bob, pool).Sell(env.USD, bid).For(env.EUR).Build())
		jtx.RequireTxSuccess(t, result)
		require.Equal(t, uint64(9_774), result.Return())

		jtx.RequireBalance(t, env.TestEnv, env.FeeReceiver(), env.USD, 100)
		jtx.RequireBalance(t, env.TestEnv, env.Bob, env.USD, ammtest.DefaultFunding-bid)
		jtx.RequireReserves(t, env.TestEnv, pool, reserve+bid-100, reserve-9_774)
	})

	t.Run("AccruedFeesAreNotPriced", func(t *testing.T) {
		env := ammtest.NewAMMTestEnv(t)
		pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))
		jtx.RequireTxSuccess(t, env.Submit(env.Bob, ammtest.Swap(env.Bob, pool).Sell(env.USD, bid).For(env.EUR).Build()))

		// The second trade prices against 1_009_970 / 990_128, not the raw
		// escrow balance which still holds the 30 accrued.
		want, err := amm.QuoteSwap(1_009_970, 990_128, bid, jtx.Percent(0.3), 0)
		require.NoError(t, err)

		result := env.Submit(env.Carol, ammtest.Swap(env.Carol, pool).Sell(env.USD, bid).For(env.EUR).Build())
		jtx.RequireTxSuccess(t, result)
		require.Equal(t, want.AskAmount, result.Return())
	})
}

func TestSwapSlippage(t *testing.T) {
	env := ammtest.NewAMMTestEnv(t)
	pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))

	jtx.RequireUnchanged(t, env.TestEnv, func() {
		result := env.Submit(env.Bob, ammtest.Swap(env.Bob, pool).Sell(env.USD, bid).For(env.EUR).MinAsk(9_873).Build())
		jtx.RequireTxFail(t, result, ammtest.TecLARGE_SLIPPAGE)
		require.Empty(t, result.Metadata.Movements)
	})

	// The exact bound passes.
	result := env.Submit(env.Bob, ammtest.Swap(env.Bob, pool).Sell(env.USD, bid).For(env.EUR).MinAsk(9_872).Build())
	jtx.RequireTxSuccess(t, result)
}

func TestSwapCannotBeReplayed(t *testing.T) {
	env := ammtest.NewAMMTestEnv(t)
	pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))

	swap := ammtest.Swap(env.Bob, pool).Sell(env.USD, bid).For(env.EUR).Build()
	jtx.RequireTxSuccess(t, env.Submit(env.Bob, swap))
	jtx.RequireBalance(t, env.TestEnv, env.Bob, env.USD, ammtest.DefaultFunding-bid)

	body, err := tx.ToJSON(swap)
	require.NoError(t, err)

	// Anyone holding the signed body can resend it; it must not apply again.
	jtx.RequireUnchanged(t, env.TestEnv, func() {
		jtx.RequireTxFail(t, env.SubmitJSON(body), ammtest.TefPAST_SEQ)
	})
	jtx.RequireBalance(t, env.TestEnv, env.Bob, env.USD, ammtest.DefaultFunding-bid)
	jtx.RequireBalance(t, env.TestEnv, env.Bob, env.EUR, ammtest.DefaultFunding+9_872)

	// A fresh swap with the next sequence still goes through.
	jtx.RequireTxSuccess(t, env.Submit(env.Bob, ammtest.Swap(env.Bob, pool).Sell(env.USD, bid).For(env.EUR).Build()))
	require.Equal(t, uint32(3), env.Sequence(env.Bob))
}

func TestInvalidSwap(t *testing.T) {
	env := ammtest.NewAMMTestEnv(t)
	pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))

	tests := []struct {
		name string
		swap *amm.Swap
		code string
	}{
		{
			name: "ForeignAsset",
			swap: ammtest.Swap(env.Bob, pool).Sell(env.USD, bid).For(jtx.Token("GBP")).Build(),
			code: ammtest.TecUNMATCH_POOL,
		},
		{
			name: "SameAsset",
			swap: ammtest.Swap(env.Bob, pool).Sell(env.USD, bid).For(env.USD).Build(),
			code: ammtest.TecUNMATCH_POOL,
		},
		{
			name: "ZeroBid",
			swap: ammtest.Swap(env.Bob, pool).Sell(env.USD, 0).For(env.EUR).Build(),
			code: ammtest.TecINVALID_PARAMS,
		},
		{
			name: "UnknownPool",
			swap: ammtest.Swap(env.Bob, types.Hash256{0xAB}).Sell(env.USD, bid).For(env.EUR).Build(),
			code: ammtest.TecNO_ENTRY,
		},
		{
			name: "Unfunded",
			swap: ammtest.Swap(env.Bob, pool).Sell(env.USD, ammtest.DefaultFunding+1).For(env.EUR).Build(),
			code: ammtest.TecUNFUNDED,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			jtx.RequireUnchanged(t, env.TestEnv, func() {
				jtx.RequireTxFail(t, env.Submit(env.Bob, tc.swap), tc.code)
			})
		})
	}
}

func TestQuoteMatchesSwap(t *testing.T) {
	env := ammtest.NewAMMTestEnv(t)
	env.SetTax(jtx.Percent(1))
	pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))

	var q amm.SwapQuote
	jtx.RequireUnchanged(t, env.TestEnv, func() {
		var err error
		q, err = env.Service().QuoteSwap(pool, env.USD, env.EUR, bid)
		require.NoError(t, err)
	})
	require.Equal(t, amm.SwapQuote{Fee: 30, Tax: 100, NetBid: 9_870, AskAmount: 9_774}, q)

	result := env.Submit(env.Bob, ammtest.Swap(env.Bob, pool).Sell(env.USD, bid).For(env.EUR).MinAsk(q.AskAmount).Build())
	jtx.RequireTxSuccess(t, result)
	require.Equal(t, q.AskAmount, result.Return())

	_, err := env.Service().QuoteSwap(pool, env.USD, env.USD, bid)
	require.ErrorIs(t, err, tx.TecUNMATCH_POOL)
}
