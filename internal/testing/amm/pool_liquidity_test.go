package amm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/amm"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	jtx "github.com/LeJamon/goShieldDEX/internal/testing"
	ammtest "github.com/LeJamon/goShieldDEX/internal/testing/amm"
)

func TestDeposit(t *testing.T) {
	t.Run("Geometric", func(t *testing.T) {
		env := ammtest.NewAMMTestEnv(t)
		pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))

		result := env.Submit(env.Bob, ammtest.Deposit(env.Bob, pool, env.USD, env.EUR).Amounts(1_000, 2_000).Build())
		jtx.RequireTxSuccess(t, result)
		require.True(t, result.HasEvent("add_liquidity"))

		// floor(sqrt(1_000 * 2_000)), independent of the reserves
		require.Equal(t, uint64(1_414), result.Return())
		require.Equal(t, uint64(1_414), env.Shares(pool, env.Bob))
		require.Equal(t, uint64(reserve+1_414), env.ShareSupply(pool))
		jtx.RequireReserves(t, env.TestEnv, pool, reserve+1_000, reserve+2_000)
	})

	t.Run("Proportional", func(t *testing.T) {
		env := ammtest.NewAMMTestEnv(t, jtx.WithIssuance(tx.IssuanceProportional))
		pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))

		// The smaller side sets the shares.
		result := env.Submit(env.Bob, ammtest.Deposit(env.Bob, pool, env.USD, env.EUR).Amounts(1_000, 2_000).Build())
		jtx.RequireTxSuccess(t, result)
		require.Equal(t, uint64(1_000), result.Return())
		require.Equal(t, uint64(reserve+1_000), env.ShareSupply(pool))
	})

	t.Run("ProportionalIgnoresAccruedFees", func(t *testing.T) {
		env := ammtest.NewAMMTestEnv(t, jtx.WithIssuance(tx.IssuanceProportional))
		pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))
		jtx.RequireTxSuccess(t, env.Submit(env.Bob, ammtest.Swap(env.Bob, pool).Sell(env.USD, bid).For(env.EUR).Build()))

		// Effective reserves are 1_009_970 / 990_128 against 1e6 shares.
		result := env.Submit(env.Carol, ammtest.Deposit(env.Carol, pool, env.USD, env.EUR).Amounts(100_997, 99_013).Build())
		jtx.RequireTxSuccess(t, result)
		require.Equal(t, uint64(100_000), result.Return())
	})

	t.Run("Invalid", func(t *testing.T) {
		env := ammtest.NewAMMTestEnv(t)
		pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))

		jtx.RequireUnchanged(t, env.TestEnv, func() {
			jtx.RequireTxFail(t, env.Submit(env.Bob, ammtest.Deposit(env.Bob, pool, env.EUR, env.USD).Amounts(1, 1).Build()), ammtest.TecUNMATCH_POOL)
			jtx.RequireTxFail(t, env.Submit(env.Bob, ammtest.Deposit(env.Bob, pool, env.USD, env.EUR).Amounts(0, 1).Build()), ammtest.TecINVALID_PARAMS)
			jtx.RequireTxFail(t, env.Submit(env.Bob, ammtest.Deposit(env.Bob, pool, env.USD, env.EUR).Amounts(ammtest.DefaultFunding+1, 1).Build()), ammtest.TecUNFUNDED)
		})
	})
}

func TestWithdraw(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		env := ammtest.NewAMMTestEnv(t)
		pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))

		result := env.Submit(env.Alice, ammtest.Withdraw(env.Alice, pool, env.USD, env.EUR, reserve))
		jtx.RequireTxSuccess(t, result)
		require.True(t, result.HasEvent("remove_liquidity"))

		jtx.RequireBalance(t, env.TestEnv, env.Alice, env.USD, ammtest.DefaultFunding)
		jtx.RequireBalance(t, env.TestEnv, env.Alice, env.EUR, ammtest.DefaultFunding)
		require.Zero(t, env.ShareSupply(pool))
		jtx.RequireReserves(t, env.TestEnv, pool, 0, 0)
	})

	t.Run("LeavesAccruedFees", func(t *testing.T) {
		env := ammtest.NewAMMTestEnv(t)
		pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))
		jtx.RequireTxSuccess(t, env.Submit(env.Bob, ammtest.Swap(env.Bob, pool).Sell(env.USD, bid).For(env.EUR).Build()))

		jtx.RequireTxSuccess(t, env.Submit(env.Alice, ammtest.Withdraw(env.Alice, pool, env.USD, env.EUR, reserve)))
		jtx.RequireBalance(t, env.TestEnv, env.Alice, env.USD, ammtest.DefaultFunding-reserve+1_009_970)
		jtx.RequireBalance(t, env.TestEnv, env.Alice, env.EUR, ammtest.DefaultFunding-reserve+990_128)

		// Only the accrued fees remain in escrow.
		jtx.RequireReserves(t, env.TestEnv, pool, 30, 0)
	})

	t.Run("Partial", func(t *testing.T) {
		env := ammtest.NewAMMTestEnv(t)
		pool := env.CreatePool(env.Alice, reserve, 4*reserve, jtx.Percent(0.3))

		// 2e6 shares outstanding; a quarter of them redeems a quarter of each side.
		jtx.RequireTxSuccess(t, env.Submit(env.Alice, ammtest.Withdraw(env.Alice, pool, env.USD, env.EUR, 500_000)))
		jtx.RequireReserves(t, env.TestEnv, pool, 750_000, 3_000_000)
		require.Equal(t, uint64(1_500_000), env.ShareSupply(pool))
	})

	t.Run("MoreThanHeld", func(t *testing.T) {
		env := ammtest.NewAMMTestEnv(t)
		pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))
		jtx.RequireUnchanged(t, env.TestEnv, func() {
			jtx.RequireTxFail(t, env.Submit(env.Bob, ammtest.Withdraw(env.Bob, pool, env.USD, env.EUR, 10)), ammtest.TecUNFUNDED)
		})
	})

	t.Run("ZeroShares", func(t *testing.T) {
		env := ammtest.NewAMMTestEnv(t)
		pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))
		jtx.RequireTxFail(t, env.Submit(env.Alice, ammtest.Withdraw(env.Alice, pool, env.USD, env.EUR, 0)), ammtest.TecINVALID_PARAMS)
	})
}

func TestPausedPoolAcceptsLiquidity(t *testing.T) {
	env := ammtest.NewAMMTestEnv(t)
	pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))
	jtx.RequireTxSuccess(t, env.Submit(env.Alice, amm.NewPause(env.Alice.ID, pool)))
	env.RequireState(pool, sle.PoolPaused)

	jtx.RequireTxSuccess(t, env.Submit(env.Bob, ammtest.Deposit(env.Bob, pool, env.USD, env.EUR).Amounts(1_000, 1_000).Build()))
	jtx.RequireTxSuccess(t, env.Submit(env.Bob, ammtest.Withdraw(env.Bob, pool, env.USD, env.EUR, 1_000)))
	jtx.RequireTxFail(t, env.Submit(env.Bob, ammtest.Swap(env.Bob, pool).Sell(env.USD, bid).For(env.EUR).Build()), ammtest.TecINVALID_STATE)
}
