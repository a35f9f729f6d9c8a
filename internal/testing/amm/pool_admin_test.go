package amm_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goShieldDEX/internal/core/amount"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/amm"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	jtx "github.com/LeJamon/goShieldDEX/internal/testing"
	ammtest "github.com/LeJamon/goShieldDEX/internal/testing/amm"
)

func TestPauseResume(t *testing.T) {
	env := ammtest.NewAMMTestEnv(t)
	pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))

	// Resume is only valid from Paused.
	jtx.RequireTxFail(t, env.Submit(env.Alice, amm.NewResume(env.Alice.ID, pool)), ammtest.TecINVALID_STATE)

	env.Advance(time.Hour)
	result := env.Submit(env.Alice, amm.NewPause(env.Alice.ID, pool))
	jtx.RequireTxSuccess(t, result)
	require.True(t, result.HasEvent("pause"))
	env.RequireState(pool, sle.PoolPaused)
	require.Equal(t, env.Now().Unix(), env.Pool(pool).UpdatedAt)

	jtx.RequireTxFail(t, env.Submit(env.Alice, amm.NewPause(env.Alice.ID, pool)), ammtest.TecINVALID_STATE)

	_, err := env.Service().QuoteSwap(pool, env.USD, env.EUR, bid)
	require.Error(t, err)

	jtx.RequireTxSuccess(t, env.Submit(env.Alice, amm.NewResume(env.Alice.ID, pool)))
	env.RequireState(pool, sle.PoolInitialized)
	jtx.RequireTxSuccess(t, env.Submit(env.Bob, ammtest.Swap(env.Bob, pool).Sell(env.USD, bid).For(env.EUR).Build()))
}

func TestAuthorityOnly(t *testing.T) {
	env := ammtest.NewAMMTestEnv(t)
	pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))
	bob := env.Bob

	jtx.RequireUnchanged(t, env.TestEnv, func() {
		jtx.RequireTxFail(t, env.Submit(bob, amm.NewPause(bob.ID, pool)), ammtest.TecUNAUTHORIZED)
		jtx.RequireTxFail(t, env.Submit(bob, amm.NewUpdateFee(bob.ID, pool, 1)), ammtest.TecUNAUTHORIZED)
		jtx.RequireTxFail(t, env.Submit(bob, amm.NewUpdateReferralFee(bob.ID, pool, 1)), ammtest.TecUNAUTHORIZED)
		jtx.RequireTxFail(t, env.Submit(bob, amm.NewTransferOwnership(bob.ID, pool, bob.ID)), ammtest.TecUNAUTHORIZED)
		jtx.RequireTxFail(t, env.Submit(bob, ammtest.Distribute(bob, pool).Amounts(1, 1).Build()), ammtest.TecUNAUTHORIZED)
	})

	// The protocol admin is not a pool authority.
	admin := env.Admin()
	jtx.RequireTxFail(t, env.Submit(admin, amm.NewPause(admin.ID, pool)), ammtest.TecUNAUTHORIZED)
}

func TestUpdateFees(t *testing.T) {
	env := ammtest.NewAMMTestEnv(t)
	pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))

	result := env.Submit(env.Alice, amm.NewUpdateFee(env.Alice.ID, pool, jtx.Percent(1)))
	jtx.RequireTxSuccess(t, result)
	require.True(t, result.HasEvent("update_fee"))
	require.Equal(t, jtx.Percent(1), env.Pool(pool).LPFee)

	jtx.RequireTxSuccess(t, env.Submit(env.Alice, amm.NewUpdateReferralFee(env.Alice.ID, pool, jtx.Percent(0.5))))
	require.Equal(t, jtx.Percent(0.5), env.Pool(pool).ReferralFee)

	jtx.RequireTxFail(t, env.Submit(env.Alice, amm.NewUpdateFee(env.Alice.ID, pool, amount.Precision+1)), ammtest.TecINVALID_PARAMS)

	// The new LP fee prices the next swap: 1% of 10_000.
	q, err := env.Service().QuoteSwap(pool, env.USD, env.EUR, bid)
	require.NoError(t, err)
	require.Equal(t, uint64(100), q.Fee)
}

func TestTransferOwnership(t *testing.T) {
	env := ammtest.NewAMMTestEnv(t)
	pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))

	jtx.RequireTxSuccess(t, env.Submit(env.Alice, amm.NewTransferOwnership(env.Alice.ID, pool, env.Carol.ID)))
	require.Equal(t, env.Carol.ID, env.Pool(pool).Authority)

	jtx.RequireTxFail(t, env.Submit(env.Alice, amm.NewPause(env.Alice.ID, pool)), ammtest.TecUNAUTHORIZED)
	jtx.RequireTxSuccess(t, env.Submit(env.Carol, amm.NewPause(env.Carol.ID, pool)))
}

func TestDistributeLPFee(t *testing.T) {
	setup := func(t *testing.T) (*ammtest.AMMTestEnv, types.Hash256) {
		env := ammtest.NewAMMTestEnv(t)
		pool := env.CreatePool(env.Alice, reserve, reserve, jtx.Percent(0.3))
		jtx.RequireTxSuccess(t, env.Submit(env.Bob, ammtest.Swap(env.Bob, pool).Sell(env.USD, bid).For(env.EUR).Build()))
		jtx.RequireTxSuccess(t, env.Submit(env.Bob, ammtest.Swap(env.Bob, pool).Sell(env.EUR, bid).For(env.USD).Build()))
		feeA, feeB := env.Accrued(pool)
		require.Equal(t, uint64(30), feeA)
		require.Equal(t, uint64(30), feeB)
		return env, pool
	}

	t.Run("ClampedToAccrued", func(t *testing.T) {
		env, pool := setup(t)
		dave := env.Account("dave")
		erin := env.Account("erin")

		result := env.Submit(env.Alice, ammtest.Distribute(env.Alice, pool).Amounts(1_000, 10).Recipients(dave, erin).Build())
		jtx.RequireTxSuccess(t, result)
		require.True(t, result.HasEvent("distribute_lp_fee"))

		jtx.RequireBalance(t, env.TestEnv, dave, env.USD, 30)
		jtx.RequireBalance(t, env.TestEnv, erin, env.EUR, 10)
		feeA, feeB := env.Accrued(pool)
		require.Zero(t, feeA)
		require.Equal(t, uint64(20), feeB)

		// Nothing left on A; the call still succeeds and pays zero.
		jtx.RequireTxSuccess(t, env.Submit(env.Alice, ammtest.Distribute(env.Alice, pool).Amounts(5, 0).Recipients(dave, erin).Build()))
		jtx.RequireBalance(t, env.TestEnv, dave, env.USD, 30)
	})

	t.Run("Admin", func(t *testing.T) {
		env, pool := setup(t)
		admin := env.Admin()
		jtx.RequireTxSuccess(t, env.Submit(admin, ammtest.Distribute(admin, pool).Amounts(30, 30).Build()))
		jtx.RequireBalance(t, env.TestEnv, admin, env.USD, 30)
		jtx.RequireBalance(t, env.TestEnv, admin, env.EUR, 30)
	})

	t.Run("ReservesUnaffected", func(t *testing.T) {
		env, pool := setup(t)
		before, err := env.Service().QuoteSwap(pool, env.USD, env.EUR, bid)
		require.NoError(t, err)
		jtx.RequireTxSuccess(t, env.Submit(env.Alice, ammtest.Distribute(env.Alice, pool).Amounts(30, 30).Build()))
		after, err := env.Service().QuoteSwap(pool, env.USD, env.EUR, bid)
		require.NoError(t, err)
		require.Equal(t, before, after)
	})
}
