package amm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goShieldDEX/internal/core/amount"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	jtx "github.com/LeJamon/goShieldDEX/internal/testing"
	"github.com/LeJamon/goShieldDEX/internal/testing/amm"
)

func TestInitialize(t *testing.T) {
	env := amm.NewAMMTestEnv(t)

	create := amm.Initialize(env.Alice, env.USD, env.EUR, env.Config).Amounts(1_000_000, 4_000_000)
	pool := create.PoolID()
	result := env.Submit(env.Alice, create.Build())
	jtx.RequireTxSuccess(t, result)
	require.True(t, result.HasEvent("initialize"))

	// floor(sqrt(1e6 * 4e6))
	require.Equal(t, uint64(2_000_000), result.Return())

	p := env.Pool(pool)
	require.Equal(t, env.Alice.ID, p.Authority)
	require.Equal(t, env.USD, p.AssetA)
	require.Equal(t, env.EUR, p.AssetB)
	require.Equal(t, jtx.Percent(0.3), p.LPFee)
	require.Equal(t, env.Config, p.TaxConfig)
	require.Equal(t, env.Now().Unix(), p.CreatedAt)
	env.RequireState(pool, sle.PoolInitialized)

	jtx.RequireReserves(t, env.TestEnv, pool, 1_000_000, 4_000_000)
	require.Equal(t, uint64(2_000_000), env.Shares(pool, env.Alice))
	require.Equal(t, uint64(2_000_000), env.ShareSupply(pool))
	jtx.RequireBalance(t, env.TestEnv, env.Alice, env.USD, amm.DefaultFunding-1_000_000)
	jtx.RequireBalance(t, env.TestEnv, env.Alice, env.EUR, amm.DefaultFunding-4_000_000)
}

func TestInvalidInitialize(t *testing.T) {
	t.Run("SameAsset", func(t *testing.T) {
		env := amm.NewAMMTestEnv(t)
		create := amm.Initialize(env.Alice, env.USD, env.USD, env.Config).Amounts(1_000, 1_000)
		jtx.RequireUnchanged(t, env.TestEnv, func() {
			jtx.RequireTxFail(t, env.Submit(env.Alice, create.Build()), amm.TecINVALID_PARAMS)
		})
	})

	t.Run("ZeroAmount", func(t *testing.T) {
		env := amm.NewAMMTestEnv(t)
		create := amm.Initialize(env.Alice, env.USD, env.EUR, env.Config).Amounts(0, 1_000)
		jtx.RequireTxFail(t, env.Submit(env.Alice, create.Build()), amm.TecINVALID_PARAMS)
	})

	t.Run("FeeAboveMaximum", func(t *testing.T) {
		env := amm.NewAMMTestEnv(t)
		create := amm.Initialize(env.Alice, env.USD, env.EUR, env.Config).
			Amounts(1_000, 1_000).
			ReferralFee(amount.Precision + 1)
		jtx.RequireTxFail(t, env.Submit(env.Alice, create.Build()), amm.TecINVALID_PARAMS)
	})

	t.Run("UnknownPlatformConfig", func(t *testing.T) {
		env := amm.NewAMMTestEnv(t)
		create := amm.Initialize(env.Alice, env.USD, env.EUR, types.Hash256{0xAB}).Amounts(1_000, 1_000)
		jtx.RequireTxFail(t, env.Submit(env.Alice, create.Build()), amm.TecNO_ENTRY)
	})

	t.Run("Duplicate", func(t *testing.T) {
		env := amm.NewAMMTestEnv(t)
		env.CreatePool(env.Alice, 1_000, 1_000, jtx.Percent(0.3))
		create := amm.Initialize(env.Alice, env.USD, env.EUR, env.Config).Amounts(1_000, 1_000)
		jtx.RequireTxFail(t, env.Submit(env.Alice, create.Build()), amm.TecDUPLICATE)

		// A new nonce opens a second pool over the same pair.
		jtx.RequireTxSuccess(t, env.Submit(env.Alice, create.Nonce(1).Build()))
		require.True(t, env.PoolExists(create.PoolID()))
	})

	t.Run("Unfunded", func(t *testing.T) {
		env := amm.NewAMMTestEnv(t)
		dave := env.Account("dave")
		env.Fund(dave, env.USD, 1_000)
		create := amm.Initialize(dave, env.USD, env.EUR, env.Config).Amounts(1_000, 1_000)
		jtx.RequireUnchanged(t, env.TestEnv, func() {
			jtx.RequireTxFail(t, env.Submit(dave, create.Build()), amm.TecUNFUNDED)
		})
		require.False(t, env.PoolExists(create.PoolID()))
	})
}

func TestCustomFee(t *testing.T) {
	highFee := jtx.Percent(10)

	t.Run("PaidToFeeReceiver", func(t *testing.T) {
		env := amm.NewAMMTestEnv(t)
		env.Fund(env.Alice, types.NativeToken, 1_000)

		create := amm.Initialize(env.Alice, env.USD, env.EUR, env.Config).
			Amounts(1_000, 1_000).
			LPFee(highFee).
			CustomFee(400)
		jtx.RequireTxSuccess(t, env.Submit(env.Alice, create.Build()))

		jtx.RequireBalance(t, env.TestEnv, env.Alice, types.NativeToken, 600)
		jtx.RequireBalance(t, env.TestEnv, env.FeeReceiver(), types.NativeToken, 400)
		require.Equal(t, highFee, env.Pool(create.PoolID()).LPFee)
	})

	t.Run("BelowMinimum", func(t *testing.T) {
		env := amm.NewAMMTestEnv(t, jtx.WithCustomFee(jtx.Percent(5), 500))
		env.Fund(env.Alice, types.NativeToken, 1_000)

		create := amm.Initialize(env.Alice, env.USD, env.EUR, env.Config).
			Amounts(1_000, 1_000).
			LPFee(highFee).
			CustomFee(499)
		jtx.RequireTxFail(t, env.Submit(env.Alice, create.Build()), amm.TecINVALID_PARAMS)
	})

	t.Run("UnfundedSidePayment", func(t *testing.T) {
		env := amm.NewAMMTestEnv(t)
		create := amm.Initialize(env.Alice, env.USD, env.EUR, env.Config).
			Amounts(1_000, 1_000).
			LPFee(highFee).
			CustomFee(400)
		jtx.RequireUnchanged(t, env.TestEnv, func() {
			jtx.RequireTxFail(t, env.Submit(env.Alice, create.Build()), amm.TecUNFUNDED)
		})
	})

	t.Run("AtBoundIsFree", func(t *testing.T) {
		env := amm.NewAMMTestEnv(t, jtx.WithCustomFee(jtx.Percent(5), 1))
		create := amm.Initialize(env.Alice, env.USD, env.EUR, env.Config).
			Amounts(1_000, 1_000).
			LPFee(jtx.Percent(5))
		jtx.RequireTxSuccess(t, env.Submit(env.Alice, create.Build()))
		jtx.RequireBalance(t, env.TestEnv, env.FeeReceiver(), types.NativeToken, 0)
	})
}
