// Package amm provides test builders for pool transactions.
package amm

import (
	"github.com/LeJamon/goShieldDEX/internal/core/tx/amm"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	jtx "github.com/LeJamon/goShieldDEX/internal/testing"
)

// InitializeBuilder provides a fluent interface for building Initialize transactions.
type InitializeBuilder struct {
	account     *jtx.Account
	assetA      types.TokenID
	assetB      types.TokenID
	config      types.Hash256
	amountA     uint64
	amountB     uint64
	nonce       uint32
	lpFee       uint64
	referralFee uint64
	customFee   uint64
}

// Initialize creates a new InitializeBuilder with the default 0.3% LP fee.
func Initialize(account *jtx.Account, assetA, assetB types.TokenID, config types.Hash256) *InitializeBuilder {
	return &InitializeBuilder{
		account: account,
		assetA:  assetA,
		assetB:  assetB,
		config:  config,
		lpFee:   jtx.Percent(0.3),
	}
}

// Amounts sets the initial deposit.
func (b *InitializeBuilder) Amounts(a, bAmt uint64) *InitializeBuilder {
	b.amountA = a
	b.amountB = bAmt
	return b
}

// Nonce sets the pool nonce.
func (b *InitializeBuilder) Nonce(n uint32) *InitializeBuilder {
	b.nonce = n
	return b
}

// LPFee sets the LP fee rate.
func (b *InitializeBuilder) LPFee(rate uint64) *InitializeBuilder {
	b.lpFee = rate
	return b
}

// ReferralFee sets the referral fee rate.
func (b *InitializeBuilder) ReferralFee(rate uint64) *InitializeBuilder {
	b.referralFee = rate
	return b
}

// CustomFee sets the native side payment offered for a high LP fee.
func (b *InitializeBuilder) CustomFee(v uint64) *InitializeBuilder {
	b.customFee = v
	return b
}

// PoolID returns the id of the pool the transaction creates.
func (b *InitializeBuilder) PoolID() types.Hash256 {
	return b.Build().PoolID()
}

// Build creates the Initialize transaction.
func (b *InitializeBuilder) Build() *amm.Initialize {
	t := amm.NewInitialize(b.account.ID, b.assetA, b.assetB, b.config)
	t.AmountA = b.amountA
	t.AmountB = b.amountB
	t.Nonce = b.nonce
	t.LPFee = b.lpFee
	t.ReferralFee = b.referralFee
	t.CustomFeeAmount = b.customFee
	return t
}

// DepositBuilder provides a fluent interface for building AddLiquidity transactions.
type DepositBuilder struct {
	account *jtx.Account
	pool    types.Hash256
	assetA  types.TokenID
	assetB  types.TokenID
	amountA uint64
	amountB uint64
}

// Deposit creates a new DepositBuilder.
func Deposit(account *jtx.Account, pool types.Hash256, assetA, assetB types.TokenID) *DepositBuilder {
	return &DepositBuilder{account: account, pool: pool, assetA: assetA, assetB: assetB}
}

// Amounts sets the deposited amounts.
func (b *DepositBuilder) Amounts(a, bAmt uint64) *DepositBuilder {
	b.amountA = a
	b.amountB = bAmt
	return b
}

// Build creates the AddLiquidity transaction.
func (b *DepositBuilder) Build() *amm.AddLiquidity {
	return amm.NewAddLiquidity(b.account.ID, b.pool, b.assetA, b.assetB, b.amountA, b.amountB)
}

// Withdraw builds a RemoveLiquidity transaction burning shares.
func Withdraw(account *jtx.Account, pool types.Hash256, assetA, assetB types.TokenID, shares uint64) *amm.RemoveLiquidity {
	return amm.NewRemoveLiquidity(account.ID, pool, assetA, assetB, shares)
}

// SwapBuilder provides a fluent interface for building Swap transactions.
type SwapBuilder struct {
	account *jtx.Account
	pool    types.Hash256
	bid     types.TokenID
	ask     types.TokenID
	amount  uint64
	minAsk  uint64
}

// Swap creates a new SwapBuilder.
func Swap(account *jtx.Account, pool types.Hash256) *SwapBuilder {
	return &SwapBuilder{account: account, pool: pool}
}

// Sell sets the bid asset and amount.
func (b *SwapBuilder) Sell(token types.TokenID, v uint64) *SwapBuilder {
	b.bid = token
	b.amount = v
	return b
}

// For sets the ask asset.
func (b *SwapBuilder) For(token types.TokenID) *SwapBuilder {
	b.ask = token
	return b
}

// MinAsk sets the slippage bound.
func (b *SwapBuilder) MinAsk(v uint64) *SwapBuilder {
	b.minAsk = v
	return b
}

// Build creates the Swap transaction.
func (b *SwapBuilder) Build() *amm.Swap {
	return amm.NewSwap(b.account.ID, b.pool, b.bid, b.ask, b.amount, b.minAsk)
}

// DistributeBuilder provides a fluent interface for building
// DistributeLPFee transactions.
type DistributeBuilder struct {
	account    *jtx.Account
	pool       types.Hash256
	amountA    uint64
	amountB    uint64
	recipientA types.AccountID
	recipientB types.AccountID
}

// Distribute creates a new DistributeBuilder paying both sides to the signer.
func Distribute(account *jtx.Account, pool types.Hash256) *DistributeBuilder {
	return &DistributeBuilder{
		account:    account,
		pool:       pool,
		recipientA: account.ID,
		recipientB: account.ID,
	}
}

// Amounts sets the requested payouts. They are clamped to the accrued fees.
func (b *DistributeBuilder) Amounts(a, bAmt uint64) *DistributeBuilder {
	b.amountA = a
	b.amountB = bAmt
	return b
}

// Recipients sets the accounts receiving each asset.
func (b *DistributeBuilder) Recipients(a, bAcc *jtx.Account) *DistributeBuilder {
	b.recipientA = a.ID
	b.recipientB = bAcc.ID
	return b
}

// Build creates the DistributeLPFee transaction.
func (b *DistributeBuilder) Build() *amm.DistributeLPFee {
	return amm.NewDistributeLPFee(b.account.ID, b.pool, b.amountA, b.amountB, b.recipientA, b.recipientB)
}
