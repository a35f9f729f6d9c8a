package amm

import (
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

func init() {
	tx.Register(tx.TypeRemoveLiquidity, func() tx.Transaction {
		return &RemoveLiquidity{BaseTx: *tx.NewBaseTx(tx.TypeRemoveLiquidity, types.AccountID{})}
	})
}

// RemoveLiquidity burns shares and pays out the matching part of both
// effective reserves.
type RemoveLiquidity struct {
	tx.BaseTx

	Pool types.Hash256 `json:"Pool"`

	// AssetA and AssetB must match the pool's assets
	AssetA types.TokenID `json:"AssetA"`
	AssetB types.TokenID `json:"AssetB"`

	Shares uint64 `json:"Shares"`
}

// NewRemoveLiquidity creates a new RemoveLiquidity transaction
func NewRemoveLiquidity(account types.AccountID, pool types.Hash256, assetA, assetB types.TokenID, shares uint64) *RemoveLiquidity {
	return &RemoveLiquidity{
		BaseTx: *tx.NewBaseTx(tx.TypeRemoveLiquidity, account),
		Pool:   pool,
		AssetA: assetA,
		AssetB: assetB,
		Shares: shares,
	}
}

// TxType returns the transaction type
func (l *RemoveLiquidity) TxType() tx.Type {
	return tx.TypeRemoveLiquidity
}

// PoolID returns the pool the withdrawal comes from.
func (l *RemoveLiquidity) PoolID() types.Hash256 {
	return l.Pool
}

// Apply performs the withdrawal.
func (l *RemoveLiquidity) Apply(ctx *tx.ApplyContext) tx.Result {
	pool, r := loadPool(ctx.View, l.Pool)
	if !r.IsSuccess() {
		return r
	}
	if r := matchAssets(pool, l.AssetA, l.AssetB); !r.IsSuccess() {
		return r
	}
	if !acceptsLiquidity(pool) {
		return tx.TecINVALID_STATE
	}
	if l.Shares == 0 {
		return tx.TecINVALID_PARAMS
	}
	escrow, r := escrowOf(l.Pool)
	if !r.IsSuccess() {
		return r
	}

	// Supply is read before the burn.
	supply, err := ctx.Custody.Supply(pool.ShareToken)
	if err != nil {
		return tx.ResultOf(err)
	}
	reserveA, reserveB, err := effectiveReserves(ctx.Custody, pool, escrow)
	if err != nil {
		return tx.ResultOf(err)
	}
	a, b, err := Redeem(l.Shares, reserveA, reserveB, supply)
	if err != nil {
		return tx.ResultOf(err)
	}

	provider := ctx.AccountID
	if err := ctx.Custody.Burn(pool.ShareToken, provider, l.Shares, provider); err != nil {
		return tx.ResultOf(err)
	}
	if err := ctx.Custody.Transfer(pool.AssetA, escrow, provider, a, escrow); err != nil {
		return tx.ResultOf(err)
	}
	if err := ctx.Custody.Transfer(pool.AssetB, escrow, provider, b, escrow); err != nil {
		return tx.ResultOf(err)
	}

	pool.UpdatedAt = ctx.Now
	if r := savePool(ctx.View, l.Pool, pool); !r.IsSuccess() {
		return r
	}

	ctx.Emit(RemoveLiquidityEvent{
		Authority: provider,
		Pool:      l.Pool,
		A:         a,
		B:         b,
		Shares:    l.Shares,
	})
	return tx.TesSUCCESS
}
