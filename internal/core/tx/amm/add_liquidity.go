package amm

import (
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

func init() {
	tx.Register(tx.TypeAddLiquidity, func() tx.Transaction {
		return &AddLiquidity{BaseTx: *tx.NewBaseTx(tx.TypeAddLiquidity, types.AccountID{})}
	})
}

// AddLiquidity deposits both assets into a pool and issues shares.
type AddLiquidity struct {
	tx.BaseTx

	Pool types.Hash256 `json:"Pool"`

	// AssetA and AssetB must match the pool's assets
	AssetA types.TokenID `json:"AssetA"`
	AssetB types.TokenID `json:"AssetB"`

	AmountA uint64 `json:"AmountA"`
	AmountB uint64 `json:"AmountB"`
}

// NewAddLiquidity creates a new AddLiquidity transaction
func NewAddLiquidity(account types.AccountID, pool types.Hash256, assetA, assetB types.TokenID, a, b uint64) *AddLiquidity {
	return &AddLiquidity{
		BaseTx:  *tx.NewBaseTx(tx.TypeAddLiquidity, account),
		Pool:    pool,
		AssetA:  assetA,
		AssetB:  assetB,
		AmountA: a,
		AmountB: b,
	}
}

// TxType returns the transaction type
func (l *AddLiquidity) TxType() tx.Type {
	return tx.TypeAddLiquidity
}

// PoolID returns the pool the deposit goes to.
func (l *AddLiquidity) PoolID() types.Hash256 {
	return l.Pool
}

// Apply performs the deposit.
func (l *AddLiquidity) Apply(ctx *tx.ApplyContext) tx.Result {
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
	if l.AmountA == 0 || l.AmountB == 0 {
		return tx.TecINVALID_PARAMS
	}
	escrow, r := escrowOf(l.Pool)
	if !r.IsSuccess() {
		return r
	}

	var shares uint64
	var err error
	switch ctx.Config.Issuance {
	case tx.IssuanceProportional:
		reserveA, reserveB, err := effectiveReserves(ctx.Custody, pool, escrow)
		if err != nil {
			return tx.ResultOf(err)
		}
		supply, err := ctx.Custody.Supply(pool.ShareToken)
		if err != nil {
			return tx.ResultOf(err)
		}
		shares, err = ProportionalIssue(l.AmountA, l.AmountB, reserveA, reserveB, supply)
		if err != nil {
			return tx.ResultOf(err)
		}
	default:
		if shares, err = InitialIssue(l.AmountA, l.AmountB); err != nil {
			return tx.ResultOf(err)
		}
	}

	provider := ctx.AccountID
	if err := ctx.Custody.Transfer(pool.AssetA, provider, escrow, l.AmountA, provider); err != nil {
		return tx.ResultOf(err)
	}
	if err := ctx.Custody.Transfer(pool.AssetB, provider, escrow, l.AmountB, provider); err != nil {
		return tx.ResultOf(err)
	}
	if err := ctx.Custody.Mint(pool.ShareToken, provider, shares, escrow); err != nil {
		return tx.ResultOf(err)
	}

	pool.UpdatedAt = ctx.Now
	if r := savePool(ctx.View, l.Pool, pool); !r.IsSuccess() {
		return r
	}

	ctx.Emit(AddLiquidityEvent{
		Authority: provider,
		Pool:      l.Pool,
		A:         l.AmountA,
		B:         l.AmountB,
		Shares:    shares,
	})
	ctx.Metadata.SetReturn(shares)
	return tx.TesSUCCESS
}
