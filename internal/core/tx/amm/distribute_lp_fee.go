package amm

import (
	"github.com/LeJamon/goShieldDEX/internal/core/amount"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

func init() {
	tx.Register(tx.TypeDistributeLPFee, func() tx.Transaction {
		return &DistributeLPFee{BaseTx: *tx.NewBaseTx(tx.TypeDistributeLPFee, types.AccountID{})}
	})
}

// DistributeLPFee pays accrued LP fees out of the pool. Requests above the
// accrued amounts are clamped.
type DistributeLPFee struct {
	tx.BaseTx

	Pool types.Hash256 `json:"Pool"`

	AmountA uint64 `json:"AmountA"`
	AmountB uint64 `json:"AmountB"`

	RecipientA types.AccountID `json:"RecipientA"`
	RecipientB types.AccountID `json:"RecipientB"`
}

// NewDistributeLPFee creates a new DistributeLPFee transaction
func NewDistributeLPFee(account types.AccountID, pool types.Hash256, a, b uint64, recipientA, recipientB types.AccountID) *DistributeLPFee {
	return &DistributeLPFee{
		BaseTx:     *tx.NewBaseTx(tx.TypeDistributeLPFee, account),
		Pool:       pool,
		AmountA:    a,
		AmountB:    b,
		RecipientA: recipientA,
		RecipientB: recipientB,
	}
}

// TxType returns the transaction type
func (d *DistributeLPFee) TxType() tx.Type {
	return tx.TypeDistributeLPFee
}

// PoolID returns the pool whose fees are paid out.
func (d *DistributeLPFee) PoolID() types.Hash256 {
	return d.Pool
}

// Validate validates the DistributeLPFee transaction
func (d *DistributeLPFee) Validate() error {
	if err := d.BaseTx.Validate(); err != nil {
		return err
	}
	if d.RecipientA.IsZero() || d.RecipientB.IsZero() {
		return tx.ErrMissingRequiredField
	}
	return nil
}

// Apply pays out the fees.
func (d *DistributeLPFee) Apply(ctx *tx.ApplyContext) tx.Result {
	pool, r := loadPool(ctx.View, d.Pool)
	if !r.IsSuccess() {
		return r
	}
	if ctx.AccountID != pool.Authority && !ctx.IsAdmin() {
		return tx.TecUNAUTHORIZED
	}
	escrow, r := escrowOf(d.Pool)
	if !r.IsSuccess() {
		return r
	}

	amountA := min(d.AmountA, pool.AccruedFeeA)
	amountB := min(d.AmountB, pool.AccruedFeeB)
	var err error
	if pool.AccruedFeeA, err = amount.SubChecked(pool.AccruedFeeA, amountA); err != nil {
		return tx.ResultOf(err)
	}
	if pool.AccruedFeeB, err = amount.SubChecked(pool.AccruedFeeB, amountB); err != nil {
		return tx.ResultOf(err)
	}

	if err := ctx.Custody.Transfer(pool.AssetA, escrow, d.RecipientA, amountA, escrow); err != nil {
		return tx.ResultOf(err)
	}
	if err := ctx.Custody.Transfer(pool.AssetB, escrow, d.RecipientB, amountB, escrow); err != nil {
		return tx.ResultOf(err)
	}

	pool.UpdatedAt = ctx.Now
	if r := savePool(ctx.View, d.Pool, pool); !r.IsSuccess() {
		return r
	}
	ctx.Emit(DistributeLPFeeEvent{
		Authority: ctx.AccountID,
		Pool:      d.Pool,
		AmountA:   amountA,
		AmountB:   amountB,
	})
	return tx.TesSUCCESS
}
