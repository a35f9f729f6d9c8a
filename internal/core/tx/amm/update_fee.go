package amm

import (
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

func init() {
	tx.Register(tx.TypeUpdateFee, func() tx.Transaction {
		return &UpdateFee{BaseTx: *tx.NewBaseTx(tx.TypeUpdateFee, types.AccountID{})}
	})
	tx.Register(tx.TypeUpdateReferralFee, func() tx.Transaction {
		return &UpdateReferralFee{BaseTx: *tx.NewBaseTx(tx.TypeUpdateReferralFee, types.AccountID{})}
	})
}

// UpdateFee sets a pool's LP fee rate.
type UpdateFee struct {
	tx.BaseTx

	Pool  types.Hash256 `json:"Pool"`
	LPFee uint64        `json:"LPFee"`
}

// NewUpdateFee creates a new UpdateFee transaction
func NewUpdateFee(account types.AccountID, pool types.Hash256, fee uint64) *UpdateFee {
	return &UpdateFee{BaseTx: *tx.NewBaseTx(tx.TypeUpdateFee, account), Pool: pool, LPFee: fee}
}

// TxType returns the transaction type
func (u *UpdateFee) TxType() tx.Type {
	return tx.TypeUpdateFee
}

// PoolID returns the pool being updated.
func (u *UpdateFee) PoolID() types.Hash256 {
	return u.Pool
}

// Apply stores the new rate.
func (u *UpdateFee) Apply(ctx *tx.ApplyContext) tx.Result {
	updatedAt, r := updateRate(ctx, u.Pool, u.LPFee, func(p *sle.Pool) { p.LPFee = u.LPFee })
	if !r.IsSuccess() {
		return r
	}
	ctx.Emit(UpdateFeeEvent{Authority: ctx.AccountID, Pool: u.Pool, LPFee: u.LPFee, UpdatedAt: updatedAt})
	return tx.TesSUCCESS
}

// UpdateReferralFee sets a pool's referral fee rate. The rate is stored
// and bounded but no pricing path reads it.
type UpdateReferralFee struct {
	tx.BaseTx

	Pool        types.Hash256 `json:"Pool"`
	ReferralFee uint64        `json:"ReferralFee"`
}

// NewUpdateReferralFee creates a new UpdateReferralFee transaction
func NewUpdateReferralFee(account types.AccountID, pool types.Hash256, fee uint64) *UpdateReferralFee {
	return &UpdateReferralFee{BaseTx: *tx.NewBaseTx(tx.TypeUpdateReferralFee, account), Pool: pool, ReferralFee: fee}
}

// TxType returns the transaction type
func (u *UpdateReferralFee) TxType() tx.Type {
	return tx.TypeUpdateReferralFee
}

// PoolID returns the pool being updated.
func (u *UpdateReferralFee) PoolID() types.Hash256 {
	return u.Pool
}

// Apply stores the new rate.
func (u *UpdateReferralFee) Apply(ctx *tx.ApplyContext) tx.Result {
	updatedAt, r := updateRate(ctx, u.Pool, u.ReferralFee, func(p *sle.Pool) { p.ReferralFee = u.ReferralFee })
	if !r.IsSuccess() {
		return r
	}
	ctx.Emit(UpdateReferralFeeEvent{Authority: ctx.AccountID, Pool: u.Pool, ReferralFee: u.ReferralFee, UpdatedAt: updatedAt})
	return tx.TesSUCCESS
}

func updateRate(ctx *tx.ApplyContext, id types.Hash256, rate uint64, set func(*sle.Pool)) (int64, tx.Result) {
	pool, r := loadPool(ctx.View, id)
	if !r.IsSuccess() {
		return 0, r
	}
	if pool.Authority != ctx.AccountID {
		return 0, tx.TecUNAUTHORIZED
	}
	if rate > MaximumFee {
		return 0, tx.TecINVALID_PARAMS
	}
	set(pool)
	pool.UpdatedAt = ctx.Now
	return pool.UpdatedAt, savePool(ctx.View, id, pool)
}
