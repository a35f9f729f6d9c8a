package amm

import (
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

func init() {
	tx.Register(tx.TypePause, func() tx.Transaction {
		return &Pause{BaseTx: *tx.NewBaseTx(tx.TypePause, types.AccountID{})}
	})
	tx.Register(tx.TypeResume, func() tx.Transaction {
		return &Resume{BaseTx: *tx.NewBaseTx(tx.TypeResume, types.AccountID{})}
	})
}

// Pause stops swaps on a pool.
type Pause struct {
	tx.BaseTx

	Pool types.Hash256 `json:"Pool"`
}

// NewPause creates a new Pause transaction
func NewPause(account types.AccountID, pool types.Hash256) *Pause {
	return &Pause{BaseTx: *tx.NewBaseTx(tx.TypePause, account), Pool: pool}
}

// TxType returns the transaction type
func (p *Pause) TxType() tx.Type {
	return tx.TypePause
}

// PoolID returns the pool being paused.
func (p *Pause) PoolID() types.Hash256 {
	return p.Pool
}

// Apply moves the pool from Initialized to Paused.
func (p *Pause) Apply(ctx *tx.ApplyContext) tx.Result {
	updatedAt, r := transition(ctx, p.Pool, sle.PoolInitialized, sle.PoolPaused)
	if !r.IsSuccess() {
		return r
	}
	ctx.Emit(PauseEvent{Authority: ctx.AccountID, Pool: p.Pool, UpdatedAt: updatedAt})
	return tx.TesSUCCESS
}

// Resume reopens a paused pool.
type Resume struct {
	tx.BaseTx

	Pool types.Hash256 `json:"Pool"`
}

// NewResume creates a new Resume transaction
func NewResume(account types.AccountID, pool types.Hash256) *Resume {
	return &Resume{BaseTx: *tx.NewBaseTx(tx.TypeResume, account), Pool: pool}
}

// TxType returns the transaction type
func (p *Resume) TxType() tx.Type {
	return tx.TypeResume
}

// PoolID returns the pool being resumed.
func (p *Resume) PoolID() types.Hash256 {
	return p.Pool
}

// Apply moves the pool from Paused to Initialized.
func (p *Resume) Apply(ctx *tx.ApplyContext) tx.Result {
	updatedAt, r := transition(ctx, p.Pool, sle.PoolPaused, sle.PoolInitialized)
	if !r.IsSuccess() {
		return r
	}
	ctx.Emit(ResumeEvent{Authority: ctx.AccountID, Pool: p.Pool, UpdatedAt: updatedAt})
	return tx.TesSUCCESS
}

// transition performs an authority-gated state change. The pool must be in
// state from.
func transition(ctx *tx.ApplyContext, id types.Hash256, from, to sle.PoolState) (int64, tx.Result) {
	pool, r := loadPool(ctx.View, id)
	if !r.IsSuccess() {
		return 0, r
	}
	if pool.Authority != ctx.AccountID {
		return 0, tx.TecUNAUTHORIZED
	}
	if pool.State != from || !sle.CanTransition(from, to) {
		return 0, tx.TecINVALID_STATE
	}
	pool.State = to
	pool.UpdatedAt = ctx.Now
	return pool.UpdatedAt, savePool(ctx.View, id, pool)
}
