package amm

import (
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

func init() {
	tx.Register(tx.TypeTransferOwnership, func() tx.Transaction {
		return &TransferOwnership{BaseTx: *tx.NewBaseTx(tx.TypeTransferOwnership, types.AccountID{})}
	})
}

// TransferOwnership hands the pool authority to another account.
type TransferOwnership struct {
	tx.BaseTx

	Pool     types.Hash256   `json:"Pool"`
	NewOwner types.AccountID `json:"NewOwner"`
}

// NewTransferOwnership creates a new TransferOwnership transaction
func NewTransferOwnership(account types.AccountID, pool types.Hash256, newOwner types.AccountID) *TransferOwnership {
	return &TransferOwnership{BaseTx: *tx.NewBaseTx(tx.TypeTransferOwnership, account), Pool: pool, NewOwner: newOwner}
}

// TxType returns the transaction type
func (t *TransferOwnership) TxType() tx.Type {
	return tx.TypeTransferOwnership
}

// PoolID returns the pool changing hands.
func (t *TransferOwnership) PoolID() types.Hash256 {
	return t.Pool
}

// Validate validates the TransferOwnership transaction
func (t *TransferOwnership) Validate() error {
	if err := t.BaseTx.Validate(); err != nil {
		return err
	}
	if t.NewOwner.IsZero() {
		return tx.ErrMissingRequiredField
	}
	return nil
}

// Apply reassigns the authority.
func (t *TransferOwnership) Apply(ctx *tx.ApplyContext) tx.Result {
	pool, r := loadPool(ctx.View, t.Pool)
	if !r.IsSuccess() {
		return r
	}
	if pool.Authority != ctx.AccountID {
		return tx.TecUNAUTHORIZED
	}
	pool.Authority = t.NewOwner
	pool.UpdatedAt = ctx.Now
	if r := savePool(ctx.View, t.Pool, pool); !r.IsSuccess() {
		return r
	}
	ctx.Emit(TransferOwnershipEvent{
		Authority: ctx.AccountID,
		Pool:      t.Pool,
		NewOwner:  t.NewOwner,
		UpdatedAt: pool.UpdatedAt,
	})
	return tx.TesSUCCESS
}
