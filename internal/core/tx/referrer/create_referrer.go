// Package referrer records referral relationships. Nothing in the pricing
// or distribution paths reads them.
package referrer

import (
	"github.com/LeJamon/goShieldDEX/internal/core/ledger/keylet"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

func init() {
	tx.Register(tx.TypeCreateReferrer, func() tx.Transaction {
		return &CreateReferrer{BaseTx: *tx.NewBaseTx(tx.TypeCreateReferrer, types.AccountID{})}
	})
}

// CreatedEvent is emitted when a referral is recorded.
type CreatedEvent struct {
	Owner   types.AccountID `json:"owner"`
	Referee types.AccountID `json:"referee"`
	Pool    types.Hash256   `json:"pool"`
}

func (CreatedEvent) EventName() string { return "create_referrer" }

// CreateReferrer records that the signer was referred by Referrer on Pool.
// Each account can be referred once.
type CreateReferrer struct {
	tx.BaseTx

	Referrer types.AccountID `json:"Referrer"`
	Pool     types.Hash256   `json:"Pool"`
}

// NewCreateReferrer creates a new CreateReferrer transaction
func NewCreateReferrer(account, referrer types.AccountID, pool types.Hash256) *CreateReferrer {
	return &CreateReferrer{
		BaseTx:   *tx.NewBaseTx(tx.TypeCreateReferrer, account),
		Referrer: referrer,
		Pool:     pool,
	}
}

// TxType returns the transaction type
func (c *CreateReferrer) TxType() tx.Type {
	return tx.TypeCreateReferrer
}

// PoolID returns the pool the referral was made on.
func (c *CreateReferrer) PoolID() types.Hash256 {
	return c.Pool
}

// Validate validates the CreateReferrer transaction
func (c *CreateReferrer) Validate() error {
	if err := c.BaseTx.Validate(); err != nil {
		return err
	}
	if c.Referrer.IsZero() {
		return tx.ErrMissingRequiredField
	}
	return nil
}

// Apply stores the referral.
func (c *CreateReferrer) Apply(ctx *tx.ApplyContext) tx.Result {
	exists, err := ctx.View.Exists(keylet.PoolByID(c.Pool))
	if err != nil {
		return tx.TefINTERNAL
	}
	if !exists {
		return tx.TecNO_ENTRY
	}

	k := keylet.Referrer(ctx.AccountID)
	exists, err = ctx.View.Exists(k)
	if err != nil {
		return tx.TefINTERNAL
	}
	if exists {
		return tx.TecDUPLICATE
	}

	rec := &sle.Referrer{Owner: c.Referrer, Referee: ctx.AccountID, Pool: c.Pool}
	if err := ctx.View.Insert(k, sle.SerializeReferrer(rec)); err != nil {
		return tx.TefINTERNAL
	}
	ctx.Emit(CreatedEvent{Owner: c.Referrer, Referee: ctx.AccountID, Pool: c.Pool})
	return tx.TesSUCCESS
}
