package platform

import (
	"github.com/LeJamon/goShieldDEX/internal/core/ledger/keylet"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

func init() {
	tx.Register(tx.TypeCreatePlatformConfig, func() tx.Transaction {
		return &CreatePlatformConfig{BaseTx: *tx.NewBaseTx(tx.TypeCreatePlatformConfig, types.AccountID{})}
	})
}

// CreatePlatformConfig creates the platform config at Index.
type CreatePlatformConfig struct {
	tx.BaseTx

	Index uint32 `json:"Index"`
	Tax   uint64 `json:"Tax"`
}

// NewCreatePlatformConfig creates a new CreatePlatformConfig transaction
func NewCreatePlatformConfig(account types.AccountID, index uint32, tax uint64) *CreatePlatformConfig {
	return &CreatePlatformConfig{
		BaseTx: *tx.NewBaseTx(tx.TypeCreatePlatformConfig, account),
		Index:  index,
		Tax:    tax,
	}
}

// TxType returns the transaction type
func (c *CreatePlatformConfig) TxType() tx.Type {
	return tx.TypeCreatePlatformConfig
}

// ConfigID returns the id of the config this transaction creates.
func (c *CreatePlatformConfig) ConfigID() types.Hash256 {
	return keylet.PlatformConfig(c.Index).ID()
}

// Apply creates the config.
func (c *CreatePlatformConfig) Apply(ctx *tx.ApplyContext) tx.Result {
	if !ctx.IsAdmin() {
		return tx.TecUNAUTHORIZED
	}
	if c.Tax > MaximumTax {
		return tx.TecINVALID_PARAMS
	}
	k := keylet.PlatformConfig(c.Index)
	exists, err := ctx.View.Exists(k)
	if err != nil {
		return tx.TefINTERNAL
	}
	if exists {
		return tx.TecDUPLICATE
	}
	cfg := &sle.PlatformConfig{Tax: c.Tax, CreatedAt: ctx.Now, UpdatedAt: ctx.Now}
	if err := ctx.View.Insert(k, sle.SerializePlatformConfig(cfg)); err != nil {
		return tx.TefINTERNAL
	}
	ctx.Emit(CreatedEvent{
		Authority:      ctx.AccountID,
		PlatformConfig: k.ID(),
		Tax:            c.Tax,
		CreatedAt:      ctx.Now,
	})
	return tx.TesSUCCESS
}
