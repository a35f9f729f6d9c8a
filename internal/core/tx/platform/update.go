package platform

import (
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

func init() {
	tx.Register(tx.TypeUpdatePlatformConfig, func() tx.Transaction {
		return &UpdatePlatformConfig{BaseTx: *tx.NewBaseTx(tx.TypeUpdatePlatformConfig, types.AccountID{})}
	})
	tx.Register(tx.TypeUpdateTax, func() tx.Transaction {
		return &UpdateTax{BaseTx: *tx.NewBaseTx(tx.TypeUpdateTax, types.AccountID{})}
	})
}

// UpdatePlatformConfig rewrites the tax rate of a platform config.
type UpdatePlatformConfig struct {
	tx.BaseTx

	PlatformConfig types.Hash256 `json:"PlatformConfig"`
	Tax            uint64        `json:"Tax"`
}

// NewUpdatePlatformConfig creates a new UpdatePlatformConfig transaction
func NewUpdatePlatformConfig(account types.AccountID, config types.Hash256, tax uint64) *UpdatePlatformConfig {
	return &UpdatePlatformConfig{
		BaseTx:         *tx.NewBaseTx(tx.TypeUpdatePlatformConfig, account),
		PlatformConfig: config,
		Tax:            tax,
	}
}

// TxType returns the transaction type
func (u *UpdatePlatformConfig) TxType() tx.Type {
	return tx.TypeUpdatePlatformConfig
}

// Apply stores the new rate.
func (u *UpdatePlatformConfig) Apply(ctx *tx.ApplyContext) tx.Result {
	updatedAt, r := setTax(ctx, u.PlatformConfig, u.Tax)
	if !r.IsSuccess() {
		return r
	}
	ctx.Emit(UpdatedEvent{
		Authority:      ctx.AccountID,
		PlatformConfig: u.PlatformConfig,
		Tax:            u.Tax,
		UpdatedAt:      updatedAt,
	})
	return tx.TesSUCCESS
}

// UpdateTax sets the tax rate of a platform config.
type UpdateTax struct {
	tx.BaseTx

	PlatformConfig types.Hash256 `json:"PlatformConfig"`
	Tax            uint64        `json:"Tax"`
}

// NewUpdateTax creates a new UpdateTax transaction
func NewUpdateTax(account types.AccountID, config types.Hash256, tax uint64) *UpdateTax {
	return &UpdateTax{
		BaseTx:         *tx.NewBaseTx(tx.TypeUpdateTax, account),
		PlatformConfig: config,
		Tax:            tax,
	}
}

// TxType returns the transaction type
func (u *UpdateTax) TxType() tx.Type {
	return tx.TypeUpdateTax
}

// Apply stores the new rate.
func (u *UpdateTax) Apply(ctx *tx.ApplyContext) tx.Result {
	updatedAt, r := setTax(ctx, u.PlatformConfig, u.Tax)
	if !r.IsSuccess() {
		return r
	}
	ctx.Emit(UpdateTaxEvent{
		Authority:      ctx.AccountID,
		PlatformConfig: u.PlatformConfig,
		NewTax:         u.Tax,
		UpdatedAt:      updatedAt,
	})
	return tx.TesSUCCESS
}
