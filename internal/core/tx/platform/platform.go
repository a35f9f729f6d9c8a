// Package platform implements the admin-only operations on platform
// configs, the records that hold the protocol tax rate.
package platform

import (
	"github.com/LeJamon/goShieldDEX/internal/core/amount"
	"github.com/LeJamon/goShieldDEX/internal/core/ledger/keylet"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// MaximumTax bounds the tax rate.
const MaximumTax = amount.Precision

// CreatedEvent is emitted when a platform config is created.
type CreatedEvent struct {
	Authority      types.AccountID `json:"authority"`
	PlatformConfig types.Hash256   `json:"platform_config"`
	Tax            uint64          `json:"tax"`
	CreatedAt      int64           `json:"created_at"`
}

func (CreatedEvent) EventName() string { return "create_platform_config" }

// UpdatedEvent is emitted by UpdatePlatformConfig.
type UpdatedEvent struct {
	Authority      types.AccountID `json:"authority"`
	PlatformConfig types.Hash256   `json:"platform_config"`
	Tax            uint64          `json:"tax"`
	UpdatedAt      int64           `json:"updated_at"`
}

func (UpdatedEvent) EventName() string { return "update_platform_config" }

// UpdateTaxEvent is emitted by UpdateTax.
type UpdateTaxEvent struct {
	Authority      types.AccountID `json:"authority"`
	PlatformConfig types.Hash256   `json:"platform_config"`
	NewTax         uint64          `json:"new_tax"`
	UpdatedAt      int64           `json:"updated_at"`
}

func (UpdateTaxEvent) EventName() string { return "update_tax" }

// setTax loads a config, stores a new rate and returns the update time.
func setTax(ctx *tx.ApplyContext, id types.Hash256, tax uint64) (int64, tx.Result) {
	if !ctx.IsAdmin() {
		return 0, tx.TecUNAUTHORIZED
	}
	if tax > MaximumTax {
		return 0, tx.TecINVALID_PARAMS
	}
	k := keylet.PlatformConfigByID(id)
	data, err := ctx.View.Read(k)
	if err != nil {
		return 0, tx.TefINTERNAL
	}
	if data == nil {
		return 0, tx.TecNO_ENTRY
	}
	cfg, err := sle.ParsePlatformConfig(data)
	if err != nil {
		return 0, tx.TefINTERNAL
	}
	cfg.Tax = tax
	cfg.UpdatedAt = ctx.Now
	if err := ctx.View.Update(k, sle.SerializePlatformConfig(cfg)); err != nil {
		return 0, tx.TefINTERNAL
	}
	return cfg.UpdatedAt, tx.TesSUCCESS
}
