package builders

import (
	"github.com/LeJamon/goShieldDEX/internal/core/tx/platform"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/referrer"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	jtx "github.com/LeJamon/goShieldDEX/internal/testing"
)

// PlatformConfigBuilder provides a fluent interface for building
// CreatePlatformConfig transactions.
type PlatformConfigBuilder struct {
	account *jtx.Account
	index   uint32
	tax     uint64
}

// PlatformConfig creates a new PlatformConfigBuilder for config index 0
// with no tax.
func PlatformConfig(account *jtx.Account) *PlatformConfigBuilder {
	return &PlatformConfigBuilder{account: account}
}

// Index sets the config index.
func (b *PlatformConfigBuilder) Index(index uint32) *PlatformConfigBuilder {
	b.index = index
	return b
}

// Tax sets the tax rate.
func (b *PlatformConfigBuilder) Tax(rate uint64) *PlatformConfigBuilder {
	b.tax = rate
	return b
}

// ID returns the id of the config the transaction creates.
func (b *PlatformConfigBuilder) ID() types.Hash256 {
	return b.Build().ConfigID()
}

// Build creates the CreatePlatformConfig transaction.
func (b *PlatformConfigBuilder) Build() *platform.CreatePlatformConfig {
	return platform.NewCreatePlatformConfig(b.account.ID, b.index, b.tax)
}

// TaxBuilder builds the two transactions that rewrite a config's tax.
type TaxBuilder struct {
	account *jtx.Account
	config  types.Hash256
	tax     uint64
}

// SetTax creates a new TaxBuilder.
func SetTax(account *jtx.Account, config types.Hash256, rate uint64) *TaxBuilder {
	return &TaxBuilder{account: account, config: config, tax: rate}
}

// Build creates an UpdateTax transaction.
func (b *TaxBuilder) Build() *platform.UpdateTax {
	return platform.NewUpdateTax(b.account.ID, b.config, b.tax)
}

// BuildUpdate creates an UpdatePlatformConfig transaction.
func (b *TaxBuilder) BuildUpdate() *platform.UpdatePlatformConfig {
	return platform.NewUpdatePlatformConfig(b.account.ID, b.config, b.tax)
}

// Referral builds a CreateReferrer transaction in which referee names
// referrer for pool.
func Referral(referee, referrerAcc *jtx.Account, pool types.Hash256) *referrer.CreateReferrer {
	return referrer.NewCreateReferrer(referee.ID, referrerAcc.ID, pool)
}
