package amm

import (
	"github.com/LeJamon/goShieldDEX/internal/core/ledger/keylet"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

func init() {
	tx.Register(tx.TypeInitialize, func() tx.Transaction {
		return &Initialize{BaseTx: *tx.NewBaseTx(tx.TypeInitialize, types.AccountID{})}
	})
}

// Initialize creates a pool over two assets, makes the first deposit and
// issues the first shares to the creator, who becomes the pool authority.
type Initialize struct {
	tx.BaseTx

	// AssetA and AssetB are the traded assets (required, distinct)
	AssetA types.TokenID `json:"AssetA"`
	AssetB types.TokenID `json:"AssetB"`

	// Nonce lets one creator open several pools over the same pair
	Nonce uint32 `json:"Nonce,omitempty"`

	// PlatformConfig is the id of the platform config supplying the tax rate
	PlatformConfig types.Hash256 `json:"PlatformConfig"`

	// AmountA and AmountB are the initial deposit
	AmountA uint64 `json:"AmountA"`
	AmountB uint64 `json:"AmountB"`

	ReferralFee uint64 `json:"ReferralFee,omitempty"`
	LPFee       uint64 `json:"LPFee"`

	// CustomFeeAmount is the native side payment charged when LPFee is above
	// the configured custom fee bound
	CustomFeeAmount uint64 `json:"CustomFeeAmount,omitempty"`
}

// NewInitialize creates a new Initialize transaction
func NewInitialize(account types.AccountID, assetA, assetB types.TokenID, config types.Hash256) *Initialize {
	return &Initialize{
		BaseTx:         *tx.NewBaseTx(tx.TypeInitialize, account),
		AssetA:         assetA,
		AssetB:         assetB,
		PlatformConfig: config,
	}
}

// TxType returns the transaction type
func (i *Initialize) TxType() tx.Type {
	return tx.TypeInitialize
}

// PoolID returns the id of the pool this transaction creates.
func (i *Initialize) PoolID() types.Hash256 {
	return keylet.Pool(i.Account, i.AssetA, i.AssetB, i.Nonce).ID()
}

// Apply creates the pool.
func (i *Initialize) Apply(ctx *tx.ApplyContext) tx.Result {
	if i.AssetA == i.AssetB {
		return tx.TecINVALID_PARAMS
	}
	if i.AmountA == 0 || i.AmountB == 0 {
		return tx.TecINVALID_PARAMS
	}
	if i.LPFee > MaximumFee || i.ReferralFee > MaximumFee {
		return tx.TecINVALID_PARAMS
	}
	if _, r := loadTaxRate(ctx.View, i.PlatformConfig); !r.IsSuccess() {
		return r
	}

	id := i.PoolID()
	k := keylet.PoolByID(id)
	exists, err := ctx.View.Exists(k)
	if err != nil {
		return tx.TefINTERNAL
	}
	if exists {
		return tx.TecDUPLICATE
	}

	escrow, r := escrowOf(id)
	if !r.IsSuccess() {
		return r
	}
	share, err := keylet.ShareToken(id)
	if err != nil {
		return tx.TecINTERNAL
	}

	creator := ctx.AccountID
	if i.LPFee > ctx.Config.CustomFeeBound {
		if i.CustomFeeAmount < ctx.Config.CustomFeeMinimum {
			return tx.TecINVALID_PARAMS
		}
		err := ctx.Custody.Transfer(types.NativeToken, creator, ctx.Config.FeeReceiver, i.CustomFeeAmount, creator)
		if err != nil {
			return tx.ResultOf(err)
		}
	}

	if err := ctx.Custody.CreateToken(share, escrow, LPMintDecimals); err != nil {
		return tx.ResultOf(err)
	}
	if err := ctx.Custody.Transfer(i.AssetA, creator, escrow, i.AmountA, creator); err != nil {
		return tx.ResultOf(err)
	}
	if err := ctx.Custody.Transfer(i.AssetB, creator, escrow, i.AmountB, creator); err != nil {
		return tx.ResultOf(err)
	}
	shares, err := InitialIssue(i.AmountA, i.AmountB)
	if err != nil {
		return tx.ResultOf(err)
	}
	if err := ctx.Custody.Mint(share, creator, shares, escrow); err != nil {
		return tx.ResultOf(err)
	}

	pool := &sle.Pool{
		Authority:   creator,
		ShareToken:  share,
		AssetA:      i.AssetA,
		AssetB:      i.AssetB,
		ReferralFee: i.ReferralFee,
		LPFee:       i.LPFee,
		TaxConfig:   i.PlatformConfig,
		State:       sle.PoolInitialized,
		CreatedAt:   ctx.Now,
		UpdatedAt:   ctx.Now,
	}
	if err := ctx.View.Insert(k, sle.SerializePool(pool)); err != nil {
		return tx.TefINTERNAL
	}

	ctx.Emit(InitializeEvent{
		Authority:   creator,
		Pool:        id,
		AssetA:      i.AssetA,
		AssetB:      i.AssetB,
		ShareToken:  share,
		A:           i.AmountA,
		B:           i.AmountB,
		Shares:      shares,
		ReferralFee: i.ReferralFee,
		LPFee:       i.LPFee,
		TaxConfig:   i.PlatformConfig,
		CreatedAt:   ctx.Now,
	})
	ctx.Metadata.SetReturn(shares)
	return tx.TesSUCCESS
}
