package amm

import "github.com/LeJamon/goShieldDEX/internal/core/types"

// InitializeEvent is emitted when a pool is created.
type InitializeEvent struct {
	Authority   types.AccountID `json:"authority"`
	Pool        types.Hash256   `json:"pool"`
	AssetA      types.TokenID   `json:"asset_a"`
	AssetB      types.TokenID   `json:"asset_b"`
	ShareToken  types.TokenID   `json:"share_token"`
	A           uint64          `json:"a"`
	B           uint64          `json:"b"`
	Shares      uint64          `json:"shares"`
	ReferralFee uint64          `json:"referral_fee"`
	LPFee       uint64          `json:"lp_fee"`
	TaxConfig   types.Hash256   `json:"tax_config"`
	CreatedAt   int64           `json:"created_at"`
}

func (InitializeEvent) EventName() string { return "initialize" }

// AddLiquidityEvent is emitted for every deposit.
type AddLiquidityEvent struct {
	Authority types.AccountID `json:"authority"`
	Pool      types.Hash256   `json:"pool"`
	A         uint64          `json:"a"`
	B         uint64          `json:"b"`
	Shares    uint64          `json:"shares"`
}

func (AddLiquidityEvent) EventName() string { return "add_liquidity" }

// RemoveLiquidityEvent is emitted for every withdrawal.
type RemoveLiquidityEvent struct {
	Authority types.AccountID `json:"authority"`
	Pool      types.Hash256   `json:"pool"`
	A         uint64          `json:"a"`
	B         uint64          `json:"b"`
	Shares    uint64          `json:"shares"`
}

func (RemoveLiquidityEvent) EventName() string { return "remove_liquidity" }

// SwapEvent is emitted for every swap.
type SwapEvent struct {
	Authority types.AccountID `json:"authority"`
	Pool      types.Hash256   `json:"pool"`
	BidAsset  types.TokenID   `json:"bid_asset"`
	AskAsset  types.TokenID   `json:"ask_asset"`
	BidAmount uint64          `json:"bid_amount"`
	AskAmount uint64          `json:"ask_amount"`
}

func (SwapEvent) EventName() string { return "swap" }

// DistributeLPFeeEvent is emitted when accrued fees are paid out.
type DistributeLPFeeEvent struct {
	Authority types.AccountID `json:"authority"`
	Pool      types.Hash256   `json:"pool"`
	AmountA   uint64          `json:"amount_a"`
	AmountB   uint64          `json:"amount_b"`
}

func (DistributeLPFeeEvent) EventName() string { return "distribute_lp_fee" }

// PauseEvent is emitted when a pool stops accepting swaps.
type PauseEvent struct {
	Authority types.AccountID `json:"authority"`
	Pool      types.Hash256   `json:"pool"`
	UpdatedAt int64           `json:"updated_at"`
}

func (PauseEvent) EventName() string { return "pause" }

// ResumeEvent is emitted when a paused pool reopens.
type ResumeEvent struct {
	Authority types.AccountID `json:"authority"`
	Pool      types.Hash256   `json:"pool"`
	UpdatedAt int64           `json:"updated_at"`
}

func (ResumeEvent) EventName() string { return "resume" }

// UpdateFeeEvent is emitted when the pool authority changes the LP fee.
type UpdateFeeEvent struct {
	Authority types.AccountID `json:"authority"`
	Pool      types.Hash256   `json:"pool"`
	LPFee     uint64          `json:"lp_fee"`
	UpdatedAt int64           `json:"updated_at"`
}

func (UpdateFeeEvent) EventName() string { return "update_fee" }

// UpdateReferralFeeEvent is emitted when the pool authority changes the referral fee.
type UpdateReferralFeeEvent struct {
	Authority   types.AccountID `json:"authority"`
	Pool        types.Hash256   `json:"pool"`
	ReferralFee uint64          `json:"referral_fee"`
	UpdatedAt   int64           `json:"updated_at"`
}

func (UpdateReferralFeeEvent) EventName() string { return "update_referral_fee" }

// TransferOwnershipEvent is emitted when pool authority passes to NewOwner.
type TransferOwnershipEvent struct {
	Authority types.AccountID `json:"authority"`
	Pool      types.Hash256   `json:"pool"`
	NewOwner  types.AccountID `json:"new_owner"`
	UpdatedAt int64           `json:"updated_at"`
}

func (TransferOwnershipEvent) EventName() string { return "transfer_ownership" }
