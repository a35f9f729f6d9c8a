package grpc

import (
	"encoding/json"

	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	"github.com/LeJamon/goShieldDEX/internal/storage/relationaldb"
)

// SubmitRequest carries a transaction in its JSON form.
type SubmitRequest struct {
	Transaction json.RawMessage `json:"transaction"`
}

// SubmitResponse reports the engine outcome.
type SubmitResponse struct {
	Result   string          `json:"result"`
	Code     int             `json:"code"`
	Applied  bool            `json:"applied"`
	Hash     types.Hash256   `json:"hash"`
	Message  string          `json:"message"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

type GetPoolRequest struct {
	Pool types.Hash256 `json:"pool"`
}

type PoolResponse struct {
	Pool        types.Hash256   `json:"pool"`
	Authority   types.AccountID `json:"authority"`
	ShareToken  types.TokenID   `json:"share_token"`
	AssetA      types.TokenID   `json:"asset_a"`
	AssetB      types.TokenID   `json:"asset_b"`
	ReferralFee uint64          `json:"referral_fee"`
	LPFee       uint64          `json:"lp_fee"`
	TaxConfig   types.Hash256   `json:"tax_config"`
	State       string          `json:"state"`
	AccruedFeeA uint64          `json:"accrued_fee_a"`
	AccruedFeeB uint64          `json:"accrued_fee_b"`
	ReserveA    uint64          `json:"reserve_a"`
	ReserveB    uint64          `json:"reserve_b"`
	Supply      uint64          `json:"supply"`
	CreatedAt   int64           `json:"created_at"`
	UpdatedAt   int64           `json:"updated_at"`
}

type GetPlatformConfigRequest struct {
	Config types.Hash256 `json:"config"`
}

type PlatformConfigResponse struct {
	Config    types.Hash256 `json:"config"`
	Tax       uint64        `json:"tax"`
	CreatedAt int64         `json:"created_at"`
	UpdatedAt int64         `json:"updated_at"`
}

type GetReferrerRequest struct {
	Referee types.AccountID `json:"referee"`
}

type ReferrerResponse struct {
	Owner   types.AccountID `json:"owner"`
	Referee types.AccountID `json:"referee"`
	Pool    types.Hash256   `json:"pool"`
}

type GetBalanceRequest struct {
	Token types.TokenID   `json:"token"`
	Owner types.AccountID `json:"owner"`
}

type BalanceResponse struct {
	Balance uint64 `json:"balance"`
}

type GetAccountRequest struct {
	Account types.AccountID `json:"account"`
}

// AccountResponse carries the sequence the account's next transaction
// must use.
type AccountResponse struct {
	Account  types.AccountID `json:"account"`
	Sequence uint32          `json:"sequence"`
}

type QuoteSwapRequest struct {
	Pool      types.Hash256 `json:"pool"`
	Bid       types.TokenID `json:"bid"`
	Ask       types.TokenID `json:"ask"`
	BidAmount uint64        `json:"bid_amount"`
}

type QuoteSwapResponse struct {
	Fee       uint64 `json:"fee"`
	Tax       uint64 `json:"tax"`
	NetBid    uint64 `json:"net_bid"`
	AskAmount uint64 `json:"ask_amount"`
}

type FundRequest struct {
	Token  types.TokenID   `json:"token"`
	Owner  types.AccountID `json:"owner"`
	Amount uint64          `json:"amount"`
}

type FundResponse struct {
	Balance uint64 `json:"balance"`
}

// ListJournalRequest selects journal entries by account or by pool.
// Exactly one of the two must be set.
type ListJournalRequest struct {
	Account *types.AccountID `json:"account,omitempty"`
	Pool    *types.Hash256   `json:"pool,omitempty"`
	Limit   int              `json:"limit,omitempty"`
}

type JournalEntry struct {
	ID          string           `json:"id"`
	Hash        types.Hash256    `json:"hash"`
	Type        string           `json:"type"`
	Account     types.AccountID  `json:"account"`
	Pool        *types.Hash256   `json:"pool,omitempty"`
	Result      string           `json:"result"`
	Timestamp   int64            `json:"timestamp"`
	Transaction json.RawMessage  `json:"transaction,omitempty"`
	Events      []tx.EventRecord `json:"events,omitempty"`
}

type ListJournalResponse struct {
	Entries []JournalEntry `json:"entries"`
}

func journalEntry(e *relationaldb.Entry) JournalEntry {
	out := JournalEntry{
		ID:          e.ID.String(),
		Hash:        e.Hash,
		Type:        e.Type,
		Account:     e.Account,
		Pool:        e.Pool,
		Result:      e.Result,
		Timestamp:   e.Timestamp,
		Transaction: e.Transaction,
		Events:      e.Events,
	}
	return out
}
