package tx

import (
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// ApplyContext provides all the state and helpers needed to apply a transaction.
// It is passed to Appliable.Apply() instead of individual parameters.
type ApplyContext struct {
	// View provides read/write access to ledger state (the ApplyStateTable)
	View LedgerView

	// Custody moves token balances through View
	Custody *Custody

	// AccountID is the account that signed the transaction
	AccountID types.AccountID

	// Config holds engine configuration (admin, fee receiver, fee bounds)
	Config EngineConfig

	// TxHash is the hash of the current transaction
	TxHash types.Hash256

	// Metadata collects events, movements and the return value
	Metadata *Metadata

	// Now is the ledger clock reading for this transaction, in unix seconds
	Now int64
}

// Emit appends an audit event. Events of a failed transaction are dropped
// together with its state changes.
func (ctx *ApplyContext) Emit(ev Event) {
	ctx.Metadata.Events = append(ctx.Metadata.Events, ev)
}

// IsAdmin reports whether the signing account is the protocol admin.
func (ctx *ApplyContext) IsAdmin() bool {
	return !ctx.Config.Admin.IsZero() && ctx.AccountID == ctx.Config.Admin
}
