package testing

import (
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// TxResult represents the result of applying a transaction.
type TxResult struct {
	// Code is the transaction engine result code (e.g., "tesSUCCESS").
	Code string

	// Success indicates whether the transaction was successfully applied.
	Success bool

	// Message provides additional details about the result.
	Message string

	// Hash is the transaction id.
	Hash types.Hash256

	// Metadata is the engine metadata (events, movements, return value).
	Metadata *tx.Metadata
}

// Common transaction result codes.
const (
	tesSUCCESS = "tesSUCCESS"

	TecUNFUNDED                = "tecUNFUNDED"
	TecNO_ENTRY                = "tecNO_ENTRY"
	TecDUPLICATE               = "tecDUPLICATE"
	TecUNAUTHORIZED            = "tecUNAUTHORIZED"
	TecINVALID_PARAMS          = "tecINVALID_PARAMS"
	TecINVALID_STATE           = "tecINVALID_STATE"
	TecUNMATCH_POOL            = "tecUNMATCH_POOL"
	TecLARGE_SLIPPAGE          = "tecLARGE_SLIPPAGE"
	TecINVALID_PLATFORM_CONFIG = "tecINVALID_PLATFORM_CONFIG"

	TefPAST_SEQ = "tefPAST_SEQ"
	TerPRE_SEQ  = "terPRE_SEQ"

	TemMALFORMED     = "temMALFORMED"
	TemBAD_SIGNATURE = "temBAD_SIGNATURE"
)

func newTxResult(r tx.ApplyResult) TxResult {
	return TxResult{
		Code:     r.Result.String(),
		Success:  r.Applied,
		Message:  r.Message,
		Hash:     r.Hash,
		Metadata: r.Metadata,
	}
}

// IsSuccess returns true if the transaction succeeded (tesSUCCESS).
func (r TxResult) IsSuccess() bool {
	return r.Code == tesSUCCESS
}

// IsClaimed returns true for tec results: the transaction was well formed
// but failed against ledger state.
func (r TxResult) IsClaimed() bool {
	return len(r.Code) >= 3 && r.Code[:3] == "tec"
}

// IsMalformed returns true if the transaction was malformed (tem codes).
func (r TxResult) IsMalformed() bool {
	return len(r.Code) >= 3 && r.Code[:3] == "tem"
}

// Return is the numeric result of the transaction, such as the shares a
// deposit issued or the ask amount of a swap. It is 0 when none was set.
func (r TxResult) Return() uint64 {
	if r.Metadata == nil || r.Metadata.ReturnValue == nil {
		return 0
	}
	return *r.Metadata.ReturnValue
}

// HasEvent reports whether the transaction emitted an event named name.
func (r TxResult) HasEvent(name string) bool {
	if r.Metadata == nil {
		return false
	}
	for _, e := range r.Metadata.Events {
		if e.EventName() == name {
			return true
		}
	}
	return false
}
