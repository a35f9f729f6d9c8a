package tx

import (
	"errors"
	"fmt"

	"github.com/LeJamon/goShieldDEX/internal/core/amount"
)

// Result represents a transaction result code
type Result int

// Transaction result codes, grouped by category: tes, tec, tef, ter, tem
const (
	TesSUCCESS Result = 0

	// tec codes: the operation was rejected by the ledger rules and nothing
	// it did is kept
	TecUNFUNDED                Result = 129
	TecINTERNAL                Result = 144
	TecNO_ENTRY                Result = 140
	TecDUPLICATE               Result = 149
	TecOVERFLOW                Result = 160
	TecUNAUTHORIZED            Result = 161
	TecINVALID_PARAMS          Result = 162
	TecINVALID_STATE           Result = 163
	TecUNMATCH_POOL            Result = 164
	TecSWAP_FAILED             Result = 165
	TecLARGE_SLIPPAGE          Result = 166
	TecINVALID_PLATFORM_CONFIG Result = 167
	TecINVALID_REFERER         Result = 168

	// tef codes: local failures
	TefFAILURE  Result = -199
	TefINTERNAL Result = -192
	TefPAST_SEQ Result = -190

	// ter codes: the transaction may succeed later
	TerPRE_SEQ Result = -92

	// tem codes: malformed transactions
	TemMALFORMED     Result = -299
	TemBAD_SIGNATURE Result = -282
	TemUNKNOWN       Result = -264
)

// String returns the result token
func (r Result) String() string {
	switch r {
	case TesSUCCESS:
		return "tesSUCCESS"
	case TecUNFUNDED:
		return "tecUNFUNDED"
	case TecINTERNAL:
		return "tecINTERNAL"
	case TecNO_ENTRY:
		return "tecNO_ENTRY"
	case TecDUPLICATE:
		return "tecDUPLICATE"
	case TecOVERFLOW:
		return "tecOVERFLOW"
	case TecUNAUTHORIZED:
		return "tecUNAUTHORIZED"
	case TecINVALID_PARAMS:
		return "tecINVALID_PARAMS"
	case TecINVALID_STATE:
		return "tecINVALID_STATE"
	case TecUNMATCH_POOL:
		return "tecUNMATCH_POOL"
	case TecSWAP_FAILED:
		return "tecSWAP_FAILED"
	case TecLARGE_SLIPPAGE:
		return "tecLARGE_SLIPPAGE"
	case TecINVALID_PLATFORM_CONFIG:
		return "tecINVALID_PLATFORM_CONFIG"
	case TecINVALID_REFERER:
		return "tecINVALID_REFERER"
	case TefFAILURE:
		return "tefFAILURE"
	case TefINTERNAL:
		return "tefINTERNAL"
	case TefPAST_SEQ:
		return "tefPAST_SEQ"
	case TerPRE_SEQ:
		return "terPRE_SEQ"
	case TemMALFORMED:
		return "temMALFORMED"
	case TemBAD_SIGNATURE:
		return "temBAD_SIGNATURE"
	case TemUNKNOWN:
		return "temUNKNOWN"
	default:
		return fmt.Sprintf("unknown(%d)", int(r))
	}
}

// Message returns a human-readable message for the result
func (r Result) Message() string {
	switch r {
	case TesSUCCESS:
		return "The transaction was applied."
	case TecUNFUNDED:
		return "Insufficient balance for a custody movement."
	case TecNO_ENTRY:
		return "A referenced ledger entry does not exist."
	case TecDUPLICATE:
		return "The ledger entry already exists."
	case TecOVERFLOW:
		return "Operation overflowed."
	case TecUNAUTHORIZED:
		return "Not have permission."
	case TecINVALID_PARAMS:
		return "Invalid params."
	case TecINVALID_STATE:
		return "Invalid state."
	case TecUNMATCH_POOL:
		return "Unmatch pool."
	case TecSWAP_FAILED:
		return "Swap failed."
	case TecLARGE_SLIPPAGE:
		return "Large slippage."
	case TecINVALID_PLATFORM_CONFIG:
		return "Invalid platform config."
	case TecINVALID_REFERER:
		return "Invalid referer."
	case TecINTERNAL, TefINTERNAL:
		return "Internal error."
	case TefFAILURE:
		return "Failed to apply."
	case TefPAST_SEQ:
		return "This sequence number has already passed."
	case TerPRE_SEQ:
		return "Missing/inapplicable prior transaction."
	case TemMALFORMED:
		return "Malformed transaction."
	case TemBAD_SIGNATURE:
		return "Transaction signature is invalid."
	case TemUNKNOWN:
		return "Unknown transaction type."
	default:
		return r.String()
	}
}

// Error lets a Result travel as an error.
func (r Result) Error() string {
	return r.String() + ": " + r.Message()
}

// IsSuccess returns true if the result is tesSUCCESS
func (r Result) IsSuccess() bool {
	return r == TesSUCCESS
}

// IsTec returns true if this is a tec code
func (r Result) IsTec() bool {
	return r >= 100 && r < 200
}

// IsTef returns true if this is a tef (failure) code
func (r Result) IsTef() bool {
	return r >= -199 && r <= -100
}

// IsTer returns true if this is a ter (retry) code
func (r Result) IsTer() bool {
	return r >= -99 && r <= -1
}

// IsTem returns true if this is a tem (malformed) code
func (r Result) IsTem() bool {
	return r >= -299 && r <= -200
}

// ResultOf converts an error raised while applying a transaction into a
// Result. Errors that are already Results pass through.
func ResultOf(err error) Result {
	if err == nil {
		return TesSUCCESS
	}
	var r Result
	switch {
	case errors.As(err, &r):
		return r
	case errors.Is(err, amount.ErrOverflow):
		return TecOVERFLOW
	case errors.Is(err, ErrInsufficientFunds):
		return TecUNFUNDED
	case errors.Is(err, ErrUnauthorizedMovement):
		return TecUNAUTHORIZED
	case errors.Is(err, ErrUnknownToken):
		return TecNO_ENTRY
	case errors.Is(err, ErrTokenExists):
		return TecDUPLICATE
	default:
		return TefINTERNAL
	}
}
