package tx

import (
	"errors"

	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// Common errors
var (
	ErrMissingRequiredField   = errors.New("missing required field")
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAccount         = errors.New("invalid account")
	ErrSequenceExhausted      = errors.New("account sequence exhausted")
)

// Transaction is the interface that all transaction types must implement
type Transaction interface {
	// TxType returns the transaction type
	TxType() Type

	// GetCommon returns the common transaction fields
	GetCommon() *Common

	// Validate checks that the transaction is well formed. Checks that depend
	// on ledger state belong in Apply.
	Validate() error
}

// Appliable is implemented by transaction types that can apply themselves to ledger state.
type Appliable interface {
	Apply(ctx *ApplyContext) Result
}

// Common contains fields common to all transaction types
type Common struct {
	Account         types.AccountID `json:"Account"`
	TransactionType string          `json:"TransactionType"`

	// Sequence must equal the next sequence of Account. A transaction
	// applies at most once.
	Sequence uint32 `json:"Sequence"`

	// Memo is free text kept in the journal
	Memo string `json:"Memo,omitempty"`

	SigningPubKey string `json:"SigningPubKey,omitempty"`
	TxnSignature  string `json:"TxnSignature,omitempty"`
}

// Validate validates the common fields
func (c *Common) Validate() error {
	if c.Account.IsZero() {
		return ErrInvalidAccount
	}
	if _, ok := TypeFromName(c.TransactionType); !ok {
		return ErrInvalidTransactionType
	}
	return nil
}

// BaseTx provides a base implementation for transactions
type BaseTx struct {
	Common
	txType Type
}

// NewBaseTx creates the common part of a transaction of the given type.
func NewBaseTx(txType Type, account types.AccountID) *BaseTx {
	return &BaseTx{
		Common: Common{
			Account:         account,
			TransactionType: txType.String(),
		},
		txType: txType,
	}
}

// TxType returns the transaction type
func (b *BaseTx) TxType() Type {
	return b.txType
}

// GetCommon returns the common transaction fields
func (b *BaseTx) GetCommon() *Common {
	return &b.Common
}

// Validate validates the base transaction
func (b *BaseTx) Validate() error {
	return b.Common.Validate()
}
