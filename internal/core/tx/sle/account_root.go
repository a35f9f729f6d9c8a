package sle

import (
	"github.com/LeJamon/goShieldDEX/internal/core/ledger/entry"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// FirstSequence is the sequence an account's first transaction must carry.
const FirstSequence uint32 = 1

// AccountRoot holds the next transaction sequence of an account. It is
// created by the account's first successful transaction.
type AccountRoot struct {
	Account  types.AccountID
	Sequence uint32
}

const accountRootBodySize = 20 + 4

// Type implements entry.Entry.
func (a *AccountRoot) Type() entry.Type { return entry.TypeAccountRoot }

// Validate implements entry.Entry.
func (a *AccountRoot) Validate() error { return nil }

func SerializeAccountRoot(a *AccountRoot) []byte {
	e := newEncoder(entry.TypeAccountRoot, accountRootBodySize)
	e.account(a.Account)
	e.u32(a.Sequence)
	return e.bytes()
}

func ParseAccountRoot(data []byte) (*AccountRoot, error) {
	d, err := newDecoder(data, entry.TypeAccountRoot, accountRootBodySize)
	if err != nil {
		return nil, err
	}
	return &AccountRoot{
		Account:  d.account(),
		Sequence: d.u32(),
	}, nil
}
