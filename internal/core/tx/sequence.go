package tx

import (
	"math"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/keylet"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// ReadAccount returns the account root of id. An account that never
// applied a transaction has no record and reports FirstSequence.
func ReadAccount(view LedgerView, id types.AccountID) (*sle.AccountRoot, bool, error) {
	data, err := view.Read(keylet.Account(id))
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return &sle.AccountRoot{Account: id, Sequence: sle.FirstSequence}, false, nil
	}
	acct, err := sle.ParseAccountRoot(data)
	if err != nil {
		return nil, false, err
	}
	return acct, true, nil
}

// checkSequence compares a transaction sequence with the account's next one.
func checkSequence(acct *sle.AccountRoot, seq uint32) Result {
	switch {
	case seq < acct.Sequence:
		return TefPAST_SEQ
	case seq > acct.Sequence:
		return TerPRE_SEQ
	default:
		return TesSUCCESS
	}
}

// consumeSequence advances the account past the applied transaction.
func consumeSequence(view LedgerView, acct *sle.AccountRoot, exists bool) error {
	if acct.Sequence == math.MaxUint32 {
		return ErrSequenceExhausted
	}
	acct.Sequence++
	k := keylet.Account(acct.Account)
	if exists {
		return view.Update(k, sle.SerializeAccountRoot(acct))
	}
	return view.Insert(k, sle.SerializeAccountRoot(acct))
}
