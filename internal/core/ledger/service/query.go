package service

import (
	"fmt"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/entry"
	"github.com/LeJamon/goShieldDEX/internal/core/ledger/keylet"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/amm"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// read loads the record at k through a scratch view.
func (s *Service) read(k keylet.Keylet) ([]byte, error) {
	var data []byte
	err := s.engine.Query(func(view tx.LedgerView) error {
		var err error
		data, err = view.Read(k)
		return err
	})
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%s %x: %w", k.Type, k.Key, ErrNotFound)
	}
	return data, nil
}

// GetPool returns the pool with the given id.
func (s *Service) GetPool(id types.Hash256) (*sle.Pool, error) {
	data, err := s.read(keylet.PoolByID(id))
	if err != nil {
		return nil, err
	}
	return sle.ParsePool(data)
}

// GetPlatformConfig returns the platform config with the given id.
func (s *Service) GetPlatformConfig(id types.Hash256) (*sle.PlatformConfig, error) {
	data, err := s.read(keylet.PlatformConfigByID(id))
	if err != nil {
		return nil, err
	}
	return sle.ParsePlatformConfig(data)
}

// GetReferrer returns the referral record of referee.
func (s *Service) GetReferrer(referee types.AccountID) (*sle.Referrer, error) {
	data, err := s.read(keylet.Referrer(referee))
	if err != nil {
		return nil, err
	}
	return sle.ParseReferrer(data)
}

// Balance returns the custody balance of owner in token.
func (s *Service) Balance(token types.TokenID, owner types.AccountID) (uint64, error) {
	var bal uint64
	err := s.engine.Query(func(view tx.LedgerView) error {
		var err error
		bal, err = tx.NewCustody(view, nil).Balance(token, owner)
		return err
	})
	return bal, err
}

// Supply returns the outstanding supply of a token with an issuance record.
func (s *Service) Supply(token types.TokenID) (uint64, error) {
	var supply uint64
	err := s.engine.Query(func(view tx.LedgerView) error {
		var err error
		supply, err = tx.NewCustody(view, nil).Supply(token)
		return err
	})
	return supply, err
}

// QuoteSwap prices a swap against the current pool state. A failed
// precondition is returned as a tx.Result error.
func (s *Service) QuoteSwap(pool types.Hash256, bid, ask types.TokenID, bidAmount uint64) (amm.SwapQuote, error) {
	var q amm.SwapQuote
	err := s.engine.Query(func(view tx.LedgerView) error {
		var r tx.Result
		q, r = amm.Quote(view, pool, bid, ask, bidAmount)
		if !r.IsSuccess() {
			return r
		}
		return nil
	})
	return q, err
}

// Fund credits owner outside of any transaction.
func (s *Service) Fund(token types.TokenID, owner types.AccountID, v uint64) error {
	return s.engine.Fund(token, owner, v)
}

// PoolCount returns the number of pool records.
func (s *Service) PoolCount() (int, error) {
	n := 0
	err := s.engine.Query(func(view tx.LedgerView) error {
		return view.ForEach(func(_ [32]byte, data []byte) bool {
			if t, err := sle.TypeOf(data); err == nil && t == entry.TypePool {
				n++
			}
			return true
		})
	})
	return n, err
}

// AccountSequence returns the sequence the next transaction of account must
// carry.
func (s *Service) AccountSequence(account types.AccountID) (uint32, error) {
	var seq uint32
	err := s.engine.Query(func(view tx.LedgerView) error {
		acct, _, err := tx.ReadAccount(view, account)
		if err != nil {
			return err
		}
		seq = acct.Sequence
		return nil
	})
	return seq, err
}
