package sle

import (
	"github.com/LeJamon/goShieldDEX/internal/core/ledger/entry"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// TokenBalance is the custody balance of one owner in one token.
type TokenBalance struct {
	Token   types.TokenID
	Owner   types.AccountID
	Balance uint64
}

const tokenBalanceBodySize = 20 + 20 + 8

// Type implements entry.Entry.
func (b *TokenBalance) Type() entry.Type { return entry.TypeTokenBalance }

// Validate implements entry.Entry.
func (b *TokenBalance) Validate() error { return nil }

func SerializeTokenBalance(b *TokenBalance) []byte {
	e := newEncoder(entry.TypeTokenBalance, tokenBalanceBodySize)
	e.token(b.Token)
	e.account(b.Owner)
	e.u64(b.Balance)
	return e.bytes()
}

func ParseTokenBalance(data []byte) (*TokenBalance, error) {
	d, err := newDecoder(data, entry.TypeTokenBalance, tokenBalanceBodySize)
	if err != nil {
		return nil, err
	}
	return &TokenBalance{
		Token:   d.token(),
		Owner:   d.account(),
		Balance: d.u64(),
	}, nil
}

// TokenIssuance tracks the outstanding supply of a token minted inside the
// ledger and the identity allowed to mint and burn it.
type TokenIssuance struct {
	Token         types.TokenID
	MintAuthority types.AccountID
	Supply        uint64
	Decimals      uint8
}

const tokenIssuanceBodySize = 20 + 20 + 8 + 1

// Type implements entry.Entry.
func (i *TokenIssuance) Type() entry.Type { return entry.TypeTokenIssuance }

// Validate implements entry.Entry.
func (i *TokenIssuance) Validate() error { return nil }

func SerializeTokenIssuance(i *TokenIssuance) []byte {
	e := newEncoder(entry.TypeTokenIssuance, tokenIssuanceBodySize)
	e.token(i.Token)
	e.account(i.MintAuthority)
	e.u64(i.Supply)
	e.u8(i.Decimals)
	return e.bytes()
}

func ParseTokenIssuance(data []byte) (*TokenIssuance, error) {
	d, err := newDecoder(data, entry.TypeTokenIssuance, tokenIssuanceBodySize)
	if err != nil {
		return nil, err
	}
	return &TokenIssuance{
		Token:         d.token(),
		MintAuthority: d.account(),
		Supply:        d.u64(),
		Decimals:      d.u8(),
	}, nil
}
