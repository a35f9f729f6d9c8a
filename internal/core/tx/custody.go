package tx

import (
	"errors"
	"fmt"

	"github.com/LeJamon/goShieldDEX/internal/core/amount"
	"github.com/LeJamon/goShieldDEX/internal/core/ledger/keylet"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

var (
	// ErrInsufficientFunds is returned when a source balance cannot cover a movement.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrUnauthorizedMovement is returned when the signer may not move the funds.
	ErrUnauthorizedMovement = errors.New("signer not authorized for movement")
	// ErrUnknownToken is returned when minting or burning a token with no issuance.
	ErrUnknownToken = errors.New("token has no issuance")
	// ErrTokenExists is returned when creating a token twice.
	ErrTokenExists = errors.New("token already exists")
)

// Custody moves token balances held in the ledger. All reads and writes go
// through the transaction's view, so they are discarded together with the
// rest of a failed transaction. Every movement is recorded in the metadata.
type Custody struct {
	view LedgerView
	meta *Metadata
}

// NewCustody returns a custody service over view. meta may be nil when the
// caller does not need movements recorded.
func NewCustody(view LedgerView, meta *Metadata) *Custody {
	return &Custody{view: view, meta: meta}
}

func (c *Custody) readBalance(token types.TokenID, owner types.AccountID) (*sle.TokenBalance, bool, error) {
	data, err := c.view.Read(keylet.TokenBalance(token, owner))
	if err != nil {
		return nil, false, err
	}
	if data == nil {
		return &sle.TokenBalance{Token: token, Owner: owner}, false, nil
	}
	b, err := sle.ParseTokenBalance(data)
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (c *Custody) writeBalance(b *sle.TokenBalance, exists bool) error {
	k := keylet.TokenBalance(b.Token, b.Owner)
	if exists {
		return c.view.Update(k, sle.SerializeTokenBalance(b))
	}
	return c.view.Insert(k, sle.SerializeTokenBalance(b))
}

func (c *Custody) readIssuance(token types.TokenID) (*sle.TokenIssuance, error) {
	data, err := c.view.Read(keylet.TokenIssuance(token))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownToken, token)
	}
	return sle.ParseTokenIssuance(data)
}

func (c *Custody) record(m Movement) {
	if c.meta != nil {
		c.meta.Movements = append(c.meta.Movements, m)
	}
}

// Balance returns the balance of owner in token. Unknown balances are zero.
func (c *Custody) Balance(token types.TokenID, owner types.AccountID) (uint64, error) {
	b, _, err := c.readBalance(token, owner)
	if err != nil {
		return 0, err
	}
	return b.Balance, nil
}

// Supply returns the outstanding supply of a token created with CreateToken.
func (c *Custody) Supply(token types.TokenID) (uint64, error) {
	iss, err := c.readIssuance(token)
	if err != nil {
		return 0, err
	}
	return iss.Supply, nil
}

// CreateToken registers a token whose supply is minted by authority.
func (c *Custody) CreateToken(token types.TokenID, authority types.AccountID, decimals uint8) error {
	k := keylet.TokenIssuance(token)
	exists, err := c.view.Exists(k)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrTokenExists, token)
	}
	return c.view.Insert(k, sle.SerializeTokenIssuance(&sle.TokenIssuance{
		Token:         token,
		MintAuthority: authority,
		Decimals:      decimals,
	}))
}

func (c *Custody) credit(token types.TokenID, owner types.AccountID, v uint64) error {
	b, exists, err := c.readBalance(token, owner)
	if err != nil {
		return err
	}
	if b.Balance, err = amount.AddChecked(b.Balance, v); err != nil {
		return err
	}
	return c.writeBalance(b, exists)
}

func (c *Custody) debit(token types.TokenID, owner types.AccountID, v uint64) error {
	b, exists, err := c.readBalance(token, owner)
	if err != nil {
		return err
	}
	if b.Balance < v {
		return fmt.Errorf("%w: %s holds %d of %s, needs %d", ErrInsufficientFunds, owner, b.Balance, token, v)
	}
	b.Balance -= v
	return c.writeBalance(b, exists)
}

// Transfer moves v of token from one owner to another. signer must be the
// source owner.
func (c *Custody) Transfer(token types.TokenID, from, to types.AccountID, v uint64, signer types.AccountID) error {
	if signer != from {
		return ErrUnauthorizedMovement
	}
	if err := c.debit(token, from, v); err != nil {
		return err
	}
	if err := c.credit(token, to, v); err != nil {
		return err
	}
	c.record(Movement{Kind: MovementTransfer, Token: token, From: from, To: to, Amount: v, Signer: signer})
	return nil
}

// Mint creates v new units of token for to. signer must be the mint authority.
func (c *Custody) Mint(token types.TokenID, to types.AccountID, v uint64, signer types.AccountID) error {
	iss, err := c.readIssuance(token)
	if err != nil {
		return err
	}
	if iss.MintAuthority != signer {
		return ErrUnauthorizedMovement
	}
	if iss.Supply, err = amount.AddChecked(iss.Supply, v); err != nil {
		return err
	}
	if err := c.view.Update(keylet.TokenIssuance(token), sle.SerializeTokenIssuance(iss)); err != nil {
		return err
	}
	if err := c.credit(token, to, v); err != nil {
		return err
	}
	c.record(Movement{Kind: MovementMint, Token: token, To: to, Amount: v, Signer: signer})
	return nil
}

// Burn destroys v units of token held by from. signer must be the holder.
func (c *Custody) Burn(token types.TokenID, from types.AccountID, v uint64, signer types.AccountID) error {
	if signer != from {
		return ErrUnauthorizedMovement
	}
	iss, err := c.readIssuance(token)
	if err != nil {
		return err
	}
	if err := c.debit(token, from, v); err != nil {
		return err
	}
	if iss.Supply, err = amount.SubChecked(iss.Supply, v); err != nil {
		return err
	}
	if err := c.view.Update(keylet.TokenIssuance(token), sle.SerializeTokenIssuance(iss)); err != nil {
		return err
	}
	c.record(Movement{Kind: MovementBurn, Token: token, From: from, Amount: v, Signer: signer})
	return nil
}

// Credit adds funds to an owner without a source. It seeds balances in
// standalone deployments and tests; transactions never call it.
func (c *Custody) Credit(token types.TokenID, owner types.AccountID, v uint64) error {
	return c.credit(token, owner, v)
}
