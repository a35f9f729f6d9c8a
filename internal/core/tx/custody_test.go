package tx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goShieldDEX/internal/core/amount"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

func TestCustodyTransfer(t *testing.T) {
	meta := &Metadata{}
	c := NewCustody(NewApplyStateTable(newMemLedger()), meta)
	token := types.TokenID{9}
	alice, bob := types.AccountID{1}, types.AccountID{2}

	require.NoError(t, c.Credit(token, alice, 100))

	err := c.Transfer(token, alice, bob, 40, bob)
	require.ErrorIs(t, err, ErrUnauthorizedMovement)

	require.NoError(t, c.Transfer(token, alice, bob, 40, alice))
	require.NoError(t, c.Transfer(token, alice, bob, 0, alice))

	err = c.Transfer(token, alice, bob, 61, alice)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, TecUNFUNDED, ResultOf(err))

	a, err := c.Balance(token, alice)
	require.NoError(t, err)
	b, err := c.Balance(token, bob)
	require.NoError(t, err)
	assert.Equal(t, uint64(60), a)
	assert.Equal(t, uint64(40), b)

	require.Len(t, meta.Movements, 2)
	assert.Equal(t, Movement{Kind: MovementTransfer, Token: token, From: alice, To: bob, Amount: 40, Signer: alice}, meta.Movements[0])
}

func TestCustodyMintAndBurn(t *testing.T) {
	meta := &Metadata{}
	c := NewCustody(NewApplyStateTable(newMemLedger()), meta)
	share := types.TokenID{7}
	authority, holder := types.AccountID{3}, types.AccountID{4}

	require.ErrorIs(t, c.Mint(share, holder, 1, authority), ErrUnknownToken)

	require.NoError(t, c.CreateToken(share, authority, 6))
	require.ErrorIs(t, c.CreateToken(share, authority, 6), ErrTokenExists)

	require.ErrorIs(t, c.Mint(share, holder, 10, holder), ErrUnauthorizedMovement)
	require.NoError(t, c.Mint(share, holder, 10, authority))

	supply, err := c.Supply(share)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), supply)

	require.ErrorIs(t, c.Burn(share, holder, 4, authority), ErrUnauthorizedMovement)
	require.NoError(t, c.Burn(share, holder, 4, holder))

	supply, err = c.Supply(share)
	require.NoError(t, err)
	assert.Equal(t, uint64(6), supply)

	kinds := []MovementKind{}
	for _, m := range meta.Movements {
		kinds = append(kinds, m.Kind)
	}
	assert.Equal(t, []MovementKind{MovementMint, MovementBurn}, kinds)
}

func TestCustodyCreditOverflow(t *testing.T) {
	c := NewCustody(NewApplyStateTable(newMemLedger()), nil)
	token, owner := types.TokenID{1}, types.AccountID{1}
	require.NoError(t, c.Credit(token, owner, math.MaxUint64))
	err := c.Credit(token, owner, 1)
	require.ErrorIs(t, err, amount.ErrOverflow)
	assert.Equal(t, TecOVERFLOW, ResultOf(err))
}
