package keylet

import (
	"testing"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/entry"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolKeylet(t *testing.T) {
	creator := types.AccountID{1}
	a, b := types.TokenID{2}, types.TokenID{3}

	k := Pool(creator, a, b, 0)
	assert.Equal(t, entry.TypePool, k.Type)
	assert.Equal(t, k, Pool(creator, a, b, 0), "keylets are deterministic")
	assert.NotEqual(t, k.Key, Pool(creator, a, b, 1).Key)
	assert.NotEqual(t, k.Key, Pool(creator, b, a, 0).Key)
	assert.Equal(t, k, PoolByID(k.ID()))
}

func TestKeyletSpacesDoNotCollide(t *testing.T) {
	owner := types.AccountID{9}
	token := types.TokenID{9}

	keys := map[[32]byte]string{}
	for name, k := range map[string]Keylet{
		"account":  Account(owner),
		"config":   PlatformConfig(0),
		"referrer": Referrer(owner),
		"balance":  TokenBalance(token, owner),
		"issuance": TokenIssuance(token),
		"pool":     Pool(owner, token, token, 0),
	} {
		prev, dup := keys[k.Key]
		require.False(t, dup, "%s collides with %s", name, prev)
		keys[k.Key] = name
	}
}

func TestDeriveAuthority(t *testing.T) {
	pool := Pool(types.AccountID{1}, types.TokenID{2}, types.TokenID{3}, 0).ID()

	id, nonce, err := DeriveAuthority(pool, TagEscrow)
	require.NoError(t, err)
	assert.False(t, id.IsZero())
	assert.True(t, VerifyAuthority(pool, TagEscrow, id, nonce))

	t.Run("wrong nonce fails verification", func(t *testing.T) {
		assert.False(t, VerifyAuthority(pool, TagEscrow, id, nonce-1))
	})

	t.Run("tags are separate domains", func(t *testing.T) {
		mint, _, err := DeriveAuthority(pool, TagLPMint)
		require.NoError(t, err)
		assert.NotEqual(t, id, mint)
		assert.False(t, VerifyAuthority(pool, TagLPMint, id, nonce))
	})

	t.Run("helpers agree with derivation", func(t *testing.T) {
		escrow, err := EscrowAuthority(pool)
		require.NoError(t, err)
		assert.Equal(t, id, escrow)

		share, err := ShareToken(pool)
		require.NoError(t, err)
		mint, _, _ := DeriveAuthority(pool, TagLPMint)
		assert.Equal(t, types.TokenID(mint), share)
	})
}
