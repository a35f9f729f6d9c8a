package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/keylet"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	"github.com/LeJamon/goShieldDEX/internal/storage/database/leveldb"
)

func newLedger(t *testing.T) *Ledger {
	db, err := leveldb.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	l, err := New(db, 16)
	require.NoError(t, err)
	return l
}

func record(tax uint64) (keylet.Keylet, []byte) {
	return keylet.PlatformConfig(1), sle.SerializePlatformConfig(&sle.PlatformConfig{Tax: tax})
}

func TestLedgerReadWrite(t *testing.T) {
	l := newLedger(t)
	k, v := record(5)

	got, err := l.Read(k)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, l.Insert(k, v))
	require.Error(t, l.Insert(k, v))

	ok, err := l.Exists(k)
	require.NoError(t, err)
	assert.True(t, ok)

	_, v2 := record(6)
	require.NoError(t, l.Update(k, v2))
	got, err = l.Read(k)
	require.NoError(t, err)
	assert.Equal(t, v2, got)

	require.NoError(t, l.Erase(k))
	require.Error(t, l.Erase(k))
	require.Error(t, l.Update(k, v))
}

func TestLedgerCommitIsAllOrNothing(t *testing.T) {
	l := newLedger(t)
	k, v := record(5)
	other := keylet.Referrer(types.AccountID{1})

	err := l.Commit([]tx.Change{
		{Key: k.Key, Action: tx.ActionInsert, After: v},
		{Key: other.Key, Action: tx.ActionModify, After: v},
	})
	require.Error(t, err)

	ok, err := l.Exists(k)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLedgerWorksUnderEngineTable(t *testing.T) {
	l := newLedger(t)
	table := tx.NewApplyStateTable(l)
	c := tx.NewCustody(table, nil)
	token, owner := types.TokenID{1}, types.AccountID{2}
	require.NoError(t, c.Credit(token, owner, 10))
	require.NoError(t, l.Commit(table.Changes()))

	bal, err := tx.NewCustody(l, nil).Balance(token, owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), bal)

	count := 0
	require.NoError(t, l.ForEach(func(key [32]byte, data []byte) bool {
		count++
		assert.Equal(t, keylet.TokenBalance(token, owner).Key, key)
		return true
	}))
	assert.Equal(t, 1, count)

	hits, misses := l.CacheStats()
	assert.NotZero(t, hits+misses)
}
