package tx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/entry"
	"github.com/LeJamon/goShieldDEX/internal/core/ledger/keylet"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

func balanceRecord(owner byte, v uint64) (keylet.Keylet, []byte) {
	b := &sle.TokenBalance{Token: types.TokenID{1}, Owner: types.AccountID{owner}, Balance: v}
	return keylet.TokenBalance(b.Token, b.Owner), sle.SerializeTokenBalance(b)
}

func TestApplyStateTableBuffersWrites(t *testing.T) {
	base := newMemLedger()
	k1, v1 := balanceRecord(1, 10)
	require.NoError(t, base.Insert(k1, v1))

	table := NewApplyStateTable(base)
	_, v1b := balanceRecord(1, 20)
	require.NoError(t, table.Update(k1, v1b))
	k2, v2 := balanceRecord(2, 5)
	require.NoError(t, table.Insert(k2, v2))

	got, err := base.Read(k1)
	require.NoError(t, err)
	assert.Equal(t, v1, got, "base must not change before commit")

	got, err = table.Read(k1)
	require.NoError(t, err)
	assert.Equal(t, v1b, got)

	changes := table.Changes()
	require.Len(t, changes, 2)
	for _, c := range changes {
		assert.Equal(t, entry.TypeTokenBalance, c.Type)
	}
}

func TestApplyStateTableEraseAndReinsert(t *testing.T) {
	base := newMemLedger()
	k, v := balanceRecord(1, 10)
	require.NoError(t, base.Insert(k, v))

	table := NewApplyStateTable(base)
	require.NoError(t, table.Erase(k))

	exists, err := table.Exists(k)
	require.NoError(t, err)
	assert.False(t, exists)
	require.Error(t, table.Update(k, v))

	require.NoError(t, table.Insert(k, v))
	assert.Empty(t, table.Changes(), "restoring the original bytes is not a change")
}

func TestApplyStateTableInsertThenErase(t *testing.T) {
	table := NewApplyStateTable(newMemLedger())
	k, v := balanceRecord(1, 10)
	require.NoError(t, table.Insert(k, v))
	require.Error(t, table.Insert(k, v))
	require.NoError(t, table.Erase(k))
	assert.Empty(t, table.Changes())
}

func TestApplyStateTableForEachOverlay(t *testing.T) {
	base := newMemLedger()
	k1, v1 := balanceRecord(1, 10)
	k2, v2 := balanceRecord(2, 20)
	require.NoError(t, base.Insert(k1, v1))
	require.NoError(t, base.Insert(k2, v2))

	table := NewApplyStateTable(base)
	require.NoError(t, table.Erase(k1))
	k3, v3 := balanceRecord(3, 30)
	require.NoError(t, table.Insert(k3, v3))

	seen := map[[32]byte]bool{}
	require.NoError(t, table.ForEach(func(key [32]byte, _ []byte) bool {
		seen[key] = true
		return true
	}))
	assert.False(t, seen[k1.Key])
	assert.True(t, seen[k2.Key])
	assert.True(t, seen[k3.Key])
}

func TestApplyStateTableApply(t *testing.T) {
	base := newMemLedger()
	k, v := balanceRecord(1, 10)
	table := NewApplyStateTable(base)
	require.NoError(t, table.Insert(k, v))

	changes, err := table.Apply()
	require.NoError(t, err)
	require.Len(t, changes, 1)
	assert.Equal(t, ActionInsert, changes[0].Action)

	got, err := base.Read(k)
	require.NoError(t, err)
	assert.Equal(t, v, got)
}
