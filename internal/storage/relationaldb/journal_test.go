package relationaldb

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

type pausedEvent struct {
	Pool      types.Hash256 `json:"pool"`
	UpdatedAt int64         `json:"updated_at"`
}

func (pausedEvent) EventName() string { return "pause" }

func openJournal(t *testing.T) *Journal {
	j, err := Open(SQLiteMemoryConfig(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = j.Close() })
	return j
}

func receipt(hash byte, account types.AccountID, pool *types.Hash256) *tx.Receipt {
	meta := &tx.Metadata{TransactionResult: tx.TesSUCCESS}
	if pool != nil {
		meta.Events = []tx.Event{pausedEvent{Pool: *pool, UpdatedAt: 42}}
	}
	return &tx.Receipt{
		Hash:        types.Hash256{hash},
		Type:        tx.TypePause,
		Account:     account,
		Pool:        pool,
		Result:      tx.TesSUCCESS,
		Timestamp:   1_700_000_000,
		Metadata:    meta,
		Transaction: json.RawMessage(`{"TransactionType":"Pause"}`),
	}
}

func TestJournalPublishAndQuery(t *testing.T) {
	ctx := context.Background()
	j := openJournal(t)

	alice, bob := types.AccountID{0xA1}, types.AccountID{0xB0}
	pool := types.Hash256{0x90}

	require.NoError(t, j.Publish(ctx, receipt(1, alice, &pool)))
	require.NoError(t, j.Publish(ctx, receipt(2, bob, &pool)))
	require.NoError(t, j.Publish(ctx, receipt(3, alice, nil)))

	n, err := j.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	byAlice, err := j.ListByAccount(ctx, alice, 0)
	require.NoError(t, err)
	require.Len(t, byAlice, 2)
	assert.Equal(t, types.Hash256{1}, byAlice[0].Hash)
	assert.Equal(t, types.Hash256{3}, byAlice[1].Hash)
	assert.Nil(t, byAlice[1].Pool)

	byPool, err := j.ListByPool(ctx, pool, 1)
	require.NoError(t, err)
	require.Len(t, byPool, 1)
	first := byPool[0]
	assert.Equal(t, "Pause", first.Type)
	assert.Equal(t, "tesSUCCESS", first.Result)
	assert.Equal(t, alice, first.Account)
	require.NotNil(t, first.Pool)
	assert.Equal(t, pool, *first.Pool)

	require.Len(t, first.Events, 1)
	assert.Equal(t, "pause", first.Events[0].Name)
	var ev pausedEvent
	require.NoError(t, json.Unmarshal(first.Events[0].Data, &ev))
	assert.Equal(t, pausedEvent{Pool: pool, UpdatedAt: 42}, ev)
	assert.JSONEq(t, `{"TransactionType":"Pause"}`, string(first.Transaction))
}

func TestJournalGetByHash(t *testing.T) {
	ctx := context.Background()
	j := openJournal(t)
	r := receipt(7, types.AccountID{1}, nil)

	_, err := j.GetByHash(ctx, r.Hash)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, j.Publish(ctx, r))
	require.NoError(t, j.Publish(ctx, r))

	entries, err := j.GetByHash(ctx, r.Hash)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.NotEqual(t, entries[0].ID, entries[1].ID)
	assert.Less(t, entries[0].ID.String(), entries[1].ID.String())

	_, err = j.ListByAccount(ctx, r.Account, -1)
	require.ErrorIs(t, err, ErrInvalidLimit)
}

func TestRebind(t *testing.T) {
	pg := &Journal{driver: DriverPostgres}
	assert.Equal(t, "a = $1 AND b = $2", pg.rebind("a = ? AND b = ?"))

	lite := &Journal{driver: DriverSQLite}
	assert.Equal(t, "a = ?", lite.rebind("a = ?"))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"disabled is always valid", func(c *Config) { c.Enabled = false; c.Driver = "mysql" }, true},
		{"sqlite", func(c *Config) {}, true},
		{"postgres alias", func(c *Config) { c.Driver = "postgresql"; c.DSN = "postgres://localhost/shield" }, true},
		{"unknown driver", func(c *Config) { c.Driver = "mysql" }, false},
		{"empty dsn", func(c *Config) { c.DSN = "" }, false},
		{"idle above open", func(c *Config) { c.MaxOpenConns = 1; c.MaxIdleConns = 2 }, false},
		{"zero timeout", func(c *Config) { c.DefaultTimeout = 0 }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewConfig()
			c.Enabled = true
			tc.mutate(&c)
			err := c.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}

	c := NewConfig()
	c.Enabled = true
	c.Driver = "mysql"
	assert.True(t, IsConfigurationError(c.Validate()))
}
