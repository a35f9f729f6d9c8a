package pebble

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goShieldDEX/internal/storage/database"
	"github.com/LeJamon/goShieldDEX/internal/storage/database/dbtest"
)

func TestPebbleDB(t *testing.T) {
	dir := t.TempDir()
	manager := NewManager(dir)
	t.Cleanup(func() { _ = manager.Close() })

	db, err := manager.OpenDB("state")
	require.NoError(t, err)
	dbtest.Run(t, db)

	again, err := manager.OpenDB("state")
	require.NoError(t, err)
	_, err = again.Read(t.Context(), []byte("batch-1"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dir, "state.db"))
	assert.NoError(t, err, "database directory was not created")

	require.NoError(t, manager.CloseDB("state"))
	require.ErrorIs(t, manager.CloseDB("state"), database.ErrNamespaceNotFound)
}

func TestPebbleReopenAfterCloseDB(t *testing.T) {
	manager := NewManager(t.TempDir())
	t.Cleanup(func() { _ = manager.Close() })

	db, err := manager.OpenDB("state")
	require.NoError(t, err)
	require.NoError(t, db.Write(t.Context(), []byte("pool"), []byte("reserves")))
	require.NoError(t, manager.CloseDB("state"))

	reopened, err := manager.OpenDB("state")
	require.NoError(t, err)
	got, err := reopened.Read(t.Context(), []byte("pool"))
	require.NoError(t, err)
	assert.Equal(t, []byte("reserves"), got)
}

func TestPebbleRejectsPathNames(t *testing.T) {
	manager := NewManager(t.TempDir())
	for _, name := range []string{"", "../escape", "a/b"} {
		_, err := manager.OpenDB(name)
		require.ErrorIs(t, err, database.ErrNamespaceNotFound, name)
	}
	require.ErrorIs(t, manager.CloseDB("missing"), database.ErrNamespaceNotFound)
}
