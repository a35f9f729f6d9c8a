package bbolt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goShieldDEX/internal/storage/database"
	"github.com/LeJamon/goShieldDEX/internal/storage/database/dbtest"
)

func TestBBoltDB(t *testing.T) {
	dir := t.TempDir()
	manager := NewManager(dir)
	t.Cleanup(func() { _ = manager.Close() })

	db, err := manager.OpenDB("state")
	require.NoError(t, err)
	dbtest.Run(t, db)

	_, err = os.Stat(filepath.Join(dir, "state.db"))
	assert.NoError(t, err, "database file was not created")

	require.NoError(t, manager.CloseDB("state"))
	require.ErrorIs(t, manager.CloseDB("state"), database.ErrNamespaceNotFound)
}
