package leveldb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goShieldDEX/internal/storage/database"
	"github.com/LeJamon/goShieldDEX/internal/storage/database/dbtest"
)

func TestMemoryDB(t *testing.T) {
	db, err := OpenMemory()
	require.NoError(t, err)
	dbtest.Run(t, db)
	require.NoError(t, db.Close())

	_, err = db.Read(context.Background(), []byte("k"))
	require.ErrorIs(t, err, database.ErrDBClosed)
}

func TestFileDB(t *testing.T) {
	db, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	dbtest.Run(t, db)
}
