// Package dbtest holds the behaviour every database.DB backend must share.
package dbtest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goShieldDEX/internal/storage/database"
)

// Run exercises db. The database must start empty.
func Run(t *testing.T, db database.DB) {
	ctx := context.Background()

	t.Run("Read Write Delete", func(t *testing.T) {
		key := []byte("lifecycle-test")
		require.NoError(t, db.Write(ctx, key, []byte("test-value")))

		got, err := db.Read(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, []byte("test-value"), got)

		require.NoError(t, db.Delete(ctx, key))
		_, err = db.Read(ctx, key)
		require.ErrorIs(t, err, database.ErrKeyNotFound)
	})

	t.Run("Batch Operations", func(t *testing.T) {
		require.NoError(t, db.Write(ctx, []byte("batch-2"), []byte("old")))
		ops := []database.BatchOperation{
			{Type: database.BatchPut, Key: []byte("batch-1"), Value: []byte("one")},
			{Type: database.BatchDelete, Key: []byte("batch-2")},
			{Type: database.BatchPut, Key: []byte("batch-3"), Value: []byte("three")},
		}
		require.NoError(t, db.Batch(ctx, ops))

		got, err := db.Read(ctx, []byte("batch-1"))
		require.NoError(t, err)
		assert.Equal(t, []byte("one"), got)
		_, err = db.Read(ctx, []byte("batch-2"))
		require.ErrorIs(t, err, database.ErrKeyNotFound)

		err = db.Batch(ctx, []database.BatchOperation{{Type: database.BatchOpType(9), Key: []byte("x")}})
		require.Error(t, err)
	})

	t.Run("Iterator", func(t *testing.T) {
		for i := 0; i < 5; i++ {
			key := []byte(fmt.Sprintf("iter-%d", i))
			require.NoError(t, db.Write(ctx, key, []byte{byte(i)}))
		}

		it, err := db.Iterator(ctx, []byte("iter-1"), []byte("iter-4"))
		require.NoError(t, err)
		var keys []string
		var values []byte
		for it.Next() {
			keys = append(keys, string(it.Key()))
			values = append(values, it.Value()[0])
		}
		require.NoError(t, it.Error())
		require.NoError(t, it.Close())

		assert.Equal(t, []string{"iter-1", "iter-2", "iter-3"}, keys)
		assert.Equal(t, []byte{1, 2, 3}, values)

		it, err = db.Iterator(ctx, nil, nil)
		require.NoError(t, err)
		count := 0
		for it.Next() {
			count++
		}
		require.NoError(t, it.Close())
		assert.GreaterOrEqual(t, count, 5)
	})
}
