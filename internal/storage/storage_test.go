package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackends(t *testing.T) {
	for _, backend := range []string{BackendPebble, BackendBBolt, BackendLevelDB, BackendMemory} {
		t.Run(backend, func(t *testing.T) {
			db, closer, err := Open(Config{Backend: backend, Path: t.TempDir()})
			require.NoError(t, err)
			ctx := context.Background()
			require.NoError(t, db.Write(ctx, []byte("k"), []byte("v")))
			got, err := db.Read(ctx, []byte("k"))
			require.NoError(t, err)
			assert.Equal(t, []byte("v"), got)
			require.NoError(t, closer.Close())
		})
	}
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, NewDefaultConfig().Validate())
	require.NoError(t, Config{Backend: BackendMemory}.Validate())
	require.Error(t, Config{Backend: BackendPebble}.Validate())
	require.ErrorIs(t, Config{Backend: "rocks", Path: "x"}.Validate(), ErrUnknownBackend)

	_, _, err := Open(Config{Backend: "rocks"})
	require.ErrorIs(t, err, ErrUnknownBackend)
}
