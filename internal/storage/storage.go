// Package storage opens the key/value backend selected in configuration.
package storage

import (
	"errors"
	"fmt"
	"io"

	"github.com/LeJamon/goShieldDEX/internal/storage/database"
	"github.com/LeJamon/goShieldDEX/internal/storage/database/bbolt"
	"github.com/LeJamon/goShieldDEX/internal/storage/database/leveldb"
	"github.com/LeJamon/goShieldDEX/internal/storage/database/pebble"
)

// Backend names accepted in configuration.
const (
	BackendPebble  = "pebble"
	BackendBBolt   = "bbolt"
	BackendLevelDB = "leveldb"
	BackendMemory  = "memory"
)

// stateDB is the name of the database holding ledger state.
const stateDB = "state"

// ErrUnknownBackend is returned for a backend name Open does not know.
var ErrUnknownBackend = errors.New("unknown storage backend")

// Config selects and locates the backend.
type Config struct {
	Backend   string `mapstructure:"backend"`
	Path      string `mapstructure:"path"`
	CacheSize int    `mapstructure:"cache_size"`
}

// NewDefaultConfig returns the default storage configuration.
func NewDefaultConfig() Config {
	return Config{
		Backend:   BackendPebble,
		Path:      "data",
		CacheSize: 4096,
	}
}

// Validate checks the backend name and path.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendMemory:
		return nil
	case BackendPebble, BackendBBolt, BackendLevelDB:
		if c.Path == "" {
			return fmt.Errorf("storage: backend %s needs a path", c.Backend)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
}

// Open opens the state database. The returned closer releases it.
func Open(cfg Config) (database.DB, io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	switch cfg.Backend {
	case BackendPebble:
		m := pebble.NewManager(cfg.Path)
		db, err := m.OpenDB(stateDB)
		if err != nil {
			return nil, nil, err
		}
		return db, m, nil
	case BackendBBolt:
		m := bbolt.NewManager(cfg.Path)
		db, err := m.OpenDB(stateDB)
		if err != nil {
			return nil, nil, err
		}
		return db, m, nil
	case BackendLevelDB:
		db, err := leveldb.Open(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	default:
		db, err := leveldb.OpenMemory()
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	}
}
