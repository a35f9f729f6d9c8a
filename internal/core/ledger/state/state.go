// Package state keeps ledger records in a key/value database.
package state

import (
	"context"
	"errors"
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/keylet"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/storage/database"
)

// DefaultCacheSize is used when the configured cache size is not positive.
const DefaultCacheSize = 4096

// Ledger is the persistent tx.Ledger. Records are stored under their 32-byte
// keylet key. Recently read records are kept in an LRU cache that Commit
// keeps coherent.
type Ledger struct {
	mu    sync.RWMutex
	db    database.DB
	cache *lru.Cache[[32]byte, []byte]

	// Metrics
	hits   uint64
	misses uint64
}

var _ tx.Ledger = (*Ledger)(nil)

// New wraps db.
func New(db database.DB, cacheSize int) (*Ledger, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	cache, err := lru.New[[32]byte, []byte](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Ledger{db: db, cache: cache}, nil
}

// Read returns the record at k, or nil if there is none.
func (l *Ledger) Read(k keylet.Keylet) ([]byte, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read(k.Key)
}

func (l *Ledger) read(key [32]byte) ([]byte, error) {
	if v, ok := l.cache.Get(key); ok {
		l.hits++
		return v, nil
	}
	l.misses++
	v, err := l.db.Read(context.Background(), key[:])
	if errors.Is(err, database.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %x: %w", key, err)
	}
	l.cache.Add(key, v)
	return v, nil
}

// Exists reports whether a record is stored at k.
func (l *Ledger) Exists(k keylet.Keylet) (bool, error) {
	v, err := l.Read(k)
	return v != nil, err
}

// Insert stores a new record.
func (l *Ledger) Insert(k keylet.Keylet, data []byte) error {
	return l.Commit([]tx.Change{{Key: k.Key, Type: k.Type, Action: tx.ActionInsert, After: data}})
}

// Update replaces an existing record.
func (l *Ledger) Update(k keylet.Keylet, data []byte) error {
	return l.Commit([]tx.Change{{Key: k.Key, Type: k.Type, Action: tx.ActionModify, After: data}})
}

// Erase removes a record.
func (l *Ledger) Erase(k keylet.Keylet) error {
	return l.Commit([]tx.Change{{Key: k.Key, Type: k.Type, Action: tx.ActionErase}})
}

// ForEach visits every record in key order.
func (l *Ledger) ForEach(fn func(key [32]byte, data []byte) bool) error {
	l.mu.RLock()
	defer l.mu.RUnlock()

	it, err := l.db.Iterator(context.Background(), nil, nil)
	if err != nil {
		return err
	}
	defer it.Close()
	for it.Next() {
		raw := it.Key()
		if len(raw) != 32 {
			continue
		}
		var key [32]byte
		copy(key[:], raw)
		if !fn(key, it.Value()) {
			break
		}
	}
	return it.Error()
}

// Commit writes changes in one batch. Inserts of existing keys and updates
// or erases of missing keys fail the whole commit.
func (l *Ledger) Commit(changes []tx.Change) error {
	if len(changes) == 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	ops := make([]database.BatchOperation, 0, len(changes))
	for _, c := range changes {
		current, err := l.read(c.Key)
		if err != nil {
			return err
		}
		switch c.Action {
		case tx.ActionInsert:
			if current != nil {
				return fmt.Errorf("insert %x: entry already exists", c.Key)
			}
			ops = append(ops, database.BatchOperation{Type: database.BatchPut, Key: c.Key[:], Value: c.After})
		case tx.ActionModify:
			if current == nil {
				return fmt.Errorf("update %x: %w", c.Key, database.ErrKeyNotFound)
			}
			ops = append(ops, database.BatchOperation{Type: database.BatchPut, Key: c.Key[:], Value: c.After})
		case tx.ActionErase:
			if current == nil {
				return fmt.Errorf("erase %x: %w", c.Key, database.ErrKeyNotFound)
			}
			ops = append(ops, database.BatchOperation{Type: database.BatchDelete, Key: c.Key[:]})
		}
	}

	if err := l.db.Batch(context.Background(), ops); err != nil {
		// The cache may hold reads that no longer match; start over.
		l.cache.Purge()
		return fmt.Errorf("commit: %w", err)
	}
	for _, c := range changes {
		if c.Action == tx.ActionErase {
			l.cache.Remove(c.Key)
			continue
		}
		l.cache.Add(c.Key, c.After)
	}
	return nil
}

// CacheStats returns the cache hit and miss counters.
func (l *Ledger) CacheStats() (hits, misses uint64) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hits, l.misses
}
