package pebble

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/cockroachdb/pebble"

	"github.com/LeJamon/goShieldDEX/internal/storage/database"
)

// Manager keeps one pebble store per name, each in its own directory
// below root. A name may be closed and opened again; its records persist.
type Manager struct {
	mu   sync.Mutex
	root string
	open map[string]*pebble.DB
}

func NewManager(root string) *Manager {
	return &Manager{root: root, open: make(map[string]*pebble.DB)}
}

// OpenDB returns the store for name, opening it on first use.
func (m *Manager) OpenDB(name string) (database.DB, error) {
	if name == "" || filepath.Base(name) != name {
		return nil, fmt.Errorf("%w: invalid name %q", database.ErrNamespaceNotFound, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if db, ok := m.open[name]; ok {
		return NewDB(db), nil
	}
	db, err := pebble.Open(filepath.Join(m.root, name+".db"), &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("pebble: open %s: %w", name, err)
	}
	m.open[name] = db
	return NewDB(db), nil
}

// CloseDB flushes and closes one store. Handles returned by OpenDB for it
// stop working.
func (m *Manager) CloseDB(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	db, ok := m.open[name]
	if !ok {
		return fmt.Errorf("%w: %s", database.ErrNamespaceNotFound, name)
	}
	delete(m.open, name)
	if err := db.Flush(); err != nil {
		_ = db.Close()
		return fmt.Errorf("pebble: flush %s: %w", name, err)
	}
	return db.Close()
}

// Close closes every open store and reports the first failure.
func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var first error
	for name, db := range m.open {
		if err := db.Close(); err != nil && first == nil {
			first = fmt.Errorf("pebble: close %s: %w", name, err)
		}
		delete(m.open, name)
	}
	return first
}
