package tx

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/entry"
	"github.com/LeJamon/goShieldDEX/internal/core/ledger/keylet"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
)

// Action represents the type of modification to a ledger entry
type Action int

const (
	// ActionCache means the entry was read but not modified
	ActionCache Action = iota
	// ActionInsert means a new entry was created
	ActionInsert
	// ActionModify means an existing entry was modified
	ActionModify
	// ActionErase means an entry was deleted
	ActionErase
)

func (a Action) String() string {
	switch a {
	case ActionInsert:
		return "Created"
	case ActionModify:
		return "Modified"
	case ActionErase:
		return "Deleted"
	default:
		return "Cached"
	}
}

// TrackedEntry represents a ledger entry being tracked for changes
type TrackedEntry struct {
	Action   Action
	Original []byte // Original state (nil for inserts)
	Current  []byte // Current state
}

// Change is one committed modification.
type Change struct {
	Key    [32]byte
	Type   entry.Type
	Action Action
	Before []byte
	After  []byte
}

// ApplyStateTable wraps a LedgerView and buffers every modification made
// while a transaction applies. Nothing reaches the base view until the
// engine collects the changes, so a failed transaction is discarded by
// dropping the table.
type ApplyStateTable struct {
	base  LedgerView
	items map[[32]byte]*TrackedEntry
}

// NewApplyStateTable creates a new ApplyStateTable wrapping the given base view
func NewApplyStateTable(base LedgerView) *ApplyStateTable {
	return &ApplyStateTable{
		base:  base,
		items: make(map[[32]byte]*TrackedEntry),
	}
}

// Read reads a ledger entry, tracking it as cached
func (t *ApplyStateTable) Read(k keylet.Keylet) ([]byte, error) {
	if entry, exists := t.items[k.Key]; exists {
		if entry.Action == ActionErase {
			return nil, nil
		}
		return entry.Current, nil
	}

	data, err := t.base.Read(k)
	if err != nil {
		return nil, err
	}

	// Only track entries that exist in the base
	if data != nil {
		t.items[k.Key] = &TrackedEntry{
			Action:   ActionCache,
			Original: data,
			Current:  data,
		}
	}

	return data, nil
}

// Exists checks if an entry exists
func (t *ApplyStateTable) Exists(k keylet.Keylet) (bool, error) {
	if entry, exists := t.items[k.Key]; exists {
		return entry.Action != ActionErase, nil
	}
	return t.base.Exists(k)
}

// Insert adds a new entry
func (t *ApplyStateTable) Insert(k keylet.Keylet, data []byte) error {
	if entry, exists := t.items[k.Key]; exists {
		if entry.Action != ActionErase {
			return fmt.Errorf("entry %x already exists", k.Key)
		}
		// Re-inserting a deleted entry becomes a modify
		entry.Action = ActionModify
		entry.Current = data
		return nil
	}

	exists, err := t.base.Exists(k)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("entry %x already exists", k.Key)
	}

	t.items[k.Key] = &TrackedEntry{
		Action:  ActionInsert,
		Current: data,
	}
	return nil
}

// Update modifies an existing entry
func (t *ApplyStateTable) Update(k keylet.Keylet, data []byte) error {
	if entry, exists := t.items[k.Key]; exists {
		if entry.Action == ActionErase {
			return fmt.Errorf("entry %x not found (deleted)", k.Key)
		}
		if entry.Action == ActionCache {
			entry.Action = ActionModify
		}
		// For insert, keep it as insert with new data
		entry.Current = data
		return nil
	}

	original, err := t.base.Read(k)
	if err != nil {
		return err
	}
	if original == nil {
		return fmt.Errorf("entry %x not found", k.Key)
	}

	t.items[k.Key] = &TrackedEntry{
		Action:   ActionModify,
		Original: original,
		Current:  data,
	}
	return nil
}

// Erase removes an entry
func (t *ApplyStateTable) Erase(k keylet.Keylet) error {
	if entry, exists := t.items[k.Key]; exists {
		if entry.Action == ActionErase {
			return fmt.Errorf("entry %x already deleted", k.Key)
		}
		if entry.Action == ActionInsert {
			// Inserting then deleting = no change
			delete(t.items, k.Key)
			return nil
		}
		entry.Action = ActionErase
		return nil
	}

	original, err := t.base.Read(k)
	if err != nil {
		return err
	}
	if original == nil {
		return fmt.Errorf("entry %x not found", k.Key)
	}
	t.items[k.Key] = &TrackedEntry{
		Action:   ActionErase,
		Original: original,
		Current:  original,
	}
	return nil
}

// ForEach iterates over the base view with this table's modifications
// overlaid. Entries inserted by the table are visited after the base.
func (t *ApplyStateTable) ForEach(fn func(key [32]byte, data []byte) bool) error {
	seen := make(map[[32]byte]bool, len(t.items))
	stopped := false
	err := t.base.ForEach(func(key [32]byte, data []byte) bool {
		if entry, ok := t.items[key]; ok {
			seen[key] = true
			if entry.Action == ActionErase {
				return true
			}
			data = entry.Current
		}
		if !fn(key, data) {
			stopped = true
			return false
		}
		return true
	})
	if err != nil || stopped {
		return err
	}
	for _, key := range t.sortedKeys() {
		entry := t.items[key]
		if seen[key] || entry.Action != ActionInsert {
			continue
		}
		if !fn(key, entry.Current) {
			return nil
		}
	}
	return nil
}

func (t *ApplyStateTable) sortedKeys() [][32]byte {
	keys := make([][32]byte, 0, len(t.items))
	for k := range t.items {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return bytes.Compare(keys[i][:], keys[j][:]) < 0 })
	return keys
}

// Changes returns every effective modification ordered by key. Reads and
// modifications that restored the original bytes are omitted.
func (t *ApplyStateTable) Changes() []Change {
	changes := make([]Change, 0, len(t.items))
	for _, key := range t.sortedKeys() {
		entry := t.items[key]
		switch entry.Action {
		case ActionCache:
			continue
		case ActionModify:
			if bytes.Equal(entry.Original, entry.Current) {
				continue
			}
		}
		c := Change{
			Key:    key,
			Action: entry.Action,
			Before: entry.Original,
			After:  entry.Current,
		}
		if entry.Action == ActionErase {
			c.After = nil
		}
		raw := c.After
		if raw == nil {
			raw = c.Before
		}
		if typ, err := sle.TypeOf(raw); err == nil {
			c.Type = typ
		}
		changes = append(changes, c)
	}
	return changes
}

// Apply writes the buffered changes through to the base view one by one.
// The engine prefers Ledger.Commit, which writes them atomically.
func (t *ApplyStateTable) Apply() ([]Change, error) {
	changes := t.Changes()
	for _, c := range changes {
		k := keylet.Keylet{Type: c.Type, Key: c.Key}
		var err error
		switch c.Action {
		case ActionInsert:
			err = t.base.Insert(k, c.After)
		case ActionModify:
			err = t.base.Update(k, c.After)
		case ActionErase:
			err = t.base.Erase(k)
		}
		if err != nil {
			return nil, err
		}
	}
	t.items = make(map[[32]byte]*TrackedEntry)
	return changes, nil
}
