package tx

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/keylet"
)

// memLedger is a map-backed Ledger for tests.
type memLedger struct {
	data    map[[32]byte][]byte
	commits int
	failing error
}

func newMemLedger() *memLedger {
	return &memLedger{data: make(map[[32]byte][]byte)}
}

// NewMemLedger exposes the test ledger to the external test package.
var NewMemLedger = func() Ledger { return newMemLedger() }

func (m *memLedger) Read(k keylet.Keylet) ([]byte, error) {
	return m.data[k.Key], nil
}

func (m *memLedger) Exists(k keylet.Keylet) (bool, error) {
	_, ok := m.data[k.Key]
	return ok, nil
}

func (m *memLedger) Insert(k keylet.Keylet, data []byte) error {
	if _, ok := m.data[k.Key]; ok {
		return fmt.Errorf("exists")
	}
	m.data[k.Key] = data
	return nil
}

func (m *memLedger) Update(k keylet.Keylet, data []byte) error {
	if _, ok := m.data[k.Key]; !ok {
		return fmt.Errorf("missing")
	}
	m.data[k.Key] = data
	return nil
}

func (m *memLedger) Erase(k keylet.Keylet) error {
	delete(m.data, k.Key)
	return nil
}

func (m *memLedger) ForEach(fn func(key [32]byte, data []byte) bool) error {
	keys := make([][32]byte, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return bytes.Compare(keys[i][:], keys[j][:]) < 0 })
	for _, k := range keys {
		if !fn(k, m.data[k]) {
			return nil
		}
	}
	return nil
}

func (m *memLedger) Commit(changes []Change) error {
	if m.failing != nil {
		return m.failing
	}
	for _, c := range changes {
		if c.Action == ActionErase {
			delete(m.data, c.Key)
			continue
		}
		m.data[c.Key] = c.After
	}
	m.commits++
	return nil
}
