package tx

import (
	"encoding/json"

	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// Event is an audit record emitted by a transaction. Concrete events are
// plain structs defined next to the transaction that emits them.
type Event interface {
	EventName() string
}

// MovementKind distinguishes custody movements.
type MovementKind string

const (
	MovementTransfer MovementKind = "transfer"
	MovementMint     MovementKind = "mint"
	MovementBurn     MovementKind = "burn"
)

// Movement is one custody request made by a transaction, in request order.
type Movement struct {
	Kind   MovementKind    `json:"kind"`
	Token  types.TokenID   `json:"token"`
	From   types.AccountID `json:"from"`
	To     types.AccountID `json:"to"`
	Amount uint64          `json:"amount"`
	Signer types.AccountID `json:"signer"`
}

// AffectedEntry summarizes a committed ledger change.
type AffectedEntry struct {
	Key    types.Hash256 `json:"key"`
	Type   string        `json:"type"`
	Action string        `json:"action"`
}

// Metadata describes what an applied transaction did.
type Metadata struct {
	TransactionResult Result          `json:"-"`
	Events            []Event         `json:"-"`
	Movements         []Movement      `json:"movements,omitempty"`
	AffectedEntries   []AffectedEntry `json:"affected_entries,omitempty"`

	// ReturnValue carries the numeric result of operations that return one,
	// such as the ask amount of a swap or the shares issued by a deposit.
	ReturnValue *uint64 `json:"return_value,omitempty"`
}

// SetReturn records the operation's numeric result.
func (m *Metadata) SetReturn(v uint64) {
	m.ReturnValue = &v
}

// EventRecord is the wire form of an event.
type EventRecord struct {
	Name string          `json:"name"`
	Data json.RawMessage `json:"data"`
}

// EncodeEvents renders events for transport.
func EncodeEvents(events []Event) ([]EventRecord, error) {
	out := make([]EventRecord, 0, len(events))
	for _, ev := range events {
		raw, err := json.Marshal(ev)
		if err != nil {
			return nil, err
		}
		out = append(out, EventRecord{Name: ev.EventName(), Data: raw})
	}
	return out, nil
}

// MarshalJSON includes the result token and encoded events.
func (m *Metadata) MarshalJSON() ([]byte, error) {
	events, err := EncodeEvents(m.Events)
	if err != nil {
		return nil, err
	}
	type plain Metadata
	return json.Marshal(struct {
		Result string        `json:"result"`
		Events []EventRecord `json:"events,omitempty"`
		*plain
	}{
		Result: m.TransactionResult.String(),
		Events: events,
		plain:  (*plain)(m),
	})
}

func affectedEntries(changes []Change) []AffectedEntry {
	out := make([]AffectedEntry, 0, len(changes))
	for _, c := range changes {
		out = append(out, AffectedEntry{
			Key:    types.Hash256(c.Key),
			Type:   c.Type.String(),
			Action: c.Action.String(),
		})
	}
	return out
}
