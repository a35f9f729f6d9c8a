// Package relationaldb keeps a SQL journal of committed transactions and the
// events they emitted.
package relationaldb

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// Entry is one journaled transaction.
type Entry struct {
	ID          uuid.UUID
	Hash        types.Hash256
	Type        string
	Account     types.AccountID
	Pool        *types.Hash256
	Result      string
	Timestamp   int64
	Transaction json.RawMessage
	Metadata    json.RawMessage
	Events      []tx.EventRecord
}

// Repository stores and retrieves journal entries. List methods return
// entries oldest first.
type Repository interface {
	Append(ctx context.Context, e *Entry) error
	GetByHash(ctx context.Context, hash types.Hash256) ([]*Entry, error)
	ListByAccount(ctx context.Context, account types.AccountID, limit int) ([]*Entry, error)
	ListByPool(ctx context.Context, pool types.Hash256, limit int) ([]*Entry, error)
	Count(ctx context.Context) (int64, error)
	Close() error
}
