package relationaldb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/ugorji/go/codec"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	"github.com/LeJamon/goShieldDEX/internal/logging"
)

// DefaultListLimit applies when a list call passes a zero limit.
const DefaultListLimit = 100

const columns = "id, hash, tx_type, account, pool, result, ts, txn, meta, events"

var schema = []string{
	`CREATE TABLE IF NOT EXISTS journal (
		id      TEXT PRIMARY KEY,
		hash    TEXT NOT NULL,
		tx_type TEXT NOT NULL,
		account TEXT NOT NULL,
		pool    TEXT,
		result  TEXT NOT NULL,
		ts      BIGINT NOT NULL,
		txn     TEXT NOT NULL,
		meta    TEXT NOT NULL,
		events  %s
	)`,
	`CREATE INDEX IF NOT EXISTS journal_hash_idx ON journal (hash)`,
	`CREATE INDEX IF NOT EXISTS journal_account_idx ON journal (account)`,
	`CREATE INDEX IF NOT EXISTS journal_pool_idx ON journal (pool)`,
}

var msgpackHandle = func() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	h.WriteExt = true
	return h
}()

// storedEvent is the msgpack form of an event record.
type storedEvent struct {
	Name string `codec:"n"`
	Data []byte `codec:"d"`
}

func encodeEvents(events []tx.EventRecord) ([]byte, error) {
	stored := make([]storedEvent, 0, len(events))
	for _, ev := range events {
		stored = append(stored, storedEvent{Name: ev.Name, Data: ev.Data})
	}
	var buf []byte
	if err := codec.NewEncoderBytes(&buf, msgpackHandle).Encode(stored); err != nil {
		return nil, err
	}
	return buf, nil
}

func decodeEvents(data []byte) ([]tx.EventRecord, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var stored []storedEvent
	if err := codec.NewDecoderBytes(data, msgpackHandle).Decode(&stored); err != nil {
		return nil, err
	}
	out := make([]tx.EventRecord, 0, len(stored))
	for _, s := range stored {
		out = append(out, tx.EventRecord{Name: s.Name, Data: json.RawMessage(s.Data)})
	}
	return out, nil
}

// Journal is the SQL Repository. It is also a tx.EventSink, so an engine
// can journal every receipt it commits.
type Journal struct {
	db      *sql.DB
	driver  string
	timeout time.Duration
	log     *logging.Logger
}

var (
	_ Repository   = (*Journal)(nil)
	_ tx.EventSink = (*Journal)(nil)
)

// Open connects to the configured database and creates the schema.
func Open(cfg Config, log *logging.Logger) (*Journal, error) {
	cfg.Enabled = true
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logging.NewTestLogger()
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, NewConnectionError("open", "failed to open database", err)
	}
	if cfg.Driver == DriverSQLite {
		// One connection keeps writes serialized and an in-memory database
		// alive for the journal's lifetime.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	j := &Journal{
		db:      db,
		driver:  cfg.Driver,
		timeout: cfg.DefaultTimeout,
		log:     log.Named("journal"),
	}
	ctx, cancel := j.withTimeout(context.Background())
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, NewConnectionError("open", "failed to reach database", err)
	}
	if err := j.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	j.log.Info("journal opened", zap.String("driver", cfg.Driver))
	return j, nil
}

func (j *Journal) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, j.timeout)
}

func (j *Journal) migrate(ctx context.Context) error {
	blob := "BLOB"
	if j.driver == DriverPostgres {
		blob = "BYTEA"
	}
	for i, stmt := range schema {
		if i == 0 {
			stmt = fmt.Sprintf(stmt, blob)
		}
		if _, err := j.db.ExecContext(ctx, stmt); err != nil {
			return NewSchemaError("migrate", "failed to create journal schema", err)
		}
	}
	return nil
}

// rebind rewrites ? placeholders into the driver's form.
func (j *Journal) rebind(query string) string {
	if j.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Publish journals a committed receipt.
func (j *Journal) Publish(ctx context.Context, r *tx.Receipt) error {
	e := &Entry{
		Hash:        r.Hash,
		Type:        r.Type.String(),
		Account:     r.Account,
		Pool:        r.Pool,
		Result:      r.Result.String(),
		Timestamp:   r.Timestamp,
		Transaction: r.Transaction,
	}
	if r.Metadata != nil {
		meta, err := json.Marshal(r.Metadata)
		if err != nil {
			return NewDataError("publish", "failed to encode metadata", err)
		}
		e.Metadata = meta
		events, err := tx.EncodeEvents(r.Metadata.Events)
		if err != nil {
			return NewDataError("publish", "failed to encode events", err)
		}
		e.Events = events
	}
	return j.Append(ctx, e)
}

// Append stores e, assigning it a time-ordered id when it has none.
func (j *Journal) Append(ctx context.Context, e *Entry) error {
	if e.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return NewDataError("append", "failed to generate id", err)
		}
		e.ID = id
	}
	events, err := encodeEvents(e.Events)
	if err != nil {
		return NewDataError("append", "failed to encode events", err)
	}
	var pool sql.NullString
	if e.Pool != nil {
		pool = sql.NullString{String: e.Pool.String(), Valid: true}
	}
	meta := e.Metadata
	if meta == nil {
		meta = json.RawMessage("{}")
	}

	ctx, cancel := j.withTimeout(ctx)
	defer cancel()
	_, err = j.db.ExecContext(ctx,
		j.rebind("INSERT INTO journal ("+columns+") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"),
		e.ID.String(), e.Hash.String(), e.Type, e.Account.String(), pool,
		e.Result, e.Timestamp, string(e.Transaction), string(meta), events)
	if err != nil {
		return NewQueryError("append", "failed to insert journal entry", err)
	}
	j.log.Debug("journaled transaction",
		zap.Stringer("id", e.ID),
		zap.Stringer("hash", e.Hash),
		zap.String("type", e.Type))
	return nil
}

// GetByHash returns every entry with the given transaction hash. The same
// signed transaction can commit more than once.
func (j *Journal) GetByHash(ctx context.Context, hash types.Hash256) ([]*Entry, error) {
	entries, err := j.list(ctx, "get_by_hash", "hash = ?", hash.String(), 0)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", hash, ErrNotFound)
	}
	return entries, nil
}

// ListByAccount returns entries submitted by account, oldest first.
func (j *Journal) ListByAccount(ctx context.Context, account types.AccountID, limit int) ([]*Entry, error) {
	return j.list(ctx, "list_by_account", "account = ?", account.String(), limit)
}

// ListByPool returns entries that acted on pool, oldest first.
func (j *Journal) ListByPool(ctx context.Context, pool types.Hash256, limit int) ([]*Entry, error) {
	return j.list(ctx, "list_by_pool", "pool = ?", pool.String(), limit)
}

func (j *Journal) list(ctx context.Context, op, where, arg string, limit int) ([]*Entry, error) {
	if limit < 0 {
		return nil, ErrInvalidLimit
	}
	if limit == 0 {
		limit = DefaultListLimit
	}
	ctx, cancel := j.withTimeout(ctx)
	defer cancel()

	rows, err := j.db.QueryContext(ctx,
		j.rebind("SELECT "+columns+" FROM journal WHERE "+where+" ORDER BY id LIMIT ?"),
		arg, limit)
	if err != nil {
		return nil, NewQueryError(op, "failed to query journal", err)
	}
	defer rows.Close()

	var out []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, NewDataError(op, "failed to decode journal row", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, NewQueryError(op, "failed to read journal rows", err)
	}
	return out, nil
}

func scanEntry(rows *sql.Rows) (*Entry, error) {
	var (
		id, hash, account string
		pool              sql.NullString
		txn, meta         string
		events            []byte
		e                 Entry
	)
	if err := rows.Scan(&id, &hash, &e.Type, &account, &pool, &e.Result, &e.Timestamp, &txn, &meta, &events); err != nil {
		return nil, err
	}
	var err error
	if e.ID, err = uuid.Parse(id); err != nil {
		return nil, errors.Join(ErrInvalidDataFormat, err)
	}
	if e.Hash, err = types.ParseHash256(hash); err != nil {
		return nil, errors.Join(ErrInvalidDataFormat, err)
	}
	if e.Account, err = types.ParseAccountID(account); err != nil {
		return nil, errors.Join(ErrInvalidDataFormat, err)
	}
	if pool.Valid {
		p, err := types.ParseHash256(pool.String)
		if err != nil {
			return nil, errors.Join(ErrInvalidDataFormat, err)
		}
		e.Pool = &p
	}
	if txn != "" {
		e.Transaction = json.RawMessage(txn)
	}
	e.Metadata = json.RawMessage(meta)
	if e.Events, err = decodeEvents(events); err != nil {
		return nil, errors.Join(ErrInvalidDataFormat, err)
	}
	return &e, nil
}

// Count returns the number of journaled entries.
func (j *Journal) Count(ctx context.Context) (int64, error) {
	ctx, cancel := j.withTimeout(ctx)
	defer cancel()
	var n int64
	if err := j.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM journal").Scan(&n); err != nil {
		return 0, NewQueryError("count", "failed to count journal entries", err)
	}
	return n, nil
}

// Close closes the database.
func (j *Journal) Close() error {
	return j.db.Close()
}
