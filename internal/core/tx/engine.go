package tx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/LeJamon/goShieldDEX/internal/core/amount"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	"github.com/LeJamon/goShieldDEX/internal/logging"
)

// IssuanceMode selects how add_liquidity prices new shares.
type IssuanceMode string

const (
	// IssuanceGeometric issues floor(sqrt(a*b)) shares for every deposit.
	IssuanceGeometric IssuanceMode = "geometric"
	// IssuanceProportional issues shares in proportion to the existing supply.
	IssuanceProportional IssuanceMode = "proportional"
)

// Defaults for EngineConfig.
const (
	DefaultCustomFeeBound   uint64 = 50_000_000
	DefaultCustomFeeMinimum uint64 = 1
)

// EngineConfig holds configuration for the transaction engine
type EngineConfig struct {
	// Admin is the protocol administrator
	Admin types.AccountID

	// FeeReceiver receives the swap tax and the custom fee side payment
	FeeReceiver types.AccountID

	// CustomFeeBound is the LP fee rate above which initialize charges a
	// side payment in the native token
	CustomFeeBound uint64

	// CustomFeeMinimum is the smallest accepted side payment
	CustomFeeMinimum uint64

	// Issuance selects the add_liquidity share formula
	Issuance IssuanceMode

	// SkipSignatureVerification skips signature checks (for testing/standalone)
	SkipSignatureVerification bool
}

// DefaultEngineConfig returns a config with default bounds and no identities.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		CustomFeeBound:   DefaultCustomFeeBound,
		CustomFeeMinimum: DefaultCustomFeeMinimum,
		Issuance:         IssuanceGeometric,
	}
}

// Validate checks the configuration once, before the engine starts.
func (c EngineConfig) Validate() error {
	if c.Admin.IsZero() {
		return errors.New("engine: admin account is required")
	}
	if c.FeeReceiver.IsZero() {
		return errors.New("engine: fee receiver account is required")
	}
	if c.CustomFeeBound > amount.Precision {
		return fmt.Errorf("engine: custom fee bound %d exceeds %d", c.CustomFeeBound, amount.Precision)
	}
	switch c.Issuance {
	case IssuanceGeometric, IssuanceProportional:
	default:
		return fmt.Errorf("engine: unknown issuance mode %q", c.Issuance)
	}
	return nil
}

// Clock is the ledger time source.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Observer receives one call per transaction that reached apply.
type Observer interface {
	ObserveApply(txType, result string, d time.Duration)
}

//go:generate go run github.com/golang/mock/mockgen -destination mocks/event_sink_mock.go -package mocks github.com/LeJamon/goShieldDEX/internal/core/tx EventSink

// EventSink receives the receipt of every committed transaction, in commit
// order. A sink error is logged and never affects the transaction.
type EventSink interface {
	Publish(ctx context.Context, r *Receipt) error
}

// PoolScoped is implemented by transactions that act on a single pool.
type PoolScoped interface {
	PoolID() types.Hash256
}

// Receipt describes a committed transaction.
type Receipt struct {
	Hash        types.Hash256
	Type        Type
	Account     types.AccountID
	Pool        *types.Hash256
	Result      Result
	Timestamp   int64
	Metadata    *Metadata
	Transaction json.RawMessage
}

// ApplyResult contains the result of applying a transaction
type ApplyResult struct {
	// Result is the transaction result code
	Result Result

	// Applied indicates if the transaction was applied to the ledger
	Applied bool

	// Hash is the transaction id
	Hash types.Hash256

	// Metadata contains the changes made by the transaction
	Metadata *Metadata

	// Message is a human-readable result message
	Message string
}

// Engine processes transactions against a ledger. Apply calls are
// serialized, so two transactions never interleave their reads and writes.
type Engine struct {
	mu       sync.Mutex
	ledger   Ledger
	config   EngineConfig
	clock    Clock
	log      *logging.Logger
	observer Observer
	sinks    []EventSink
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the ledger clock.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLogger sets the engine logger.
func WithLogger(log *logging.Logger) Option {
	return func(e *Engine) { e.log = log.Named("engine") }
}

// WithObserver sets the apply observer.
func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observer = o }
}

// WithEventSink adds a receipt sink.
func WithEventSink(s EventSink) Option {
	return func(e *Engine) { e.sinks = append(e.sinks, s) }
}

// NewEngine creates a new transaction engine
func NewEngine(ledger Ledger, config EngineConfig, opts ...Option) *Engine {
	e := &Engine{
		ledger: ledger,
		config: config,
		clock:  systemClock{},
		log:    logging.NewTestLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine configuration.
func (e *Engine) Config() EngineConfig {
	return e.config
}

// Now returns the ledger clock reading in unix seconds.
func (e *Engine) Now() int64 {
	return e.clock.Now().Unix()
}

func reject(r Result, msg string) ApplyResult {
	if msg == "" {
		msg = r.Message()
	}
	return ApplyResult{Result: r, Message: msg}
}

// preflight runs the checks that do not need ledger state.
func (e *Engine) preflight(t Transaction) (Result, string) {
	if err := t.Validate(); err != nil {
		var r Result
		if errors.As(err, &r) {
			return r, err.Error()
		}
		return TemMALFORMED, err.Error()
	}
	if !e.config.SkipSignatureVerification {
		if err := VerifySignature(t); err != nil {
			return TemBAD_SIGNATURE, err.Error()
		}
	}
	return TesSUCCESS, ""
}

// Apply processes a transaction and applies it to the ledger. The
// transaction sequence must match the account's next sequence, which a
// successful apply advances. Only TesSUCCESS commits; every other result
// leaves the ledger untouched.
func (e *Engine) Apply(ctx context.Context, t Transaction) ApplyResult {
	start := time.Now()
	txType := t.TxType()
	log := e.log.With(zap.Stringer("type", txType), zap.Stringer("account", t.GetCommon().Account))

	if r, msg := e.preflight(t); !r.IsSuccess() {
		log.Info("transaction rejected in preflight", zap.Stringer("result", r), zap.String("reason", msg))
		return reject(r, msg)
	}

	appliable, ok := t.(Appliable)
	if !ok {
		return reject(TemUNKNOWN, "")
	}

	hash, err := ComputeHash(t)
	if err != nil {
		return reject(TefINTERNAL, "failed to compute transaction hash: "+err.Error())
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	table := NewApplyStateTable(e.ledger)

	common := t.GetCommon()
	acct, exists, err := ReadAccount(table, common.Account)
	if err != nil {
		return reject(TefINTERNAL, "failed to read account: "+err.Error())
	}
	if r := checkSequence(acct, common.Sequence); !r.IsSuccess() {
		log.Info("transaction sequence rejected",
			zap.Stringer("result", r),
			zap.Uint32("sequence", common.Sequence),
			zap.Uint32("expected", acct.Sequence))
		return ApplyResult{
			Result:   r,
			Hash:     hash,
			Metadata: &Metadata{TransactionResult: r},
			Message:  fmt.Sprintf("%s (sequence %d, account at %d)", r.Message(), common.Sequence, acct.Sequence),
		}
	}

	meta := &Metadata{}
	actx := &ApplyContext{
		View:      table,
		Custody:   NewCustody(table, meta),
		AccountID: t.GetCommon().Account,
		Config:    e.config,
		TxHash:    hash,
		Metadata:  meta,
		Now:       e.clock.Now().Unix(),
	}

	result := appliable.Apply(actx)
	defer func() {
		if e.observer != nil {
			e.observer.ObserveApply(txType.String(), result.String(), time.Since(start))
		}
	}()

	if !result.IsSuccess() {
		// Nothing the transaction did is observable.
		log.Info("transaction failed", zap.Stringer("result", result), zap.Stringer("hash", hash))
		return ApplyResult{
			Result:   result,
			Hash:     hash,
			Metadata: &Metadata{TransactionResult: result},
			Message:  result.Message(),
		}
	}

	if err := consumeSequence(table, acct, exists); err != nil {
		log.Error("could not advance account sequence", zap.Stringer("hash", hash), zap.Error(err))
		result = TefINTERNAL
		return ApplyResult{
			Result:   result,
			Hash:     hash,
			Metadata: &Metadata{TransactionResult: result},
			Message:  "advance sequence: " + err.Error(),
		}
	}

	changes := table.Changes()
	if err := e.ledger.Commit(changes); err != nil {
		log.Error("ledger commit failed", zap.Stringer("hash", hash), zap.Error(err))
		result = TefINTERNAL
		return ApplyResult{
			Result:   result,
			Hash:     hash,
			Metadata: &Metadata{TransactionResult: result},
			Message:  "ledger commit failed: " + err.Error(),
		}
	}
	meta.TransactionResult = result
	meta.AffectedEntries = affectedEntries(changes)

	log.Debug("transaction applied",
		zap.Stringer("hash", hash),
		zap.Int("changes", len(changes)),
		zap.Int("events", len(meta.Events)))

	e.publish(ctx, t, hash, actx.Now, meta)

	return ApplyResult{
		Result:   result,
		Applied:  true,
		Hash:     hash,
		Metadata: meta,
		Message:  result.Message(),
	}
}

func (e *Engine) publish(ctx context.Context, t Transaction, hash types.Hash256, now int64, meta *Metadata) {
	if len(e.sinks) == 0 {
		return
	}
	body, err := ToJSON(t)
	if err != nil {
		e.log.Warn("could not encode transaction for receipt", zap.Error(err))
	}
	r := &Receipt{
		Hash:        hash,
		Type:        t.TxType(),
		Account:     t.GetCommon().Account,
		Result:      meta.TransactionResult,
		Timestamp:   now,
		Metadata:    meta,
		Transaction: body,
	}
	if ps, ok := t.(PoolScoped); ok {
		id := ps.PoolID()
		r.Pool = &id
	}
	for _, s := range e.sinks {
		if err := s.Publish(ctx, r); err != nil {
			e.log.Warn("event sink rejected receipt", zap.Stringer("hash", hash), zap.Error(err))
		}
	}
}

// Query runs fn against a scratch view of the current ledger. Writes made
// by fn are discarded.
func (e *Engine) Query(fn func(view LedgerView) error) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(NewApplyStateTable(e.ledger))
}

// Fund credits owner with v units of token outside of any transaction. It
// seeds balances in standalone deployments.
func (e *Engine) Fund(token types.TokenID, owner types.AccountID, v uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	table := NewApplyStateTable(e.ledger)
	if err := NewCustody(table, nil).Credit(token, owner, v); err != nil {
		return err
	}
	return e.ledger.Commit(table.Changes())
}
