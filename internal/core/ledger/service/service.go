// Package service is the node facade over the transaction engine and the
// persistent ledger state.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/state"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	_ "github.com/LeJamon/goShieldDEX/internal/core/tx/all"
	"github.com/LeJamon/goShieldDEX/internal/logging"
	"github.com/LeJamon/goShieldDEX/internal/storage"
)

// Common errors
var (
	ErrNotFound = errors.New("not found")
	ErrClosed   = errors.New("service is closed")
)

// Config holds configuration for the Service
type Config struct {
	// Engine is the protocol configuration the engine enforces
	Engine tx.EngineConfig

	// Storage selects the key/value backend holding ledger state
	Storage storage.Config

	// Logger is the parent logger (optional)
	Logger *logging.Logger

	// Clock is the ledger clock (optional, system time by default)
	Clock tx.Clock

	// Observer is told about every apply (optional)
	Observer tx.Observer

	// Sinks receive receipts of committed transactions (optional)
	Sinks []tx.EventSink
}

// DefaultConfig returns the default service configuration
func DefaultConfig() Config {
	return Config{
		Engine:  tx.DefaultEngineConfig(),
		Storage: storage.NewDefaultConfig(),
	}
}

// Service owns the ledger and the engine applying transactions to it.
type Service struct {
	mu     sync.RWMutex
	closed bool

	log       *logging.Logger
	db        io.Closer
	ledger    *state.Ledger
	engine    *tx.Engine
	publisher *EventPublisher
}

// New opens storage and builds the engine.
func New(cfg Config) (*Service, error) {
	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = logging.NewTestLogger()
	}

	db, closer, err := storage.Open(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	ledger, err := state.New(db, cfg.Storage.CacheSize)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	s := &Service{
		log:       log.Named("service"),
		db:        closer,
		ledger:    ledger,
		publisher: NewEventPublisher(),
	}

	opts := []tx.Option{tx.WithLogger(log), tx.WithEventSink(s.publisher)}
	if cfg.Clock != nil {
		opts = append(opts, tx.WithClock(cfg.Clock))
	}
	if cfg.Observer != nil {
		opts = append(opts, tx.WithObserver(cfg.Observer))
	}
	for _, sink := range cfg.Sinks {
		opts = append(opts, tx.WithEventSink(sink))
	}
	s.engine = tx.NewEngine(ledger, cfg.Engine, opts...)

	s.log.Info("ledger service ready",
		zap.String("backend", cfg.Storage.Backend),
		zap.String("issuance", string(cfg.Engine.Issuance)))
	return s, nil
}

// Engine returns the transaction engine.
func (s *Service) Engine() *tx.Engine {
	return s.engine
}

// Events returns the publisher hooks can be registered on.
func (s *Service) Events() *EventPublisher {
	return s.publisher
}

// Submit applies a transaction.
func (s *Service) Submit(ctx context.Context, t tx.Transaction) (tx.ApplyResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return tx.ApplyResult{}, ErrClosed
	}
	return s.engine.Apply(ctx, t), nil
}

// SubmitJSON decodes and applies a transaction in its JSON form.
func (s *Service) SubmitJSON(ctx context.Context, data []byte) (tx.ApplyResult, error) {
	t, err := tx.FromJSON(data)
	if err != nil {
		return tx.ApplyResult{}, fmt.Errorf("decode transaction: %w", err)
	}
	return s.Submit(ctx, t)
}

// Close releases storage. Submissions fail afterwards.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
