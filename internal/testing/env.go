package testing

import (
	"context"
	"crypto/sha512"
	"errors"
	"testing"
	"time"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/keylet"
	"github.com/LeJamon/goShieldDEX/internal/core/ledger/service"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	"github.com/LeJamon/goShieldDEX/internal/logging"
	"github.com/LeJamon/goShieldDEX/internal/storage"
)

// TestEnv manages a test ledger environment for transaction testing.
// It provides a simplified interface for creating accounts, funding them,
// submitting transactions, and verifying results.
type TestEnv struct {
	t        *testing.T
	svc      *service.Service
	clock    *ManualClock
	accounts map[string]*Account

	admin       *Account
	feeReceiver *Account
}

// EnvOption adjusts the engine configuration of a TestEnv.
type EnvOption func(*tx.EngineConfig)

// WithIssuance selects the share formula used by deposits.
func WithIssuance(mode tx.IssuanceMode) EnvOption {
	return func(c *tx.EngineConfig) { c.Issuance = mode }
}

// WithCustomFee sets the LP fee bound above which initialize charges a side
// payment, and the smallest accepted payment.
func WithCustomFee(bound, minimum uint64) EnvOption {
	return func(c *tx.EngineConfig) {
		c.CustomFeeBound = bound
		c.CustomFeeMinimum = minimum
	}
}

// NewTestEnv creates a test environment over in-memory storage. The admin
// and fee receiver accounts are fixed, and signatures are verified.
func NewTestEnv(t *testing.T, opts ...EnvOption) *TestEnv {
	t.Helper()

	admin := NewAccount("admin")
	feeReceiver := NewAccount("fee-receiver")

	engineCfg := tx.DefaultEngineConfig()
	engineCfg.Admin = admin.ID
	engineCfg.FeeReceiver = feeReceiver.ID
	for _, opt := range opts {
		opt(&engineCfg)
	}

	clock := NewManualClock()
	svc, err := service.New(service.Config{
		Engine:  engineCfg,
		Storage: storage.Config{Backend: storage.BackendMemory},
		Logger:  logging.NewTestLogger(),
		Clock:   clock,
	})
	if err != nil {
		t.Fatalf("Failed to create ledger service: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })

	env := &TestEnv{
		t:           t,
		svc:         svc,
		clock:       clock,
		accounts:    make(map[string]*Account),
		admin:       admin,
		feeReceiver: feeReceiver,
	}
	env.accounts[admin.Name] = admin
	env.accounts[feeReceiver.Name] = feeReceiver
	return env
}

// Service returns the ledger service under test.
func (e *TestEnv) Service() *service.Service {
	return e.svc
}

// Admin returns the protocol administrator.
func (e *TestEnv) Admin() *Account {
	return e.admin
}

// FeeReceiver returns the account collecting tax and custom fees.
func (e *TestEnv) FeeReceiver() *Account {
	return e.feeReceiver
}

// Account returns the account with the given name, creating it on first use.
func (e *TestEnv) Account(name string) *Account {
	if acc, ok := e.accounts[name]; ok {
		return acc
	}
	acc := NewAccount(name)
	e.accounts[name] = acc
	return acc
}

// Now returns the current ledger time.
func (e *TestEnv) Now() time.Time {
	return e.clock.Now()
}

// Advance moves the ledger clock forward.
func (e *TestEnv) Advance(d time.Duration) {
	e.clock.Advance(d)
}

// Fund credits acc with v units of token.
func (e *TestEnv) Fund(acc *Account, token types.TokenID, v uint64) {
	e.t.Helper()
	if err := e.svc.Fund(token, acc.ID, v); err != nil {
		e.t.Fatalf("Failed to fund %s with %d of %s: %v", acc.Name, v, token, err)
	}
}

// Submit signs t with acc's key and applies it. A transaction without a
// sequence gets the account's next one before signing.
func (e *TestEnv) Submit(acc *Account, t tx.Transaction) TxResult {
	e.t.Helper()
	if c := t.GetCommon(); c.Sequence == 0 {
		c.Sequence = e.Sequence(acc)
	}
	if err := tx.Sign(t, acc.Key); err != nil {
		e.t.Fatalf("Failed to sign %s for %s: %v", t.TxType(), acc.Name, err)
	}
	res, err := e.svc.Submit(context.Background(), t)
	if err != nil {
		e.t.Fatalf("Submit failed: %v", err)
	}
	return newTxResult(res)
}

// SubmitJSON applies an already signed transaction body as received from
// the wire.
func (e *TestEnv) SubmitJSON(body []byte) TxResult {
	e.t.Helper()
	res, err := e.svc.SubmitJSON(context.Background(), body)
	if err != nil {
		e.t.Fatalf("SubmitJSON failed: %v", err)
	}
	return newTxResult(res)
}

// Sequence returns the sequence acc's next transaction must carry.
func (e *TestEnv) Sequence(acc *Account) uint32 {
	e.t.Helper()
	seq, err := e.svc.AccountSequence(acc.ID)
	if err != nil {
		e.t.Fatalf("Failed to read sequence of %s: %v", acc.Name, err)
	}
	return seq
}

// Balance returns the balance of acc in token.
func (e *TestEnv) Balance(acc *Account, token types.TokenID) uint64 {
	e.t.Helper()
	return e.BalanceOf(acc.ID, token)
}

// BalanceOf returns the balance of any account, such as a pool escrow.
func (e *TestEnv) BalanceOf(owner types.AccountID, token types.TokenID) uint64 {
	e.t.Helper()
	v, err := e.svc.Balance(token, owner)
	if err != nil {
		e.t.Fatalf("Failed to read balance: %v", err)
	}
	return v
}

// Supply returns the outstanding supply of token, or 0 if it was never
// created.
func (e *TestEnv) Supply(token types.TokenID) uint64 {
	e.t.Helper()
	v, err := e.svc.Supply(token)
	if err != nil {
		if errors.Is(err, tx.ErrUnknownToken) {
			return 0
		}
		e.t.Fatalf("Failed to read supply: %v", err)
	}
	return v
}

// Pool returns the pool record, failing the test if it does not exist.
func (e *TestEnv) Pool(id types.Hash256) *sle.Pool {
	e.t.Helper()
	p, err := e.svc.GetPool(id)
	if err != nil {
		e.t.Fatalf("Failed to read pool %s: %v", id, err)
	}
	return p
}

// PoolExists reports whether a pool record exists.
func (e *TestEnv) PoolExists(id types.Hash256) bool {
	_, err := e.svc.GetPool(id)
	return err == nil
}

// Escrow returns the escrow authority of a pool.
func (e *TestEnv) Escrow(id types.Hash256) types.AccountID {
	e.t.Helper()
	escrow, err := keylet.EscrowAuthority(id)
	if err != nil {
		e.t.Fatalf("Failed to derive escrow of %s: %v", id, err)
	}
	return escrow
}

// Reserves returns the escrow balances of both pool assets, accrued fees
// included.
func (e *TestEnv) Reserves(id types.Hash256) (a, b uint64) {
	e.t.Helper()
	p := e.Pool(id)
	escrow := e.Escrow(id)
	return e.BalanceOf(escrow, p.AssetA), e.BalanceOf(escrow, p.AssetB)
}

// StateDigest hashes every ledger entry. Two equal digests mean the ledger
// did not change in between.
func (e *TestEnv) StateDigest() [32]byte {
	e.t.Helper()
	h := sha512.New()
	err := e.svc.Engine().Query(func(view tx.LedgerView) error {
		return view.ForEach(func(key [32]byte, data []byte) bool {
			h.Write(key[:])
			h.Write(data)
			return true
		})
	})
	if err != nil {
		e.t.Fatalf("Failed to walk ledger state: %v", err)
	}
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
