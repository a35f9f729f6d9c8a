package amm

import (
	"testing"

	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	jtx "github.com/LeJamon/goShieldDEX/internal/testing"
	"github.com/LeJamon/goShieldDEX/internal/testing/builders"
)

// Result codes used by pool tests.
const (
	TesSUCCESS        = "tesSUCCESS"
	TecUNFUNDED       = jtx.TecUNFUNDED
	TecNO_ENTRY       = jtx.TecNO_ENTRY
	TecDUPLICATE      = jtx.TecDUPLICATE
	TecUNAUTHORIZED   = jtx.TecUNAUTHORIZED
	TecINVALID_PARAMS = jtx.TecINVALID_PARAMS
	TecINVALID_STATE  = jtx.TecINVALID_STATE
	TecUNMATCH_POOL   = jtx.TecUNMATCH_POOL
	TecLARGE_SLIPPAGE = jtx.TecLARGE_SLIPPAGE
	TefPAST_SEQ       = jtx.TefPAST_SEQ
)

// DefaultFunding is the balance each standard account receives in each
// standard token.
const DefaultFunding uint64 = 10_000_000

// AMMTestEnv wraps TestEnv with pool helpers.
type AMMTestEnv struct {
	*jtx.TestEnv
	T *testing.T

	Alice *jtx.Account
	Bob   *jtx.Account
	Carol *jtx.Account

	// Standard tokens
	USD types.TokenID
	EUR types.TokenID

	// Config is the platform config pools reference, created with no tax.
	Config types.Hash256
}

// NewAMMTestEnv creates a test environment with a platform config at
// index 0 and the standard accounts funded in both standard tokens.
func NewAMMTestEnv(t *testing.T, opts ...jtx.EnvOption) *AMMTestEnv {
	t.Helper()
	env := &AMMTestEnv{
		TestEnv: jtx.NewTestEnv(t, opts...),
		T:       t,
		USD:     jtx.Token("USD"),
		EUR:     jtx.Token("EUR"),
	}
	env.Alice = env.Account("alice")
	env.Bob = env.Account("bob")
	env.Carol = env.Account("carol")

	create := builders.PlatformConfig(env.Admin())
	env.Config = create.ID()
	jtx.RequireTxSuccess(t, env.Submit(env.Admin(), create.Build()))

	for _, acc := range []*jtx.Account{env.Alice, env.Bob, env.Carol} {
		env.Fund(acc, env.USD, DefaultFunding)
		env.Fund(acc, env.EUR, DefaultFunding)
	}
	return env
}

// SetTax rewrites the tax rate of the standard platform config.
func (e *AMMTestEnv) SetTax(rate uint64) {
	e.T.Helper()
	jtx.RequireTxSuccess(e.T, e.Submit(e.Admin(), builders.SetTax(e.Admin(), e.Config, rate).Build()))
}

// CreatePool has owner create a USD/EUR pool with the given deposit and LP
// fee, and returns its id.
func (e *AMMTestEnv) CreatePool(owner *jtx.Account, a, b, lpFee uint64) types.Hash256 {
	e.T.Helper()
	builder := Initialize(owner, e.USD, e.EUR, e.Config).Amounts(a, b).LPFee(lpFee)
	jtx.RequireTxSuccess(e.T, e.Submit(owner, builder.Build()))
	return builder.PoolID()
}

// Shares returns the pool shares held by acc.
func (e *AMMTestEnv) Shares(pool types.Hash256, acc *jtx.Account) uint64 {
	e.T.Helper()
	return e.Balance(acc, e.Pool(pool).ShareToken)
}

// ShareSupply returns the outstanding shares of a pool.
func (e *AMMTestEnv) ShareSupply(pool types.Hash256) uint64 {
	e.T.Helper()
	return e.Supply(e.Pool(pool).ShareToken)
}

// Accrued returns the LP fees a pool has accrued on each side.
func (e *AMMTestEnv) Accrued(pool types.Hash256) (a, b uint64) {
	e.T.Helper()
	p := e.Pool(pool)
	return p.AccruedFeeA, p.AccruedFeeB
}

// RequireState asserts the lifecycle state of a pool.
func (e *AMMTestEnv) RequireState(pool types.Hash256, state sle.PoolState) {
	e.T.Helper()
	jtx.RequirePoolState(e.T, e.TestEnv, pool, state)
}
