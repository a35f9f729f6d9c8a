package testing

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// RequireBalance asserts that an account holds the expected amount of token.
func RequireBalance(t *testing.T, env *TestEnv, acc *Account, token types.TokenID, expected uint64) {
	t.Helper()
	actual := env.Balance(acc, token)
	require.Equal(t, expected, actual,
		"Account %s balance mismatch: expected %d, got %d", acc.Name, expected, actual)
}

// RequireSupply asserts the outstanding supply of a token.
func RequireSupply(t *testing.T, env *TestEnv, token types.TokenID, expected uint64) {
	t.Helper()
	actual := env.Supply(token)
	require.Equal(t, expected, actual,
		"Supply mismatch for %s: expected %d, got %d", token, expected, actual)
}

// RequireReserves asserts the escrow balances of a pool, accrued fees included.
func RequireReserves(t *testing.T, env *TestEnv, pool types.Hash256, expectedA, expectedB uint64) {
	t.Helper()
	a, b := env.Reserves(pool)
	require.Equal(t, expectedA, a, "Pool %s reserve A mismatch", pool)
	require.Equal(t, expectedB, b, "Pool %s reserve B mismatch", pool)
}

// RequirePoolState asserts the lifecycle state of a pool.
func RequirePoolState(t *testing.T, env *TestEnv, pool types.Hash256, expected sle.PoolState) {
	t.Helper()
	actual := env.Pool(pool).State
	require.Equal(t, expected, actual,
		"Pool %s state mismatch: expected %s, got %s", pool, expected, actual)
}

// RequireTxSuccess asserts that a transaction result indicates success.
func RequireTxSuccess(t *testing.T, result TxResult) {
	t.Helper()
	require.True(t, result.Success,
		"Expected transaction success, got %s: %s", result.Code, result.Message)
	require.Equal(t, tesSUCCESS, result.Code,
		"Expected tesSUCCESS, got %s: %s", result.Code, result.Message)
}

// RequireTxFail asserts that a transaction result indicates failure with a specific code.
func RequireTxFail(t *testing.T, result TxResult, expectedCode string) {
	t.Helper()
	require.False(t, result.Success,
		"Expected transaction failure with code %s, but transaction succeeded", expectedCode)
	require.Equal(t, expectedCode, result.Code,
		"Expected failure code %s, got %s: %s", expectedCode, result.Code, result.Message)
}

// RequireUnchanged runs fn and asserts that the ledger state is identical
// before and after.
func RequireUnchanged(t *testing.T, env *TestEnv, fn func()) {
	t.Helper()
	before := env.StateDigest()
	fn()
	require.Equal(t, before, env.StateDigest(), "ledger state changed")
}
