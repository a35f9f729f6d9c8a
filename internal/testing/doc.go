// Package testing provides test infrastructure for ledger transaction testing.
//
// # Overview
//
// The testing package provides:
//   - TestEnv: a ledger service over in-memory storage with a manual clock
//   - Account: deterministic test accounts with keypairs
//   - Token and Percent: deterministic token ids and fixed-point rates
//   - Assertions: helpers for balances, supplies, reserves and results
//
// Transaction builders live in the builders and amm subpackages.
//
// # Basic Usage
//
//	func TestSwap(t *testing.T) {
//	    env := testing.NewTestEnv(t)
//
//	    alice := env.Account("alice")
//	    usd := testing.Token("USD")
//	    env.Fund(alice, usd, 1_000_000)
//
//	    result := env.Submit(alice, someTx)
//	    testing.RequireTxSuccess(t, result)
//	    testing.RequireBalance(t, env, alice, usd, 990_000)
//	}
//
// # TestEnv
//
// TestEnv owns a ledger service whose engine is configured with fixed admin
// and fee receiver accounts. Submit signs with the account's key, so
// signature verification stays on.
//
//	env := testing.NewTestEnv(t, testing.WithIssuance(tx.IssuanceProportional))
//	env.Fund(alice, token, 1_000)   // credit a balance outside any transaction
//	env.Balance(alice, token)       // read a balance
//	env.Reserves(pool)              // escrow balances of a pool
//	env.StateDigest()               // hash of the whole ledger
//
// # Account
//
// Using the same name always produces the same account.
//
//	alice := testing.NewAccount("alice")        // secp256k1 by default
//	bob := testing.NewAccountWithKeyType("bob", testing.KeyTypeEd25519)
//
// # Assertions
//
//	testing.RequireTxSuccess(t, result)
//	testing.RequireTxFail(t, result, testing.TecLARGE_SLIPPAGE)
//	testing.RequireUnchanged(t, env, func() { ... })
package testing
