package sle

import (
	"testing"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/entry"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolLayout(t *testing.T) {
	p := &Pool{
		Authority:   types.AccountID{1},
		ShareToken:  types.TokenID{2},
		AssetA:      types.TokenID{3},
		AssetB:      types.TokenID{4},
		ReferralFee: 5,
		LPFee:       3_000_000,
		TaxConfig:   types.Hash256{7},
		State:       PoolPaused,
		AccruedFeeA: 8,
		AccruedFeeB: 9,
		CreatedAt:   10,
		UpdatedAt:   11,
	}

	data := SerializePool(p)
	require.Len(t, data, HeaderSize+poolBodySize)

	typ, err := TypeOf(data)
	require.NoError(t, err)
	assert.Equal(t, entry.TypePool, typ)
	assert.Equal(t, LayoutVersion, data[2])

	// Fields follow the header in declaration order.
	assert.Equal(t, byte(1), data[HeaderSize])
	assert.Equal(t, byte(PoolPaused), data[HeaderSize+20*4+8+8+32])

	got, err := ParsePool(data)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestParseRejectsForeignRecords(t *testing.T) {
	cfg := SerializePlatformConfig(&PlatformConfig{Tax: 1})

	_, err := ParsePool(cfg)
	require.ErrorIs(t, err, ErrShortRecord)

	_, err = ParseReferrer(append(cfg, make([]byte, 64)...))
	require.ErrorIs(t, err, ErrWrongType)

	_, err = TypeOf([]byte{1})
	require.ErrorIs(t, err, ErrShortRecord)
}

func TestRecordsRoundTrip(t *testing.T) {
	cfg := &PlatformConfig{Tax: 42, CreatedAt: 1, UpdatedAt: 2}
	gotCfg, err := ParsePlatformConfig(SerializePlatformConfig(cfg))
	require.NoError(t, err)
	assert.Equal(t, cfg, gotCfg)

	ref := &Referrer{Owner: types.AccountID{1}, Referee: types.AccountID{2}, Pool: types.Hash256{3}}
	gotRef, err := ParseReferrer(SerializeReferrer(ref))
	require.NoError(t, err)
	assert.Equal(t, ref, gotRef)

	bal := &TokenBalance{Token: types.TokenID{1}, Owner: types.AccountID{2}, Balance: 99}
	gotBal, err := ParseTokenBalance(SerializeTokenBalance(bal))
	require.NoError(t, err)
	assert.Equal(t, bal, gotBal)

	iss := &TokenIssuance{Token: types.TokenID{1}, MintAuthority: types.AccountID{2}, Supply: 1000, Decimals: 6}
	gotIss, err := ParseTokenIssuance(SerializeTokenIssuance(iss))
	require.NoError(t, err)
	assert.Equal(t, iss, gotIss)

	acct := &AccountRoot{Account: types.AccountID{3}, Sequence: 17}
	data := SerializeAccountRoot(acct)
	require.Len(t, data, HeaderSize+accountRootBodySize)
	gotAcct, err := ParseAccountRoot(data)
	require.NoError(t, err)
	assert.Equal(t, acct, gotAcct)
}

func TestPoolTransitions(t *testing.T) {
	tests := []struct {
		from, to PoolState
		ok       bool
	}{
		{PoolUninitialized, PoolInitialized, true},
		{PoolInitialized, PoolPaused, true},
		{PoolPaused, PoolInitialized, true},
		{PoolPaused, PoolPaused, false},
		{PoolInitialized, PoolInitialized, false},
		{PoolInitialized, PoolCanceled, false},
		{PoolPaused, PoolCanceled, false},
		{PoolCanceled, PoolInitialized, false},
	}
	for _, tc := range tests {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.ok, CanTransition(tc.from, tc.to))
		})
	}
}
