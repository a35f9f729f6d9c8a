package sle

import (
	"fmt"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/entry"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// PoolState is the lifecycle state of a pool.
type PoolState uint8

const (
	PoolUninitialized PoolState = iota
	PoolInitialized
	PoolPaused
	// PoolCanceled is reserved. No operation moves a pool into it.
	PoolCanceled
)

func (s PoolState) String() string {
	switch s {
	case PoolUninitialized:
		return "Uninitialized"
	case PoolInitialized:
		return "Initialized"
	case PoolPaused:
		return "Paused"
	case PoolCanceled:
		return "Canceled"
	default:
		return fmt.Sprintf("PoolState(%d)", uint8(s))
	}
}

// poolTransitions lists every state change an operation may perform.
var poolTransitions = map[PoolState][]PoolState{
	PoolUninitialized: {PoolInitialized},
	PoolInitialized:   {PoolPaused},
	PoolPaused:        {PoolInitialized},
}

// CanTransition reports whether a pool may move from one state to another.
func CanTransition(from, to PoolState) bool {
	for _, s := range poolTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Pool is the per-market record.
type Pool struct {
	Authority   types.AccountID
	ShareToken  types.TokenID
	AssetA      types.TokenID
	AssetB      types.TokenID
	ReferralFee uint64
	LPFee       uint64
	TaxConfig   types.Hash256
	State       PoolState
	AccruedFeeA uint64
	AccruedFeeB uint64
	CreatedAt   int64
	UpdatedAt   int64
}

const poolBodySize = 20 + 20 + 20 + 20 + 8 + 8 + 32 + 1 + 8 + 8 + 8 + 8

// Type implements entry.Entry.
func (p *Pool) Type() entry.Type { return entry.TypePool }

// Validate checks the stored rates and state.
func (p *Pool) Validate() error {
	if p.AssetA == p.AssetB {
		return fmt.Errorf("pool assets must differ")
	}
	if p.State > PoolCanceled {
		return fmt.Errorf("unknown pool state %d", p.State)
	}
	return nil
}

// IsActive reports whether the pool accepts swaps.
func (p *Pool) IsActive() bool { return p.State == PoolInitialized }

// IsPaused reports whether the pool is paused.
func (p *Pool) IsPaused() bool { return p.State == PoolPaused }

// SerializePool encodes a pool record.
func SerializePool(p *Pool) []byte {
	e := newEncoder(entry.TypePool, poolBodySize)
	e.account(p.Authority)
	e.token(p.ShareToken)
	e.token(p.AssetA)
	e.token(p.AssetB)
	e.u64(p.ReferralFee)
	e.u64(p.LPFee)
	e.hash(p.TaxConfig)
	e.u8(uint8(p.State))
	e.u64(p.AccruedFeeA)
	e.u64(p.AccruedFeeB)
	e.i64(p.CreatedAt)
	e.i64(p.UpdatedAt)
	return e.bytes()
}

// ParsePool decodes a pool record.
func ParsePool(data []byte) (*Pool, error) {
	d, err := newDecoder(data, entry.TypePool, poolBodySize)
	if err != nil {
		return nil, err
	}
	return &Pool{
		Authority:   d.account(),
		ShareToken:  d.token(),
		AssetA:      d.token(),
		AssetB:      d.token(),
		ReferralFee: d.u64(),
		LPFee:       d.u64(),
		TaxConfig:   d.hash(),
		State:       PoolState(d.u8()),
		AccruedFeeA: d.u64(),
		AccruedFeeB: d.u64(),
		CreatedAt:   d.i64(),
		UpdatedAt:   d.i64(),
	}, nil
}
