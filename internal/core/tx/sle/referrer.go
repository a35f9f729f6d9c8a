package sle

import (
	"github.com/LeJamon/goShieldDEX/internal/core/ledger/entry"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// Referrer records that Owner referred Referee into Pool.
type Referrer struct {
	Owner   types.AccountID
	Referee types.AccountID
	Pool    types.Hash256
}

const referrerBodySize = 20 + 20 + 32

// Type implements entry.Entry.
func (r *Referrer) Type() entry.Type { return entry.TypeReferrer }

// Validate implements entry.Entry.
func (r *Referrer) Validate() error { return nil }

func SerializeReferrer(r *Referrer) []byte {
	e := newEncoder(entry.TypeReferrer, referrerBodySize)
	e.account(r.Owner)
	e.account(r.Referee)
	e.hash(r.Pool)
	return e.bytes()
}

func ParseReferrer(data []byte) (*Referrer, error) {
	d, err := newDecoder(data, entry.TypeReferrer, referrerBodySize)
	if err != nil {
		return nil, err
	}
	return &Referrer{
		Owner:   d.account(),
		Referee: d.account(),
		Pool:    d.hash(),
	}, nil
}
