package sle

import (
	"github.com/LeJamon/goShieldDEX/internal/core/ledger/entry"
)

// PlatformConfig holds the protocol tax rate shared by every pool that
// references it.
type PlatformConfig struct {
	Tax       uint64
	CreatedAt int64
	UpdatedAt int64
}

const platformConfigBodySize = 8 + 8 + 8

// Type implements entry.Entry.
func (c *PlatformConfig) Type() entry.Type { return entry.TypePlatformConfig }

// Validate implements entry.Entry.
func (c *PlatformConfig) Validate() error { return nil }

// SerializePlatformConfig encodes a platform config record.
func SerializePlatformConfig(c *PlatformConfig) []byte {
	e := newEncoder(entry.TypePlatformConfig, platformConfigBodySize)
	e.u64(c.Tax)
	e.i64(c.CreatedAt)
	e.i64(c.UpdatedAt)
	return e.bytes()
}

// ParsePlatformConfig decodes a platform config record.
func ParsePlatformConfig(data []byte) (*PlatformConfig, error) {
	d, err := newDecoder(data, entry.TypePlatformConfig, platformConfigBodySize)
	if err != nil {
		return nil, err
	}
	return &PlatformConfig{
		Tax:       d.u64(),
		CreatedAt: d.i64(),
		UpdatedAt: d.i64(),
	}, nil
}
