package types

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Sizes of the identifiers used throughout the ledger.
const (
	AccountIDSize = 20
	TokenIDSize   = 20
	HashSize      = 32
)

var (
	// ErrInvalidLength is returned when a hex identifier decodes to the wrong size.
	ErrInvalidLength = errors.New("identifier has invalid length")
)

// AccountID identifies a signer. User accounts derive it from a public key,
// pool custody authorities derive it from the pool id.
type AccountID [AccountIDSize]byte

// TokenID identifies an asset type held in custody.
type TokenID [TokenIDSize]byte

// Hash256 is a 32-byte ledger key or digest.
type Hash256 [HashSize]byte

// NativeToken is the native currency of the ledger. It pays the custom fee
// charged when a pool is created with a high LP fee.
var NativeToken TokenID

// ZeroAccount is the unset account id.
var ZeroAccount AccountID

func decodeFixed(s string, dst []byte) error {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return fmt.Errorf("decode hex: %w", err)
	}
	if len(raw) != len(dst) {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidLength, len(raw), len(dst))
	}
	copy(dst, raw)
	return nil
}

// ParseAccountID decodes a hex-encoded account id. A leading 0x is accepted.
func ParseAccountID(s string) (AccountID, error) {
	var id AccountID
	err := decodeFixed(s, id[:])
	return id, err
}

// ParseTokenID decodes a hex-encoded token id.
func ParseTokenID(s string) (TokenID, error) {
	var id TokenID
	err := decodeFixed(s, id[:])
	return id, err
}

// ParseHash256 decodes a hex-encoded 32-byte hash.
func ParseHash256(s string) (Hash256, error) {
	var h Hash256
	err := decodeFixed(s, h[:])
	return h, err
}

func (a AccountID) String() string { return strings.ToUpper(hex.EncodeToString(a[:])) }
func (t TokenID) String() string   { return strings.ToUpper(hex.EncodeToString(t[:])) }
func (h Hash256) String() string   { return strings.ToUpper(hex.EncodeToString(h[:])) }

// IsZero reports whether the account id is unset.
func (a AccountID) IsZero() bool { return a == ZeroAccount }

// IsNative reports whether the token is the native currency.
func (t TokenID) IsNative() bool { return t == NativeToken }

// IsZero reports whether the hash is all zero.
func (h Hash256) IsZero() bool { return h == Hash256{} }

// Less orders token ids bytewise.
func (t TokenID) Less(o TokenID) bool { return bytes.Compare(t[:], o[:]) < 0 }

func (a AccountID) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
func (t TokenID) MarshalText() ([]byte, error)   { return []byte(t.String()), nil }
func (h Hash256) MarshalText() ([]byte, error)   { return []byte(h.String()), nil }

func (a *AccountID) UnmarshalText(b []byte) error {
	id, err := ParseAccountID(string(b))
	if err != nil {
		return err
	}
	*a = id
	return nil
}

func (t *TokenID) UnmarshalText(b []byte) error {
	id, err := ParseTokenID(string(b))
	if err != nil {
		return err
	}
	*t = id
	return nil
}

func (h *Hash256) UnmarshalText(b []byte) error {
	v, err := ParseHash256(string(b))
	if err != nil {
		return err
	}
	*h = v
	return nil
}
