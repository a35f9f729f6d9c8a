package testing

import (
	"crypto/sha512"
	"fmt"
	"math"

	"github.com/LeJamon/goShieldDEX/internal/core/types"
	"github.com/LeJamon/goShieldDEX/internal/crypto"
)

// KeyType constants for account key derivation.
const (
	KeyTypeSecp256k1 = "secp256k1"
	KeyTypeEd25519   = "ed25519"
)

// Account represents a test account with a keypair and its account id.
type Account struct {
	// Name is a human-readable identifier for the account (used for debugging).
	Name string

	// KeyType indicates the cryptographic algorithm used ("secp256k1" or "ed25519").
	KeyType string

	// Key signs the account's transactions.
	Key *crypto.KeyPair

	// ID is the 20-byte account id derived from the public key.
	ID types.AccountID
}

// NewAccount creates a new test account with a deterministic keypair derived from the name.
// Using the same name will always produce the same account, making tests reproducible.
// By default, uses secp256k1 key derivation.
func NewAccount(name string) *Account {
	return NewAccountWithKeyType(name, KeyTypeSecp256k1)
}

// NewAccountWithKeyType creates a new test account with the specified key type.
// Supported key types: "secp256k1" and "ed25519".
func NewAccountWithKeyType(name string, keyType string) *Account {
	// The private key is the first 32 bytes of SHA512(name), behind the
	// key type prefix.
	hash := sha512.Sum512([]byte(name))

	var prefix byte
	switch keyType {
	case KeyTypeSecp256k1:
		prefix = 0x00
	case KeyTypeEd25519:
		prefix = 0xED
	default:
		panic("unsupported key type: " + keyType + " (must be 'secp256k1' or 'ed25519')")
	}

	priv := append([]byte{prefix}, hash[:32]...)
	key, err := crypto.KeyPairFromPrivateKey(priv)
	if err != nil {
		panic("failed to derive keypair for account " + name + ": " + err.Error())
	}

	return &Account{
		Name:    name,
		KeyType: keyType,
		Key:     key,
		ID:      key.AccountID(),
	}
}

// IsSecp256k1 returns true if the account uses secp256k1 keys.
func (a *Account) IsSecp256k1() bool {
	return a.KeyType == KeyTypeSecp256k1
}

// IsEd25519 returns true if the account uses ed25519 keys.
func (a *Account) IsEd25519() bool {
	return a.KeyType == KeyTypeEd25519
}

// String returns a string representation of the account.
func (a *Account) String() string {
	return fmt.Sprintf("%s (%s)", a.Name, a.ID)
}

// Token returns a deterministic token id for a symbol. Equal symbols give
// equal tokens.
func Token(symbol string) types.TokenID {
	hash := sha512.Sum512([]byte("token:" + symbol))
	var t types.TokenID
	copy(t[:], hash[:])
	return t
}

// Percent converts a percentage into the fixed-point rate the ledger uses:
// Percent(0.3) is 3_000_000.
func Percent(p float64) uint64 {
	return uint64(math.Round(p * 10_000_000))
}
