package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/LeJamon/goShieldDEX/internal/core/types"
	crypto "github.com/LeJamon/goShieldDEX/internal/crypto/common"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
)

var (
	// ErrUnsupportedKeyType is returned when an unsupported key type is requested.
	ErrUnsupportedKeyType = errors.New("unsupported key type")
	// ErrInvalidPrivateKey is returned for undecodable private keys.
	ErrInvalidPrivateKey = errors.New("invalid private key")
	// ErrInvalidPublicKey is returned for undecodable public keys.
	ErrInvalidPublicKey = errors.New("invalid public key")
)

// KeyPair is a signing key. Both halves are 33 bytes: secp256k1 private keys
// carry a 0x00 prefix, Ed25519 keys carry 0xED.
type KeyPair struct {
	Type       KeyType
	PublicKey  []byte
	PrivateKey []byte
}

// GenerateKeyPair creates a random key pair of the given type.
func GenerateKeyPair(kt KeyType) (*KeyPair, error) {
	seed := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	defer erase(seed)

	switch kt {
	case KeyTypeSecp256k1:
		priv := append([]byte{0x00}, seed...)
		return KeyPairFromPrivateKey(priv)
	case KeyTypeEd25519:
		priv := append([]byte{ed25519Prefix}, seed...)
		return KeyPairFromPrivateKey(priv)
	default:
		return nil, ErrUnsupportedKeyType
	}
}

// KeyPairFromPrivateKey rebuilds a key pair from its 33-byte private key.
func KeyPairFromPrivateKey(priv []byte) (*KeyPair, error) {
	if len(priv) != 33 {
		return nil, ErrInvalidPrivateKey
	}
	switch priv[0] {
	case 0x00:
		sk, pk := btcec.PrivKeyFromBytes(priv[1:])
		if sk == nil {
			return nil, ErrInvalidPrivateKey
		}
		return &KeyPair{
			Type:       KeyTypeSecp256k1,
			PublicKey:  pk.SerializeCompressed(),
			PrivateKey: append([]byte{0x00}, sk.Serialize()...),
		}, nil
	case ed25519Prefix:
		full := ed25519.NewKeyFromSeed(priv[1:])
		pub := full.Public().(ed25519.PublicKey)
		return &KeyPair{
			Type:       KeyTypeEd25519,
			PublicKey:  append([]byte{ed25519Prefix}, pub...),
			PrivateKey: append([]byte{ed25519Prefix}, priv[1:]...),
		}, nil
	default:
		return nil, ErrInvalidPrivateKey
	}
}

// KeyPairFromHex decodes a hex private key.
func KeyPairFromHex(s string) (*KeyPair, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, ErrInvalidPrivateKey
	}
	return KeyPairFromPrivateKey(raw)
}

// AccountID is the account controlled by this key.
func (k *KeyPair) AccountID() types.AccountID {
	return CalcAccountID(k.PublicKey)
}

// PublicKeyHex returns the upper-case hex public key.
func (k *KeyPair) PublicKeyHex() string {
	return strings.ToUpper(hex.EncodeToString(k.PublicKey))
}

// PrivateKeyHex returns the upper-case hex private key.
func (k *KeyPair) PrivateKeyHex() string {
	return strings.ToUpper(hex.EncodeToString(k.PrivateKey))
}

// Sign signs message. secp256k1 signs the sha512-half digest of the message
// and returns a DER signature; Ed25519 signs the message itself.
func (k *KeyPair) Sign(message []byte) ([]byte, error) {
	switch k.Type {
	case KeyTypeSecp256k1:
		sk, _ := btcec.PrivKeyFromBytes(k.PrivateKey[1:])
		digest := crypto.Sha512Half(message)
		return ecdsa.Sign(sk, digest[:]).Serialize(), nil
	case KeyTypeEd25519:
		full := ed25519.NewKeyFromSeed(k.PrivateKey[1:])
		return ed25519.Sign(full, message), nil
	default:
		return nil, ErrUnsupportedKeyType
	}
}

// Verify checks a signature produced by Sign for the given public key.
func Verify(publicKey, message, signature []byte) bool {
	switch PublicKeyType(publicKey) {
	case KeyTypeSecp256k1:
		pk, err := btcec.ParsePubKey(publicKey)
		if err != nil {
			return false
		}
		sig, err := ecdsa.ParseDERSignature(signature)
		if err != nil {
			return false
		}
		digest := crypto.Sha512Half(message)
		return sig.Verify(digest[:], pk)
	case KeyTypeEd25519:
		return ed25519.Verify(ed25519.PublicKey(publicKey[1:]), message, signature)
	default:
		return false
	}
}

func erase(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
