package tx

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"

	"github.com/LeJamon/goShieldDEX/internal/core/types"
	"github.com/LeJamon/goShieldDEX/internal/crypto"
	hashing "github.com/LeJamon/goShieldDEX/internal/crypto/common"
)

// Hash prefixes separate signing payloads from transaction ids.
var (
	prefixSigning     = []byte("STX\x00")
	prefixTransaction = []byte("TXN\x00")
)

var (
	// ErrMissingSignature is returned when a transaction carries no signature.
	ErrMissingSignature = errors.New("transaction is not signed")
	// ErrSignerMismatch is returned when the signing key does not control Account.
	ErrSignerMismatch = errors.New("signing key does not match account")
	// ErrBadSignature is returned when the signature does not verify.
	ErrBadSignature = errors.New("signature verification failed")
)

// SigningData returns the bytes covered by a transaction signature: the
// JSON encoding of the transaction with its signature field cleared.
func SigningData(t Transaction) ([]byte, error) {
	c := t.GetCommon()
	sig := c.TxnSignature
	c.TxnSignature = ""
	defer func() { c.TxnSignature = sig }()

	body, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return append(append([]byte{}, prefixSigning...), body...), nil
}

// ComputeHash returns the transaction id, which covers the signature.
func ComputeHash(t Transaction) (types.Hash256, error) {
	body, err := json.Marshal(t)
	if err != nil {
		return types.Hash256{}, err
	}
	return types.Hash256(hashing.Sha512Half(prefixTransaction, body)), nil
}

// Sign fills in SigningPubKey and TxnSignature using key. The Account field
// is set to the account the key controls.
func Sign(t Transaction, key *crypto.KeyPair) error {
	c := t.GetCommon()
	c.Account = key.AccountID()
	c.SigningPubKey = key.PublicKeyHex()

	data, err := SigningData(t)
	if err != nil {
		return err
	}
	sig, err := key.Sign(data)
	if err != nil {
		return err
	}
	c.TxnSignature = strings.ToUpper(hex.EncodeToString(sig))
	return nil
}

// VerifySignature checks that the transaction is signed by a key that
// controls its Account.
func VerifySignature(t Transaction) error {
	c := t.GetCommon()
	if c.SigningPubKey == "" || c.TxnSignature == "" {
		return ErrMissingSignature
	}
	pub, err := hex.DecodeString(c.SigningPubKey)
	if err != nil {
		return crypto.ErrInvalidPublicKey
	}
	if crypto.CalcAccountID(pub) != c.Account {
		return ErrSignerMismatch
	}
	sig, err := hex.DecodeString(c.TxnSignature)
	if err != nil {
		return ErrBadSignature
	}
	data, err := SigningData(t)
	if err != nil {
		return err
	}
	if !crypto.Verify(pub, data, sig) {
		return ErrBadSignature
	}
	return nil
}
