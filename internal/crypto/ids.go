package crypto

import (
	"crypto/sha256"

	"github.com/LeJamon/goShieldDEX/internal/core/types"
	"github.com/decred/dcrd/crypto/ripemd160"
)

// CalcAccountID computes the account ID from a public key as
// RIPEMD160(SHA256(publicKey)). The whole key, prefix included, is hashed
// for both key types.
func CalcAccountID(publicKey []byte) types.AccountID {
	sha256Hash := sha256.Sum256(publicKey)

	h := ripemd160.New()
	h.Write(sha256Hash[:])

	var result types.AccountID
	copy(result[:], h.Sum(nil))
	return result
}
