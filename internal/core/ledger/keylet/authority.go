package keylet

import (
	"errors"

	"github.com/LeJamon/goShieldDEX/internal/core/types"
	crypto "github.com/LeJamon/goShieldDEX/internal/crypto/common"
)

// Domain tags understood by DeriveAuthority.
const (
	TagEscrow  = "escrow"
	TagLPMint  = "lp_mint"
	MaxNonce   = 255
	derivePref = "derived"
)

// ErrNoViableNonce is returned when no nonce yields an acceptable candidate.
var ErrNoViableNonce = errors.New("no viable derivation nonce")

func candidate(pool types.Hash256, tag string, nonce uint8) ([32]byte, bool) {
	h := crypto.Sha512Half([]byte(derivePref), []byte(tag), pool[:], []byte{nonce})
	// A candidate is rejected when the top bit of its last byte is set.
	return h, h[31]&0x80 == 0
}

// DeriveAuthority returns the identity derived from a pool id under a domain
// tag, together with the nonce that produced it. Nonces are tried from 255
// downwards and the first accepted candidate wins.
func DeriveAuthority(pool types.Hash256, tag string) (types.AccountID, uint8, error) {
	for n := MaxNonce; n >= 0; n-- {
		h, ok := candidate(pool, tag, uint8(n))
		if !ok {
			continue
		}
		var id types.AccountID
		copy(id[:], h[:types.AccountIDSize])
		return id, uint8(n), nil
	}
	return types.AccountID{}, 0, ErrNoViableNonce
}

// VerifyAuthority reports whether id and nonce are the canonical derivation
// of pool under tag.
func VerifyAuthority(pool types.Hash256, tag string, id types.AccountID, nonce uint8) bool {
	want, n, err := DeriveAuthority(pool, tag)
	if err != nil {
		return false
	}
	return want == id && n == nonce
}

// EscrowAuthority is the custody authority that signs movements out of a
// pool's treasury.
func EscrowAuthority(pool types.Hash256) (types.AccountID, error) {
	id, _, err := DeriveAuthority(pool, TagEscrow)
	return id, err
}

// ShareToken is the token id of a pool's share token.
func ShareToken(pool types.Hash256) (types.TokenID, error) {
	id, _, err := DeriveAuthority(pool, TagLPMint)
	return types.TokenID(id), err
}
