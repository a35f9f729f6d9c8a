package keylet

import (
	"encoding/binary"

	"github.com/LeJamon/goShieldDEX/internal/core/ledger/entry"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
	crypto "github.com/LeJamon/goShieldDEX/internal/crypto/common"
)

// Space identifiers for keylet generation
const (
	spaceAccount        uint16 = 'a' // Account root
	spacePool           uint16 = 'P' // Pool
	spacePlatformConfig uint16 = 'c' // Platform config
	spaceReferrer       uint16 = 'r' // Referrer
	spaceTokenBalance   uint16 = 'b' // Custody balance
	spaceTokenIssuance  uint16 = 'i' // Token issuance
)

// Keylet represents an addressable location in the ledger state.
// It combines a type identifier with a 256-bit key.
type Keylet struct {
	Type entry.Type
	Key  [32]byte
}

// ID returns the key as a ledger hash.
func (k Keylet) ID() types.Hash256 { return types.Hash256(k.Key) }

// indexHash computes a keylet key by hashing the space and provided data.
func indexHash(space uint16, data ...[]byte) [32]byte {
	spaceBytes := make([]byte, 2)
	binary.BigEndian.PutUint16(spaceBytes, space)

	inputs := make([][]byte, 0, len(data)+1)
	inputs = append(inputs, spaceBytes)
	inputs = append(inputs, data...)

	return crypto.Sha512Half(inputs...)
}

func uint32Bytes(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

// Account returns the keylet of the account root of id.
func Account(id types.AccountID) Keylet {
	return Keylet{
		Type: entry.TypeAccountRoot,
		Key:  indexHash(spaceAccount, id[:]),
	}
}

// Pool returns the keylet of a pool created by creator for the asset pair.
// The nonce lets one creator open several pools over the same pair.
func Pool(creator types.AccountID, assetA, assetB types.TokenID, nonce uint32) Keylet {
	return Keylet{
		Type: entry.TypePool,
		Key:  indexHash(spacePool, creator[:], assetA[:], assetB[:], uint32Bytes(nonce)),
	}
}

// PoolByID returns the keylet of an already known pool id.
func PoolByID(id types.Hash256) Keylet {
	return Keylet{Type: entry.TypePool, Key: id}
}

// PlatformConfig returns the keylet of the platform config with the given index.
func PlatformConfig(index uint32) Keylet {
	return Keylet{
		Type: entry.TypePlatformConfig,
		Key:  indexHash(spacePlatformConfig, uint32Bytes(index)),
	}
}

// PlatformConfigByID returns the keylet of an already known config id.
func PlatformConfigByID(id types.Hash256) Keylet {
	return Keylet{Type: entry.TypePlatformConfig, Key: id}
}

// Referrer returns the keylet of the referral record owned by referee.
func Referrer(referee types.AccountID) Keylet {
	return Keylet{
		Type: entry.TypeReferrer,
		Key:  indexHash(spaceReferrer, []byte("referrer"), referee[:]),
	}
}

// TokenBalance returns the keylet of the custody balance of owner in token.
func TokenBalance(token types.TokenID, owner types.AccountID) Keylet {
	return Keylet{
		Type: entry.TypeTokenBalance,
		Key:  indexHash(spaceTokenBalance, token[:], owner[:]),
	}
}

// TokenIssuance returns the keylet of the issuance record of token.
func TokenIssuance(token types.TokenID) Keylet {
	return Keylet{
		Type: entry.TypeTokenIssuance,
		Key:  indexHash(spaceTokenIssuance, token[:]),
	}
}
