package entry

import (
	"fmt"
)

// Type represents a ledger entry type. It is the first field of every
// serialized record header.
type Type uint16

// All known ledger entry types
const (
	TypeAccountRoot    Type = 0x0061 // Account sequence
	TypePool           Type = 0x0050 // Liquidity pools
	TypePlatformConfig Type = 0x0063 // Protocol tax configuration
	TypeReferrer       Type = 0x0072 // Referral relationships
	TypeTokenBalance   Type = 0x0062 // Custody balances
	TypeTokenIssuance  Type = 0x0069 // Token supply and mint authority
)

// String returns the string representation of the Type
func (t Type) String() string {
	switch t {
	case TypeAccountRoot:
		return "AccountRoot"
	case TypePool:
		return "Pool"
	case TypePlatformConfig:
		return "PlatformConfig"
	case TypeReferrer:
		return "Referrer"
	case TypeTokenBalance:
		return "TokenBalance"
	case TypeTokenIssuance:
		return "TokenIssuance"
	default:
		return fmt.Sprintf("Unknown(%#x)", uint16(t))
	}
}

// Entry defines the interface for all ledger entries
type Entry interface {
	Type() Type
	Validate() error
}
