package tx

import "fmt"

// Type represents a transaction type code
type Type uint16

// All transaction type codes
const (
	TypeInvalid Type = 0xFFFF

	// Pool operations
	TypeInitialize        Type = 1
	TypeAddLiquidity      Type = 2
	TypeRemoveLiquidity   Type = 3
	TypeSwap              Type = 4
	TypeDistributeLPFee   Type = 5
	TypePause             Type = 6
	TypeResume            Type = 7
	TypeUpdateFee         Type = 8
	TypeUpdateReferralFee Type = 9
	TypeTransferOwnership Type = 10

	// Protocol administration
	TypeCreatePlatformConfig Type = 20
	TypeUpdatePlatformConfig Type = 21
	TypeUpdateTax            Type = 22

	// Referrals
	TypeCreateReferrer Type = 30
)

var typeNames = map[Type]string{
	TypeInitialize:           "Initialize",
	TypeAddLiquidity:         "AddLiquidity",
	TypeRemoveLiquidity:      "RemoveLiquidity",
	TypeSwap:                 "Swap",
	TypeDistributeLPFee:      "DistributeLPFee",
	TypePause:                "Pause",
	TypeResume:               "Resume",
	TypeUpdateFee:            "UpdateFee",
	TypeUpdateReferralFee:    "UpdateReferralFee",
	TypeTransferOwnership:    "TransferOwnership",
	TypeCreatePlatformConfig: "CreatePlatformConfig",
	TypeUpdatePlatformConfig: "UpdatePlatformConfig",
	TypeUpdateTax:            "UpdateTax",
	TypeCreateReferrer:       "CreateReferrer",
}

var typesByName = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, n := range typeNames {
		m[n] = t
	}
	return m
}()

// String returns the string representation of a transaction type
func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("Unknown(%d)", uint16(t))
}

// TypeFromName returns the transaction type for a given name
func TypeFromName(name string) (Type, bool) {
	t, ok := typesByName[name]
	return t, ok
}
