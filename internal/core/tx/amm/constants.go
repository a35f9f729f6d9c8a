package amm

import "github.com/LeJamon/goShieldDEX/internal/core/amount"

// Pool constants
const (
	// MaximumFee bounds every rate stored in a pool or platform config.
	MaximumFee = amount.Precision

	// LPMintDecimals is the number of decimals of every share token.
	LPMintDecimals uint8 = 6
)
