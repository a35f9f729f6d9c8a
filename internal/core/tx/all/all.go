// Package all registers every transaction type with the tx registry.
package all

import (
	_ "github.com/LeJamon/goShieldDEX/internal/core/tx/amm"
	_ "github.com/LeJamon/goShieldDEX/internal/core/tx/platform"
	_ "github.com/LeJamon/goShieldDEX/internal/core/tx/referrer"
)
