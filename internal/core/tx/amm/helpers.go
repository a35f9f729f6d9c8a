package amm

import (
	"github.com/LeJamon/goShieldDEX/internal/core/amount"
	"github.com/LeJamon/goShieldDEX/internal/core/ledger/keylet"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

// loadPool reads and parses a pool record.
func loadPool(view tx.LedgerView, id types.Hash256) (*sle.Pool, tx.Result) {
	data, err := view.Read(keylet.PoolByID(id))
	if err != nil {
		return nil, tx.TefINTERNAL
	}
	if data == nil {
		return nil, tx.TecNO_ENTRY
	}
	p, err := sle.ParsePool(data)
	if err != nil {
		return nil, tx.TefINTERNAL
	}
	return p, tx.TesSUCCESS
}

func savePool(view tx.LedgerView, id types.Hash256, p *sle.Pool) tx.Result {
	if err := view.Update(keylet.PoolByID(id), sle.SerializePool(p)); err != nil {
		return tx.TefINTERNAL
	}
	return tx.TesSUCCESS
}

// loadTaxRate reads the tax rate of the platform config a pool references.
func loadTaxRate(view tx.LedgerView, ref types.Hash256) (uint64, tx.Result) {
	data, err := view.Read(keylet.PlatformConfigByID(ref))
	if err != nil {
		return 0, tx.TefINTERNAL
	}
	if data == nil {
		return 0, tx.TecNO_ENTRY
	}
	cfg, err := sle.ParsePlatformConfig(data)
	if err != nil {
		return 0, tx.TefINTERNAL
	}
	return cfg.Tax, tx.TesSUCCESS
}

func escrowOf(id types.Hash256) (types.AccountID, tx.Result) {
	escrow, err := keylet.EscrowAuthority(id)
	if err != nil {
		return types.AccountID{}, tx.TecINTERNAL
	}
	return escrow, tx.TesSUCCESS
}

// effectiveReserves returns the escrow balances net of accrued fees.
func effectiveReserves(c *tx.Custody, p *sle.Pool, escrow types.AccountID) (a, b uint64, err error) {
	balA, err := c.Balance(p.AssetA, escrow)
	if err != nil {
		return 0, 0, err
	}
	balB, err := c.Balance(p.AssetB, escrow)
	if err != nil {
		return 0, 0, err
	}
	if a, err = amount.SubChecked(balA, p.AccruedFeeA); err != nil {
		return 0, 0, err
	}
	if b, err = amount.SubChecked(balB, p.AccruedFeeB); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// matchAssets checks a transaction's asset pair against the pool's.
func matchAssets(p *sle.Pool, assetA, assetB types.TokenID) tx.Result {
	if p.AssetA != assetA || p.AssetB != assetB {
		return tx.TecUNMATCH_POOL
	}
	return tx.TesSUCCESS
}

// acceptsLiquidity reports whether deposits and withdrawals are allowed.
// Paused pools still accept them; only swaps stop.
func acceptsLiquidity(p *sle.Pool) bool {
	return p.State == sle.PoolInitialized || p.State == sle.PoolPaused
}
