package amm

import (
	"github.com/LeJamon/goShieldDEX/internal/core/amount"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
	"github.com/LeJamon/goShieldDEX/internal/core/tx/sle"
	"github.com/LeJamon/goShieldDEX/internal/core/types"
)

func init() {
	tx.Register(tx.TypeSwap, func() tx.Transaction {
		return &Swap{BaseTx: *tx.NewBaseTx(tx.TypeSwap, types.AccountID{})}
	})
}

// Swap sells BidAmount of BidAsset to the pool for at least MinAskAmount
// of AskAsset.
type Swap struct {
	tx.BaseTx

	Pool types.Hash256 `json:"Pool"`

	BidAsset types.TokenID `json:"BidAsset"`
	AskAsset types.TokenID `json:"AskAsset"`

	BidAmount uint64 `json:"BidAmount"`

	// MinAskAmount is the slippage bound
	MinAskAmount uint64 `json:"MinAskAmount"`
}

// NewSwap creates a new Swap transaction
func NewSwap(account types.AccountID, pool types.Hash256, bid, ask types.TokenID, bidAmount, minAsk uint64) *Swap {
	return &Swap{
		BaseTx:       *tx.NewBaseTx(tx.TypeSwap, account),
		Pool:         pool,
		BidAsset:     bid,
		AskAsset:     ask,
		BidAmount:    bidAmount,
		MinAskAmount: minAsk,
	}
}

// TxType returns the transaction type
func (s *Swap) TxType() tx.Type {
	return tx.TypeSwap
}

// PoolID returns the pool traded against.
func (s *Swap) PoolID() types.Hash256 {
	return s.Pool
}

// direction reports whether bid/ask is A to B. It fails with
// TecUNMATCH_POOL when the pair is not the pool's pair in either order.
func direction(p *sle.Pool, bid, ask types.TokenID) (aToB bool, r tx.Result) {
	switch {
	case bid == p.AssetA && ask == p.AssetB:
		return true, tx.TesSUCCESS
	case bid == p.AssetB && ask == p.AssetA:
		return false, tx.TesSUCCESS
	default:
		return false, tx.TecUNMATCH_POOL
	}
}

// price runs the swap preconditions and prices the bid against the pool.
func price(view tx.LedgerView, c *tx.Custody, id types.Hash256, p *sle.Pool, bid, ask types.TokenID, bidAmount uint64) (SwapQuote, bool, tx.Result) {
	if !p.IsActive() {
		return SwapQuote{}, false, tx.TecINVALID_STATE
	}
	if bidAmount == 0 {
		return SwapQuote{}, false, tx.TecINVALID_PARAMS
	}
	aToB, r := direction(p, bid, ask)
	if !r.IsSuccess() {
		return SwapQuote{}, false, r
	}
	taxRate, r := loadTaxRate(view, p.TaxConfig)
	if !r.IsSuccess() {
		return SwapQuote{}, false, r
	}
	escrow, r := escrowOf(id)
	if !r.IsSuccess() {
		return SwapQuote{}, false, r
	}
	reserveA, reserveB, err := effectiveReserves(c, p, escrow)
	if err != nil {
		return SwapQuote{}, false, tx.ResultOf(err)
	}
	bidReserve, askReserve := reserveA, reserveB
	if !aToB {
		bidReserve, askReserve = reserveB, reserveA
	}
	q, err := QuoteSwap(bidReserve, askReserve, bidAmount, p.LPFee, taxRate)
	if err != nil {
		return SwapQuote{}, false, tx.ResultOf(err)
	}
	return q, aToB, tx.TesSUCCESS
}

// Apply performs the swap.
func (s *Swap) Apply(ctx *tx.ApplyContext) tx.Result {
	pool, r := loadPool(ctx.View, s.Pool)
	if !r.IsSuccess() {
		return r
	}
	q, aToB, r := price(ctx.View, ctx.Custody, s.Pool, pool, s.BidAsset, s.AskAsset, s.BidAmount)
	if !r.IsSuccess() {
		return r
	}
	if q.AskAmount < s.MinAskAmount {
		return tx.TecLARGE_SLIPPAGE
	}

	escrow, r := escrowOf(s.Pool)
	if !r.IsSuccess() {
		return r
	}
	trader := ctx.AccountID
	deposit, err := amount.SubChecked(s.BidAmount, q.Tax)
	if err != nil {
		return tx.ResultOf(err)
	}
	if err := ctx.Custody.Transfer(s.BidAsset, trader, escrow, deposit, trader); err != nil {
		return tx.ResultOf(err)
	}
	if err := ctx.Custody.Transfer(s.AskAsset, escrow, trader, q.AskAmount, escrow); err != nil {
		return tx.ResultOf(err)
	}
	if err := ctx.Custody.Transfer(s.BidAsset, trader, ctx.Config.FeeReceiver, q.Tax, trader); err != nil {
		return tx.ResultOf(err)
	}

	if aToB {
		pool.AccruedFeeA, err = amount.AddChecked(pool.AccruedFeeA, q.Fee)
	} else {
		pool.AccruedFeeB, err = amount.AddChecked(pool.AccruedFeeB, q.Fee)
	}
	if err != nil {
		return tx.ResultOf(err)
	}
	pool.UpdatedAt = ctx.Now
	if r := savePool(ctx.View, s.Pool, pool); !r.IsSuccess() {
		return r
	}

	ctx.Emit(SwapEvent{
		Authority: trader,
		Pool:      s.Pool,
		BidAsset:  s.BidAsset,
		AskAsset:  s.AskAsset,
		BidAmount: s.BidAmount,
		AskAmount: q.AskAmount,
	})
	ctx.Metadata.SetReturn(q.AskAmount)
	return tx.TesSUCCESS
}

// Quote prices a swap against the current state of a pool without moving
// any funds. The preconditions are those of Swap, minus the slippage bound.
func Quote(view tx.LedgerView, id types.Hash256, bid, ask types.TokenID, bidAmount uint64) (SwapQuote, tx.Result) {
	pool, r := loadPool(view, id)
	if !r.IsSuccess() {
		return SwapQuote{}, r
	}
	q, _, r := price(view, tx.NewCustody(view, nil), id, pool, bid, ask, bidAmount)
	return q, r
}
