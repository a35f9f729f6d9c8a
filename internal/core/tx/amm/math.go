package amm

import (
	"github.com/LeJamon/goShieldDEX/internal/core/amount"
	"github.com/LeJamon/goShieldDEX/internal/core/tx"
)

// InitialIssue returns the shares issued for a deposit of a and b:
// floor(sqrt(a*b)), with the product held in 128 bits.
func InitialIssue(a, b uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, tx.TecINVALID_PARAMS
	}
	p, err := amount.Mul(amount.NewWide(a), amount.NewWide(b))
	if err != nil {
		return 0, err
	}
	return amount.Sqrt(p).Uint64()
}

// ProportionalIssue returns the shares issued for a deposit into a pool
// that already has supply: the smaller of a*supply/reserveA and
// b*supply/reserveB. An empty pool falls back to InitialIssue.
func ProportionalIssue(a, b, reserveA, reserveB, supply uint64) (uint64, error) {
	if a == 0 || b == 0 {
		return 0, tx.TecINVALID_PARAMS
	}
	if supply == 0 || reserveA == 0 || reserveB == 0 {
		return InitialIssue(a, b)
	}
	byA, err := amount.MulDiv(a, supply, reserveA)
	if err != nil {
		return 0, err
	}
	byB, err := amount.MulDiv(b, supply, reserveB)
	if err != nil {
		return 0, err
	}
	return min(byA, byB), nil
}

// Redeem returns the assets paid out for burning shares out of supply.
func Redeem(shares, reserveA, reserveB, supply uint64) (a, b uint64, err error) {
	if shares == 0 {
		return 0, 0, tx.TecINVALID_PARAMS
	}
	if a, err = amount.MulDiv(shares, reserveA, supply); err != nil {
		return 0, 0, err
	}
	if b, err = amount.MulDiv(shares, reserveB, supply); err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

// SwapQuote is the priced outcome of a swap.
type SwapQuote struct {
	Fee       uint64 `json:"fee"`
	Tax       uint64 `json:"tax"`
	NetBid    uint64 `json:"net_bid"`
	AskAmount uint64 `json:"ask_amount"`
}

// QuoteSwap prices a bid against effective reserves on the constant
// product curve. The fee and tax are withheld from the bid before pricing.
// Every division floors, so rounding favors the pool.
func QuoteSwap(bidReserve, askReserve, bid, lpFee, taxRate uint64) (SwapQuote, error) {
	var q SwapQuote
	var err error
	if q.Fee, err = amount.ApplyRate(bid, lpFee); err != nil {
		return q, err
	}
	if q.Tax, err = amount.ApplyRate(bid, taxRate); err != nil {
		return q, err
	}
	if q.NetBid, err = amount.SubChecked(bid, q.Fee); err != nil {
		return q, err
	}
	if q.NetBid, err = amount.SubChecked(q.NetBid, q.Tax); err != nil {
		return q, err
	}

	k, err := amount.Mul(amount.NewWide(bidReserve), amount.NewWide(askReserve))
	if err != nil {
		return q, err
	}
	nextBid, err := amount.Add(amount.NewWide(bidReserve), amount.NewWide(q.NetBid))
	if err != nil {
		return q, err
	}
	nextAsk, err := amount.Div(k, nextBid)
	if err != nil {
		return q, err
	}
	ask, err := amount.Sub(amount.NewWide(askReserve), nextAsk)
	if err != nil {
		return q, err
	}
	q.AskAmount, err = ask.Uint64()
	return q, err
}
