package amount

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Precision is the denominator of every fixed-point rate.
const Precision uint64 = 1_000_000_000

// MulDiv returns floor(a*b/d) with a 128-bit intermediate.
func MulDiv(a, b, d uint64) (uint64, error) {
	p, err := Mul(NewWide(a), NewWide(b))
	if err != nil {
		return 0, err
	}
	q, err := Div(p, NewWide(d))
	if err != nil {
		return 0, err
	}
	return q.Uint64()
}

// ApplyRate returns floor(v*rate/Precision).
func ApplyRate(v, rate uint64) (uint64, error) {
	return MulDiv(v, rate, Precision)
}

// SubChecked returns x-y, failing on underflow.
func SubChecked(x, y uint64) (uint64, error) {
	if y > x {
		return 0, ErrOverflow
	}
	return x - y, nil
}

// AddChecked returns x+y, failing on 64-bit overflow.
func AddChecked(x, y uint64) (uint64, error) {
	s := x + y
	if s < x {
		return 0, ErrOverflow
	}
	return s, nil
}

var (
	precisionDec = decimal.NewFromInt(int64(Precision))
	hundred      = decimal.NewFromInt(100)
)

// FormatRate renders a fixed-point rate as a percentage, e.g. 3000000 -> "0.3%".
func FormatRate(rate uint64) string {
	d := decimal.NewFromUint64(rate)
	return d.Div(precisionDec).Mul(hundred).String() + "%"
}

// ParseRate accepts either a raw fixed-point numerator ("3000000") or a
// percentage ("0.3%") and returns the numerator. Fractions finer than the
// precision are truncated.
func ParseRate(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	pct := strings.HasSuffix(s, "%")
	d, err := decimal.NewFromString(strings.TrimSuffix(s, "%"))
	if err != nil {
		return 0, fmt.Errorf("parse rate %q: %w", s, err)
	}
	if d.IsNegative() {
		return 0, fmt.Errorf("parse rate %q: negative", s)
	}
	if pct {
		d = d.Div(hundred).Mul(precisionDec)
	}
	d = d.Truncate(0)
	if !d.BigInt().IsUint64() {
		return 0, fmt.Errorf("parse rate %q: %w", s, ErrOverflow)
	}
	return d.BigInt().Uint64(), nil
}
