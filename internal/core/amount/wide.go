package amount

import (
	"errors"

	"github.com/holiman/uint256"
)

// WideBits is the width every intermediate is held to. Values that need more
// bits are reported as an overflow even though the backing integer is wider.
const WideBits = 128

// ErrOverflow is returned when an intermediate leaves the 128-bit range,
// a subtraction underflows, a division has a zero divisor, or a result does
// not narrow back to 64 bits.
var ErrOverflow = errors.New("arithmetic overflow")

// Wide is an unsigned intermediate used by pricing and issuance math.
// All operations are checked; the zero value is 0.
type Wide struct {
	u uint256.Int
}

// NewWide widens a 64-bit amount.
func NewWide(v uint64) *Wide {
	return &Wide{*uint256.NewInt(v)}
}

func checked(z *Wide) (*Wide, error) {
	if z.u.BitLen() > WideBits {
		return nil, ErrOverflow
	}
	return z, nil
}

// Mul returns x*y.
func Mul(x, y *Wide) (*Wide, error) {
	z := &Wide{}
	if _, overflow := z.u.MulOverflow(&x.u, &y.u); overflow {
		return nil, ErrOverflow
	}
	return checked(z)
}

// Add returns x+y.
func Add(x, y *Wide) (*Wide, error) {
	z := &Wide{}
	if _, overflow := z.u.AddOverflow(&x.u, &y.u); overflow {
		return nil, ErrOverflow
	}
	return checked(z)
}

// Sub returns x-y and fails when y > x.
func Sub(x, y *Wide) (*Wide, error) {
	z := &Wide{}
	if _, underflow := z.u.SubOverflow(&x.u, &y.u); underflow {
		return nil, ErrOverflow
	}
	return z, nil
}

// Div returns floor(x/y) and fails when y is zero.
func Div(x, y *Wide) (*Wide, error) {
	if y.u.IsZero() {
		return nil, ErrOverflow
	}
	z := &Wide{}
	z.u.Div(&x.u, &y.u)
	return z, nil
}

// Sqrt returns floor(sqrt(x)).
func Sqrt(x *Wide) *Wide {
	z := &Wide{}
	z.u.Sqrt(&x.u)
	return z
}

// Uint64 narrows the value, failing if it does not fit in 64 bits.
func (w *Wide) Uint64() (uint64, error) {
	if !w.u.IsUint64() {
		return 0, ErrOverflow
	}
	return w.u.Uint64(), nil
}

// IsZero reports whether the value is zero.
func (w *Wide) IsZero() bool { return w.u.IsZero() }

// Cmp compares w and o and returns -1, 0 or +1.
func (w *Wide) Cmp(o *Wide) int { return w.u.Cmp(&o.u) }

func (w *Wide) String() string { return w.u.Dec() }
