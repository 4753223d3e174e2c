// Package decimal implements exact fixed-point arithmetic for the money
// and quantity fields the row generators compute. Every pricing path in
// this engine uses Decimal; float64 never appears on a pricing call
// chain, so rounding never drifts between two generator runs of the same
// row.
package decimal

import (
	"fmt"
	"strconv"

	"tpcdsgen/internal/tpcdserr"
)

// Decimal is a scaled integer: the represented value is
// Number / 10^Precision.
type Decimal struct {
	Number    int64
	Precision uint8
}

// New builds a Decimal directly from its scaled integer representation.
func New(number int64, precision uint8) Decimal {
	return Decimal{Number: number, Precision: precision}
}

// FromCents builds a 2-decimal-place Decimal from an integer cents value,
// the common case for TPC-DS money fields.
func FromCents(cents int64) Decimal { return New(cents, 2) }

func (d Decimal) rescale(precision uint8) Decimal {
	if precision == d.Precision {
		return d
	}
	n := d.Number
	for p := d.Precision; p < precision; p++ {
		n *= 10
	}
	for p := d.Precision; p > precision; p-- {
		n /= 10
	}
	return New(n, precision)
}

// Add returns d+other, rescaled to the larger of the two precisions.
func (d Decimal) Add(other Decimal) Decimal {
	p := d.Precision
	if other.Precision > p {
		p = other.Precision
	}
	a, b := d.rescale(p), other.rescale(p)
	return New(a.Number+b.Number, p)
}

// Sub returns d-other, rescaled to the larger of the two precisions.
func (d Decimal) Sub(other Decimal) Decimal {
	p := d.Precision
	if other.Precision > p {
		p = other.Precision
	}
	a, b := d.rescale(p), other.rescale(p)
	return New(a.Number-b.Number, p)
}

// MulInt returns d*n, an exact integer scaling.
func (d Decimal) MulInt(n int64) Decimal {
	return New(d.Number*n, d.Precision)
}

// MulDecimal multiplies two decimals, combining precisions and rounding
// to the nearest unit at the result's declared precision.
func (d Decimal) MulDecimal(other Decimal, resultPrecision uint8) Decimal {
	product := d.Number * other.Number
	combinedPrecision := int(d.Precision) + int(other.Precision)
	shift := combinedPrecision - int(resultPrecision)
	n := product
	for i := 0; i < shift; i++ {
		n = roundDiv10(n)
	}
	for i := 0; i > shift; i-- {
		n *= 10
	}
	return New(n, resultPrecision)
}

// DivInt divides d by a positive integer n, rounding half away from zero.
func (d Decimal) DivInt(n int64) (Decimal, error) {
	if n == 0 {
		return Decimal{}, tpcdserr.Overflow("decimal division by zero", nil)
	}
	q := d.Number / n
	r := d.Number % n
	if r*2 >= n || r*2 <= -n {
		if d.Number >= 0 {
			q++
		} else {
			q--
		}
	}
	return New(q, d.Precision), nil
}

func roundDiv10(n int64) int64 {
	q := n / 10
	r := n % 10
	if r >= 5 || r <= -5 {
		if n >= 0 {
			q++
		} else {
			q--
		}
	}
	return q
}

// Cmp returns -1, 0, or 1 comparing d and other after rescaling to a
// common precision.
func (d Decimal) Cmp(other Decimal) int {
	p := d.Precision
	if other.Precision > p {
		p = other.Precision
	}
	a, b := d.rescale(p), other.rescale(p)
	switch {
	case a.Number < b.Number:
		return -1
	case a.Number > b.Number:
		return 1
	default:
		return 0
	}
}

// String renders the decimal in fixed-point notation, e.g. "12.34".
func (d Decimal) String() string {
	if d.Precision == 0 {
		return strconv.FormatInt(d.Number, 10)
	}
	neg := d.Number < 0
	n := d.Number
	if neg {
		n = -n
	}
	div := int64(1)
	for i := uint8(0); i < d.Precision; i++ {
		div *= 10
	}
	whole := n / div
	frac := n % div
	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s%d.%0*d", sign, whole, d.Precision, frac)
}
