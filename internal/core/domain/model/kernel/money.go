package kernel

import (
	"errors"
	"fmt"
	"math"
)

// ErrMoneyOverflow is returned when an amount no longer fits in Money.
var ErrMoneyOverflow = errors.New("amount overflows")

// Money is an amount in integer currency units. Menu prices, captured unit prices,
// fees and totals are all Money; fractional units never appear.
type Money int64

// Times multiplies the amount by a non-negative quantity.
func (m Money) Times(qty int) (Money, error) {
	if qty < 0 {
		return 0, fmt.Errorf("%w: negative quantity %d", ErrMoneyOverflow, qty)
	}
	if qty == 0 || m == 0 {
		return 0, nil
	}
	product := m * Money(qty)
	if product/Money(qty) != m {
		return 0, fmt.Errorf("%w: %d × %d", ErrMoneyOverflow, m, qty)
	}
	return product, nil
}

// Plus adds two amounts.
func (m Money) Plus(other Money) (Money, error) {
	sum := m + other
	if (other > 0 && sum < m) || (other < 0 && sum > m) {
		return 0, fmt.Errorf("%w: %d + %d", ErrMoneyOverflow, m, other)
	}
	return sum, nil
}

// ApplyRate returns m × rate rounded half to even, the rounding the shop has always
// used for tax.
func (m Money) ApplyRate(rate float64) (Money, error) {
	scaled := math.RoundToEven(float64(m) * rate)
	if scaled >= math.MaxInt64 || scaled < math.MinInt64 || math.IsNaN(scaled) {
		return 0, fmt.Errorf("%w: %d × %g", ErrMoneyOverflow, m, rate)
	}
	return Money(scaled), nil
}

func (m Money) String() string {
	return fmt.Sprintf("%d", int64(m))
}
