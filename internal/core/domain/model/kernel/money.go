package kernel

import (
	"fmt"
	"math"

	"workify/internal/pkg/errs"
)

// MaxMoneyCents mirrors a NUMERIC(10,2) column: eight integer digits and two decimals.
const MaxMoneyCents int64 = 99_999_999_99

// Money is a non-negative amount with two decimal places held as integer cents.
type Money struct {
	cents int64
}

// NewMoney builds Money from cents.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 || cents > MaxMoneyCents {
		return Money{}, errs.NewValueIsOutOfRangeError("money", cents, 0, MaxMoneyCents)
	}
	return Money{cents: cents}, nil
}

// MoneyFromFloat converts a decimal amount (e.g. 1000.50) to Money, rounding
// to the nearest cent.
func MoneyFromFloat(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%v is not a finite number", amount))
	}
	return NewMoney(int64(math.Round(amount * 100)))
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Float returns the amount as a decimal number.
func (m Money) Float() float64 {
	return float64(m.cents) / 100
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// String formats the amount with two decimals.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
