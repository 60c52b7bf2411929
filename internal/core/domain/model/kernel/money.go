package kernel

import (
	"fmt"

	"foodcourt/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a non-negative monetary amount.
// It wraps an arbitrary-precision decimal to avoid the rounding drift of binary
// floating point, which matters for cart totals, tax, and frozen order prices.
//
// The zero value of Money is a valid zero amount. All derived amounts intended
// for persistence or display should be normalized with Round2.
//
// Money is immutable; arithmetic methods return new values.
//
// Example usage:
//
//	price, _ := kernel.NewMoneyFromString("300.00")
//	subtotal := price.MultiplyBy(2)
//	fmt.Println(subtotal.String()) // "600.00"
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money representing a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney creates a Money from a decimal amount.
// Returns an error if the amount is negative.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// NewMoneyFromString parses a Money from its decimal string representation,
// e.g. "300" or "49.99". Returns an error for malformed or negative input.
// This function is typically used when reconstructing amounts from persistence
// or when parsing request payloads.
func NewMoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MultiplyBy returns the amount multiplied by a non-negative quantity.
// Negative quantities are treated as zero so that Money never goes negative.
func (m Money) MultiplyBy(quantity int) Money {
	if quantity < 0 {
		quantity = 0
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// ApplyRate returns the amount multiplied by a fractional rate and rounded to
// two decimal places, e.g. money.ApplyRate(taxRate) for a 5% tax line with
// taxRate = 0.05. Exact midpoints round half to even, so a derived tax ties
// out against ledgers that quantize the same way.
func (m Money) ApplyRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate).RoundBank(2)}
}

// Round2 returns the amount rounded to two decimal places, half to even.
func (m Money) Round2() Money {
	return Money{amount: m.amount.RoundBank(2)}
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsLessThan reports whether the amount is strictly below other.
func (m Money) IsLessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// IsEqual compares two amounts for numeric equality, ignoring exponent
// representation ("5" equals "5.00").
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount with exactly two decimal places, e.g. "940.00".
// This method implements the fmt.Stringer interface.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate checks that the amount did not go negative, e.g. after being
// restored from an external source.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			"amount",
			fmt.Errorf("%s is negative", m.amount.String()),
		)
	}
	return nil
}
