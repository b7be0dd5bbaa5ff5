package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a non-negative currency value with a fixed scale of 2.
// Amounts are rounded half-up to 2 decimals when a Money is constructed;
// intermediate arithmetic runs at full precision so rounding drift cannot
// accumulate across an expression. Money is immutable and compares by value.
type Money struct {
	amount decimal.Decimal
}

// NewMoney builds a Money from a decimal, rejecting negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s is negative", ErrInvalidAmount, amount)
	}
	return Money{amount: amount.Round(2)}, nil
}

// NewMoneyFromString parses a decimal string into a Money.
func NewMoneyFromString(value string) (Money, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q is not a decimal", ErrInvalidAmount, value)
	}
	return NewMoney(amount)
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount).Round(2)}
}

// Subtract returns the difference, failing if the result would be negative.
func (m Money) Subtract(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrNegativeResult, m.amount, other.amount)
	}
	return Money{amount: result.Round(2)}, nil
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Amount exposes the underlying decimal, already rounded to 2 places.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}
