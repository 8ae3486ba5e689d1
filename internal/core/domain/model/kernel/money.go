package kernel

import (
	"fmt"

	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyTolerance is the largest difference at which two amounts are treated as equal
// when reconciling totals computed in different places.
var MoneyTolerance = decimal.RequireFromString("0.01")

// Money is an immutable currency amount. Arithmetic is exact; String renders
// the 2-place form used at the persistence and API boundary.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromString parses a decimal string such as "12.50".
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal: %w", s, err))
	}
	return Money{amount: d}, nil
}

// NewMoneyFromFloat converts a float amount, as received from JSON documents of external systems.
func NewMoneyFromFloat(f float64) Money {
	return Money{amount: decimal.NewFromFloat(f)}
}

// NewMoneyFromDecimal wraps a decimal read from storage.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// MustMoney parses s and panics on failure. Intended for constants and tests.
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Times multiplies the amount by an integer quantity.
func (m Money) Times(qty int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(qty)))}
}

// MulRate multiplies the amount by a rate such as 0.05.
func (m Money) MulRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate)}
}

// Round rounds half away from zero to 2 places.
func (m Money) Round() Money {
	return Money{amount: m.amount.Round(2)}
}

func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// WithinTolerance reports whether |m - other| <= MoneyTolerance.
func (m Money) WithinTolerance(other Money) bool {
	return m.amount.Sub(other.amount).Abs().LessThanOrEqual(MoneyTolerance)
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

// String returns the amount with exactly two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// MarshalText renders the 2-place string form.
func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses the decimal string form.
func (m *Money) UnmarshalText(b []byte) error {
	parsed, err := NewMoneyFromString(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
