package decimal

import (
	"github.com/rpgo/moneyfmt/internal/format"
	"github.com/shopspring/decimal"
)

// Money is a monetary amount held at full decimal precision.
// Rounding happens only when it is displayed or explicitly rounded.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a Money from a float64 using its shortest decimal form.
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal wraps an existing decimal.Decimal.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString parses a plain decimal literal such as "-1.23".
func NewMoneyFromString(value string) (Money, error) {
	d, err := format.ParseAmount(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Sum adds up amounts without intermediate rounding.
func Sum(amounts ...Money) Money {
	total := Zero()
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// Round rounds to cents with the given mode.
func (m Money) Round(mode format.RoundingMode) Money {
	return Money{mode.Apply(m.Decimal, format.Places)}
}

func (m Money) Add(other Money) Money { return Money{m.Decimal.Add(other.Decimal)} }
func (m Money) Sub(other Money) Money { return Money{m.Decimal.Sub(other.Decimal)} }
func (m Money) Neg() Money            { return Money{m.Decimal.Neg()} }
func (m Money) Abs() Money            { return Money{m.Decimal.Abs()} }

// Equal checks if this amount equals another
func (m Money) Equal(other Money) bool {
	return m.Decimal.Equal(other.Decimal)
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// GreaterThan checks if this amount is greater than another
func (m Money) GreaterThan(other Money) bool {
	return m.Decimal.GreaterThan(other.Decimal)
}

// String renders the amount with two fractional digits using the default rounding mode.
func (m Money) String() string {
	return format.String(m.Decimal)
}

// Format renders the amount with an explicit formatter.
func (m Money) Format(f *format.MoneyFormatter) string {
	return f.String(m.Decimal)
}
