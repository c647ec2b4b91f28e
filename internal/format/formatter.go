// Package format renders monetary amounts as fixed two-decimal strings
// and batches of them as text, CSV or JSON reports.
package format

import (
	"fmt"
	"math"
	"regexp"

	"github.com/shopspring/decimal"
)

// Places is the number of fractional digits in every formatted amount.
const Places int32 = 2

// literalPattern accepts an optional sign, digits and an optional fraction.
// Exponents, grouping separators and currency symbols are rejected.
var literalPattern = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// MoneyFormatter converts amounts to strings matching -?\d+\.\d{2}.
// It is immutable after construction and safe for concurrent use.
type MoneyFormatter struct {
	rounding RoundingMode
	log      Logger
}

// Option configures a MoneyFormatter.
type Option func(*MoneyFormatter)

// WithRounding sets the rounding mode. Unknown modes are ignored.
func WithRounding(mode RoundingMode) Option {
	return func(f *MoneyFormatter) {
		if mode.Valid() {
			f.rounding = mode
		}
	}
}

// WithLogger sets the logger used for rounding diagnostics.
func WithLogger(l Logger) Option {
	return func(f *MoneyFormatter) {
		if l != nil {
			f.log = l
		}
	}
}

// NewMoneyFormatter creates a formatter using DefaultRounding unless overridden.
func NewMoneyFormatter(opts ...Option) *MoneyFormatter {
	f := &MoneyFormatter{rounding: DefaultRounding, log: NopLogger{}}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Rounding returns the formatter's rounding mode.
func (f *MoneyFormatter) Rounding() RoundingMode { return f.rounding }

// Round applies the formatter's rounding at Places digits.
func (f *MoneyFormatter) Round(d decimal.Decimal) decimal.Decimal {
	rounded := f.rounding.Apply(d, Places)
	if d.Exponent() < -Places {
		f.log.Debugf("rounded %s to %s (%s)", d.String(), rounded.StringFixed(Places), f.rounding)
	}
	return rounded
}

// String formats d with exactly two fractional digits.
// The sign is decided after rounding, so "-0.00" is never produced.
func (f *MoneyFormatter) String(d decimal.Decimal) string {
	return f.Round(d).StringFixed(Places)
}

// FormatFloat formats a float64. NaN and infinities are rejected.
func (f *MoneyFormatter) FormatFloat(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, v)
	}
	return f.String(decimal.NewFromFloat(v)), nil
}

// FormatString formats a plain decimal literal such as "-1.23456789".
func (f *MoneyFormatter) FormatString(s string) (string, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return "", err
	}
	return f.String(d), nil
}

// FormatAll formats each input in order, stopping at the first invalid one.
func (f *MoneyFormatter) FormatAll(inputs []string) ([]Entry, error) {
	entries := make([]Entry, 0, len(inputs))
	for i, in := range inputs {
		out, err := f.FormatString(in)
		if err != nil {
			f.log.Errorf("input %d rejected: %v", i+1, err)
			return nil, fmt.Errorf("input %d: %w", i+1, err)
		}
		entries = append(entries, Entry{Input: in, Formatted: out})
	}
	return entries, nil
}

// ParseAmount parses a plain decimal literal.
func ParseAmount(s string) (decimal.Decimal, error) {
	if !literalPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q: %v", ErrInvalidInput, s, err)
	}
	return d, nil
}

var defaultFormatter = NewMoneyFormatter()

// String formats d using the default rounding mode.
func String(d decimal.Decimal) string { return defaultFormatter.String(d) }
