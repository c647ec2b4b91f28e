package decimal

import (
	"testing"

	"github.com/rpgo/moneyfmt/internal/format"
	stddec "github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	assert.Equal(t, "12.34", m.String(), "floor for display")

	d := stddec.NewFromFloat(10.125)
	m2 := NewMoneyFromDecimal(d)
	assert.True(t, m2.Decimal.Equal(d))

	m3, err := NewMoneyFromString("-123.45")
	require.NoError(t, err)
	assert.Equal(t, "-123.45", m3.String())

	_, err = NewMoneyFromString("not-a-number")
	assert.ErrorIs(t, err, format.ErrInvalidInput)
	_, err = NewMoneyFromString("1e2")
	assert.ErrorIs(t, err, format.ErrInvalidInput)
}

func TestRounding(t *testing.T) {
	cases := []struct {
		in   string
		mode format.RoundingMode
		out  string
	}{
		{"2.344", format.RoundFloor, "2.34"},
		{"-2.344", format.RoundFloor, "-2.35"},
		{"2.345", format.RoundHalfAwayFromZero, "2.35"},
		{"2.345", format.RoundHalfEven, "2.34"},
		{"2.355", format.RoundHalfEven, "2.36"},
		{"-2.349", format.RoundTruncate, "-2.34"},
		{"2.341", format.RoundCeil, "2.35"},
	}
	for _, c := range cases {
		m, err := NewMoneyFromString(c.in)
		require.NoError(t, err)
		got := m.Round(c.mode)
		assert.Equal(t, c.out, got.Decimal.StringFixed(2), "%s(%s)", c.mode, c.in)
	}
}

func TestArithmeticKeepsPrecision(t *testing.T) {
	a := NewMoney(0.004)
	total := Sum(a, a, a)
	assert.Equal(t, "0.01", total.String(), "0.012 floors to 0.01")
	assert.Equal(t, "0.00", a.String())

	assert.Equal(t, "5.05", NewMoney(10.10).Sub(NewMoney(5.05)).String())
	assert.Equal(t, "-1.24", NewMoney(1.23456789).Neg().String())
	assert.Equal(t, "1.23", NewMoney(-1.23456789).Abs().String())
	assert.True(t, Sum().Equal(Zero()))
}

func TestComparisons(t *testing.T) {
	a := NewMoney(10)
	b := NewMoney(20)
	assert.True(t, a.LessThan(b))
	assert.True(t, b.GreaterThan(a))
	assert.True(t, a.Equal(NewMoney(10)))
	assert.False(t, b.Equal(a))
}

func TestFormatWithFormatter(t *testing.T) {
	m := NewMoney(-1.23456789)
	assert.Equal(t, "-1.24", m.String())
	assert.Equal(t, "-1.23", m.Format(format.NewMoneyFormatter(format.WithRounding(format.RoundHalfAwayFromZero))))
}
