package decimal

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO code used by Format and FormatWhole.
const DefaultCurrency = money.USD

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Whole rounds to whole currency units, half to even.
func (m Money) Whole() Money {
	return Money{m.Decimal.RoundBank(0)}
}

// Tax returns the tax due on the amount at the given rate. Nothing is rounded, and a
// negative amount yields a negative tax.
func (m Money) Tax(rate decimal.Decimal) Money {
	return Money{m.Decimal.Mul(rate)}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Format renders the amount with minor units and thousands separators, e.g. "$1,234.50".
func (m Money) Format() string {
	cur := money.GetCurrency(DefaultCurrency)
	minor := m.Decimal.Shift(int32(cur.Fraction)).RoundBank(0).IntPart()
	return cur.Formatter().Format(minor)
}

// FormatWhole renders whole currency units, e.g. "$175,000".
func (m Money) FormatWhole() string {
	cur := money.GetCurrency(DefaultCurrency)
	f := money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	return f.Format(m.Whole().IntPart())
}
