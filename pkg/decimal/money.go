package decimal

import (
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// DefaultSymbol is the currency symbol used when none is configured
const DefaultSymbol = "$"

var half = decimal.NewFromFloat(0.5)

// Money represents a monetary amount at full precision. Rounding happens only
// when a value is rendered, never while a projection is accumulating.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// RoundWhole rounds to a whole unit with halves going toward positive infinity,
// matching the dashboard's display rounding (2.5 -> 3, -2.5 -> -2).
func (m Money) RoundWhole() Money {
	return Money{m.Decimal.Add(half).Floor()}
}

// String returns the string representation with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount with a currency symbol and thousands separators
func (m Money) Format(symbol string) string {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	r := m.Decimal.Round(2)
	return sign(r) + symbol + grouped(r.Abs().StringFixed(2))
}

// FormatWhole renders the display-rounded amount without cents
func (m Money) FormatWhole(symbol string) string {
	if symbol == "" {
		symbol = DefaultSymbol
	}
	r := m.RoundWhole().Decimal
	return sign(r) + symbol + humanize.Comma(r.Abs().IntPart())
}

func sign(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return ""
}

// grouped inserts thousands separators into a non-negative fixed-point string
func grouped(fixed string) string {
	intPart, frac, _ := strings.Cut(fixed, ".")
	n, err := decimal.NewFromString(intPart)
	if err != nil {
		return fixed
	}
	out := humanize.Comma(n.IntPart())
	if frac != "" {
		out += "." + frac
	}
	return out
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}
