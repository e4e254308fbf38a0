package decimal

import (
	"math"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a USD amount kept at full decimal precision. Only presentation
// rounds to cents.
type Money struct {
	decimal.Decimal
}

// NewMoney converts a simulated float value into Money
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal wraps a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString parses an amount such as "1234.56"
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds to cents, half away from zero
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Times scales the amount, e.g. a yearly contribution by a number of years
func (m Money) Times(n int) Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(int64(n)))}
}

// Ratio returns m / other, or zero when other is zero
func (m Money) Ratio(other Money) decimal.Decimal {
	if other.IsZero() {
		return decimal.Zero
	}
	return m.Decimal.Div(other.Decimal)
}

func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// String returns the amount with exactly two decimals and no symbol
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the money amount as $1,234,567.89
func (m Money) Format() string {
	usd := gomoney.GetCurrency(gomoney.USD)
	f := usd.Formatter()
	rounded := m.Round().Decimal
	cents := rounded.Shift(int32(f.Fraction))
	if cents.Abs().LessThanOrEqual(maxCents) {
		return f.Format(cents.IntPart())
	}

	// Beyond int64 cents go-money would wrap, so group the digits here.
	whole, frac, _ := strings.Cut(rounded.Abs().StringFixed(int32(f.Fraction)), ".")
	amount := groupThousands(whole, f.Thousand)
	if f.Fraction > 0 {
		amount += f.Decimal + frac
	}
	out := strings.Replace(f.Template, "1", amount, 1)
	out = strings.Replace(out, "$", f.Grapheme, 1)
	if rounded.IsNegative() {
		out = "-" + out
	}
	return out
}

var maxCents = decimal.NewFromInt(math.MaxInt64)

func groupThousands(digits, sep string) string {
	if sep == "" || len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
