package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	money "github.com/rpgo/portfolio-simulator/pkg/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals and thousands separators.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatFloatCurrency is FormatCurrency for raw path values.
func FormatFloatCurrency(amount float64) string {
	return money.NewMoney(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate such as 0.08 as "8.00%".
func FormatRate(rate float64) string {
	return FormatPercentage(decimal.NewFromFloat(rate).Mul(decimalHundred))
}

func intToString(v int) string { return strconv.Itoa(v) }

func boolToString(v bool) string { return strconv.FormatBool(v) }

func floatToString(v float64) string { return decimal.NewFromFloat(v).StringFixed(2) }
