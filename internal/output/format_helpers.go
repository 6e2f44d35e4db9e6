package output

import (
	"strconv"

	moneyfmt "github.com/rasmushaa/renting-vs-owning/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats an amount with cents and thousands separators, e.g. "$1,234.50".
func FormatCurrency(amount decimal.Decimal) string {
	return moneyfmt.NewMoneyFromDecimal(amount).Format()
}

// FormatWhole formats an amount in whole currency units, e.g. "$175,000".
func FormatWhole(amount decimal.Decimal) string {
	return moneyfmt.NewMoneyFromDecimal(amount).FormatWhole()
}

// FormatPercentage formats a value that is already a percentage, e.g. 12.34 -> "12.34%".
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate as a percentage, e.g. 0.045 -> "4.50%".
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
