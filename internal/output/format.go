package output

import "github.com/shopspring/decimal"

// FormatCurrency formats an amount in the base currency.
func FormatCurrency(amount decimal.Decimal) string {
	return "£" + amount.StringFixed(2)
}

// FormatPercentage formats a decimal rate as a percentage.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}
