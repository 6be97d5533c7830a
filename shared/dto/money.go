package dto

import (
	"hotel/shared/constant"

	"github.com/shopspring/decimal"
)

// Amounts travel as JSON numbers, not strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// MoneyFromFloat converts a request amount into a decimal rounded to cents.
func MoneyFromFloat(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(constant.CurrencyPrecision)
}
