package renderer

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Money formats value in the given ISO 4217 currency, with the currency
// symbol, grouping and number of digits of that currency.
//
// An unknown currency code is printed as a plain number followed by the code.
func Money(currency string, value decimal.Decimal) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return value.StringFixed(2) + " " + currency
	}
	minor := value.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return cur.Formatter().Format(minor)
}

// Rate formats an interest rate as a percentage.
func Rate(rate decimal.Decimal) string {
	return rate.Mul(hundred).String() + "%"
}
