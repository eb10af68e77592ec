package konto

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// newDecimal converts the float value of the attribute field into a decimal.
// NaN and infinities have no decimal form and yield an *AttributeError.
func newDecimal(field string, value float64) (decimal.Decimal, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return decimal.Zero, &AttributeError{Field: field, Reason: fmt.Sprintf("must be a finite number, got %v", value)}
	}
	return decimal.NewFromFloat(value), nil
}

// checkRate returns an *AttributeError if rate is not within [0,1].
func checkRate(field string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(one) {
		return &AttributeError{Field: field, Reason: fmt.Sprintf("rate must be between 0 and 1, got %s", rate)}
	}
	return nil
}

// checkAmount returns an *AttributeError if amount is negative.
func checkAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return &AttributeError{Field: attrAmount, Reason: fmt.Sprintf("amount must not be negative, got %s", amount)}
	}
	return nil
}
