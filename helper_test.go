package konto

import "github.com/shopspring/decimal"

// must is a helper for tests to build transactions known to be valid.
func must(tx Transaction, err error) Transaction {
	if err != nil {
		panic(err)
	}
	return tx
}

// dec is a helper for tests to create decimals from const strings.
func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }
