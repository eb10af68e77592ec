package konto

import (
	"fmt"
	"slices"
)

// validateSeed checks the transactions used to create an account and returns
// them as a new list: amounts must not be negative, and no transaction can
// appear twice.
func validateSeed(seed []Transaction) ([]Transaction, error) {
	txs := make([]Transaction, 0, len(seed))
	for i, tx := range seed {
		if err := checkAmount(tx.Amount()); err != nil {
			return nil, fmt.Errorf("seed transaction #%d: %w", i+1, err)
		}
		if slices.ContainsFunc(txs, tx.Equal) {
			return nil, fmt.Errorf("seed transaction #%d: %w", i+1, ErrTransactionExists)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}
