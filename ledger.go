package konto

import (
	"fmt"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// Ledger owns a set of named accounts persisted in a storage folder.
//
// All views returned by a Ledger are copies. A mutation is persisted before it
// is applied in memory: when writing the account file fails, the ledger is
// left unchanged.
//
// A Ledger is not safe for concurrent use, and two ledgers must not share a
// storage folder.
type Ledger struct {
	name             string
	incomingInterest decimal.Decimal // applied to every payment added
	outgoingInterest decimal.Decimal // applied to every payment added
	folder           string
	accounts         map[string][]Transaction // transactions in insertion order
}

// NewLedger opens the ledger persisted in folder, loading every account file
// found there. A missing folder is an empty ledger, it is created on the
// first write. Any account file that cannot be read or decoded makes the
// whole call fail.
//
// incomingInterest and outgoingInterest override the rates of all payments
// added with AddTransaction. A rate that is NaN or infinite is rejected with
// an *AttributeError.
func NewLedger(name string, incomingInterest, outgoingInterest float64, folder string) (*Ledger, error) {
	in, err := newDecimal(attrIncomingInterest, incomingInterest)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger %q: %w", name, err)
	}
	out, err := newDecimal(attrOutgoingInterest, outgoingInterest)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger %q: %w", name, err)
	}
	accounts, err := loadAccounts(folder)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger %q: %w", name, err)
	}
	return &Ledger{
		name:             name,
		incomingInterest: in,
		outgoingInterest: out,
		folder:           folder,
		accounts:         accounts,
	}, nil
}

// Name returns the display name of the ledger.
func (l *Ledger) Name() string { return l.name }

// IncomingInterest returns the rate applied to positive payments.
func (l *Ledger) IncomingInterest() decimal.Decimal { return l.incomingInterest }

// OutgoingInterest returns the rate applied to negative payments.
func (l *Ledger) OutgoingInterest() decimal.Decimal { return l.outgoingInterest }

// Folder returns the storage folder.
func (l *Ledger) Folder() string { return l.folder }

// Accounts returns the names of all accounts in alphabetical order.
func (l *Ledger) Accounts() []string {
	return slices.Sorted(maps.Keys(l.accounts))
}

// HasAccount reports whether account exists.
func (l *Ledger) HasAccount(account string) bool {
	_, exists := l.accounts[account]
	return exists
}

// CreateAccount creates an empty account and persists it.
func (l *Ledger) CreateAccount(account string) error {
	return l.CreateAccountWith(account, nil)
}

// CreateAccountWith creates an account holding seed, in order, and persists it.
//
// Seed transactions are stored as is, the ledger interest rates are not
// applied. Every seed amount must be non negative (*AttributeError) and seed
// must not hold the same transaction twice (ErrTransactionExists).
func (l *Ledger) CreateAccountWith(account string, seed []Transaction) error {
	if l.HasAccount(account) {
		return fmt.Errorf("cannot create account %q: %w", account, ErrAccountExists)
	}
	if err := checkAccountName(account); err != nil {
		return err
	}
	txs, err := validateSeed(seed)
	if err != nil {
		return fmt.Errorf("cannot create account %q: %w", account, err)
	}
	return l.commit(account, txs)
}

// AddTransaction appends tx to account and persists it.
//
// A payment is stored with the ledger's interest rates in place of its own.
// The stored transaction is returned, it is the value to use with
// ContainsTransaction or RemoveTransaction afterwards.
func (l *Ledger) AddTransaction(account string, tx Transaction) (Transaction, error) {
	txs, exists := l.accounts[account]
	if !exists {
		return tx, fmt.Errorf("cannot add transaction to %q: %w", account, ErrAccountMissing)
	}
	if slices.ContainsFunc(txs, tx.Equal) {
		return tx, fmt.Errorf("cannot add %v to %q: %w", tx, account, ErrTransactionExists)
	}

	stored, err := tx.WithInterest(l.incomingInterest, l.outgoingInterest)
	if err != nil {
		return tx, fmt.Errorf("cannot apply ledger interest to %v: %w", tx, err)
	}
	// Overriding the interest may turn it into another transaction already there.
	if slices.ContainsFunc(txs, stored.Equal) {
		return tx, fmt.Errorf("cannot add %v to %q: %w", stored, account, ErrTransactionExists)
	}

	next := append(slices.Clip(txs), stored)
	if err := l.commit(account, next); err != nil {
		return tx, err
	}
	return stored, nil
}

// RemoveTransaction removes tx from account and persists it.
func (l *Ledger) RemoveTransaction(account string, tx Transaction) error {
	txs, exists := l.accounts[account]
	if !exists {
		return fmt.Errorf("cannot remove transaction from %q: %w", account, ErrAccountMissing)
	}
	i := slices.IndexFunc(txs, tx.Equal)
	if i < 0 {
		return fmt.Errorf("cannot remove %v from %q: %w", tx, account, ErrTransactionMissing)
	}
	return l.commit(account, slices.Delete(slices.Clone(txs), i, i+1))
}

// commit persists txs as the new content of account, then applies it in memory.
func (l *Ledger) commit(account string, txs []Transaction) error {
	if err := saveAccount(l.folder, account, txs); err != nil {
		return fmt.Errorf("cannot persist account %q: %w", account, err)
	}
	l.accounts[account] = txs
	return nil
}

// ContainsTransaction reports whether account holds tx. It is false for a
// missing account.
func (l *Ledger) ContainsTransaction(account string, tx Transaction) bool {
	return slices.ContainsFunc(l.accounts[account], tx.Equal)
}

// AccountBalance returns the sum of the effective values of account's
// transactions. It is zero for a missing or empty account.
func (l *Ledger) AccountBalance(account string) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range l.accounts[account] {
		balance = balance.Add(tx.Calculate())
	}
	return balance
}

// Transactions returns a copy of account's transactions in insertion order.
// It is empty for a missing account.
func (l *Ledger) Transactions(account string) []Transaction {
	txs := make([]Transaction, len(l.accounts[account]))
	copy(txs, l.accounts[account])
	return txs
}

// TransactionsSorted returns account's transactions ordered by effective
// value. Transactions with the same value keep their insertion order.
func (l *Ledger) TransactionsSorted(account string, ascending bool) []Transaction {
	txs := l.Transactions(account)
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		if ascending {
			return a.Calculate().Cmp(b.Calculate())
		}
		return b.Calculate().Cmp(a.Calculate())
	})
	return txs
}

// TransactionsByType returns account's transactions with a positive
// (positive=true) or negative (positive=false) effective value, in insertion
// order. Transactions worth zero are in neither list.
func (l *Ledger) TransactionsByType(account string, positive bool) []Transaction {
	var txs []Transaction
	for _, tx := range l.accounts[account] {
		v := tx.Calculate()
		if (positive && v.IsPositive()) || (!positive && v.IsNegative()) {
			txs = append(txs, tx)
		}
	}
	if txs == nil {
		return []Transaction{}
	}
	return txs
}
