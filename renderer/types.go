package renderer

import (
	"slices"

	"github.com/etnz/konto"
	"github.com/shopspring/decimal"
)

// StatementData is the content of an account statement.
type StatementData struct {
	Bank     string          `json:"bank"`
	Account  string          `json:"account"`
	View     string          `json:"view"` // what subset of the account is listed, and in which order
	Currency string          `json:"currency"`
	Rows     []StatementRow  `json:"rows"`
	Balance  decimal.Decimal `json:"balance"`
}

// StatementRow is a single transaction in a statement.
type StatementRow struct {
	Index        int             `json:"index"` // 1-based position in the account, in insertion order
	Date         string          `json:"date"`
	Kind         string          `json:"kind"`
	Description  string          `json:"description"`
	Counterparty string          `json:"counterparty"`
	Amount       decimal.Decimal `json:"amount"`
	Value        decimal.Decimal `json:"value"`
}

// NewStatement collects the statement of account listing txs, a view on the
// account's transactions.
func NewStatement(l *konto.Ledger, account, view, currency string, txs []konto.Transaction) StatementData {
	all := l.Transactions(account)
	s := StatementData{
		Bank:     l.Name(),
		Account:  account,
		View:     view,
		Currency: currency,
		Rows:     make([]StatementRow, 0, len(txs)),
		Balance:  l.AccountBalance(account),
	}
	for _, tx := range txs {
		s.Rows = append(s.Rows, StatementRow{
			Index:        slices.IndexFunc(all, tx.Equal) + 1,
			Date:         tx.Date(),
			Kind:         string(tx.Kind()),
			Description:  tx.Description(),
			Counterparty: tx.Counterparty(),
			Amount:       tx.Amount(),
			Value:        tx.Calculate(),
		})
	}
	return s
}

// OverviewData is the content of a ledger overview.
type OverviewData struct {
	Bank             string          `json:"bank"`
	Folder           string          `json:"folder"`
	Currency         string          `json:"currency"`
	IncomingInterest decimal.Decimal `json:"incomingInterest"`
	OutgoingInterest decimal.Decimal `json:"outgoingInterest"`
	Accounts         []OverviewRow   `json:"accounts"`
	Total            decimal.Decimal `json:"total"`
}

// OverviewRow is a single account in an overview.
type OverviewRow struct {
	Name         string          `json:"name"`
	Transactions int             `json:"transactions"`
	Balance      decimal.Decimal `json:"balance"`
}

// NewOverview collects the overview of every account of l.
func NewOverview(l *konto.Ledger, currency string) OverviewData {
	o := OverviewData{
		Bank:             l.Name(),
		Folder:           l.Folder(),
		Currency:         currency,
		IncomingInterest: l.IncomingInterest(),
		OutgoingInterest: l.OutgoingInterest(),
		Total:            decimal.Zero,
	}
	for _, account := range l.Accounts() {
		balance := l.AccountBalance(account)
		o.Accounts = append(o.Accounts, OverviewRow{
			Name:         account,
			Transactions: len(l.Transactions(account)),
			Balance:      balance,
		})
		o.Total = o.Total.Add(balance)
	}
	return o
}
