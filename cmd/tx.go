package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/konto"
	"github.com/etnz/konto/renderer"
	"github.com/google/subcommands"
)

type txCmd struct {
	account string
	sort    string
	kind    string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list the transactions of an account" }
func (*txCmd) Usage() string {
	return `konto tx -a <account> [-sort asc|desc | -type positive|negative]

  Prints the statement of an account. Transactions are listed in insertion
  order, sorted by effective value with -sort, or restricted to credits or
  debits with -type.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to report on")
	f.StringVar(&c.sort, "sort", "", "Sort by effective value (asc, desc)")
	f.StringVar(&c.kind, "type", "", "Only list transactions with a positive or negative effective value (positive, negative)")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(stderr, "Error: -a flag is required.")
		return subcommands.ExitUsageError
	}
	if c.sort != "" && c.kind != "" {
		fmt.Fprintln(stderr, "Error: -sort and -type flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	if !ledger.HasAccount(c.account) {
		fmt.Fprintf(stderr, "Error: %q: %v.\n", c.account, konto.ErrAccountMissing)
		return subcommands.ExitFailure
	}

	var txs []konto.Transaction
	var view string
	switch {
	case c.sort == "asc":
		txs, view = ledger.TransactionsSorted(c.account, true), "sorted by ascending value"
	case c.sort == "desc":
		txs, view = ledger.TransactionsSorted(c.account, false), "sorted by descending value"
	case c.sort != "":
		fmt.Fprintf(stderr, "Error: unknown sort order %q, want asc or desc.\n", c.sort)
		return subcommands.ExitUsageError
	case c.kind == "positive":
		txs, view = ledger.TransactionsByType(c.account, true), "credits only"
	case c.kind == "negative":
		txs, view = ledger.TransactionsByType(c.account, false), "debits only"
	case c.kind != "":
		fmt.Fprintf(stderr, "Error: unknown type %q, want positive or negative.\n", c.kind)
		return subcommands.ExitUsageError
	default:
		txs, view = ledger.Transactions(c.account), "all transactions"
	}

	printMarkdown(renderer.Statement(renderer.NewStatement(ledger, c.account, view, *currency, txs)))
	return subcommands.ExitSuccess
}
