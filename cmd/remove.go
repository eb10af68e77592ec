package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/konto"
	"github.com/etnz/konto/renderer"
	"github.com/google/subcommands"
)

type removeCmd struct {
	account string
	index   int
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a transaction from an account" }
func (*removeCmd) Usage() string {
	return `konto remove -a <account> -i <n>

  Removes the n-th transaction of an account, counting from 1 in insertion
  order. The index is the "#" column of "konto tx".
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account holding the transaction")
	f.IntVar(&c.index, "i", 0, "Index of the transaction to remove, starting at 1")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(stderr, "Error: -a flag is required.")
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
	txs := ledger.Transactions(c.account)
	if c.index < 1 || c.index > len(txs) {
		fmt.Fprintf(stderr, "Error: account %q has %d transactions, cannot remove #%d.\n", c.account, len(txs), c.index)
		return subcommands.ExitFailure
	}

	tx := txs[c.index-1]
	if err := ledger.RemoveTransaction(c.account, tx); err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Removed %s from %q, balance %s.\n", tx, c.account, renderer.Money(*currency, ledger.AccountBalance(c.account)))
	return subcommands.ExitSuccess
}
