package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/konto"
	"github.com/etnz/konto/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct {
	account string
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "print the balance of an account" }
func (*balanceCmd) Usage() string {
	return `konto balance -a <account>

  Prints the sum of the effective values of all transactions of an account.
`
}

func (c *balanceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to report on")
}

func (c *balanceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	fmt.Fprintln(stdout, renderer.Money(*currency, ledger.AccountBalance(c.account)))
	return subcommands.ExitSuccess
}
