package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/konto"
	"github.com/google/subcommands"
)

type createCmd struct {
	account string
	seed    string
}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "create a new account" }
func (*createCmd) Usage() string {
	return `konto create -a <account> [-seed <file.json>]

  Creates an account, empty or holding the transactions of a seed file.
  A seed file has the format of an account file: a JSON array of records.
  Seed transactions are stored as is, the ledger interest rates are not applied.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Name of the account to create")
	f.StringVar(&c.seed, "seed", "", "Initial transactions of the account (JSON array)")
}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(stderr, "Error: -a flag is required.")
		return subcommands.ExitUsageError
	}

	var seed []konto.Transaction
	if c.seed != "" {
		file, err := os.Open(c.seed)
		if err != nil {
			fmt.Fprintf(stderr, "Error opening seed file: %v\n", err)
			return subcommands.ExitFailure
		}
		seed, err = konto.DecodeAccount(file)
		file.Close()
		if err != nil {
			fmt.Fprintf(stderr, "Error decoding seed file %q: %v\n", c.seed, err)
			return subcommands.ExitFailure
		}
	}

	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	if err := ledger.CreateAccountWith(c.account, seed); err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(stdout, "Created account %q with %d transactions.\n", c.account, len(seed))
	return subcommands.ExitSuccess
}
