package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/etnz/konto/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "list all accounts and their balance" }
func (*accountsCmd) Usage() string {
	return `konto accounts

  Prints an overview of every account in the storage folder.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Overview(renderer.NewOverview(ledger, *currency)))
	return subcommands.ExitSuccess
}
