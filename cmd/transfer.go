package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/etnz/konto"
	"github.com/google/subcommands"
)

// transferKinds maps the -k flag values to the transfer constructors.
var transferKinds = map[string]func(date string, amount float64, description, sender, recipient string) (konto.Transaction, error){
	"transfer": konto.NewTransfer,
	"incoming": konto.NewIncomingTransfer,
	"outgoing": konto.NewOutgoingTransfer,
}

type transferCmd struct {
	account     string
	kind        string
	date        string
	amount      float64
	description string
	from        string
	to          string
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "record a transfer between two parties" }
func (*transferCmd) Usage() string {
	return `konto transfer -a <account> -v <amount> [-k transfer|incoming|outgoing] [-d <date>] [-m <description>] [-from <sender>] [-to <recipient>]

  Records a transfer on an account. The amount must not be negative.
  An incoming transfer credits the account, an outgoing transfer debits it.
  The account is the default recipient of an incoming transfer and the
  default sender of an outgoing one.
`
}

func (c *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account recording the transfer")
	f.StringVar(&c.kind, "k", "transfer", "Kind of transfer (transfer, incoming, outgoing)")
	f.StringVar(&c.date, "d", time.Now().Format(dateLayout), "Date of the transfer")
	f.Float64Var(&c.amount, "v", 0, "Amount of the transfer")
	f.StringVar(&c.description, "m", "", "Description of the transfer")
	f.StringVar(&c.from, "from", "", "Sender of the transfer")
	f.StringVar(&c.to, "to", "", "Recipient of the transfer")
}

func (c *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(stderr, "Error: -a flag is required.")
		return subcommands.ExitUsageError
	}
	newTransfer, ok := transferKinds[c.kind]
	if !ok {
		fmt.Fprintf(stderr, "Error: unknown transfer kind %q, want transfer, incoming or outgoing.\n", c.kind)
		return subcommands.ExitUsageError
	}

	from, to := c.from, c.to
	switch {
	case c.kind == "incoming" && to == "":
		to = c.account
	case c.kind == "outgoing" && from == "":
		from = c.account
	}

	tx, err := newTransfer(c.date, c.amount, c.description, from, to)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	return addTransaction(c.account, tx)
}
