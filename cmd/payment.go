package cmd

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/etnz/konto"
	"github.com/etnz/konto/renderer"
	"github.com/google/subcommands"
)

// dateLayout is the layout of the default transaction date.
const dateLayout = "02.01.2006"

type paymentCmd struct {
	account     string
	date        string
	amount      float64
	description string
}

func (*paymentCmd) Name() string     { return "payment" }
func (*paymentCmd) Synopsis() string { return "record a deposit or a withdrawal" }
func (*paymentCmd) Usage() string {
	return `konto payment -a <account> -v <amount> [-d <date>] [-m <description>]

  Records a payment on an account. A positive amount is a deposit, reduced by
  the -incoming interest. A negative amount is a withdrawal, increased by the
  -outgoing interest.
`
}

func (c *paymentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account receiving the payment")
	f.StringVar(&c.date, "d", time.Now().Format(dateLayout), "Date of the payment")
	f.Float64Var(&c.amount, "v", 0, "Amount of the payment, negative for a withdrawal")
	f.StringVar(&c.description, "m", "", "Description of the payment")
}

func (c *paymentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(stderr, "Error: -a flag is required.")
		return subcommands.ExitUsageError
	}
	// The ledger overrides the payment rates.
	tx, err := konto.NewPayment(c.date, c.amount, c.description, 0, 0)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	return addTransaction(c.account, tx)
}

// addTransaction adds tx to account in the ledger and reports the new balance.
func addTransaction(account string, tx konto.Transaction) subcommands.ExitStatus {
	ledger, err := OpenLedger()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	stored, err := ledger.AddTransaction(account, tx)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Added %s %s to %q, balance %s.\n",
		stored.Kind(),
		renderer.Money(*currency, stored.Calculate()),
		account,
		renderer.Money(*currency, ledger.AccountBalance(account)),
	)
	return subcommands.ExitSuccess
}
