package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/konto"
	"github.com/google/subcommands"
)

type queryCmd struct {
	account string
	path    string
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression on an account" }
func (*queryCmd) Usage() string {
	return `konto query -a <account> -path <jsonpath>

  Evaluates a JSONPath expression on the records of an account, as they are
  persisted in the account file, and prints the result as JSON.

  Example:

    konto query -a giro -path '$[?(@.CLASSNAME == "Payment")].amount'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "a", "", "Account to query")
	f.StringVar(&c.path, "path", "$", "JSONPath expression")
}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	result, err := query(ledger.Transactions(c.account), c.path)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, string(result))
	return subcommands.ExitSuccess
}

// query evaluates path on the encoded records of txs and returns the result
// as indented JSON.
func query(txs []konto.Transaction, path string) ([]byte, error) {
	var buf bytes.Buffer
	if err := konto.EncodeAccount(&buf, txs); err != nil {
		return nil, err
	}
	var records any
	if err := json.Unmarshal(buf.Bytes(), &records); err != nil {
		return nil, err
	}

	result, err := jsonpath.Get(path, records)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	return json.MarshalIndent(result, "", "  ")
}
