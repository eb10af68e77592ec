package cmd

import (
	"flag"
	"log/slog"

	"github.com/etnz/konto/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete answers a shell completion request and exits, it does nothing when
// the program was not invoked by the shell for completion.
//
// Run "COMP_INSTALL=1 konto" to install the completion in the current shell.
func Complete(name string) {
	completion(flag.CommandLine).Complete(name)
}

// completion describes the konto command line, global flags and subcommands.
func completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagPredictors(global),
	}
	for _, cmds := range Commands {
		for _, c := range cmds {
			f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(f)
			root.Sub[c.Name()] = &complete.Command{Flags: flagPredictors(f)}
		}
	}
	root.Sub["topic"].Args = complete.PredictFunc(predictTopics)
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}

// flagPredictors returns the predictors of every flag in f.
func flagPredictors(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = nil
			return
		}
		flags[fl.Name] = predictFlag(fl.Name)
	})
	return flags
}

// predictFlag returns the predictor of the values of the flag named name.
func predictFlag(name string) complete.Predictor {
	switch name {
	case "a":
		return complete.PredictFunc(predictAccounts)
	case "dir":
		return predict.Dirs("*")
	case "seed":
		return predict.Files("*.json")
	case "k":
		return predict.Set{"transfer", "incoming", "outgoing"}
	case "sort":
		return predict.Set{"asc", "desc"}
	case "type":
		return predict.Set{"positive", "negative"}
	case "currency":
		return predict.Set{"EUR", "USD", "GBP", "CHF", "JPY"}
	case "log-level":
		return predict.Set{"debug", "info", "warn", "error"}
	case "log-format":
		return predict.Set{"text", "json"}
	}
	return predict.Something
}

// predictAccounts lists the accounts of the ledger in the storage folder.
func predictAccounts(prefix string) []string {
	ledger, err := OpenLedger()
	if err != nil {
		slog.Debug("complete-accounts", "error", err)
		return nil
	}
	return ledger.Accounts()
}

func predictTopics(prefix string) []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, "readme", "*")
}
