// Package cmd implements the CLI application to manage konto accounts.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/konto"
	"github.com/google/subcommands"
	"golang.org/x/term"
)

// Environment variables providing the default value of the global flags.
const (
	EnvDir      = "KONTO_DIR"
	EnvBank     = "KONTO_BANK"
	EnvIncoming = "KONTO_INCOMING"
	EnvOutgoing = "KONTO_OUTGOING"
	EnvCurrency = "KONTO_CURRENCY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	dir       = flag.String("dir", env(EnvDir, ".konto"), "Folder holding the account files")
	bank      = flag.String("bank", env(EnvBank, "konto"), "Name of the ledger")
	incoming  = flag.String("incoming", env(EnvIncoming, "0"), "Interest rate in [0,1] charged on every new deposit")
	outgoing  = flag.String("outgoing", env(EnvOutgoing, "0"), "Interest rate in [0,1] charged on every new withdrawal")
	currency  = flag.String("currency", env(EnvCurrency, "EUR"), "ISO 4217 currency used to display amounts")
	raw       = flag.Bool("raw", false, "Print plain markdown even on a terminal")
	logLevel  = flag.String("log-level", "warn", "Log level (debug, info, warn, error)")
	logFormat = flag.String("log-format", "text", "Log format (text, json)")
)

// Outputs of the commands.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// Commands are all the konto subcommands, by group.
var Commands = map[string][]subcommands.Command{
	"accounts":     {&createCmd{}, &accountsCmd{}},
	"transactions": {&paymentCmd{}, &transferCmd{}, &removeCmd{}},
	"reports":      {&balanceCmd{}, &txCmd{}, &queryCmd{}},
	"help":         {&topicCmd{}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
	for group, cmds := range Commands {
		for _, cmd := range cmds {
			c.Register(cmd, group)
		}
	}
}

func env(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// SetupLogger configures the default slog logger from the -log-level and
// -log-format flags. Logs are written to stderr.
func SetupLogger() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		return fmt.Errorf("invalid -log-level %q: %w", *logLevel, err)
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch *logFormat {
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	default:
		return fmt.Errorf("invalid -log-format %q, want text or json", *logFormat)
	}
	slog.SetDefault(slog.New(handler))
	return nil
}

// OpenLedger is the central function to open the ledger in the storage folder.
func OpenLedger() (*konto.Ledger, error) {
	in, err := parseRate("incoming", *incoming)
	if err != nil {
		return nil, err
	}
	out, err := parseRate("outgoing", *outgoing)
	if err != nil {
		return nil, err
	}
	l, err := konto.NewLedger(*bank, in, out, *dir)
	if err != nil {
		return nil, err
	}
	slog.Debug("open-ledger", "bank", l.Name(), "folder", l.Folder(), "accounts", len(l.Accounts()))
	return l, nil
}

func parseRate(name, value string) (float64, error) {
	rate, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid -%s rate %q: %w", name, value, err)
	}
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return 0, fmt.Errorf("invalid -%s rate %q: must be between 0 and 1", name, value)
	}
	return rate, nil
}

// printMarkdown prints md to stdout, rendered for the terminal when stdout is one.
func printMarkdown(md string) {
	f, ok := stdout.(*os.File)
	if *raw || !ok || !term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(stdout, md)
		return
	}

	width := 80
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		width = w
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		slog.Warn("markdown-renderer", "error", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		slog.Warn("markdown-renderer", "error", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
