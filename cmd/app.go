// Package cmd implements the CLI application to track stock positions.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/stocks"
	"github.com/google/subcommands"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "positions")
	c.Register(&buyCmd{}, "positions")
	c.Register(&removeCmd{}, "positions")
	c.Register(&importCmd{}, "positions")

	c.Register(&listCmd{}, "reports")
	c.Register(&plCmd{}, "reports")
	c.Register(&reportCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store-file", envOr(EnvStoreFile, "stocks.json"), "Path to the JSON file holding the positions")
var currency = flag.String("currency", envOr(EnvCurrency, "USD"), "Currency of all prices, 3-letter code")

// Verbose enables debug logging on stderr.
var Verbose = flag.Bool("v", envBool(EnvVerbose), "Verbose logging")

// envOr returns the value of the environment variable 'key', or 'value' if it is not set.
func envOr(key, value string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return value
}

func envBool(key string) bool {
	b, _ := strconv.ParseBool(os.Getenv(key))
	return b
}

// OpenStore loads the store from the app store file.
func OpenStore() (*stocks.Store, error) {
	if err := stocks.ValidateCurrency(*currency); err != nil {
		return nil, err
	}
	return stocks.Load(*storeFile, *currency)
}

// exitStatus returns the exit status for a failed operation: invalid input
// is a usage error.
func exitStatus(err error) subcommands.ExitStatus {
	if errors.Is(err, stocks.ErrInvalidInput) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown renders markdown in a terminal, or prints it as is when the
// output is redirected.
func printMarkdown(md string) {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		l.Warn("cannot create markdown renderer", zap.Error(err))
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		l.Warn("cannot render markdown", zap.Error(err))
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
