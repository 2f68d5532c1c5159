package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocks"
	"github.com/google/subcommands"
)

type importCmd struct {
	opts       stocks.ImportOptions
	accumulate bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import positions from a JSON document" }
func (*importCmd) Usage() string {
	return `stk import [-rows <path>] [-symbol <path>] [-shares <path>] [-price <path>] [-accumulate] <file>

  Imports positions from any JSON document. Paths are jsonpath expressions:
  -rows selects the rows in the document, the others select a value in a row.

  The defaults read the list format of older tracking scripts:
    [{"symbol": "AAPL", "shares": 3.0, "price": 175.25}]

  Each row replaces the position of its symbol, or is added to it with -accumulate.
  If any row is invalid, nothing is imported.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.opts.Rows, "rows", stocks.LegacyImportOptions.Rows, "jsonpath to the list of rows")
	f.StringVar(&c.opts.Symbol, "symbol", stocks.LegacyImportOptions.Symbol, "jsonpath to the symbol in a row")
	f.StringVar(&c.opts.Shares, "shares", stocks.LegacyImportOptions.Shares, "jsonpath to the number of shares in a row")
	f.StringVar(&c.opts.Price, "price", stocks.LegacyImportOptions.Price, "jsonpath to the purchase price in a row")
	f.BoolVar(&c.accumulate, "accumulate", false, "add rows to existing positions, averaging the purchase price")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one file to import is required.")
		f.Usage()
		return subcommands.ExitUsageError
	}
	filename := f.Arg(0)

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return exitStatus(err)
	}

	file, err := os.Open(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening import file: %v\n", err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	rows, err := stocks.DecodeImport(file, c.opts, store.Currency())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", filename, err)
		return subcommands.ExitFailure
	}

	if err := store.Import(rows, c.accumulate); err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", filename, err)
		return exitStatus(err)
	}

	if err := store.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully imported %d positions from %s\n", len(rows), filename)
	return subcommands.ExitSuccess
}
