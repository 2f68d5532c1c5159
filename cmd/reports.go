package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocks"
	"github.com/etnz/stocks/renderer"
	"github.com/google/subcommands"
)

// --- List Command ---

type listCmd struct{}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "display all positions with their cost basis" }
func (*listCmd) Usage() string {
	return `stk list

  Displays all positions in the store, sorted by symbol.
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return exitStatus(err)
	}
	printMarkdown(renderer.PositionsMarkdown(store))
	return subcommands.ExitSuccess
}

// --- Profit/Loss Command ---

type plCmd struct {
	symbol string
	price  string
}

func (*plCmd) Name() string     { return "pl" }
func (*plCmd) Synopsis() string { return "compute the profit or loss of a position at a current price" }
func (*plCmd) Usage() string {
	return `stk pl -s <symbol> -p <price>

  Computes (current price - purchase price) * shares for a position.
`
}

func (c *plCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol (required)")
	f.StringVar(&c.price, "p", "", "Current price per share (required)")
}

func (c *plCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	current, err := stocks.ParseMoney(c.price, *currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid price %q: %v\n", c.price, err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return exitStatus(err)
	}

	pl, err := store.ProfitLoss(c.symbol, current)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing profit/loss: %v\n", err)
		return exitStatus(err)
	}
	p, _ := store.Position(c.symbol)
	printMarkdown(renderer.ProfitLossMarkdown(p, current, pl))
	return subcommands.ExitSuccess
}

// --- Report Command ---

type reportCmd struct {
	quotesFile string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "display all positions valued at current prices" }
func (*reportCmd) Usage() string {
	return `stk report [-quotes <file>] [<symbol>=<price>...]

  Values every position at the given prices and displays the profit or loss of
  each position, and of the portfolio.

  Prices are read from the quotes file, a JSON object like {"AAPL": 190.5},
  then from the arguments. Positions without a price are excluded from the totals.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.quotesFile, "quotes", "", "JSON file mapping symbols to their current price")
}

func (c *reportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	quotes := make(stocks.Quotes)
	if c.quotesFile != "" {
		var err error
		if quotes, err = decodeQuotes(c.quotesFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading quotes: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	for _, arg := range f.Args() {
		symbol, price, err := stocks.ParseQuote(arg, *currency)
		if err == nil {
			err = quotes.Set(symbol, price)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return exitStatus(err)
	}

	printMarkdown(renderer.ReportMarkdown(store.NewReport(quotes)))
	return subcommands.ExitSuccess
}

func decodeQuotes(filename string) (stocks.Quotes, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	q, err := stocks.DecodeQuotes(f, *currency)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return q, nil
}
