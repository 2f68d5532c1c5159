package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/stocks"
	"github.com/google/subcommands"
)

// parsePosition parses the shares and price flags shared by the position commands.
func parsePosition(shares, price string) (stocks.Quantity, stocks.Money, error) {
	q, err := stocks.ParseQuantity(shares)
	if err != nil {
		return stocks.Quantity{}, stocks.Money{}, fmt.Errorf("invalid shares %q: %w", shares, err)
	}
	p, err := stocks.ParseMoney(price, *currency)
	if err != nil {
		return stocks.Quantity{}, stocks.Money{}, fmt.Errorf("invalid price %q: %w", price, err)
	}
	return q, p, nil
}

// --- Add Command ---

type addCmd struct {
	symbol string
	shares string
	price  string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add or update a position" }
func (*addCmd) Usage() string {
	return `stk add -s <symbol> -q <shares> -p <price>

  Sets the position for a symbol, replacing any existing one:
  - symbol: The stock symbol (e.g., "AAPL"), case insensitive.
  - shares: The number of shares held, zero or more (e.g., "3.5").
  - price: The purchase price per share, strictly positive (e.g., "175.25").
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol (required)")
	f.StringVar(&c.shares, "q", "", "Number of shares (required)")
	f.StringVar(&c.price, "p", "", "Purchase price per share (required)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.shares == "" || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	shares, price, err := parsePosition(c.shares, c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return exitStatus(err)
	}

	p, err := store.AddOrUpdate(c.symbol, shares, price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error setting position: %v\n", err)
		return exitStatus(err)
	}

	if err := store.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully set %s: %s shares at %s\n", p.Symbol, p.Shares, p.PurchasePrice)
	return subcommands.ExitSuccess
}

// --- Buy Command ---

type buyCmd struct {
	symbol string
	shares string
	price  string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "add shares to a position, averaging the purchase price" }
func (*buyCmd) Usage() string {
	return `stk buy -s <symbol> -q <shares> -p <price>

  Adds shares bought at a price to a position, creating it if needed.
  The purchase price becomes the average price paid for all the shares.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol (required)")
	f.StringVar(&c.shares, "q", "", "Number of shares bought (required)")
	f.StringVar(&c.price, "p", "", "Price paid per share (required)")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" || c.shares == "" || c.price == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}
	shares, price, err := parsePosition(c.shares, c.price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return exitStatus(err)
	}

	p, err := store.Buy(c.symbol, shares, price)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error buying shares: %v\n", err)
		return exitStatus(err)
	}

	if err := store.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully bought %s shares of %s: %s shares at %s on average\n", shares, p.Symbol, p.Shares, p.PurchasePrice)
	return subcommands.ExitSuccess
}

// --- Remove Command ---

type removeCmd struct {
	symbol string
}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "remove a position" }
func (*removeCmd) Usage() string {
	return `stk remove -s <symbol>

  Removes the position of a symbol from the store.
`
}

func (c *removeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "Stock symbol (required)")
}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading store: %v\n", err)
		return exitStatus(err)
	}

	if err := store.Remove(c.symbol); err != nil {
		fmt.Fprintf(os.Stderr, "Error removing position: %v\n", err)
		return exitStatus(err)
	}

	if err := store.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving store: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("✅ Successfully removed %s\n", stocks.NormalizeSymbol(c.symbol))
	return subcommands.ExitSuccess
}
