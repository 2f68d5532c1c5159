package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/etnz/stocks"
	"github.com/google/subcommands"
)

// USD is a helper for test to create usd money from const
func USD(v float64) stocks.Money { return stocks.M(v, "USD") }

// Q is a helper for test to create Quantity from const
func Q(v float64) stocks.Quantity { return stocks.Q(v) }

// useStore points the global store file to a new file in a temporary directory,
// with the given content if not empty, and returns its path.
func useStore(t *testing.T, content string) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), "stocks.json")
	if content != "" {
		if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	oldFile, oldCurrency := *storeFile, *currency
	*storeFile, *currency = filename, "USD"
	t.Cleanup(func() { *storeFile, *currency = oldFile, oldCurrency })
	return filename
}

// run parses args as the command flags and executes the command.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s: cannot parse %q: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), f)
}

// loadStore loads the store file or fails the test.
func loadStore(t *testing.T, filename string) *stocks.Store {
	t.Helper()
	s, err := stocks.Load(filename, "USD")
	if err != nil {
		t.Fatalf("Load(%q) error = %v", filename, err)
	}
	return s
}

// readFile returns the content of a file or fails the test.
func readFile(t *testing.T, filename string) string {
	t.Helper()
	content, err := os.ReadFile(filename)
	if err != nil {
		t.Fatal(err)
	}
	return string(content)
}
