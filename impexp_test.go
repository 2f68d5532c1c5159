package stocks

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeImport_Legacy(t *testing.T) {
	content := `[
  {"symbol": "aapl", "shares": 3.0, "price": 175.25},
  {"symbol": "MSFT", "shares": 1, "price": 410.123456789}
]`
	rows, err := DecodeImport(strings.NewReader(content), LegacyImportOptions, "USD")
	if err != nil {
		t.Fatalf("DecodeImport() error = %v", err)
	}
	want := []ImportedRow{
		{Symbol: "AAPL", Shares: Q(3), Price: USD(175.25)},
		{Symbol: "MSFT", Shares: Q(1), Price: USD(410.123456789)},
	}
	if diff := cmp.Diff(want, rows, positionComparer); diff != "" {
		t.Errorf("DecodeImport() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeImport_CustomPaths(t *testing.T) {
	content := `{
  "account": "main",
  "holdings": [
    {"instrument": {"ticker": "NVDA"}, "qty": "12", "avgCost": "1,020.50"}
  ]
}`
	opts := ImportOptions{
		Rows:   "$.holdings[*]",
		Symbol: "$.instrument.ticker",
		Shares: "$.qty",
		Price:  "$.avgCost",
	}
	rows, err := DecodeImport(strings.NewReader(content), opts, "USD")
	if err != nil {
		t.Fatalf("DecodeImport() error = %v", err)
	}
	want := []ImportedRow{{Symbol: "NVDA", Shares: Q(12), Price: USD(1020.5)}}
	if diff := cmp.Diff(want, rows, positionComparer); diff != "" {
		t.Errorf("DecodeImport() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeImport_Corrupt(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", `symbol,shares,price`},
		{"missing symbol", `[{"shares": 1, "price": 1}]`},
		{"symbol not a string", `[{"symbol": 1, "shares": 1, "price": 1}]`},
		{"missing price", `[{"symbol": "AAPL", "shares": 1}]`},
		{"price not a number", `[{"symbol": "AAPL", "shares": 1, "price": "n/a"}]`},
		{"shares is an object", `[{"symbol": "AAPL", "shares": {}, "price": 1}]`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeImport(strings.NewReader(tc.content), LegacyImportOptions, "USD")
			if !errors.Is(err, ErrCorruptData) {
				t.Errorf("DecodeImport() error = %v, want ErrCorruptData", err)
			}
		})
	}
}

func TestStore_Import(t *testing.T) {
	rows := []ImportedRow{
		{Symbol: "AAPL", Shares: Q(10), Price: USD(100)},
		{Symbol: "AAPL", Shares: Q(10), Price: USD(200)},
	}

	t.Run("overwrite", func(t *testing.T) {
		s := NewStore("USD")
		if err := s.Import(rows, false); err != nil {
			t.Fatalf("Import() error = %v", err)
		}
		want := []Position{{Symbol: "AAPL", Shares: Q(10), PurchasePrice: USD(200)}}
		if diff := cmp.Diff(want, s.Positions(), positionComparer); diff != "" {
			t.Errorf("Import() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("accumulate", func(t *testing.T) {
		s := NewStore("USD")
		if err := s.Import(rows, true); err != nil {
			t.Fatalf("Import() error = %v", err)
		}
		want := []Position{{Symbol: "AAPL", Shares: Q(20), PurchasePrice: USD(150)}}
		if diff := cmp.Diff(want, s.Positions(), positionComparer); diff != "" {
			t.Errorf("Import() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("all or nothing", func(t *testing.T) {
		s := NewStore("USD")
		mustAdd(t, s, "MSFT", 1, 400)

		bad := []ImportedRow{
			{Symbol: "AAPL", Shares: Q(10), Price: USD(100)},
			{Symbol: "MSFT", Shares: Q(5), Price: USD(410)},
			{Symbol: "GOOG", Shares: Q(1), Price: USD(0)},
		}
		err := s.Import(bad, false)
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Import() error = %v, want ErrInvalidInput", err)
		}
		want := []Position{{Symbol: "MSFT", Shares: Q(1), PurchasePrice: USD(400)}}
		if diff := cmp.Diff(want, s.Positions(), positionComparer); diff != "" {
			t.Errorf("store changed by a failed Import() (-want +got):\n%s", diff)
		}
	})
}
