package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/stocks"
)

func newStore(t *testing.T) *stocks.Store {
	t.Helper()
	s := stocks.NewStore("USD")
	if _, err := s.AddOrUpdate("AAPL", stocks.Q(10), stocks.M(100, "USD")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.AddOrUpdate("NVDA", stocks.Q(5), stocks.M(50, "USD")); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestPositionsMarkdown(t *testing.T) {
	got := PositionsMarkdown(newStore(t))
	want := `# Positions

| Symbol | Shares | Cost/Share | Cost Basis |
|:---|---:|---:|---:|
| AAPL | 10 | $100.00 | $1,000.00 |
| NVDA | 5 | $50.00 | $250.00 |

Total cost basis: **$1,250.00**
`
	if got != want {
		t.Errorf("PositionsMarkdown() =\n%s\nwant:\n%s", got, want)
	}
}

func TestPositionsMarkdown_Empty(t *testing.T) {
	got := PositionsMarkdown(stocks.NewStore("USD"))
	if !strings.Contains(got, "No positions") {
		t.Errorf("PositionsMarkdown() on an empty store =\n%s", got)
	}
}

func TestReportMarkdown(t *testing.T) {
	r := newStore(t).NewReport(stocks.Quotes{"AAPL": stocks.M(150, "USD")})
	got := ReportMarkdown(r)
	want := `# Portfolio

| Symbol | Shares | Cost/Share | Price | Value | P/L | Change |
|:---|---:|---:|---:|---:|---:|---:|
| AAPL | 10 | $100.00 | $150.00 | $1,500.00 | +$500.00 | +50.00% |
| NVDA | 5 | $50.00 | n/a | n/a | n/a | n/a |
| **Total** | | | | **$1,500.00** | **+$500.00** | **+50.00%** |

Invested: $1,250.00

## Missing quotes

NVDA excluded from the totals.
`
	if got != want {
		t.Errorf("ReportMarkdown() =\n%s\nwant:\n%s", got, want)
	}
}

func TestReportMarkdown_NoMissing(t *testing.T) {
	r := newStore(t).NewReport(stocks.Quotes{"AAPL": stocks.M(150, "USD"), "NVDA": stocks.M(50, "USD")})
	got := ReportMarkdown(r)
	if strings.Contains(got, "Missing quotes") {
		t.Errorf("ReportMarkdown() with all quotes has a missing section:\n%s", got)
	}
}

func TestReportMarkdown_Unknown(t *testing.T) {
	quotes := stocks.Quotes{"AAPL": stocks.M(150, "USD"), "NVDA": stocks.M(50, "USD"), "APPL": stocks.M(150, "USD")}
	got := ReportMarkdown(newStore(t).NewReport(quotes))
	want := `
Invested: $1,250.00

## Unknown quotes

APPL not in the portfolio.
`
	if !strings.HasSuffix(got, want) {
		t.Errorf("ReportMarkdown() with a quote for an unknown symbol =\n%s\nwant suffix:\n%s", got, want)
	}
}

func TestProfitLossMarkdown(t *testing.T) {
	p := stocks.Position{Symbol: "AAPL", Shares: stocks.Q(10), PurchasePrice: stocks.M(100, "USD")}
	got := ProfitLossMarkdown(p, stocks.M(150, "USD"), stocks.M(500, "USD"))
	if !strings.Contains(got, "+$500.00") || !strings.Contains(got, "+50.00%") {
		t.Errorf("ProfitLossMarkdown() =\n%s", got)
	}
}
