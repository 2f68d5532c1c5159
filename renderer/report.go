package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/stocks"
)

const notAvailable = "n/a"

// ReportMarkdown renders a portfolio report: one row per position and the totals.
func ReportMarkdown(r *stocks.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio\n\n")
	if len(r.Lines) == 0 {
		fmt.Fprintln(&b, "Portfolio is empty.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Shares | Cost/Share | Price | Value | P/L | Change |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")
	for _, line := range r.Lines {
		if !line.Quoted {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
				line.Symbol, line.Shares, line.PurchasePrice,
				notAvailable, notAvailable, notAvailable, notAvailable)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			line.Symbol,
			line.Shares,
			line.PurchasePrice,
			line.Price,
			line.Value,
			line.ProfitLoss.SignedString(),
			line.Change.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **Total** | | | | **%s** | **%s** | **%s** |\n",
		r.Value, r.ProfitLoss.SignedString(), r.Change.SignedString())

	fmt.Fprintf(&b, "\nInvested: %s\n", r.Invested)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Missing quotes\n\n")
		fmt.Fprintf(w, "%s excluded from the totals.\n", strings.Join(r.Missing, ", "))
		return len(r.Missing) > 0
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Unknown quotes\n\n")
		fmt.Fprintf(w, "%s not in the portfolio.\n", strings.Join(r.Unknown, ", "))
		return len(r.Unknown) > 0
	})
	return b.String()
}

// ProfitLossMarkdown renders the profit or loss of a single position.
func ProfitLossMarkdown(p stocks.Position, current, pl stocks.Money) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**: %s shares bought at %s, now at %s\n\n", p.Symbol, p.Shares, p.PurchasePrice, current)
	fmt.Fprintf(&b, "Profit/Loss: **%s** (%s)\n", pl.SignedString(), pl.Ratio(p.Cost()).SignedString())
	return b.String()
}
