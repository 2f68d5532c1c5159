// Package renderer renders stock reports as markdown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/stocks"
)

// PositionsMarkdown renders all positions in the store with their cost basis.
func PositionsMarkdown(s *stocks.Store) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Positions\n\n")
	if s.Len() == 0 {
		fmt.Fprintf(&b, "No positions in %s.\n", s.Filename())
		return b.String()
	}

	fmt.Fprintln(&b, "| Symbol | Shares | Cost/Share | Cost Basis |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	total := stocks.M(0, s.Currency())
	for _, p := range s.Positions() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			p.Symbol,
			p.Shares,
			p.PurchasePrice,
			p.Cost(),
		)
		total = total.Add(p.Cost())
	}
	fmt.Fprintf(&b, "\nTotal cost basis: **%s**\n", total)
	return b.String()
}
