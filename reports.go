package stocks

import (
	"maps"
	"slices"
)

// ReportLine is one position of a Report, valued at its quote when there is one.
type ReportLine struct {
	Position
	Quoted     bool
	Price      Money   // current price, zero if not quoted
	Value      Money   // current value, zero if not quoted
	ProfitLoss Money   // zero if not quoted
	Change     Percent // ProfitLoss relative to the position cost
}

// Report is a view of all positions valued at a set of quotes.
type Report struct {
	Currency string
	Lines    []ReportLine
	// Invested is the cost basis of all positions, quoted or not.
	Invested Money
	// Totals only include quoted positions.
	Cost       Money
	Value      Money
	ProfitLoss Money
	Change     Percent
	// Missing lists the symbols without a quote.
	Missing []string
	// Unknown lists the quoted symbols that are not in the store, sorted.
	Unknown []string
}

// NewReport values every position in the store at 'quotes'.
func (s *Store) NewReport(quotes Quotes) *Report {
	r := &Report{
		Currency:   s.currency,
		Invested:   M(0, s.currency),
		Cost:       M(0, s.currency),
		Value:      M(0, s.currency),
		ProfitLoss: M(0, s.currency),
	}
	for _, p := range s.Positions() {
		line := ReportLine{Position: p}
		r.Invested = r.Invested.Add(p.Cost())

		price, ok := quotes.Get(p.Symbol)
		if !ok {
			r.Missing = append(r.Missing, p.Symbol)
			r.Lines = append(r.Lines, line)
			continue
		}
		price = price.WithCurrency(s.currency)
		line.Quoted = true
		line.Price = price
		line.Value = p.Value(price)
		line.ProfitLoss = p.ProfitLoss(price)
		line.Change = line.ProfitLoss.Ratio(p.Cost())
		r.Lines = append(r.Lines, line)

		r.Cost = r.Cost.Add(p.Cost())
		r.Value = r.Value.Add(line.Value)
		r.ProfitLoss = r.ProfitLoss.Add(line.ProfitLoss)
	}
	r.Change = r.ProfitLoss.Ratio(r.Cost)

	for _, symbol := range slices.Sorted(maps.Keys(quotes)) {
		if !s.Has(symbol) {
			r.Unknown = append(r.Unknown, NormalizeSymbol(symbol))
		}
	}
	return r
}
