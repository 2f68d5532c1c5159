package stocks

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// this file contains functions to import positions from JSON documents that
// are not in the store format: exports from a broker, or the list format of
// older tracking scripts.

// ImportOptions tells where positions are in a JSON document, as jsonpath
// expressions. Rows selects the list of rows in the document, the other
// expressions are evaluated on each row.
type ImportOptions struct {
	Rows   string
	Symbol string
	Shares string
	Price  string
}

// LegacyImportOptions reads the list format of older tracking scripts:
//
//	[ {"symbol": "AAPL", "shares": 3.0, "price": 175.25} ]
//
// where "price" is the cost basis per share.
var LegacyImportOptions = ImportOptions{
	Rows:   "$[*]",
	Symbol: "$.symbol",
	Shares: "$.shares",
	Price:  "$.price",
}

// ImportedRow is a position read from an import document, not yet validated.
type ImportedRow struct {
	Symbol string
	Shares Quantity
	Price  Money
}

// DecodeImport reads all rows from the JSON document in 'r'.
func DecodeImport(r io.Reader, opts ImportOptions, currency string) ([]ImportedRow, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber() // keep all digits
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: import document: %v", ErrCorruptData, err)
	}

	jrows, err := jsonpath.Get(opts.Rows, doc)
	if err != nil {
		return nil, fmt.Errorf("%w: rows %q: %v", ErrCorruptData, opts.Rows, err)
	}
	list, ok := jrows.([]any)
	if !ok {
		// a single row
		list = []any{jrows}
	}

	rows := make([]ImportedRow, 0, len(list))
	for i, jrow := range list {
		row, err := decodeImportRow(jrow, opts, currency)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrCorruptData, i+1, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func decodeImportRow(jrow any, opts ImportOptions, currency string) (row ImportedRow, err error) {
	jsymbol, err := evalPath(opts.Symbol, jrow)
	if err != nil {
		return row, err
	}
	symbol, ok := jsymbol.(string)
	if !ok {
		return row, fmt.Errorf("%q must be a string, got %v", opts.Symbol, jsymbol)
	}
	shares, err := getDecimal(opts.Shares, jrow)
	if err != nil {
		return row, err
	}
	price, err := getDecimal(opts.Price, jrow)
	if err != nil {
		return row, err
	}
	return ImportedRow{
		Symbol: NormalizeSymbol(symbol),
		Shares: Q(shares),
		Price:  M(price, currency),
	}, nil
}

// evalPath evaluates a jsonpath expression on 'value'.
func evalPath(path string, value any) (any, error) {
	jval, err := jsonpath.Get(path, value)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		jval = jlist[0]
	}
	return jval, nil
}

// getDecimal evaluates a jsonpath expression and reads the result as a
// number. Numbers written as strings are accepted, some exports do that.
func getDecimal(path string, value any) (decimal.Decimal, error) {
	jval, err := evalPath(path, value)
	if err != nil {
		return decimal.Zero, err
	}
	switch v := jval.(type) {
	case json.Number:
		return decimal.NewFromString(v.String())
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(v), ",", ""))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%q: invalid number %q: %w", path, v, err)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("%q must be a number, got %v", path, jval)
	}
}

// Import applies 'rows' to the store. By default each row overwrites the
// position (AddOrUpdate), with 'accumulate' rows are added to it (Buy).
//
// Import is all or nothing: on the first invalid row the store is restored
// and the error returned.
func (s *Store) Import(rows []ImportedRow, accumulate bool) (err error) {
	backup := maps.Clone(s.positions)
	defer func() {
		if err != nil {
			s.positions = backup
		}
	}()

	for i, row := range rows {
		if accumulate {
			_, err = s.Buy(row.Symbol, row.Shares, row.Price)
		} else {
			_, err = s.AddOrUpdate(row.Symbol, row.Shares, row.Price)
		}
		if err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	l.Debug("rows imported", zap.Int("rows", len(rows)), zap.Bool("accumulate", accumulate))
	return nil
}
