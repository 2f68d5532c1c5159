package stocks

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// Quotes holds the current price of some symbols, as supplied by the user.
type Quotes map[string]Money

// Get returns the quote for 'symbol'.
func (q Quotes) Get(symbol string) (Money, bool) {
	m, ok := q[NormalizeSymbol(symbol)]
	return m, ok
}

// Set records 'price' as the current price of 'symbol'.
func (q Quotes) Set(symbol string, price Money) error {
	symbol = NormalizeSymbol(symbol)
	if symbol == "" {
		return fmt.Errorf("%w: empty symbol in quote", ErrInvalidInput)
	}
	if price.IsNegative() {
		return fmt.Errorf("%w: %s: quote must not be negative, got %v", ErrInvalidInput, symbol, price.value)
	}
	q[symbol] = price
	return nil
}

// ParseQuote parses a "SYMBOL=PRICE" argument.
func ParseQuote(arg, currency string) (symbol string, price Money, err error) {
	symbol, value, found := strings.Cut(arg, "=")
	if !found {
		return "", Money{}, fmt.Errorf("%w: quote %q must be in the form SYMBOL=PRICE", ErrInvalidInput, arg)
	}
	price, err = ParseMoney(strings.TrimSpace(value), currency)
	if err != nil {
		return "", Money{}, fmt.Errorf("%w: quote %q: %v", ErrInvalidInput, arg, err)
	}
	return NormalizeSymbol(symbol), price, nil
}

// DecodeQuotes reads quotes from a JSON object mapping symbol to price,
// like {"AAPL": 190.5, "MSFT": 410}.
func DecodeQuotes(r io.Reader, currency string) (Quotes, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	q := make(Quotes)
	if len(bytes.TrimSpace(content)) == 0 {
		return q, nil
	}
	dec := json.NewDecoder(bytes.NewReader(content))
	err = decodeObject(dec, func(symbol string) error {
		var price decimal.Decimal
		if err := dec.Decode(&price); err != nil {
			return fmt.Errorf("%q: %v", symbol, err)
		}
		if _, exists := q.Get(symbol); exists {
			return fmt.Errorf("%q: symbol %q is already defined", symbol, NormalizeSymbol(symbol))
		}
		return q.Set(symbol, M(price, currency))
	})
	if err != nil {
		return nil, fmt.Errorf("%w: quotes: %v", ErrCorruptData, err)
	}
	return q, nil
}
