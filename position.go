package stocks

import (
	"fmt"
	"strings"
)

// Position is a number of shares held in a stock, bought at a given price per share.
type Position struct {
	Symbol        string
	Shares        Quantity
	PurchasePrice Money
}

// NormalizeSymbol returns the canonical form of a stock symbol: trimmed and upper case.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// Cost returns the cost basis of the position.
func (p Position) Cost() Money { return p.PurchasePrice.Mul(p.Shares) }

// Value returns the value of the position at the current price.
func (p Position) Value(current Money) Money { return current.Mul(p.Shares) }

// ProfitLoss returns (current - purchase price) * shares.
func (p Position) ProfitLoss(current Money) Money {
	return current.Sub(p.PurchasePrice).Mul(p.Shares)
}

// validate checks the position invariants: a symbol, shares >= 0 and price > 0.
func (p Position) validate() error {
	if p.Symbol == "" {
		return fmt.Errorf("%w: empty symbol", ErrInvalidInput)
	}
	if p.Shares.IsNegative() {
		return fmt.Errorf("%w: %s: shares must not be negative, got %v", ErrInvalidInput, p.Symbol, p.Shares)
	}
	if !p.PurchasePrice.IsPositive() {
		return fmt.Errorf("%w: %s: purchase price must be positive, got %v", ErrInvalidInput, p.Symbol, p.PurchasePrice.value)
	}
	return nil
}

// MarshalJSON writes the position in the store file format, the symbol is the key of the enclosing object.
func (p Position) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("shares", p.Shares)
	w.Append("purchase_price", p.PurchasePrice)
	return w.MarshalJSON()
}
