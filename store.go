package stocks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"maps"
	"os"
	"slices"

	"go.uber.org/zap"
)

// Store is the collection of all positions, indexed by symbol.
//
// A Store is not safe for concurrent use, and the file is not locked: a single
// process is expected to own it at a time.
type Store struct {
	filename  string
	currency  string
	positions map[string]Position
}

// NewStore returns an empty store whose prices are in 'currency'.
func NewStore(currency string) *Store {
	return &Store{
		currency:  currency,
		positions: make(map[string]Position),
	}
}

// Load reads the store from 'filename'.
//
// A missing file is an empty store. A file that exists but is not a valid
// mapping of symbol to position returns an error wrapping ErrCorruptData.
func Load(filename, currency string) (*Store, error) {
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		l.Debug("store file does not exist, starting with an empty store", zap.String("file", filename))
		s := NewStore(currency)
		s.filename = filename
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open store file %q: %w", filename, err)
	}
	defer f.Close()

	s, err := Decode(f, currency)
	if err != nil {
		return nil, fmt.Errorf("cannot load %q: %w", filename, err)
	}
	s.filename = filename
	l.Debug("store loaded", zap.String("file", filename), zap.Int("positions", s.Len()))
	return s, nil
}

// Save writes the full store back to the file it was loaded from, overwriting
// prior contents.
func (s *Store) Save() error {
	if s.filename == "" {
		return errors.New("cannot save store: no file associated")
	}
	var buf bytes.Buffer
	if err := Encode(&buf, s); err != nil {
		return fmt.Errorf("cannot encode store: %w", err)
	}
	if err := os.WriteFile(s.filename, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write store file %q: %w", s.filename, err)
	}
	l.Debug("store saved", zap.String("file", s.filename), zap.Int("positions", s.Len()))
	return nil
}

// Decode reads a store from its JSON form: an object mapping symbol to
// {"shares": number, "purchase_price": number}.
//
// Empty content is an empty store. Anything else that does not match the
// format returns an error wrapping ErrCorruptData.
func Decode(r io.Reader, currency string) (*Store, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	s := NewStore(currency)
	if len(bytes.TrimSpace(content)) == 0 {
		return s, nil
	}

	// jposition is the object read from the file using json parser.
	// Pointers tell a missing field from a zero.
	type jposition struct {
		Shares        *Quantity `json:"shares"`
		PurchasePrice *Money    `json:"purchase_price"`
	}

	dec := json.NewDecoder(bytes.NewReader(content))
	dec.DisallowUnknownFields()
	err = decodeObject(dec, func(symbol string) error {
		var jp *jposition
		if err := dec.Decode(&jp); err != nil {
			return fmt.Errorf("%q: %v", symbol, err)
		}
		if jp == nil {
			return fmt.Errorf("%q: expecting a position object, got null", symbol)
		}
		if jp.Shares == nil {
			return fmt.Errorf("%q: missing property %q", symbol, "shares")
		}
		if jp.PurchasePrice == nil {
			return fmt.Errorf("%q: missing property %q", symbol, "purchase_price")
		}
		p := Position{
			Symbol:        NormalizeSymbol(symbol),
			Shares:        *jp.Shares,
			PurchasePrice: jp.PurchasePrice.WithCurrency(currency),
		}
		if err := p.validate(); err != nil {
			return fmt.Errorf("%q: %v", symbol, err)
		}
		if s.Has(p.Symbol) {
			return fmt.Errorf("%q: symbol %q is already defined", symbol, p.Symbol)
		}
		s.positions[p.Symbol] = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptData, err)
	}
	return s, nil
}

// Encode writes the store in its JSON form, symbols sorted, indented for
// humans and diffs.
func Encode(w io.Writer, s *Store) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = w.Write(buf.Bytes())
	return err
}

// MarshalJSON writes positions in symbol order.
func (s *Store) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	for symbol := range s.Symbols() {
		w.Append(symbol, s.positions[symbol])
	}
	return w.MarshalJSON()
}

// Filename returns the file backing the store, if any.
func (s *Store) Filename() string { return s.filename }

// Currency returns the currency of all prices in the store.
func (s *Store) Currency() string { return s.currency }

// Len returns the number of positions.
func (s *Store) Len() int { return len(s.positions) }

// Has returns true if there is a position for 'symbol'.
func (s *Store) Has(symbol string) bool {
	_, exists := s.positions[NormalizeSymbol(symbol)]
	return exists
}

// Position returns the position for 'symbol'.
func (s *Store) Position(symbol string) (Position, bool) {
	p, exists := s.positions[NormalizeSymbol(symbol)]
	return p, exists
}

// Symbols iterates over all symbols in alphabetical order.
func (s *Store) Symbols() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(s.positions)))
}

// Positions returns all positions in symbol order.
func (s *Store) Positions() []Position {
	list := make([]Position, 0, len(s.positions))
	for symbol := range s.Symbols() {
		list = append(list, s.positions[symbol])
	}
	return list
}

// price returns 'm' in the store currency, or an error if it is in another currency.
func (s *Store) price(m Money) (Money, error) {
	if m.Currency() != "" && m.Currency() != s.currency {
		return Money{}, fmt.Errorf("%w: price in %s, the store is in %s", ErrInvalidInput, m.Currency(), s.currency)
	}
	return m.WithCurrency(s.currency), nil
}

// AddOrUpdate inserts a new position for 'symbol' or overwrites the existing one.
//
// It returns an error wrapping ErrInvalidInput, and leaves the store
// unchanged, for an empty symbol, negative shares or a non-positive price.
func (s *Store) AddOrUpdate(symbol string, shares Quantity, purchasePrice Money) (Position, error) {
	price, err := s.price(purchasePrice)
	if err != nil {
		return Position{}, err
	}
	p := Position{
		Symbol:        NormalizeSymbol(symbol),
		Shares:        shares,
		PurchasePrice: price,
	}
	if err := p.validate(); err != nil {
		return Position{}, err
	}
	s.positions[p.Symbol] = p
	l.Debug("position set", zap.String("symbol", p.Symbol), zap.Stringer("shares", p.Shares), zap.Stringer("price", p.PurchasePrice))
	return p, nil
}

// Buy adds 'shares' bought at 'price' to the position for 'symbol', creating
// it if needed. The purchase price becomes the share weighted average of the
// existing position and the new shares.
func (s *Store) Buy(symbol string, shares Quantity, price Money) (Position, error) {
	if !shares.IsPositive() {
		return Position{}, fmt.Errorf("%w: %s: bought shares must be positive, got %v", ErrInvalidInput, NormalizeSymbol(symbol), shares)
	}
	old, exists := s.Position(symbol)
	if !exists {
		return s.AddOrUpdate(symbol, shares, price)
	}
	price, err := s.price(price)
	if err != nil {
		return Position{}, err
	}
	if !price.IsPositive() {
		return Position{}, fmt.Errorf("%w: %s: purchase price must be positive, got %v", ErrInvalidInput, old.Symbol, price.value)
	}
	total := old.Shares.Add(shares)
	average := old.Cost().Add(price.Mul(shares)).Div(total)
	return s.AddOrUpdate(old.Symbol, total, average)
}

// Remove deletes the position for 'symbol'.
func (s *Store) Remove(symbol string) error {
	symbol = NormalizeSymbol(symbol)
	if _, exists := s.positions[symbol]; !exists {
		return fmt.Errorf("%w: no position for %q", ErrNotFound, symbol)
	}
	delete(s.positions, symbol)
	l.Debug("position removed", zap.String("symbol", symbol))
	return nil
}

// ProfitLoss returns (current - purchase price) * shares for 'symbol'.
//
// It returns an error wrapping ErrNotFound if there is no such position, or
// ErrInvalidInput for a negative current price.
func (s *Store) ProfitLoss(symbol string, current Money) (Money, error) {
	p, exists := s.Position(symbol)
	if !exists {
		return Money{}, fmt.Errorf("%w: no position for %q", ErrNotFound, NormalizeSymbol(symbol))
	}
	current, err := s.price(current)
	if err != nil {
		return Money{}, err
	}
	if current.IsNegative() {
		return Money{}, fmt.Errorf("%w: %s: current price must not be negative, got %v", ErrInvalidInput, p.Symbol, current.value)
	}
	return p.ProfitLoss(current), nil
}
