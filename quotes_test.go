package stocks

import (
	"errors"
	"strings"
	"testing"
)

func TestParseQuote(t *testing.T) {
	symbol, price, err := ParseQuote(" aapl=190.5", "USD")
	if err != nil {
		t.Fatalf("ParseQuote() error = %v", err)
	}
	if symbol != "AAPL" {
		t.Errorf("ParseQuote() symbol = %q, want %q", symbol, "AAPL")
	}
	if !price.Equal(USD(190.5)) {
		t.Errorf("ParseQuote() price = %v, want %v", price, USD(190.5))
	}

	for _, arg := range []string{"AAPL", "AAPL=", "AAPL=abc"} {
		if _, _, err := ParseQuote(arg, "USD"); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseQuote(%q) error = %v, want ErrInvalidInput", arg, err)
		}
	}
}

func TestQuotes_Set(t *testing.T) {
	q := make(Quotes)
	if err := q.Set("msft", USD(410)); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, ok := q.Get("MSFT"); !ok {
		t.Errorf("Get(MSFT) not found after Set(msft)")
	}
	if err := q.Set("MSFT", USD(-1)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Set() with a negative price error = %v, want ErrInvalidInput", err)
	}
	if err := q.Set(" ", USD(1)); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Set() with an empty symbol error = %v, want ErrInvalidInput", err)
	}
}

func TestDecodeQuotes(t *testing.T) {
	q, err := DecodeQuotes(strings.NewReader(`{"AAPL": 190.5, "msft": 410}`), "USD")
	if err != nil {
		t.Fatalf("DecodeQuotes() error = %v", err)
	}
	if len(q) != 2 {
		t.Errorf("len(DecodeQuotes()) = %d, want 2", len(q))
	}
	if m, _ := q.Get("MSFT"); !m.Equal(USD(410)) {
		t.Errorf("Get(MSFT) = %v, want %v", m, USD(410))
	}

	for _, content := range []string{
		`[190.5]`,
		`{"AAPL": "x"}`,
		`{"AAPL": -1}`,
		`{"AAPL": 1, "AAPL": 2}`,
		`{"aapl": 1, "AAPL": 2}`,
		`{"AAPL": 1} 2`,
	} {
		if _, err := DecodeQuotes(strings.NewReader(content), "USD"); !errors.Is(err, ErrCorruptData) {
			t.Errorf("DecodeQuotes(%q) error = %v, want ErrCorruptData", content, err)
		}
	}
}
