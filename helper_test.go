package stocks

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// positionComparer compares positions by value, decimals included.
var positionComparer = cmp.Options{
	cmp.Comparer(func(a, b Quantity) bool { return a.Equal(b) }),
	cmp.Comparer(func(a, b Money) bool { return a.Equal(b) }),
}

// mustDecode decodes a store from a string or fails the test.
func mustDecode(t *testing.T, content string) *Store {
	t.Helper()
	s, err := Decode(strings.NewReader(content), "USD")
	if err != nil {
		t.Fatalf("Decode(%q) error = %v", content, err)
	}
	return s
}

// mustAdd adds a position or fails the test.
func mustAdd(t *testing.T, s *Store, symbol string, shares float64, price float64) {
	t.Helper()
	if _, err := s.AddOrUpdate(symbol, Q(shares), USD(price)); err != nil {
		t.Fatalf("AddOrUpdate(%q, %v, %v) error = %v", symbol, shares, price, err)
	}
}
