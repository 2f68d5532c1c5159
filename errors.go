package stocks

import "errors"

// Every error returned by the store wraps one of these, test with errors.Is.
var (
	// ErrCorruptData reports a store file that exists but cannot be read as a
	// mapping of symbol to position.
	ErrCorruptData = errors.New("corrupt data")
	// ErrInvalidInput reports a value rejected before any mutation, like a
	// negative number of shares or a non-positive price.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound reports an unknown symbol.
	ErrNotFound = errors.New("not found")
)
