package stocks

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// decodeObject reads the JSON object in 'dec' key by key, in document order,
// so that repeated keys are seen. 'value' is called for each key and must
// decode the key's value from 'dec'.
//
// Anything after the object, but white space, is an error.
func decodeObject(dec *json.Decoder, value func(key string) error) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		if tok == nil {
			tok = "null"
		}
		return fmt.Errorf("expecting an object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expecting an object key, got %v", tok)
		}
		if err := value(key); err != nil {
			return err
		}
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return errors.New("unexpected content after the object")
	}
	return nil
}
