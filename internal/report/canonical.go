package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// Canonicalize parses raw JSON and re-serializes it in canonical form:
// object keys in sorted order, UTF-8 text unescaped, numbers preserved
// exactly as written. Canonical output makes log records stable and
// diffable regardless of the key order a reporting client happened to send.
func Canonicalize(raw []byte) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var value any
	if err := dec.Decode(&value); err != nil {
		return "", err
	}
	if dec.More() {
		return "", errors.New("trailing data after JSON value")
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "", err
	}

	// Encoder appends a newline; the log record carries its own framing.
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
