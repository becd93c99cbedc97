package lottie

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Canonical serializes a document to its canonical compact JSON form: object
// keys sorted, no insignificant whitespace. Size accounting and file output
// both go through this one routine so the byte count reported by the
// optimizer is exactly what gets written.
func Canonical(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("serialize animation: %w", err)
	}
	return b, nil
}

// ByteSize reports the UTF-8 byte length of the canonical serialization,
// not the in-memory footprint.
func ByteSize(v any) (int, error) {
	b, err := Canonical(v)
	if err != nil {
		return 0, err
	}
	return len(b), nil
}
