// Package lottie defines the dynamic document model for Lottie animation
// JSON and the primitives every optimization pass is built on: parsing,
// canonical serialization, structural validation, and pure tree traversal.
package lottie

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// Document is a parsed animation: a JSON object tree of string-keyed maps,
// slices, and scalars. No schema is enforced beyond the required top-level
// fields checked by Validate; passes inspect shapes permissively.
type Document = map[string]any

// Well-known field names the optimizer reasons about.
const (
	FieldVersion   = "v"
	FieldFrameRate = "fr"
	FieldInPoint   = "ip"
	FieldOutPoint  = "op"
	FieldWidth     = "w"
	FieldHeight    = "h"
	FieldLayers    = "layers"
	FieldAssets    = "assets"
	FieldAssetID   = "id"
	FieldRefID     = "refId"
)

// Parse decodes UTF-8 JSON text into a Document.
func Parse(data []byte) (Document, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parse animation: %w", err)
	}
	doc, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("parse animation: top-level value is not an object")
	}
	return doc, nil
}

// Number reports v as a float64 when it is any JSON-representable numeric
// value. Decoded documents carry float64; hand-built trees may carry ints.
func Number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
