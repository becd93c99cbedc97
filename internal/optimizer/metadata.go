package optimizer

import "github.com/marigoldlabs/lottieslim/internal/lottie"

// metadataFields are top-level bookkeeping fields players ignore: markers,
// font/character tables embedded by editors, the generic metadata blob, and
// author/description/timestamp fields some exporters add.
var metadataFields = map[string]bool{
	"markers":     true,
	"fonts":       true,
	"chars":       true,
	"meta":        true,
	"metadata":    true,
	"author":      true,
	"description": true,
	"generator":   true,
	"created":     true,
	"modified":    true,
}

// stripMetadata removes top-level metadata fields. No recursion: these only
// appear at the document root.
func stripMetadata(doc lottie.Document) lottie.Document {
	out := make(lottie.Document, len(doc))
	for k, v := range doc {
		if metadataFields[k] {
			continue
		}
		out[k] = v
	}
	return out
}
