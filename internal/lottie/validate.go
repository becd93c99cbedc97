package lottie

// requiredNumberFields are the numeric top-level fields every valid
// animation carries alongside the version string.
var requiredNumberFields = []string{
	FieldFrameRate,
	FieldInPoint,
	FieldOutPoint,
	FieldWidth,
	FieldHeight,
}

// Validate reports whether v is structurally a Lottie animation: a non-null
// object with a string version and numeric frame rate, in/out points, and
// dimensions. It is a pure gate for uploads and does not check internal
// consistency of layers or assets.
func Validate(v any) bool {
	doc, ok := v.(map[string]any)
	if !ok || doc == nil {
		return false
	}
	if _, ok := doc[FieldVersion].(string); !ok {
		return false
	}
	for _, field := range requiredNumberFields {
		if _, ok := Number(doc[field]); !ok {
			return false
		}
	}
	return true
}
