package lottie

// DeepCopy returns a structurally independent copy of a JSON-like value.
// Mutating the copy never aliases into the source tree, which is what keeps
// the optimization passes pure.
func DeepCopy(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, val := range node {
			out[k] = DeepCopy(val)
		}
		return out
	case []any:
		out := make([]any, len(node))
		for i, val := range node {
			out[i] = DeepCopy(val)
		}
		return out
	default:
		// Scalars (float64, string, bool, nil) are immutable values.
		return v
	}
}

// Transform rebuilds the tree bottom-up, applying fn to every node after its
// children have been rebuilt. fn receives freshly constructed maps/slices and
// may return a replacement node (or the node unchanged). The input is never
// mutated.
func Transform(v any, fn func(any) any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for k, val := range node {
			out[k] = Transform(val, fn)
		}
		return fn(out)
	case []any:
		out := make([]any, 0, len(node))
		for _, val := range node {
			out = append(out, Transform(val, fn))
		}
		return fn(out)
	default:
		return fn(v)
	}
}

// Walk visits every node of the tree read-only, parents before children.
func Walk(v any, visit func(any)) {
	visit(v)
	switch node := v.(type) {
	case map[string]any:
		for _, val := range node {
			Walk(val, visit)
		}
	case []any:
		for _, val := range node {
			Walk(val, visit)
		}
	}
}
