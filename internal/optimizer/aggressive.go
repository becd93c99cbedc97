package optimizer

import "github.com/marigoldlabs/lottieslim/internal/lottie"

// removeExpressions drops attached script expressions at every nesting
// level. Expressions live under an "x" key holding a string; bezier handle
// objects also use "x" but carry numbers, so the string check is what keeps
// them intact.
func removeExpressions(v any) any {
	return lottie.Transform(v, func(n any) any {
		m, ok := n.(map[string]any)
		if !ok {
			return n
		}
		if _, isString := m["x"].(string); isString {
			delete(m, "x")
		}
		return m
	})
}

// removeEffects drops whole effect stacks ("ef" arrays) at every nesting
// level, not individual effect parameters.
func removeEffects(v any) any {
	return lottie.Transform(v, func(n any) any {
		m, ok := n.(map[string]any)
		if !ok {
			return n
		}
		if _, isArray := m["ef"].([]any); isArray {
			delete(m, "ef")
		}
		return m
	})
}

// transformDefaults maps each transform sub-property to the per-component
// value the renderer assumes when the property is absent. Array-valued
// properties count as default when every component equals it.
var transformDefaults = map[string]float64{
	"o": 100, // opacity
	"r": 0,   // rotation
	"p": 0,   // position
	"a": 0,   // anchor point
	"s": 100, // scale
}

// collapseTransforms removes non-animated transform sub-properties that sit
// at their renderer-assumed default, within every layer transform ("ks")
// object.
func collapseTransforms(v any) any {
	return lottie.Transform(v, func(n any) any {
		m, ok := n.(map[string]any)
		if !ok {
			return n
		}
		ks, ok := m["ks"].(map[string]any)
		if !ok {
			return m
		}
		for key, def := range transformDefaults {
			prop, ok := ks[key].(map[string]any)
			if !ok {
				continue
			}
			if isStaticDefault(prop, def) {
				delete(ks, key)
			}
		}
		return m
	})
}

// isStaticDefault reports whether prop is a non-animated property whose
// static value equals def, in scalar or array form.
func isStaticDefault(prop map[string]any, def float64) bool {
	if a, ok := lottie.Number(prop["a"]); ok && a != 0 {
		return false
	}
	if f, ok := lottie.Number(prop["k"]); ok {
		return f == def
	}
	arr, ok := prop["k"].([]any)
	if !ok || len(arr) == 0 {
		return false
	}
	for _, e := range arr {
		f, ok := lottie.Number(e)
		if !ok || f != def {
			return false
		}
	}
	return true
}
