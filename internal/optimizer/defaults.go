package optimizer

import "github.com/marigoldlabs/lottieslim/internal/lottie"

// cosmeticFields carry no rendering effect: editor names, match names,
// class/id hooks, and the internal index hint.
var cosmeticFields = map[string]bool{
	"nm":  true,
	"mn":  true,
	"cl":  true,
	"ln":  true,
	"ind": true,
	"ix":  true,
}

// noOpDefaults maps fields to the value at which they are a no-op: the
// player assumes exactly this value when the field is absent.
var noOpDefaults = map[string]float64{
	"ddd": 0, // 3-D flag
	"ao":  0, // auto-orient
	"sr":  1, // stretch ratio
	"bm":  0, // blend mode
}

// removeDefaults recursively drops object entries the player ignores:
// cosmetic fields, flags at their assumed default, hidden-flag false, and
// null values.
func removeDefaults(v any) any {
	return lottie.Transform(v, func(n any) any {
		m, ok := n.(map[string]any)
		if !ok {
			return n
		}
		for k, val := range m {
			if isDefaultEntry(k, val) {
				delete(m, k)
			}
		}
		return m
	})
}

func isDefaultEntry(key string, val any) bool {
	if val == nil {
		return true
	}
	if cosmeticFields[key] {
		return true
	}
	if def, ok := noOpDefaults[key]; ok {
		if f, isNum := lottie.Number(val); isNum && f == def {
			return true
		}
	}
	if key == "hd" {
		if hidden, ok := val.(bool); ok && !hidden {
			return true
		}
	}
	return false
}
