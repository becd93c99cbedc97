package optimizer

import "github.com/marigoldlabs/lottieslim/internal/lottie"

// removeEmptyGroups drops degenerate shape groups: within any array, objects
// tagged ty:"gr" whose item list has at most one entry. Children are
// processed first, so a group emptied by removing its own nested groups is
// itself removed.
func removeEmptyGroups(v any) any {
	return lottie.Transform(v, func(n any) any {
		arr, ok := n.([]any)
		if !ok {
			return n
		}
		out := make([]any, 0, len(arr))
		for _, item := range arr {
			if isEmptyGroup(item) {
				continue
			}
			out = append(out, item)
		}
		return out
	})
}

func isEmptyGroup(v any) bool {
	m, ok := v.(map[string]any)
	if !ok {
		return false
	}
	if ty, ok := m["ty"].(string); !ok || ty != "gr" {
		return false
	}
	items, ok := m["it"].([]any)
	if !ok {
		return false
	}
	return len(items) <= 1
}
