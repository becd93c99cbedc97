package optimizer

import (
	"math"
	"reflect"

	"github.com/marigoldlabs/lottieslim/internal/lottie"
)

// linearHandleTolerance bounds how far a bezier control value may sit from
// 0.5 while still counting as the default linear-ish handle.
const linearHandleTolerance = 0.01

// isKeyframeSequence recognizes a keyframe array by its first element being
// an object with a time field. This is a heuristic, not a schema guarantee:
// arrays that coincidentally start with a t-carrying object are treated as
// keyframes too, matching established optimizer behavior.
func isKeyframeSequence(arr []any) bool {
	if len(arr) == 0 {
		return false
	}
	first, ok := arr[0].(map[string]any)
	if !ok {
		return false
	}
	_, ok = first["t"]
	return ok
}

// simplifyKeyframes drops redundant bezier easing handles from keyframes:
// an in-handle ("i") or out-handle ("o") whose x and y control values all
// sit within tolerance of 0.5 encodes near-linear easing the player assumes
// anyway. Everything else passes through unchanged.
func simplifyKeyframes(v any) any {
	return lottie.Transform(v, func(n any) any {
		arr, ok := n.([]any)
		if !ok || !isKeyframeSequence(arr) {
			return n
		}
		for _, kf := range arr {
			m, ok := kf.(map[string]any)
			if !ok {
				continue
			}
			if isLinearHandle(m["i"]) {
				delete(m, "i")
			}
			if isLinearHandle(m["o"]) {
				delete(m, "o")
			}
		}
		return arr
	})
}

func isLinearHandle(v any) bool {
	h, ok := v.(map[string]any)
	if !ok {
		return false
	}
	xs, ok := controlValues(h["x"])
	if !ok {
		return false
	}
	ys, ok := controlValues(h["y"])
	if !ok {
		return false
	}
	for _, c := range append(xs, ys...) {
		if math.Abs(c-0.5) > linearHandleTolerance {
			return false
		}
	}
	return true
}

// controlValues flattens a handle coordinate, which exporters write either
// as a scalar or as an array of per-dimension values.
func controlValues(v any) ([]float64, bool) {
	if f, ok := lottie.Number(v); ok {
		return []float64{f}, true
	}
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return nil, false
	}
	out := make([]float64, 0, len(arr))
	for _, e := range arr {
		f, ok := lottie.Number(e)
		if !ok {
			return nil, false
		}
		out = append(out, f)
	}
	return out, true
}

// collapseStaticKeyframes rewrites an animated property whose keyframes all
// carry the same start value into the equivalent static property. Aggressive
// only in the sense that it discards easing/timing data that had no visible
// effect; the held value is preserved exactly.
func collapseStaticKeyframes(v any) any {
	return lottie.Transform(v, func(n any) any {
		m, ok := n.(map[string]any)
		if !ok {
			return n
		}
		animated, ok := lottie.Number(m["a"])
		if !ok || animated != 1 {
			return n
		}
		keyframes, ok := m["k"].([]any)
		if !ok || !isKeyframeSequence(keyframes) {
			return n
		}
		value, constant := constantStartValue(keyframes)
		if !constant {
			return n
		}
		return map[string]any{"a": 0, "k": value}
	})
}

// constantStartValue reports the shared start value when every keyframe
// carries a deep-equal "s"; malformed keyframes disqualify the collapse.
func constantStartValue(keyframes []any) (any, bool) {
	var value any
	for i, kf := range keyframes {
		m, ok := kf.(map[string]any)
		if !ok {
			return nil, false
		}
		s, ok := m["s"]
		if !ok {
			return nil, false
		}
		if i == 0 {
			value = s
			continue
		}
		if !reflect.DeepEqual(value, s) {
			return nil, false
		}
	}
	return value, value != nil
}
