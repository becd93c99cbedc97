package optimizer

import (
	"reflect"
	"testing"
)

func linearHandle() map[string]any {
	return map[string]any{"x": 0.5, "y": 0.5}
}

func TestSimplifyKeyframesDropsLinearHandles(t *testing.T) {
	doc := map[string]any{
		"k": []any{
			map[string]any{"t": float64(0), "s": []any{float64(0)}, "i": linearHandle(), "o": map[string]any{"x": 0.501, "y": 0.499}},
			map[string]any{"t": float64(10), "s": []any{float64(50)}, "i": map[string]any{"x": 0.8, "y": 0.2}},
		},
	}
	out := simplifyKeyframes(doc).(map[string]any)
	kfs := out["k"].([]any)
	first := kfs[0].(map[string]any)
	if _, ok := first["i"]; ok {
		t.Errorf("linear in-handle kept")
	}
	if _, ok := first["o"]; ok {
		t.Errorf("near-linear out-handle kept (within 0.01 of 0.5)")
	}
	second := kfs[1].(map[string]any)
	if _, ok := second["i"]; !ok {
		t.Errorf("eased in-handle dropped")
	}
	if first["t"] != float64(0) || second["t"] != float64(10) {
		t.Errorf("keyframe fields altered")
	}
}

func TestSimplifyKeyframesArrayHandles(t *testing.T) {
	doc := map[string]any{
		"k": []any{
			map[string]any{"t": float64(0), "i": map[string]any{"x": []any{0.5, 0.5}, "y": []any{0.5, 0.5}}},
			map[string]any{"t": float64(5), "i": map[string]any{"x": []any{0.5, 0.9}, "y": []any{0.5, 0.5}}},
		},
	}
	out := simplifyKeyframes(doc).(map[string]any)
	kfs := out["k"].([]any)
	if _, ok := kfs[0].(map[string]any)["i"]; ok {
		t.Errorf("all-linear array handle kept")
	}
	if _, ok := kfs[1].(map[string]any)["i"]; !ok {
		t.Errorf("partially eased array handle dropped")
	}
}

func TestSimplifyKeyframesIgnoresPlainArrays(t *testing.T) {
	doc := map[string]any{
		"colors": []any{0.1, 0.2, 0.3},
		"points": []any{map[string]any{"x": 0.5, "i": linearHandle()}}, // no "t" in first element
	}
	before := map[string]any{
		"colors": []any{0.1, 0.2, 0.3},
		"points": []any{map[string]any{"x": 0.5, "i": linearHandle()}},
	}
	out := simplifyKeyframes(doc).(map[string]any)
	if !reflect.DeepEqual(out, before) {
		t.Fatalf("non-keyframe arrays altered: %v", out)
	}
}

func TestCollapseStaticKeyframes(t *testing.T) {
	doc := map[string]any{
		"o": map[string]any{
			"a": float64(1),
			"k": []any{
				map[string]any{"t": float64(0), "s": []any{float64(100)}},
				map[string]any{"t": float64(15), "s": []any{float64(100)}},
				map[string]any{"t": float64(30), "s": []any{float64(100)}},
			},
		},
	}
	out := collapseStaticKeyframes(doc).(map[string]any)
	prop := out["o"].(map[string]any)
	if a, _ := prop["a"].(int); a != 0 {
		t.Fatalf("a = %v, want 0", prop["a"])
	}
	if !reflect.DeepEqual(prop["k"], []any{float64(100)}) {
		t.Fatalf("k = %v, want [100]", prop["k"])
	}
}

func TestCollapseStaticKeyframesVaryingValues(t *testing.T) {
	doc := map[string]any{
		"o": map[string]any{
			"a": float64(1),
			"k": []any{
				map[string]any{"t": float64(0), "s": []any{float64(0)}},
				map[string]any{"t": float64(30), "s": []any{float64(100)}},
			},
		},
	}
	out := collapseStaticKeyframes(doc).(map[string]any)
	prop := out["o"].(map[string]any)
	if a, _ := prop["a"].(float64); a != 1 {
		t.Fatalf("animated property collapsed despite varying values")
	}
}

func TestCollapseStaticKeyframesMalformed(t *testing.T) {
	// Keyframes missing "s" pass through unchanged.
	doc := map[string]any{
		"o": map[string]any{
			"a": float64(1),
			"k": []any{map[string]any{"t": float64(0)}},
		},
	}
	out := collapseStaticKeyframes(doc).(map[string]any)
	if a, _ := out["o"].(map[string]any)["a"].(float64); a != 1 {
		t.Fatalf("malformed keyframes collapsed")
	}
}
