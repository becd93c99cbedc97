package optimizer

import (
	"reflect"
	"testing"

	"github.com/marigoldlabs/lottieslim/internal/lottie"
)

func baseDoc() lottie.Document {
	return lottie.Document{
		"v":  "5.5.0",
		"fr": float64(30),
		"ip": float64(0),
		"op": float64(30),
		"w":  float64(100),
		"h":  float64(100),
	}
}

func TestStripMetadata(t *testing.T) {
	doc := baseDoc()
	doc["markers"] = []any{map[string]any{"tm": float64(0)}}
	doc["fonts"] = map[string]any{"list": []any{}}
	doc["chars"] = []any{}
	doc["meta"] = map[string]any{"g": "exporter"}
	doc["author"] = "someone"
	doc["layers"] = []any{}

	out := stripMetadata(doc)
	for _, k := range []string{"markers", "fonts", "chars", "meta", "author"} {
		if _, ok := out[k]; ok {
			t.Errorf("field %q survived stripMetadata", k)
		}
	}
	if !lottie.Validate(out) {
		t.Fatalf("required fields lost")
	}
	if _, ok := out["layers"]; !ok {
		t.Fatalf("layers dropped")
	}
}

func TestRemoveHiddenLayers(t *testing.T) {
	doc := baseDoc()
	doc["layers"] = []any{
		map[string]any{"ty": float64(3), "nm": "null placeholder"},
		map[string]any{"ty": float64(4), "nm": "keep-1"},
		map[string]any{"ty": float64(4), "nm": "hide me", "hd": true},
		map[string]any{"ty": float64(4), "nm": "keep-2", "hd": false},
	}
	doc["assets"] = []any{
		map[string]any{
			"id": "comp_0",
			"layers": []any{
				map[string]any{"ty": float64(4), "hd": true},
				map[string]any{"ty": float64(4), "nm": "inner"},
			},
		},
	}

	out := removeHiddenLayers(doc)
	layers := out["layers"].([]any)
	if len(layers) != 2 {
		t.Fatalf("got %d layers, want 2", len(layers))
	}
	if layers[0].(map[string]any)["nm"] != "keep-1" || layers[1].(map[string]any)["nm"] != "keep-2" {
		t.Fatalf("surviving layer order not preserved: %v", layers)
	}
	inner := out["assets"].([]any)[0].(map[string]any)["layers"].([]any)
	if len(inner) != 1 || inner[0].(map[string]any)["nm"] != "inner" {
		t.Fatalf("asset layer list not filtered: %v", inner)
	}
	// input untouched
	if len(doc["layers"].([]any)) != 4 {
		t.Fatalf("input mutated")
	}
}

func TestRemoveEmptyGroups(t *testing.T) {
	shape := map[string]any{"ty": "sh"}
	doc := baseDoc()
	doc["layers"] = []any{
		map[string]any{
			"ty": float64(4),
			"shapes": []any{
				map[string]any{"ty": "gr", "it": []any{shape}},               // degenerate
				map[string]any{"ty": "gr", "it": []any{shape, shape, shape}}, // kept
				map[string]any{"ty": "gr", "it": []any{}},                    // degenerate
			},
		},
	}
	out := removeEmptyGroups(doc).(map[string]any)
	shapes := out["layers"].([]any)[0].(map[string]any)["shapes"].([]any)
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1: %v", len(shapes), shapes)
	}
}

func TestRemoveEmptyGroupsBottomUp(t *testing.T) {
	// The outer group holds two items, but one is itself a degenerate group.
	// After the child is removed the outer group is degenerate too.
	doc := map[string]any{
		"shapes": []any{
			map[string]any{
				"ty": "gr",
				"it": []any{
					map[string]any{"ty": "gr", "it": []any{map[string]any{"ty": "sh"}}},
					map[string]any{"ty": "sh"},
				},
			},
		},
	}
	out := removeEmptyGroups(doc).(map[string]any)
	if got := len(out["shapes"].([]any)); got != 0 {
		t.Fatalf("outer group survived, shapes = %d", got)
	}
}

func TestRemoveDefaults(t *testing.T) {
	doc := map[string]any{
		"layers": []any{map[string]any{
			"ty":  float64(4),
			"nm":  "Layer 1",
			"mn":  "{internal-id}",
			"ind": float64(3),
			"ddd": float64(0),
			"ao":  float64(0),
			"sr":  float64(1),
			"bm":  float64(0),
			"hd":  false,
			"cl":  "css-class",
			"td":  nil,
		}},
	}
	out := removeDefaults(doc).(map[string]any)
	layer := out["layers"].([]any)[0].(map[string]any)
	if len(layer) != 1 {
		t.Fatalf("layer = %v, want only ty", layer)
	}
	if _, ok := layer["ty"]; !ok {
		t.Fatalf("ty dropped")
	}
}

func TestRemoveDefaultsKeepsNonDefaults(t *testing.T) {
	doc := map[string]any{
		"ddd": float64(1),
		"ao":  float64(1),
		"sr":  float64(2),
		"bm":  float64(3),
		"hd":  true,
	}
	out := removeDefaults(doc).(map[string]any)
	if !reflect.DeepEqual(out, doc) {
		t.Fatalf("non-default values altered: %v", out)
	}
}

func TestRoundPrecision(t *testing.T) {
	doc := map[string]any{
		"x":    1.2345,
		"k":    []any{0.333333, 99.999},
		"name": "unchanged",
		"n":    7, // integer leaves pass through
	}
	out := roundPrecision(doc, 1).(map[string]any)
	if out["x"] != 1.2 {
		t.Errorf("x = %v, want 1.2", out["x"])
	}
	k := out["k"].([]any)
	if k[0] != 0.3 || k[1] != 100.0 {
		t.Errorf("k = %v, want [0.3 100]", k)
	}
	if out["name"] != "unchanged" || out["n"] != 7 {
		t.Errorf("non-float leaves altered: %v", out)
	}
}

func TestRoundPrecisionClamped(t *testing.T) {
	out := roundPrecision(map[string]any{"x": 1.23456789}, 9).(map[string]any)
	if out["x"] != 1.2346 {
		t.Errorf("precision not clamped to 4: %v", out["x"])
	}
	out = roundPrecision(map[string]any{"x": 1.9}, -3).(map[string]any)
	if out["x"] != 2.0 {
		t.Errorf("precision not clamped to 0: %v", out["x"])
	}
}
