package optimizer

import "github.com/marigoldlabs/lottieslim/internal/lottie"

// layerTypeNull marks a non-rendering placeholder ("null object") layer.
const layerTypeNull = 3

// removeHiddenLayers drops layers that cannot render: hidden-flag true or
// null-object type. Applies to the top-level layer list and to the nested
// layer list of every asset (precomposition). Surviving order is preserved.
func removeHiddenLayers(doc lottie.Document) lottie.Document {
	out := make(lottie.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	if layers, ok := doc[lottie.FieldLayers].([]any); ok {
		out[lottie.FieldLayers] = filterHidden(layers)
	}
	if assets, ok := doc[lottie.FieldAssets].([]any); ok {
		newAssets := make([]any, 0, len(assets))
		for _, a := range assets {
			asset, ok := a.(map[string]any)
			if !ok {
				newAssets = append(newAssets, a)
				continue
			}
			layers, ok := asset[lottie.FieldLayers].([]any)
			if !ok {
				newAssets = append(newAssets, a)
				continue
			}
			na := make(map[string]any, len(asset))
			for k, v := range asset {
				na[k] = v
			}
			na[lottie.FieldLayers] = filterHidden(layers)
			newAssets = append(newAssets, na)
		}
		out[lottie.FieldAssets] = newAssets
	}
	return out
}

func filterHidden(layers []any) []any {
	out := make([]any, 0, len(layers))
	for _, l := range layers {
		layer, ok := l.(map[string]any)
		if !ok {
			out = append(out, l)
			continue
		}
		if hidden, ok := layer["hd"].(bool); ok && hidden {
			continue
		}
		if ty, ok := lottie.Number(layer["ty"]); ok && ty == layerTypeNull {
			continue
		}
		out = append(out, l)
	}
	return out
}
