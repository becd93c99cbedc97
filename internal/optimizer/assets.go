package optimizer

import "github.com/marigoldlabs/lottieslim/internal/lottie"

// removeUnusedAssets filters the asset list down to assets reachable from
// the surviving layer tree. Liveness propagates transitively: once an asset
// is known referenced, its own nested layers are scanned for further
// references, to a fixed point. Entries without a string identifier are kept
// untouched (their liveness cannot be determined).
func removeUnusedAssets(doc lottie.Document) lottie.Document {
	assets, ok := doc[lottie.FieldAssets].([]any)
	if !ok {
		return doc
	}

	live := liveAssets(doc, assetIndex(assets))

	kept := make([]any, 0, len(assets))
	for _, a := range assets {
		m, ok := a.(map[string]any)
		if !ok {
			kept = append(kept, a)
			continue
		}
		id, ok := m[lottie.FieldAssetID].(string)
		if !ok || live[id] {
			kept = append(kept, a)
		}
	}

	out := make(lottie.Document, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	out[lottie.FieldAssets] = kept
	return out
}

// assetIndex maps asset identifiers to their objects; the first entry wins
// on duplicate ids.
func assetIndex(assets []any) map[string]map[string]any {
	byID := make(map[string]map[string]any, len(assets))
	for _, a := range assets {
		if m, ok := a.(map[string]any); ok {
			if id, ok := m[lottie.FieldAssetID].(string); ok {
				if _, dup := byID[id]; !dup {
					byID[id] = m
				}
			}
		}
	}
	return byID
}

// liveAssets computes the set of asset ids reachable from the top-level
// layer tree, following references transitively through referenced assets'
// own nested layers.
func liveAssets(doc lottie.Document, byID map[string]map[string]any) map[string]bool {
	live := make(map[string]bool)
	frontier := make(map[string]bool)
	collectRefs(doc[lottie.FieldLayers], frontier)
	for len(frontier) > 0 {
		next := make(map[string]bool)
		for id := range frontier {
			if live[id] {
				continue
			}
			live[id] = true
			if asset, ok := byID[id]; ok {
				collectRefs(asset[lottie.FieldLayers], next)
			}
		}
		frontier = next
	}
	return live
}

// collectRefs records every asset identifier named by a reference field
// anywhere under v.
func collectRefs(v any, refs map[string]bool) {
	lottie.Walk(v, func(n any) {
		if m, ok := n.(map[string]any); ok {
			if id, ok := m[lottie.FieldRefID].(string); ok {
				refs[id] = true
			}
		}
	})
}
