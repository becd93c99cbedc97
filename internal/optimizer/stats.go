package optimizer

import (
	"fmt"
	"strings"

	"github.com/marigoldlabs/lottieslim/internal/lottie"
)

// Stats summarizes what the optimizer would have to work with, without
// transforming anything.
type Stats struct {
	ByteSize          int
	Layers            int
	HiddenLayers      int
	Assets            int
	ReferencedAssets  int
	UnusedAssets      int
	KeyframeSequences int
	Expressions       int
	EffectStacks      int
}

// Inspect collects read-only statistics about a document.
func Inspect(doc lottie.Document) (*Stats, error) {
	size, err := lottie.ByteSize(doc)
	if err != nil {
		return nil, err
	}
	st := &Stats{ByteSize: size}

	countLayers := func(layers any) {
		arr, ok := layers.([]any)
		if !ok {
			return
		}
		for _, l := range arr {
			layer, ok := l.(map[string]any)
			if !ok {
				continue
			}
			st.Layers++
			if hidden, ok := layer["hd"].(bool); ok && hidden {
				st.HiddenLayers++
			}
		}
	}
	countLayers(doc[lottie.FieldLayers])

	if assets, ok := doc[lottie.FieldAssets].([]any); ok {
		byID := assetIndex(assets)
		live := liveAssets(doc, byID)
		for _, a := range assets {
			m, ok := a.(map[string]any)
			if !ok {
				continue
			}
			st.Assets++
			countLayers(m[lottie.FieldLayers])
			if id, ok := m[lottie.FieldAssetID].(string); ok {
				if live[id] {
					st.ReferencedAssets++
				} else {
					st.UnusedAssets++
				}
			}
		}
	}

	lottie.Walk(doc, func(n any) {
		switch node := n.(type) {
		case []any:
			if isKeyframeSequence(node) {
				st.KeyframeSequences++
			}
		case map[string]any:
			if _, ok := node["x"].(string); ok {
				st.Expressions++
			}
			if _, ok := node["ef"].([]any); ok {
				st.EffectStacks++
			}
		}
	})
	return st, nil
}

// Markdown renders the stats for CLI output.
func (s *Stats) Markdown(name string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Inspection: %s\n\n", name))
	sb.WriteString(fmt.Sprintf("- Canonical size: %s (%d bytes)\n", humanBytes(s.ByteSize), s.ByteSize))
	sb.WriteString(fmt.Sprintf("- Layers: %d (%d hidden)\n", s.Layers, s.HiddenLayers))
	sb.WriteString(fmt.Sprintf("- Assets: %d (%d referenced, %d unused)\n", s.Assets, s.ReferencedAssets, s.UnusedAssets))
	sb.WriteString(fmt.Sprintf("- Keyframe sequences: %d\n", s.KeyframeSequences))
	sb.WriteString(fmt.Sprintf("- Expressions: %d\n", s.Expressions))
	sb.WriteString(fmt.Sprintf("- Effect stacks: %d\n", s.EffectStacks))
	return sb.String()
}
