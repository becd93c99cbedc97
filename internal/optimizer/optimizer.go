package optimizer

import "github.com/marigoldlabs/lottieslim/internal/lottie"

// Result reports one optimization run: canonical byte sizes before and
// after, the savings they imply, and the transformed document. Re-serializing
// Optimized canonically yields exactly OptimizedSize bytes.
type Result struct {
	OriginalSize  int             `json:"original_size"`
	OptimizedSize int             `json:"optimized_size"`
	Savings       int             `json:"savings"`
	SavingsPct    float64         `json:"savings_pct"`
	Options       Options         `json:"-"`
	Optimized     lottie.Document `json:"-"`
}

// Optimize runs the enabled passes over doc in their fixed order and
// accounts for the size change. The input document is deep-copied up front
// and never mutated; calling Optimize twice with the same inputs produces
// byte-identical output. It never fails for a document that passed
// validation: malformed substructures pass through the relevant passes
// unchanged.
func Optimize(doc lottie.Document, opts Options) (*Result, error) {
	originalSize, err := lottie.ByteSize(doc)
	if err != nil {
		return nil, err
	}

	out := lottie.DeepCopy(doc).(lottie.Document)

	if opts.StripMetadata {
		out = stripMetadata(out)
	}
	if opts.RemoveHiddenLayers {
		out = removeHiddenLayers(out)
	}
	// Correctness pass, not a toggle: dead assets never affect rendering.
	// Runs after hidden-layer removal so references held only by deleted
	// layers do not retain assets.
	out = removeUnusedAssets(out)
	if opts.RemoveEmptyGroups {
		out = asDocument(removeEmptyGroups(out))
	}
	if opts.SimplifyKeyframes {
		out = asDocument(simplifyKeyframes(out))
	}
	if opts.RemoveDefaults {
		out = asDocument(removeDefaults(out))
	}
	if opts.RoundPrecision {
		out = asDocument(roundPrecision(out, opts.Precision))
	}

	if opts.RemoveExpressions {
		out = asDocument(removeExpressions(out))
	}
	if opts.RemoveEffects {
		out = asDocument(removeEffects(out))
	}
	if opts.CollapseTransforms {
		out = asDocument(collapseTransforms(out))
	}
	if opts.CollapseStaticKeyframes {
		out = asDocument(collapseStaticKeyframes(out))
	}

	optimizedSize, err := lottie.ByteSize(out)
	if err != nil {
		return nil, err
	}

	savings := originalSize - optimizedSize
	pct := 0.0
	if originalSize > 0 {
		pct = float64(savings) / float64(originalSize) * 100
	}
	return &Result{
		OriginalSize:  originalSize,
		OptimizedSize: optimizedSize,
		Savings:       savings,
		SavingsPct:    pct,
		Options:       opts,
		Optimized:     out,
	}, nil
}

// asDocument narrows a pass result back to a document. Passes preserve the
// root object; the fallback only guards against a non-object root.
func asDocument(v any) lottie.Document {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return lottie.Document{}
}
