// Package optimizer implements the Lottie optimization pipeline: a fixed
// sequence of pure tree-rewriting passes over a parsed animation document,
// plus the byte-size accounting around them.
package optimizer

// Options selects which passes run. Unused-asset elimination is not listed:
// it always runs, since dropping unreferenced assets never changes rendering.
type Options struct {
	// Safe passes: lossless with respect to visual output.
	StripMetadata      bool
	RemoveHiddenLayers bool
	RemoveEmptyGroups  bool
	SimplifyKeyframes  bool
	RemoveDefaults     bool
	RoundPrecision     bool
	// Precision is the decimal-place count for RoundPrecision, clamped to 0..4.
	Precision int

	// Aggressive passes: may alter visual output, off by default.
	RemoveExpressions       bool
	RemoveEffects           bool
	CollapseTransforms      bool
	CollapseStaticKeyframes bool
}

// DefaultOptions enables every safe pass at precision 2 and disables all
// aggressive passes.
func DefaultOptions() Options {
	return Options{
		StripMetadata:      true,
		RemoveHiddenLayers: true,
		RemoveEmptyGroups:  true,
		SimplifyKeyframes:  true,
		RemoveDefaults:     true,
		RoundPrecision:     true,
		Precision:          2,
	}
}

func clampPrecision(p int) int {
	if p < 0 {
		return 0
	}
	if p > 4 {
		return 4
	}
	return p
}
