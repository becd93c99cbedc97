package optimizer

import (
	"math"

	"github.com/marigoldlabs/lottieslim/internal/lottie"
)

// roundPrecision rounds every numeric leaf to p decimal places, uniformly
// across coordinates, times, and colors. Integer leaves in hand-built trees
// are already exact and pass through.
func roundPrecision(v any, p int) any {
	factor := math.Pow(10, float64(clampPrecision(p)))
	return lottie.Transform(v, func(n any) any {
		f, ok := n.(float64)
		if !ok {
			return n
		}
		return math.Round(f*factor) / factor
	})
}
