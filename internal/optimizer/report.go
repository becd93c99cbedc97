package optimizer

import (
	"fmt"
	"strings"
)

// Markdown renders a run summary suitable for printing or attaching to a
// batch report.
func (r *Result) Markdown(name string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## Optimization: %s\n\n", name))
	sb.WriteString(fmt.Sprintf("- Original size: %s (%d bytes)\n", humanBytes(r.OriginalSize), r.OriginalSize))
	sb.WriteString(fmt.Sprintf("- Optimized size: %s (%d bytes)\n", humanBytes(r.OptimizedSize), r.OptimizedSize))
	sb.WriteString(fmt.Sprintf("- Savings: %s (%.1f%%)\n\n", humanBytes(r.Savings), r.SavingsPct))

	sb.WriteString("Passes:\n")
	for _, p := range passSummary(r.Options) {
		sb.WriteString("- ")
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	return sb.String()
}

func passSummary(o Options) []string {
	mark := func(name string, on bool) string {
		if on {
			return name + ": on"
		}
		return name + ": off"
	}
	return []string{
		mark("strip metadata", o.StripMetadata),
		mark("remove hidden layers", o.RemoveHiddenLayers),
		"remove unused assets: always",
		mark("remove empty groups", o.RemoveEmptyGroups),
		mark("simplify keyframes", o.SimplifyKeyframes),
		mark("remove defaults", o.RemoveDefaults),
		mark(fmt.Sprintf("round precision (p=%d)", clampPrecision(o.Precision)), o.RoundPrecision),
		mark("remove expressions", o.RemoveExpressions),
		mark("remove effects", o.RemoveEffects),
		mark("collapse transforms", o.CollapseTransforms),
		mark("collapse static keyframes", o.CollapseStaticKeyframes),
	}
}

func humanBytes(n int) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.2f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.2f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
