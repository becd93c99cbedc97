package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marigoldlabs/lottieslim/internal/lottie"
	"github.com/marigoldlabs/lottieslim/internal/optimizer"
	"github.com/marigoldlabs/lottieslim/internal/utils"
)

var (
	optOutput    string
	optReport    bool
	optPrecision int

	optStripMetadata bool
	optHiddenLayers  bool
	optEmptyGroups   bool
	optKeyframes     bool
	optDefaults      bool
	optRound         bool

	optExpressions     bool
	optEffects         bool
	optTransforms      bool
	optStaticKeyframes bool
)

var optimizeCmd = &cobra.Command{
	Use:   "optimize <file>",
	Short: "Optimize a Lottie JSON file and write the smaller copy",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read animation: %w", err)
		}
		doc, err := lottie.Parse(data)
		if err != nil {
			return err
		}
		if !lottie.Validate(doc) {
			return fmt.Errorf("%s is not a valid Lottie animation (missing required fields)", path)
		}

		opts := optionsFromFlags(cmd)
		res, err := optimizer.Optimize(doc, opts)
		if err != nil {
			return err
		}

		out := optOutput
		if out == "" {
			out = strings.TrimSuffix(path, ".json") + ".min.json"
		}
		b, err := lottie.Canonical(res.Optimized)
		if err != nil {
			return err
		}
		if err := utils.SafeWriteFile(out, b); err != nil {
			return fmt.Errorf("write optimized animation: %w", err)
		}

		fmt.Printf("✓ %s: %d → %d bytes (saved %d, %.1f%%)\n",
			path, res.OriginalSize, res.OptimizedSize, res.Savings, res.SavingsPct)
		fmt.Printf("✓ Wrote %s\n", out)
		if optReport {
			fmt.Println()
			fmt.Println(res.Markdown(path))
		}
		return nil
	},
}

// optionsFromFlags starts from the configured defaults and applies any
// explicitly set pass flags on top.
func optionsFromFlags(cmd *cobra.Command) optimizer.Options {
	opts := effectiveOptions()
	f := cmd.Flags()
	if f.Changed("strip-metadata") {
		opts.StripMetadata = optStripMetadata
	}
	if f.Changed("remove-hidden-layers") {
		opts.RemoveHiddenLayers = optHiddenLayers
	}
	if f.Changed("remove-empty-groups") {
		opts.RemoveEmptyGroups = optEmptyGroups
	}
	if f.Changed("simplify-keyframes") {
		opts.SimplifyKeyframes = optKeyframes
	}
	if f.Changed("remove-defaults") {
		opts.RemoveDefaults = optDefaults
	}
	if f.Changed("round-precision") {
		opts.RoundPrecision = optRound
	}
	if f.Changed("precision") {
		opts.Precision = optPrecision
	}
	if f.Changed("remove-expressions") {
		opts.RemoveExpressions = optExpressions
	}
	if f.Changed("remove-effects") {
		opts.RemoveEffects = optEffects
	}
	if f.Changed("collapse-transforms") {
		opts.CollapseTransforms = optTransforms
	}
	if f.Changed("collapse-static-keyframes") {
		opts.CollapseStaticKeyframes = optStaticKeyframes
	}
	return opts
}

// registerPassFlags wires the shared pass-toggle flags onto a command so
// optimize and batch stay in sync.
func registerPassFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&optStripMetadata, "strip-metadata", true, "strip top-level metadata fields")
	cmd.Flags().BoolVar(&optHiddenLayers, "remove-hidden-layers", true, "remove hidden and null-object layers")
	cmd.Flags().BoolVar(&optEmptyGroups, "remove-empty-groups", true, "remove degenerate shape groups")
	cmd.Flags().BoolVar(&optKeyframes, "simplify-keyframes", true, "drop redundant linear easing handles")
	cmd.Flags().BoolVar(&optDefaults, "remove-defaults", true, "remove default-valued and cosmetic properties")
	cmd.Flags().BoolVar(&optRound, "round-precision", true, "round numeric precision")
	cmd.Flags().IntVar(&optPrecision, "precision", 2, "decimal places for rounding (0-4)")
	cmd.Flags().BoolVar(&optExpressions, "remove-expressions", false, "lossy: remove script expressions")
	cmd.Flags().BoolVar(&optEffects, "remove-effects", false, "lossy: remove effect stacks")
	cmd.Flags().BoolVar(&optTransforms, "collapse-transforms", false, "lossy: drop identity transform properties")
	cmd.Flags().BoolVar(&optStaticKeyframes, "collapse-static-keyframes", false, "lossy: collapse constant keyframe sequences")
}

func init() {
	rootCmd.AddCommand(optimizeCmd)
	optimizeCmd.Flags().StringVarP(&optOutput, "output", "o", "", "output path (default <name>.min.json)")
	optimizeCmd.Flags().BoolVar(&optReport, "report", false, "print a Markdown run report")
	registerPassFlags(optimizeCmd)
}
