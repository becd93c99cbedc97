package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/marigoldlabs/lottieslim/internal/config"
	"github.com/marigoldlabs/lottieslim/internal/optimizer"
)

var (
	// Global flags
	cfgFile string
	debug   bool

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "lottieslim",
	Short: "lottieslim: shrink Lottie animation JSON without changing what it renders",
	Long: `lottieslim rewrites Lottie animation documents through a pipeline of
tree-rewriting passes (metadata stripping, hidden-layer and unused-asset
removal, keyframe simplification, precision rounding, and opt-in lossy
passes) and reports the byte savings.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.lottieslim/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
}

// effectiveOptions returns the configured default options, or the built-in
// defaults when no config loaded.
func effectiveOptions() optimizer.Options {
	if cfg != nil {
		return cfg.Options()
	}
	return optimizer.DefaultOptions()
}
