package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/marigoldlabs/lottieslim/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set lottieslim configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("strip_metadata: %t\n", cfg.StripMetadata)
		fmt.Printf("remove_hidden_layers: %t\n", cfg.RemoveHiddenLayers)
		fmt.Printf("remove_empty_groups: %t\n", cfg.RemoveEmptyGroups)
		fmt.Printf("simplify_keyframes: %t\n", cfg.SimplifyKeyframes)
		fmt.Printf("remove_defaults: %t\n", cfg.RemoveDefaults)
		fmt.Printf("round_precision: %t\n", cfg.RoundPrecision)
		fmt.Printf("precision: %d\n", cfg.Precision)
		fmt.Printf("remove_expressions: %t\n", cfg.RemoveExpressions)
		fmt.Printf("remove_effects: %t\n", cfg.RemoveEffects)
		fmt.Printf("collapse_transforms: %t\n", cfg.CollapseTransforms)
		fmt.Printf("collapse_static_keyframes: %t\n", cfg.CollapseStaticKeyframes)
		if cfg.BatchOutputDir != "" {
			fmt.Printf("batch_output_dir: %s\n", cfg.BatchOutputDir)
		}
		fmt.Printf("batch_suffix: %s\n", cfg.BatchSuffix)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		boolKeys := map[string]*bool{
			"strip_metadata":            &cfg.StripMetadata,
			"remove_hidden_layers":      &cfg.RemoveHiddenLayers,
			"remove_empty_groups":       &cfg.RemoveEmptyGroups,
			"simplify_keyframes":        &cfg.SimplifyKeyframes,
			"remove_defaults":           &cfg.RemoveDefaults,
			"round_precision":           &cfg.RoundPrecision,
			"remove_expressions":        &cfg.RemoveExpressions,
			"remove_effects":            &cfg.RemoveEffects,
			"collapse_transforms":       &cfg.CollapseTransforms,
			"collapse_static_keyframes": &cfg.CollapseStaticKeyframes,
		}
		switch {
		case boolKeys[key] != nil:
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid bool for %s: %v", key, val)
			}
			*boolKeys[key] = b
		case key == "precision":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 || i > 4 {
				return fmt.Errorf("invalid precision: %v (use 0-4)", val)
			}
			cfg.Precision = i
		case key == "batch_output_dir":
			cfg.BatchOutputDir = val
		case key == "batch_suffix":
			cfg.BatchSuffix = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
