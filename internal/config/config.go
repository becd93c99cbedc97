package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/marigoldlabs/lottieslim/internal/optimizer"
)

// Global configuration structure. Pass toggles mirror optimizer.Options so
// users can persist their preferred defaults; flags override per invocation.
type Global struct {
	StripMetadata      bool `mapstructure:"strip_metadata" yaml:"strip_metadata"`
	RemoveHiddenLayers bool `mapstructure:"remove_hidden_layers" yaml:"remove_hidden_layers"`
	RemoveEmptyGroups  bool `mapstructure:"remove_empty_groups" yaml:"remove_empty_groups"`
	SimplifyKeyframes  bool `mapstructure:"simplify_keyframes" yaml:"simplify_keyframes"`
	RemoveDefaults     bool `mapstructure:"remove_defaults" yaml:"remove_defaults"`
	RoundPrecision     bool `mapstructure:"round_precision" yaml:"round_precision"`
	Precision          int  `mapstructure:"precision" yaml:"precision"`

	RemoveExpressions       bool `mapstructure:"remove_expressions" yaml:"remove_expressions"`
	RemoveEffects           bool `mapstructure:"remove_effects" yaml:"remove_effects"`
	CollapseTransforms      bool `mapstructure:"collapse_transforms" yaml:"collapse_transforms"`
	CollapseStaticKeyframes bool `mapstructure:"collapse_static_keyframes" yaml:"collapse_static_keyframes"`

	// Batch settings
	BatchOutputDir string `mapstructure:"batch_output_dir" yaml:"batch_output_dir"`
	BatchSuffix    string `mapstructure:"batch_suffix" yaml:"batch_suffix"`
}

// Options projects the configured defaults into an optimizer options record.
func (c *Global) Options() optimizer.Options {
	return optimizer.Options{
		StripMetadata:           c.StripMetadata,
		RemoveHiddenLayers:      c.RemoveHiddenLayers,
		RemoveEmptyGroups:       c.RemoveEmptyGroups,
		SimplifyKeyframes:       c.SimplifyKeyframes,
		RemoveDefaults:          c.RemoveDefaults,
		RoundPrecision:          c.RoundPrecision,
		Precision:               c.Precision,
		RemoveExpressions:       c.RemoveExpressions,
		RemoveEffects:           c.RemoveEffects,
		CollapseTransforms:      c.CollapseTransforms,
		CollapseStaticKeyframes: c.CollapseStaticKeyframes,
	}
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.lottieslim/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".lottieslim")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (applied by the caller) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("LOTTIESLIM")
	v.AutomaticEnv()

	// Defaults: all safe passes on, precision 2, aggressive passes off.
	v.SetDefault("strip_metadata", true)
	v.SetDefault("remove_hidden_layers", true)
	v.SetDefault("remove_empty_groups", true)
	v.SetDefault("simplify_keyframes", true)
	v.SetDefault("remove_defaults", true)
	v.SetDefault("round_precision", true)
	v.SetDefault("precision", 2)
	v.SetDefault("remove_expressions", false)
	v.SetDefault("remove_effects", false)
	v.SetDefault("collapse_transforms", false)
	v.SetDefault("collapse_static_keyframes", false)
	v.SetDefault("batch_output_dir", "")
	v.SetDefault("batch_suffix", ".min")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".lottieslim")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
