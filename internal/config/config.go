// Package config loads the decoder's robustness knobs — the retry
// schedules spec.md S7 allows an implementation to run internally — from
// a file or environment variables, via viper. The pure decode
// path (the qrcode package) takes no configuration of its own; this
// package exists only to make those schedules operator-tunable for the
// CLI.
package config

import (
	"strings"

	"github.com/spf13/viper"

	qrcode "github.com/jalphad/qrdecode"
	"github.com/jalphad/qrdecode/internal/detect"
)

// Config holds the three retry schedules spec.md S7 names.
type Config struct {
	BrightnessOffsets []int     `mapstructure:"brightness_offsets"`
	FinderVariance    []float64 `mapstructure:"finder_variance_steps"`
	AlignAllowance    []float64 `mapstructure:"alignment_allowance_factors"`
}

// Defaults returns the schedules the core packages already ship with,
// so a caller that loads no config file still gets identical behavior.
func Defaults() Config {
	return Config{
		BrightnessOffsets: []int{0, 5, -5},
		FinderVariance:    []float64{2.0, 2.5, 3.0},
		AlignAllowance:    []float64{4, 8, 16},
	}
}

// Load reads configuration from path (if non-empty), environment
// variables prefixed QRDECODE_, and falls back to Defaults for anything
// left unset. An empty path is not an error — it just means defaults
// and environment variables apply; a non-empty path that cannot be read
// is an error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("qrdecode")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Defaults()
	v.SetDefault("brightness_offsets", def.BrightnessOffsets)
	v.SetDefault("finder_variance_steps", def.FinderVariance)
	v.SetDefault("alignment_allowance_factors", def.AlignAllowance)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Apply pushes the schedules onto the package-level setters the core
// decode packages expose, so subsequent Decode calls use them.
func (c Config) Apply() {
	if len(c.BrightnessOffsets) > 0 {
		qrcode.SetBrightnessOffsets(c.BrightnessOffsets)
	}
	if len(c.FinderVariance) > 0 {
		detect.SetVarianceSteps(c.FinderVariance)
	}
	if len(c.AlignAllowance) > 0 {
		detect.SetAllowanceFactors(c.AlignAllowance)
	}
}
