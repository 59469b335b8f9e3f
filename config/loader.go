// SPDX-License-Identifier: MIT
//
// File: loader.go
// Role: viper wiring, defaults and Load.

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/molfrag/marker"
	"github.com/katalvlaran/molfrag/settings"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "MOLFRAG"

// Keys used by Load and by CLI flag binding.
const (
	KeySideChains      = "fragmenter.fragment_side_chains"
	KeyMaxChainLength  = "fragmenter.max_chain_length"
	KeyIsolate         = "fragmenter.isolate_quaternary_carbons"
	KeySeparate        = "fragmenter.separate_branch_point_from_ring"
	KeyKeep            = "fragmenter.keep_non_fragmentable_molecules"
	KeySaturation      = "fragmenter.saturation"
	KeyMaxRings        = "fragmenter.max_rings_per_system"
	KeyRingFinder      = "ring_finder"
	KeyWorkers         = "workers"
	KeyLogLevel        = "log.level"
	KeyLogFormat       = "log.format"
	KeyLogOutputs      = "log.outputs"
	KeyMetricsTextfile = "metrics_textfile"
)

// New returns a viper instance with YAML type, the MOLFRAG_ env prefix,
// "." to "_" key mapping and every default registered, so that
// environment variables resolve even without a config file.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	d := settings.Default()
	v.SetDefault(KeySideChains, d.FragmentSideChains)
	v.SetDefault(KeyMaxChainLength, d.MaxChainLength)
	v.SetDefault(KeyIsolate, d.IsolateQuaternaryCarbons)
	v.SetDefault(KeySeparate, d.SeparateBranchPointFromRing)
	v.SetDefault(KeyKeep, d.KeepNonFragmentableMolecules)
	v.SetDefault(KeySaturation, d.Saturation.String())
	v.SetDefault(KeyMaxRings, d.MaxRingsPerSystem)
	v.SetDefault(KeyRingFinder, marker.KindBridges.String())
	v.SetDefault(KeyWorkers, 0)
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyLogOutputs, []string{"stderr"})
	v.SetDefault(KeyMetricsTextfile, "")
}

// Load reads the YAML file at path (skipped when path is empty), merges
// MOLFRAG_* overrides over defaults and validates the result.
func Load(path string) (*Config, error) {
	v := New()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %q: %w", path, err)
		}
	}

	return Decode(v)
}

// Decode unmarshals v into a Config and validates it. Callers that bind
// command-line flags onto v use it directly.
func Decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}

	return cfg, nil
}
