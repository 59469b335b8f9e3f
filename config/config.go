// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Config structure, conversion into a fragmentation policy, validation.

package config

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/katalvlaran/molfrag/logging"
	"github.com/katalvlaran/molfrag/marker"
	"github.com/katalvlaran/molfrag/settings"
)

// Config is the root configuration of the molfrag tool.
type Config struct {
	Fragmenter FragmenterConfig `mapstructure:"fragmenter"`

	// RingFinder is "bridges", "cycles" or "annotated".
	RingFinder string `mapstructure:"ring_finder"`

	// Workers bounds batch concurrency; 0 means GOMAXPROCS.
	Workers int `mapstructure:"workers"`

	Log logging.Config `mapstructure:"log"`

	// MetricsTextfile, when set, receives the Prometheus text exposition
	// after a run.
	MetricsTextfile string `mapstructure:"metrics_textfile"`
}

// FragmenterConfig mirrors settings.Settings with a textual saturation.
type FragmenterConfig struct {
	FragmentSideChains           bool   `mapstructure:"fragment_side_chains"`
	MaxChainLength               int    `mapstructure:"max_chain_length"`
	IsolateQuaternaryCarbons     bool   `mapstructure:"isolate_quaternary_carbons"`
	SeparateBranchPointFromRing  bool   `mapstructure:"separate_branch_point_from_ring"`
	KeepNonFragmentableMolecules bool   `mapstructure:"keep_non_fragmentable_molecules"`
	Saturation                   string `mapstructure:"saturation"`
	MaxRingsPerSystem            int    `mapstructure:"max_rings_per_system"`
}

// Settings converts the fragmenter section into a policy.
func (c *Config) Settings() (settings.Settings, error) {
	sat, err := settings.ParseSaturation(c.Fragmenter.Saturation)
	if err != nil {
		return settings.Settings{}, err
	}
	s := settings.Settings{
		FragmentSideChains:           c.Fragmenter.FragmentSideChains,
		MaxChainLength:               c.Fragmenter.MaxChainLength,
		IsolateQuaternaryCarbons:     c.Fragmenter.IsolateQuaternaryCarbons,
		SeparateBranchPointFromRing:  c.Fragmenter.SeparateBranchPointFromRing,
		KeepNonFragmentableMolecules: c.Fragmenter.KeepNonFragmentableMolecules,
		Saturation:                   sat,
		MaxRingsPerSystem:            c.Fragmenter.MaxRingsPerSystem,
	}

	return s, s.Validate()
}

// Finder resolves the configured ring finder.
func (c *Config) Finder() (marker.RingFinder, error) {
	k, err := marker.ParseRingFinderKind(c.RingFinder)
	if err != nil {
		return nil, err
	}

	return marker.NewRingFinder(k), nil
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var err error
	if _, e := c.Settings(); e != nil {
		err = multierr.Append(err, fmt.Errorf("fragmenter: %w", e))
	}
	if _, e := c.Finder(); e != nil {
		err = multierr.Append(err, fmt.Errorf("ring_finder: %w", e))
	}
	if c.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("workers %d < 0: %w", c.Workers, settings.ErrSettingRange))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("log.format %q: %w", c.Log.Format, settings.ErrSettingRange))
	}

	return err
}
