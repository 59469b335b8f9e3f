// SPDX-License-Identifier: MIT
//
// File: settings.go
// Role: Settings value type, Saturation enum, defaults and validation.

package settings

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

var (
	// ErrUnknownSetting is returned for a name not listed by Descriptors.
	ErrUnknownSetting = errors.New("settings: unknown setting")

	// ErrSettingType is returned when a value has the wrong type.
	ErrSettingType = errors.New("settings: wrong value type")

	// ErrSettingRange is returned when a value is outside its allowed range.
	ErrSettingRange = errors.New("settings: value out of range")
)

// Saturation selects what replaces a cut bond on each side.
type Saturation int

const (
	// SaturationNone inserts a placeholder atom.
	SaturationNone Saturation = iota
	// SaturationHydrogen adds an implicit hydrogen instead.
	SaturationHydrogen
)

// String returns "none" or "hydrogen".
func (s Saturation) String() string {
	switch s {
	case SaturationNone:
		return "none"
	case SaturationHydrogen:
		return "hydrogen"
	default:
		return fmt.Sprintf("Saturation(%d)", int(s))
	}
}

// ParseSaturation resolves "none" or "hydrogen" (case-insensitive).
func ParseSaturation(s string) (Saturation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return SaturationNone, nil
	case "hydrogen", "h":
		return SaturationHydrogen, nil
	default:
		return SaturationNone, fmt.Errorf("ParseSaturation(%q): %w", s, ErrSettingRange)
	}
}

// Settings is the complete fragmentation policy.
type Settings struct {
	FragmentSideChains           bool       `json:"fragmentSideChains" mapstructure:"fragment_side_chains"`
	MaxChainLength               int        `json:"maxChainLength" mapstructure:"max_chain_length"`
	IsolateQuaternaryCarbons     bool       `json:"isolateQuaternaryCarbons" mapstructure:"isolate_quaternary_carbons"`
	SeparateBranchPointFromRing  bool       `json:"separateBranchPointFromRing" mapstructure:"separate_branch_point_from_ring"`
	KeepNonFragmentableMolecules bool       `json:"keepNonFragmentableMolecules" mapstructure:"keep_non_fragmentable_molecules"`
	Saturation                   Saturation `json:"saturation" mapstructure:"saturation"`
	MaxRingsPerSystem            int        `json:"maxRingsPerSystem" mapstructure:"max_rings_per_system"`
}

// Defaults.
const (
	DefaultMaxChainLength    = 6
	DefaultMaxRingsPerSystem = 0
)

// Default returns the default policy.
func Default() Settings {
	return Settings{
		FragmentSideChains: true,
		MaxChainLength:     DefaultMaxChainLength,
		Saturation:         SaturationNone,
		MaxRingsPerSystem:  DefaultMaxRingsPerSystem,
	}
}

// Validate reports every range violation at once.
func (s Settings) Validate() error {
	var err error
	if s.MaxChainLength < 1 {
		err = multierr.Append(err, fmt.Errorf("maxChainLength %d < 1: %w", s.MaxChainLength, ErrSettingRange))
	}
	if s.MaxRingsPerSystem < 0 {
		err = multierr.Append(err, fmt.Errorf("maxRingsPerSystem %d < 0: %w", s.MaxRingsPerSystem, ErrSettingRange))
	}
	if s.Saturation != SaturationNone && s.Saturation != SaturationHydrogen {
		err = multierr.Append(err, fmt.Errorf("saturation %s: %w", s.Saturation, ErrSettingRange))
	}

	return err
}

// String renders the policy on one line for logs.
func (s Settings) String() string {
	return fmt.Sprintf("sideChains=%t maxChain=%d isolate=%t separate=%t keep=%t saturation=%s maxRings=%d",
		s.FragmentSideChains, s.MaxChainLength, s.IsolateQuaternaryCarbons, s.SeparateBranchPointFromRing,
		s.KeepNonFragmentableMolecules, s.Saturation, s.MaxRingsPerSystem)
}
