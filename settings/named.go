// SPDX-License-Identifier: MIT
//
// File: named.go
// Role: Named, typed access to Settings for front ends.

package settings

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Setting names.
const (
	NameFragmentSideChains           = "fragmentSideChains"
	NameMaxChainLength               = "maxChainLength"
	NameIsolateQuaternaryCarbons     = "isolateQuaternaryCarbons"
	NameSeparateBranchPointFromRing  = "separateBranchPointFromRing"
	NameKeepNonFragmentableMolecules = "keepNonFragmentableMolecules"
	NameSaturation                   = "saturation"
	NameMaxRingsPerSystem            = "maxRingsPerSystem"
)

// Kind is the value type of a setting.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindEnum
)

// String returns "bool", "int" or "enum".
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Descriptor describes one named setting.
type Descriptor struct {
	Name        string
	DisplayName string
	Tooltip     string
	Kind        Kind
	Min         int      // KindInt only
	Choices     []string // KindEnum only
}

var descriptors = []Descriptor{
	{
		Name:        NameFragmentSideChains,
		DisplayName: "Fragment side chains",
		Tooltip:     "Split acyclic parts into chain fragments. When off, every acyclic region stays whole.",
		Kind:        KindBool,
	},
	{
		Name:        NameMaxChainLength,
		DisplayName: "Maximum chain length",
		Tooltip:     "Largest number of atoms in one chain fragment.",
		Kind:        KindInt,
		Min:         1,
	},
	{
		Name:        NameIsolateQuaternaryCarbons,
		DisplayName: "Isolate branch carbons",
		Tooltip:     "Cut tertiary and quaternary carbons out as one-atom fragments.",
		Kind:        KindBool,
	},
	{
		Name:        NameSeparateBranchPointFromRing,
		DisplayName: "Separate branch point from ring",
		Tooltip:     "Cut a branch atom bonded to a ring into its own fragment instead of keeping it with the ring.",
		Kind:        KindBool,
	},
	{
		Name:        NameKeepNonFragmentableMolecules,
		DisplayName: "Keep non-fragmentable molecules",
		Tooltip:     "Return a molecule that cannot be fragmented unchanged instead of dropping it.",
		Kind:        KindBool,
	},
	{
		Name:        NameSaturation,
		DisplayName: "Saturation",
		Tooltip:     "What replaces a cut bond: a placeholder atom or an implicit hydrogen.",
		Kind:        KindEnum,
		Choices:     []string{SaturationNone.String(), SaturationHydrogen.String()},
	},
	{
		Name:        NameMaxRingsPerSystem,
		DisplayName: "Maximum rings per system",
		Tooltip:     "Ring systems with more rings are dissected into their blocks. 0 keeps every system whole.",
		Kind:        KindInt,
		Min:         0,
	},
}

// Descriptors returns the named settings in display order. The slice is a copy.
func Descriptors() []Descriptor {
	out := make([]Descriptor, len(descriptors))
	copy(out, descriptors)

	return out
}

// Lookup returns the descriptor for name.
func Lookup(name string) (Descriptor, bool) {
	for _, d := range descriptors {
		if d.Name == name {
			return d, true
		}
	}

	return Descriptor{}, false
}

// Get returns the current value of a named setting. Saturation is returned
// as its string form.
func (s Settings) Get(name string) (interface{}, error) {
	switch name {
	case NameFragmentSideChains:
		return s.FragmentSideChains, nil
	case NameMaxChainLength:
		return s.MaxChainLength, nil
	case NameIsolateQuaternaryCarbons:
		return s.IsolateQuaternaryCarbons, nil
	case NameSeparateBranchPointFromRing:
		return s.SeparateBranchPointFromRing, nil
	case NameKeepNonFragmentableMolecules:
		return s.KeepNonFragmentableMolecules, nil
	case NameSaturation:
		return s.Saturation.String(), nil
	case NameMaxRingsPerSystem:
		return s.MaxRingsPerSystem, nil
	default:
		return nil, fmt.Errorf("Get(%q): %w", name, ErrUnknownSetting)
	}
}

// Set assigns a named setting. Bool settings take bool or a string accepted
// by strconv.ParseBool; int settings take any Go integer, an integral
// float64 or a decimal string; saturation takes a Saturation or its name.
// On error s is left unchanged.
func (s *Settings) Set(name string, value interface{}) error {
	d, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("Set(%q): %w", name, ErrUnknownSetting)
	}

	next := *s
	switch d.Kind {
	case KindBool:
		b, err := toBool(value)
		if err != nil {
			return fmt.Errorf("Set(%q, %v): %w", name, value, err)
		}
		switch name {
		case NameFragmentSideChains:
			next.FragmentSideChains = b
		case NameIsolateQuaternaryCarbons:
			next.IsolateQuaternaryCarbons = b
		case NameSeparateBranchPointFromRing:
			next.SeparateBranchPointFromRing = b
		case NameKeepNonFragmentableMolecules:
			next.KeepNonFragmentableMolecules = b
		}
	case KindInt:
		n, err := toInt(value)
		if err != nil {
			return fmt.Errorf("Set(%q, %v): %w", name, value, err)
		}
		if n < d.Min {
			return fmt.Errorf("Set(%q, %d): minimum is %d: %w", name, n, d.Min, ErrSettingRange)
		}
		switch name {
		case NameMaxChainLength:
			next.MaxChainLength = n
		case NameMaxRingsPerSystem:
			next.MaxRingsPerSystem = n
		}
	case KindEnum:
		sat, err := toSaturation(value)
		if err != nil {
			return fmt.Errorf("Set(%q, %v): %w", name, value, err)
		}
		next.Saturation = sat
	}

	if err := next.Validate(); err != nil {
		return fmt.Errorf("Set(%q): %w", name, err)
	}
	*s = next

	return nil
}

// Map returns every named setting with its current value.
func (s Settings) Map() map[string]interface{} {
	out := make(map[string]interface{}, len(descriptors))
	for _, d := range descriptors {
		v, _ := s.Get(d.Name)
		out[d.Name] = v
	}

	return out
}

func toBool(v interface{}) (bool, error) {
	switch x := v.(type) {
	case bool:
		return x, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(x))
		if err != nil {
			return false, ErrSettingType
		}
		return b, nil
	default:
		return false, ErrSettingType
	}
}

func toInt(v interface{}) (int, error) {
	switch x := v.(type) {
	case int:
		return x, nil
	case int8:
		return int(x), nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case uint:
		return int(x), nil
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		return int(x), nil
	case float64:
		if x != math.Trunc(x) {
			return 0, ErrSettingType
		}
		return int(x), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(x))
		if err != nil {
			return 0, ErrSettingType
		}
		return n, nil
	default:
		return 0, ErrSettingType
	}
}

func toSaturation(v interface{}) (Saturation, error) {
	switch x := v.(type) {
	case Saturation:
		if x != SaturationNone && x != SaturationHydrogen {
			return SaturationNone, ErrSettingRange
		}
		return x, nil
	case string:
		return ParseSaturation(x)
	default:
		return SaturationNone, ErrSettingType
	}
}
