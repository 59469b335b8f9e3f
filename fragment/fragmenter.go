// SPDX-License-Identifier: MIT
//
// File: fragmenter.go
// Role: Fragmenter construction, options, Copy and the Fragment entry point.

package fragment

import (
	"fmt"
	"time"

	"github.com/katalvlaran/molfrag/logging"
	"github.com/katalvlaran/molfrag/marker"
	"github.com/katalvlaran/molfrag/metrics"
	"github.com/katalvlaran/molfrag/molecule"
	"github.com/katalvlaran/molfrag/settings"
	"github.com/katalvlaran/molfrag/snapshot"
)

// Fragmenter applies one policy to any number of molecules.
// A single Fragmenter may be used by one goroutine at a time; use Copy
// for others.
type Fragmenter struct {
	settings settings.Settings
	finder   marker.RingFinder
	log      logging.Logger
	rec      metrics.Recorder
}

// Option configures a Fragmenter.
type Option func(*Fragmenter)

// WithSettings replaces the default policy.
func WithSettings(s settings.Settings) Option {
	return func(f *Fragmenter) { f.settings = s }
}

// WithRingFinder selects the ring finder; nil keeps BridgeFinder.
func WithRingFinder(rf marker.RingFinder) Option {
	return func(f *Fragmenter) {
		if rf != nil {
			f.finder = rf
		}
	}
}

// WithLogger attaches a logger; nil keeps the no-op logger.
func WithLogger(l logging.Logger) Option {
	return func(f *Fragmenter) {
		if l != nil {
			f.log = l
		}
	}
}

// WithRecorder attaches a metrics recorder; nil keeps metrics.Nop.
func WithRecorder(r metrics.Recorder) Option {
	return func(f *Fragmenter) {
		if r != nil {
			f.rec = r
		}
	}
}

// New builds a Fragmenter with settings.Default() unless overridden.
//
// Errors:
//   - settings.ErrSettingRange (possibly several, aggregated).
func New(opts ...Option) (*Fragmenter, error) {
	f := &Fragmenter{
		settings: settings.Default(),
		finder:   marker.BridgeFinder{},
		log:      logging.NewNop(),
		rec:      metrics.Nop{},
	}
	for _, opt := range opts {
		opt(f)
	}
	if err := f.settings.Validate(); err != nil {
		return nil, fmt.Errorf("fragment: New: %w", err)
	}

	return f, nil
}

// Copy returns an independent Fragmenter with the same policy. The logger
// and recorder are shared; both are safe for concurrent use.
func (f *Fragmenter) Copy() *Fragmenter {
	c := *f

	return &c
}

// Settings returns the policy by value.
func (f *Fragmenter) Settings() settings.Settings {
	return f.settings
}

// RingFinder returns the ring finder in use.
func (f *Fragmenter) RingFinder() marker.RingFinder {
	return f.finder
}

// CanBeFragmented runs the pre-check without fragmenting.
//
// Errors:
//   - ErrNilMolecule: mol is nil.
//   - ErrNotFragmentable: mol has no atoms or holds a pseudo atom.
func (f *Fragmenter) CanBeFragmented(mol *molecule.Molecule) error {
	if mol == nil {
		return ErrNilMolecule
	}
	arr, err := snapshot.Build(mol)
	if err != nil {
		return fmt.Errorf("fragment: CanBeFragmented: %w", err)
	}

	return precheck(arr)
}

// precheck rejects empty molecules and molecules holding pseudo atoms,
// which would be indistinguishable from placeholders in the output.
func precheck(arr *snapshot.MolecularArrays) error {
	if len(arr.Atoms) == 0 {
		return fmt.Errorf("fragment: empty molecule: %w", ErrNotFragmentable)
	}
	if arr.HasPseudo() {
		return fmt.Errorf("fragment: molecule holds a pseudo atom: %w", ErrNotFragmentable)
	}

	return nil
}

// Fragment partitions mol. The input is cloned first and never modified.
//
// A molecule failing CanBeFragmented with ErrNotFragmentable yields an empty
// list, or a single KindPassThrough fragment when
// KeepNonFragmentableMolecules is set; neither case is an error.
//
// Errors:
//   - ErrNilMolecule: mol is nil.
func (f *Fragmenter) Fragment(mol *molecule.Molecule) ([]*Fragment, error) {
	start := time.Now()
	if mol == nil {
		f.rec.ObserveMolecule(metrics.OutcomeError, time.Since(start))
		return nil, ErrNilMolecule
	}

	arr, err := snapshot.Build(mol)
	if err != nil {
		f.rec.ObserveMolecule(metrics.OutcomeError, time.Since(start))
		return nil, fmt.Errorf("fragment: Fragment: %w", err)
	}
	log := f.log.With(logging.String("title", mol.Title()), logging.Int("atoms", len(arr.Atoms)))
	if arr.Sparse() {
		log.Debug("input has holes, compacted",
			logging.Int("atomHoles", arr.AtomHoles()), logging.Int("bondHoles", arr.BondHoles()))
	}

	if err = precheck(arr); err != nil {
		if !f.settings.KeepNonFragmentableMolecules {
			log.Debug("dropped", logging.Err(err))
			f.rec.ObserveMolecule(metrics.OutcomeDropped, time.Since(start))
			return []*Fragment{}, nil
		}
		all := make([]int, len(arr.Atoms))
		for i := range all {
			all[i] = i
		}
		frags := emit(arr, []group{{atoms: all, kind: KindPassThrough}}, f.settings.Saturation)
		log.Debug("passed through", logging.Err(err))
		f.observe(frags, metrics.OutcomePassThrough, start)
		return frags, nil
	}

	marks, err := marker.Mark(arr,
		marker.WithRingFinder(f.finder),
		marker.WithMaxRingsPerSystem(f.settings.MaxRingsPerSystem))
	if err != nil {
		f.rec.ObserveMolecule(metrics.OutcomeError, time.Since(start))
		return nil, fmt.Errorf("fragment: Fragment: %w", err)
	}

	groups := newWalker(arr, marks, f.settings).run()
	frags := emit(arr, groups, f.settings.Saturation)

	log.Debug("fragmented",
		logging.Int("fragments", len(frags)),
		logging.Int("ringSystems", len(marks.RingSystems)),
		logging.Int("conjugatedSystems", len(marks.ConjugatedSystems)),
		logging.String("ringFinder", marks.RingFinder))
	f.observe(frags, metrics.OutcomeFragmented, start)

	return frags, nil
}

func (f *Fragmenter) observe(frags []*Fragment, outcome string, start time.Time) {
	for _, fr := range frags {
		f.rec.ObserveFragment(fr.Kind.String(), fr.RealAtomCount())
	}
	f.rec.ObserveMolecule(outcome, time.Since(start))
}
