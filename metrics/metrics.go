// SPDX-License-Identifier: MIT
//
// File: metrics.go
// Role: Recorder interface with Prometheus and no-op implementations.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Molecule outcomes.
const (
	OutcomeFragmented  = "fragmented"
	OutcomePassThrough = "passthrough"
	OutcomeDropped     = "dropped"
	OutcomeError       = "error"
)

// Recorder observes fragmentation results. Implementations must be safe for
// concurrent use.
type Recorder interface {
	ObserveMolecule(outcome string, took time.Duration)
	ObserveFragment(kind string, atoms int)
}

// Nop is a Recorder that does nothing.
type Nop struct{}

// ObserveMolecule implements Recorder.
func (Nop) ObserveMolecule(string, time.Duration) {}

// ObserveFragment implements Recorder.
func (Nop) ObserveFragment(string, int) {}

// Prometheus is a Recorder backed by client_golang collectors.
type Prometheus struct {
	molecules *prometheus.CounterVec
	fragments *prometheus.CounterVec
	atoms     prometheus.Histogram
	duration  prometheus.Histogram
}

// NewPrometheus registers the molfrag series on reg. A nil reg uses
// prometheus.DefaultRegisterer. Registering twice on one registry panics.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Prometheus{
		molecules: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "molfrag",
			Name:      "molecules_total",
			Help:      "Molecules processed, by outcome.",
		}, []string{"outcome"}),
		fragments: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "molfrag",
			Name:      "fragments_total",
			Help:      "Fragments emitted, by kind.",
		}, []string{"kind"}),
		atoms: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "molfrag",
			Name:      "fragment_atoms",
			Help:      "Real atoms per emitted fragment.",
			Buckets:   []float64{1, 2, 3, 4, 6, 8, 12, 16, 24, 32, 64},
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "molfrag",
			Name:      "fragmentation_duration_seconds",
			Help:      "Wall time of one Fragment call.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
	}
}

// ObserveMolecule implements Recorder.
func (p *Prometheus) ObserveMolecule(outcome string, took time.Duration) {
	p.molecules.WithLabelValues(outcome).Inc()
	p.duration.Observe(took.Seconds())
}

// ObserveFragment implements Recorder.
func (p *Prometheus) ObserveFragment(kind string, atoms int) {
	p.fragments.WithLabelValues(kind).Inc()
	p.atoms.Observe(float64(atoms))
}
