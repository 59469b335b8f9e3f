// SPDX-License-Identifier: MIT
package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molfrag/metrics"
)

func TestPrometheus_Records(t *testing.T) {
	reg := prometheus.NewRegistry()
	p := metrics.NewPrometheus(reg)

	p.ObserveMolecule(metrics.OutcomeFragmented, 3*time.Millisecond)
	p.ObserveMolecule(metrics.OutcomeFragmented, time.Millisecond)
	p.ObserveMolecule(metrics.OutcomeDropped, 0)
	p.ObserveFragment("chain", 6)
	p.ObserveFragment("ring", 6)
	p.ObserveFragment("chain", 2)

	n, err := testutil.GatherAndCount(reg, "molfrag_molecules_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = testutil.GatherAndCount(reg, "molfrag_fragments_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	n, err = testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	mf, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(mf))
	for _, f := range mf {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"molfrag_molecules_total",
		"molfrag_fragments_total",
		"molfrag_fragment_atoms",
		"molfrag_fragmentation_duration_seconds",
	}, names)
}

func TestPrometheus_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.NewPrometheus(reg)
	assert.Panics(t, func() { metrics.NewPrometheus(reg) })
}

func TestNop(t *testing.T) {
	var r metrics.Recorder = metrics.Nop{}
	r.ObserveMolecule(metrics.OutcomeError, time.Second)
	r.ObserveFragment("chain", 1)
}
