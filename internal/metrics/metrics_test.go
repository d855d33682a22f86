package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RegistersOnGivenRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.SweepRuns.WithLabelValues("ok").Inc()
	m.SweepCompleted.Add(3)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.SweepRuns.WithLabelValues("ok")))
	assert.Equal(t, float64(3), testutil.ToFloat64(m.SweepCompleted))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "interview_sweeps_total")
	assert.Contains(t, names, "interview_sweep_completed_total")
}

func TestNew_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewNop()
		NewNop()
	})
}
