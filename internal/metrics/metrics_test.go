package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncRegistration(ResultCreated)
	m.IncRegistration(ResultCreated)
	m.IncRegistration(ResultDuplicate)
	m.IncInvitation(ResultRefused)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Registrations.WithLabelValues(ResultCreated)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues(ResultDuplicate)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Invitations.WithLabelValues(ResultRefused)))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Invitations.WithLabelValues(ResultAccepted)))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncRegistration(ResultCreated)
		m.IncInvitation(ResultAccepted)
	})
}
