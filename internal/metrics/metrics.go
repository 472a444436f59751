package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by the registration and invitation counters.
const (
	ResultCreated   = "created"
	ResultDuplicate = "duplicate"
	ResultAccepted  = "accepted"
	ResultRefused   = "refused"
	ResultNotFound  = "not_found"
	ResultError     = "error"
)

// Metrics holds the Prometheus collectors of the registry.
type Metrics struct {
	Registrations *prometheus.CounterVec
	Invitations   *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scholar_registrations_total",
			Help: "User registration attempts by result",
		}, []string{"result"}),
		Invitations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "scholar_invitations_total",
			Help: "Reviewer invitations by result",
		}, []string{"result"}),
	}
}

// IncRegistration records the result of a registration attempt.
func (m *Metrics) IncRegistration(result string) {
	if m != nil {
		m.Registrations.WithLabelValues(result).Inc()
	}
}

// IncInvitation records the result of a reviewer invitation.
func (m *Metrics) IncInvitation(result string) {
	if m != nil {
		m.Invitations.WithLabelValues(result).Inc()
	}
}
