// Package telemetry provides observation listeners that export scan activity
// as Prometheus metrics and OpenTelemetry span events. Listeners are
// side-effect-only and never fail a scan.
package telemetry

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vk/autoreg/internal/hooks"
	"github.com/vk/autoreg/internal/meta"
)

// Metrics counts registrations and completed registrar scans.
type Metrics struct {
	MembersRegistered *prometheus.CounterVec
	RegistrarScans    *prometheus.CounterVec
}

// NewMetrics creates the metrics and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		MembersRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "autoreg_members_registered_total",
			Help: "Total number of registrar members registered, by namespace and content kind",
		}, []string{"namespace", "kind"}),
		RegistrarScans: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "autoreg_registrar_scans_total",
			Help: "Total number of completed registrar scans, by namespace and registrar",
		}, []string{"namespace", "registrar"}),
	}
}

// MemberRegistered implements hooks.Listener.
func (m *Metrics) MemberRegistered(_ context.Context, e hooks.MemberEvent) error {
	m.MembersRegistered.WithLabelValues(e.Namespace, meta.TypeName(e.Kind)).Inc()
	return nil
}

// ScanCompleted implements hooks.Listener.
func (m *Metrics) ScanCompleted(_ context.Context, e hooks.ScanEvent) error {
	m.RegistrarScans.WithLabelValues(e.Namespace, meta.TypeName(e.Registrar)).Inc()
	return nil
}
