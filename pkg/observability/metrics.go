package observability

import (
	"context"

	"github.com/aretw0/pergola/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors fed by the pipeline hooks.
type Metrics struct {
	validations   prometheus.Counter
	stageChanges  *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
	degraded      *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg uses the default Prometheus registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		validations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "pergola_validations_total",
				Help: "Total number of validation passes",
			},
		),
		stageChanges: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pergola_stage_changes_total",
				Help: "Number of stage executions that modified the configuration",
			},
			[]string{"stage"},
		),
		stageDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pergola_stage_duration_seconds",
				Help:    "Duration of stage executions",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 8),
			},
			[]string{"stage"},
		),
		degraded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pergola_locked_degraded_total",
				Help: "Locked components that could not be restored from the template",
			},
			[]string{"component_id"},
		),
	}
	reg.MustRegister(m.validations, m.stageChanges, m.stageDuration, m.degraded)
	return m
}

// Hooks returns lifecycle hooks that record stage metrics. The first stage
// of every pass counts as one validation.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStageStart: func(ctx context.Context, e *domain.StageEvent) {
			if e.Stage == domain.StageCalendars {
				m.validations.Inc()
			}
		},
		OnStageEnd: func(ctx context.Context, e *domain.StageEvent) {
			m.stageDuration.WithLabelValues(e.Stage).Observe(e.Duration.Seconds())
			if e.Changed {
				m.stageChanges.WithLabelValues(e.Stage).Inc()
			}
		},
		OnDegraded: func(ctx context.Context, stage, componentID string) {
			m.degraded.WithLabelValues(componentID).Inc()
		},
	}
}

// StageChanges exposes the per-stage change counter.
func (m *Metrics) StageChanges() *prometheus.CounterVec { return m.stageChanges }

// StageDuration exposes the per-stage duration histogram.
func (m *Metrics) StageDuration() *prometheus.HistogramVec { return m.stageDuration }

// Chain merges several hook sets; each callback runs in order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnStageStart: func(ctx context.Context, e *domain.StageEvent) {
			for _, h := range hooks {
				if h.OnStageStart != nil {
					h.OnStageStart(ctx, e)
				}
			}
		},
		OnStageEnd: func(ctx context.Context, e *domain.StageEvent) {
			for _, h := range hooks {
				if h.OnStageEnd != nil {
					h.OnStageEnd(ctx, e)
				}
			}
		},
		OnDegraded: func(ctx context.Context, stage, componentID string) {
			for _, h := range hooks {
				if h.OnDegraded != nil {
					h.OnDegraded(ctx, stage, componentID)
				}
			}
		},
	}
}
