package observability_test

import (
	"context"
	"strings"
	"testing"

	"github.com/aretw0/pergola"
	"github.com/aretw0/pergola/pkg/domain"
	"github.com/aretw0/pergola/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	cfg := &domain.Config{
		BusinessType: "tattoo",
		Tabs: []*domain.Tab{
			{ID: "tab_1", Label: "Dashboard"},
			{ID: "tab_2", Label: "Clients", Components: []*domain.Component{{ID: "clients"}}},
		},
	}
	template := &domain.Config{Tabs: []*domain.Tab{
		{ID: "tab_2", Label: "Clients", Components: []*domain.Component{{ID: "clients", Locked: true}}},
	}}

	v := pergola.New(pergola.WithLifecycleHooks(m.Hooks()))
	for i := 0; i < 2; i++ {
		_, err := v.Validate(context.Background(), cfg, pergola.WithTemplate(template, []string{"clients", "ghost"}))
		require.NoError(t, err)
	}

	expected := `
# HELP pergola_validations_total Total number of validation passes
# TYPE pergola_validations_total counter
pergola_validations_total 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "pergola_validations_total"))

	expected = `
# HELP pergola_locked_degraded_total Locked components that could not be restored from the template
# TYPE pergola_locked_degraded_total counter
pergola_locked_degraded_total{component_id="ghost"} 2
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "pergola_locked_degraded_total"))

	// Input is never mutated, so every pass applies the same changes.
	changes := m.StageChanges()
	assert.Equal(t, 2.0, testutil.ToFloat64(changes.WithLabelValues(domain.StageCalendars)))
	assert.Equal(t, 2.0, testutil.ToFloat64(changes.WithLabelValues(domain.StageColors)))
	assert.Equal(t, 0.0, testutil.ToFloat64(changes.WithLabelValues(domain.StageTabLimit)))

	// One histogram series per stage that ran.
	assert.Equal(t, 7, testutil.CollectAndCount(m.StageDuration()))
}

func TestNewMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	observability.NewMetrics(reg)
	assert.Panics(t, func() { observability.NewMetrics(reg) })
}

func TestChain(t *testing.T) {
	var calls []string
	record := func(name string) domain.LifecycleHooks {
		return domain.LifecycleHooks{
			OnStageStart: func(context.Context, *domain.StageEvent) { calls = append(calls, name+":start") },
			OnDegraded:   func(context.Context, string, string) { calls = append(calls, name+":degraded") },
		}
	}

	hooks := observability.Chain(record("a"), domain.LifecycleHooks{}, record("b"))
	hooks.OnStageStart(context.Background(), &domain.StageEvent{})
	hooks.OnStageEnd(context.Background(), &domain.StageEvent{})
	hooks.OnDegraded(context.Background(), domain.StageLocked, "x")

	assert.Equal(t, []string{"a:start", "b:start", "a:degraded", "b:degraded"}, calls)
}
