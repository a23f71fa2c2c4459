package observability

import (
	"context"
	"strconv"

	"github.com/aretw0/grove/pkg/behavior"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	ticks        *prometheus.CounterVec
	tickDuration prometheus.Histogram
	passes       prometheus.Counter
	active       prometheus.Gauge
	inits        prometheus.Counter
}

// NewMetrics creates the engine collectors and registers them on reg.
// A nil reg falls back to prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ticks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "grove_ticks_total",
				Help: "Total node ticks delivered to subjects, by tree and resulting status.",
			},
			[]string{"tree", "status"},
		),
		tickDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name: "grove_tick_duration_seconds",
				Help: "Duration of individual subject ticks.",
			},
		),
		passes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "grove_passes_total",
				Help: "Total completed tick passes.",
			},
		),
		active: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "grove_active_subjects",
				Help: "Subjects ticked in the most recent pass.",
			},
		),
		inits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "grove_tree_inits_total",
				Help: "Total one-time tree initializations.",
			},
		),
	}

	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.ticks, m.tickDuration, m.passes, m.active, m.inits)
	return m
}

// Hooks adapts the collectors to engine hooks. Pass the result to
// grove.WithHooks, composing with behavior.JoinHooks when logging or
// tracing consumers observe the same engine.
func (m *Metrics) Hooks() behavior.Hooks {
	return behavior.Hooks{
		OnTreeInit: func(_ context.Context, ev *behavior.InitEvent) {
			m.inits.Inc()
		},
		OnTick: func(_ context.Context, ev *behavior.TickEvent) {
			m.ticks.WithLabelValues(strconv.Itoa(int(ev.Tree)), ev.Status.String()).Inc()
			m.tickDuration.Observe(ev.Elapsed.Seconds())
		},
		OnPass: func(_ context.Context, ev *behavior.PassEvent) {
			m.passes.Inc()
			m.active.Set(float64(ev.Pairs))
		},
	}
}
