package observability

import (
	"log/slog"
	"net/http"

	"github.com/Hakkology/MuginCAD-sub000/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome label values.
const (
	OutcomeStarted   = "started"
	OutcomeCompleted = "completed"
	OutcomeCancelled = "cancelled"
	OutcomeRefused   = "refused"
)

// Metrics holds the command counters and latency histogram.
type Metrics struct {
	commands *prometheus.CounterVec
	steps    *prometheus.CounterVec
	duration *prometheus.HistogramVec
	gatherer prometheus.Gatherer
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mugincad_commands_total",
				Help: "Commands by name and outcome",
			},
			[]string{"command", "outcome"},
		),
		steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mugincad_command_steps_total",
				Help: "Points and tokens accepted by active commands",
			},
			[]string{"command"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mugincad_command_duration_seconds",
				Help:    "Time from command start to completion or cancel",
				Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 300},
			},
			[]string{"command", "outcome"},
		),
		gatherer: reg,
	}
	reg.MustRegister(m.commands, m.steps, m.duration)
	return m
}

// Hooks records every lifecycle event.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommandStart: func(e *domain.CommandEvent) {
			m.commands.WithLabelValues(e.Command, OutcomeStarted).Inc()
		},
		OnCommandStep: func(e *domain.CommandEvent) {
			m.steps.WithLabelValues(e.Command).Inc()
		},
		OnCommandComplete: func(e *domain.CommandEvent) {
			m.commands.WithLabelValues(e.Command, OutcomeCompleted).Inc()
			m.duration.WithLabelValues(e.Command, OutcomeCompleted).Observe(e.Elapsed.Seconds())
		},
		OnCommandCancel: func(e *domain.CommandEvent) {
			m.commands.WithLabelValues(e.Command, OutcomeCancelled).Inc()
			m.duration.WithLabelValues(e.Command, OutcomeCancelled).Observe(e.Elapsed.Seconds())
		},
		OnCommandRefused: func(e *domain.CommandEvent) {
			m.commands.WithLabelValues(e.Command, OutcomeRefused).Inc()
		},
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

// LoggingHooks writes one structured line per lifecycle event.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	log := func(e *domain.CommandEvent) {
		attrs := []any{"command", e.Command}
		if e.Input != "" {
			attrs = append(attrs, "input", e.Input)
		}
		if e.Status != "" {
			attrs = append(attrs, "status", e.Status)
		}
		if e.Elapsed > 0 {
			attrs = append(attrs, "elapsed", e.Elapsed)
		}
		logger.Info(string(e.Type), attrs...)
	}
	return domain.LifecycleHooks{
		OnCommandStart:    log,
		OnCommandStep:     log,
		OnCommandComplete: log,
		OnCommandCancel:   log,
		OnCommandRefused:  log,
	}
}
