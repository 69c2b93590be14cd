// Package metrics records scoreboard activity as Prometheus series.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// ScoreboardMetrics is what the loop and controller report into.
type ScoreboardMetrics interface {
	RecordTrigger(line string)
	RecordUpdate(player int, delta int)
	RecordSurfaceError(surface string)
	SetScore(player int, score int)
}

// PrometheusMetrics implements ScoreboardMetrics on a prometheus registry.
type PrometheusMetrics struct {
	triggers      *prometheus.CounterVec
	updates       *prometheus.CounterVec
	surfaceErrors *prometheus.CounterVec
	scores        *prometheus.GaugeVec
}

const namespace = "scoreboard"

// NewPrometheusMetrics registers the scoreboard series on reg.
func NewPrometheusMetrics(reg prometheus.Registerer) (*PrometheusMetrics, error) {
	m := &PrometheusMetrics{
		triggers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "triggers_total",
			Help:      "Debounced button triggers consumed by the event loop.",
		}, []string{"line"}),
		updates: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "score_updates_total",
			Help:      "Score updates applied to the ledger.",
		}, []string{"player", "delta"}),
		surfaceErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "surface_errors_total",
			Help:      "Failed draw or flush operations per display.",
		}, []string{"surface"}),
		scores: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "player_score",
			Help:      "Current score per player.",
		}, []string{"player"}),
	}

	for _, c := range []prometheus.Collector{m.triggers, m.updates, m.surfaceErrors, m.scores} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *PrometheusMetrics) RecordTrigger(line string) {
	m.triggers.WithLabelValues(line).Inc()
}

func (m *PrometheusMetrics) RecordUpdate(player int, delta int) {
	m.updates.WithLabelValues(strconv.Itoa(player), strconv.Itoa(delta)).Inc()
}

func (m *PrometheusMetrics) RecordSurfaceError(surface string) {
	m.surfaceErrors.WithLabelValues(surface).Inc()
}

func (m *PrometheusMetrics) SetScore(player int, score int) {
	m.scores.WithLabelValues(strconv.Itoa(player)).Set(float64(score))
}

// NoOp discards everything.
type NoOp struct{}

func (NoOp) RecordTrigger(string)      {}
func (NoOp) RecordUpdate(int, int)     {}
func (NoOp) RecordSurfaceError(string) {}
func (NoOp) SetScore(int, int)         {}
