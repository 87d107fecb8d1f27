package metrics

import (
	"OhDear_Health_Service/internal/health-endpoint/model"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "health_endpoint"

type Metrics interface {
	ObserveGuard(outcome string)
	ObserveCheck(name string, status model.CheckStatus, duration time.Duration)
	ObserveReport(duration time.Duration)
	Handler() http.Handler
}

type promMetrics struct {
	registry       *prometheus.Registry
	guardOutcomes  *prometheus.CounterVec
	checkResults   *prometheus.CounterVec
	checkDuration  *prometheus.HistogramVec
	reportDuration prometheus.Histogram
}

func (p *promMetrics) ObserveGuard(outcome string) {
	p.guardOutcomes.WithLabelValues(outcome).Inc()
}

func (p *promMetrics) ObserveCheck(name string, status model.CheckStatus, duration time.Duration) {
	p.checkResults.WithLabelValues(name, string(status)).Inc()
	p.checkDuration.WithLabelValues(name).Observe(duration.Seconds())
}

func (p *promMetrics) ObserveReport(duration time.Duration) {
	p.reportDuration.Observe(duration.Seconds())
}

func (p *promMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// NewMetrics registers every collector on registry, which must not be shared with another Metrics.
func NewMetrics(registry *prometheus.Registry) Metrics {
	factory := promauto.With(registry)
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	buckets := []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}
	return &promMetrics{
		registry: registry,
		guardOutcomes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "guard_decisions_total",
				Help:      "Secret guard decisions by outcome",
			},
			[]string{"outcome"},
		),
		checkResults: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "check_results_total",
				Help:      "Check results by check name and status",
			},
			[]string{"check", "status"},
		),
		checkDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "check_duration_seconds",
				Help:      "Time spent sampling and evaluating a single check",
				Buckets:   buckets,
			},
			[]string{"check"},
		),
		reportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "report_duration_seconds",
				Help:      "Time spent assembling a full health report",
				Buckets:   buckets,
			},
		),
	}
}
