package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collectors for one engine instance. Each instance owns its registry so
// tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	Calculations      *prometheus.CounterVec
	Submissions       *prometheus.CounterVec
	CalculationErrors *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		Calculations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "offering_calculations_total",
				Help: "Total number of share calculations served",
			},
			[]string{"accredited", "tier"},
		),
		Submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "offering_submissions_total",
				Help: "Total number of investment submissions stored",
			},
			[]string{"investor_type"},
		),
		CalculationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "offering_calculation_errors_total",
				Help: "Total number of rejected calculation or submission requests",
			},
			[]string{"reason"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "offering_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}
}

// NoTier label for calculations that earned no bonus.
const NoTier = "none"

// ObserveCalculation counts a calculation under the tier that paid its bonus, or
// NoTier when bonusPercentage is 0.
func (m *Metrics) ObserveCalculation(accredited bool, bonusPercentage int, tier string) {
	if bonusPercentage == 0 {
		tier = NoTier
	}
	m.Calculations.WithLabelValues(strconv.FormatBool(accredited), tier).Inc()
}

func (m *Metrics) ObserveSubmission(investorType string) {
	m.Submissions.WithLabelValues(investorType).Inc()
}

func (m *Metrics) ObserveError(reason string) {
	m.CalculationErrors.WithLabelValues(reason).Inc()
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.RequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler exposition endpoint for this instance's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
