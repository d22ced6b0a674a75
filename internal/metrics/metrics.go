package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Calculation Metrics
var (
	CalculationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCalculationsTotal,
			Help: HelpTextCalculationsTotal,
		},
		[]string{LabelOperation, LabelOutcome},
	)

	CalculationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameCalculationDuration,
			Help:    HelpTextCalculationDuration,
			Buckets: CalculationLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	QuestsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameQuestsSkipped,
			Help: HelpTextQuestsSkipped,
		},
	)

	HuntResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameHuntResults,
			Help:    HelpTextHuntResults,
			Buckets: HuntResultBuckets,
		},
	)
)

// ObserveCalculation records the outcome and latency of one operation started at start
func ObserveCalculation(operation string, start time.Time, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	CalculationsTotal.WithLabelValues(operation, outcome).Inc()
	CalculationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
