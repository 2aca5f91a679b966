package metrics

import (
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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Venture Metrics
var (
	VenturesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVenturesPurchased,
			Help: HelpTextVenturesPurchased,
		},
		[]string{LabelType},
	)

	VenturesSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameVenturesSold,
			Help: HelpTextVenturesSold,
		},
		[]string{LabelType},
	)

	CoinsCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoinsCollected,
			Help: HelpTextCoinsCollected,
		},
		[]string{LabelType},
	)

	IncidentsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIncidentsTotal,
			Help: HelpTextIncidentsTotal,
		},
		[]string{LabelType},
	)
)

// Sweep Metrics
var (
	SweepDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameSweepDuration,
			Help:    HelpTextSweepDuration,
			Buckets: prometheus.DefBuckets,
		},
	)

	SweepVentures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameSweepVentures,
			Help: HelpTextSweepVentures,
		},
		[]string{LabelOutcome},
	)

	SweepErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSweepErrors,
			Help: HelpTextSweepErrors,
		},
	)
)
