package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "investbot_http_requests_total"
	MetricNameHTTPRequestDuration  = "investbot_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "investbot_http_requests_in_flight"

	MetricNameEventsPublished    = "investbot_events_published_total"
	MetricNameEventHandlerErrors = "investbot_event_handler_errors_total"

	MetricNameVenturesPurchased = "investbot_ventures_purchased_total"
	MetricNameVenturesSold      = "investbot_ventures_sold_total"
	MetricNameCoinsCollected    = "investbot_coins_collected_total"
	MetricNameIncidentsTotal    = "investbot_incidents_total"

	MetricNameSweepDuration = "investbot_sweep_duration_seconds"
	MetricNameSweepVentures = "investbot_sweep_ventures"
	MetricNameSweepErrors   = "investbot_sweep_errors_total"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"

	HelpTextEventsPublished    = "Total number of events published on the bus"
	HelpTextEventHandlerErrors = "Total number of event handler failures"

	HelpTextVenturesPurchased = "Total number of ventures purchased"
	HelpTextVenturesSold      = "Total number of ventures sold"
	HelpTextCoinsCollected    = "Total coins paid out by collect operations"
	HelpTextIncidentsTotal    = "Total number of risk incidents triggered"

	HelpTextSweepDuration = "Duration of venture sweep passes in seconds"
	HelpTextSweepVentures = "Number of ventures processed by the last sweep, by outcome"
	HelpTextSweepErrors   = "Total number of sweep passes that failed"
)

// Label names
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelOutcome = "outcome"
)

// HTTPLatencyBuckets are the histogram buckets for HTTP request latency
var HTTPLatencyBuckets = prometheus.DefBuckets
