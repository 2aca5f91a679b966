package metrics

import (
	"net/http"
	"strconv"
	"time"
)

// statusRecorder captures the status code written by downstream handlers
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records a count, latency observation, and in-flight gauge for
// every HTTP request
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		HTTPRequestsInFlight.Inc()
		defer HTTPRequestsInFlight.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		elapsed := time.Since(start)

		HTTPRequestsTotal.WithLabelValues(
			r.Method, r.URL.Path, strconv.Itoa(rec.status)).Inc()
		HTTPRequestDuration.WithLabelValues(
			r.Method, r.URL.Path).Observe(elapsed.Seconds())
	})
}
