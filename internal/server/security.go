package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/MyteScripts/investbot/internal/logger"
)

// SecurityHeadersMiddleware sets standard browser hardening headers
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			next.ServeHTTP(w, r)
		})
	}
}

// AuthMiddleware validates the shared API key on every non-public route
func AuthMiddleware(apiKey string, detector *ActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, path := range PublicPaths {
				if strings.HasPrefix(r.URL.Path, path) {
					next.ServeHTTP(w, r)
					return
				}
			}

			providedKey := r.Header.Get(HeaderAPIKey)

			// Constant time comparison to prevent timing attacks
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r)
				detector.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware rejects requests from IPs exceeding the window budget
func RateLimitMiddleware(detector *ActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !detector.RecordRequest(extractIP(r)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ActivityDetector tracks per-IP failed auth attempts and request rates
// over a rolling five-minute window
type ActivityDetector struct {
	mu               sync.Mutex
	failedAuthByIP   map[string]int
	requestCountByIP map[string]int
	lastResetTime    time.Time
}

// NewActivityDetector creates a new detector
func NewActivityDetector() *ActivityDetector {
	return &ActivityDetector{
		failedAuthByIP:   make(map[string]int),
		requestCountByIP: make(map[string]int),
		lastResetTime:    time.Now(),
	}
}

// RecordFailedAuth records a failed authentication attempt
func (d *ActivityDetector) RecordFailedAuth(ip string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.resetCountsIfNeeded()
	d.failedAuthByIP[ip]++

	if d.failedAuthByIP[ip] >= FailedAuthAlertThreshold {
		slog.Warn(LogMsgAuthFailed, "ip", ip, "count", d.failedAuthByIP[ip])
	}
}

// RecordRequest records a request, returning false once the IP exceeds
// its window budget
func (d *ActivityDetector) RecordRequest(ip string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.resetCountsIfNeeded()
	d.requestCountByIP[ip]++

	if d.requestCountByIP[ip] > RateLimitWindowRequests {
		// Log every 100th rejection to avoid log spam
		if d.requestCountByIP[ip]%100 == 0 {
			slog.Warn(LogMsgHighRequestRate, "ip", ip, "count", d.requestCountByIP[ip])
		}
		return false
	}
	return true
}

// Caller must hold the mutex
func (d *ActivityDetector) resetCountsIfNeeded() {
	if time.Since(d.lastResetTime) > 5*time.Minute {
		d.requestCountByIP = make(map[string]int)
		d.failedAuthByIP = make(map[string]int)
		d.lastResetTime = time.Now()
	}
}

// extractIP returns the request's source IP. The service sits behind the
// Discord bot on a private network, so X-Forwarded-For is not trusted.
func extractIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
