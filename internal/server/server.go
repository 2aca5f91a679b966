package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/MyteScripts/investbot/internal/database"
	"github.com/MyteScripts/investbot/internal/handler"
	"github.com/MyteScripts/investbot/internal/logger"
	"github.com/MyteScripts/investbot/internal/metrics"
	"github.com/MyteScripts/investbot/internal/user"
	"github.com/MyteScripts/investbot/internal/venture"
	"github.com/MyteScripts/investbot/internal/wallet"
)

// Server is the HTTP API consumed by the Discord bot process
type Server struct {
	httpServer     *http.Server
	dbPool         database.Pool
	userService    user.Service
	walletService  wallet.Service
	ventureService venture.Service
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, dbPool database.Pool, userService user.Service, walletService wallet.Service, ventureService venture.Service) *Server {
	r := chi.NewRouter()

	detector := NewActivityDetector()

	// Middleware executes in the order defined, outermost first
	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, detector))
	r.Use(RateLimitMiddleware(detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint for Prometheus scraping
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handler.HandleRegisterUser(userService))
		})

		r.Route("/wallet", func(r chi.Router) {
			r.Get("/balance", handler.HandleGetBalance(walletService))
		})

		ventureHandler := handler.NewVentureHandler(ventureService)
		r.Route("/venture", func(r chi.Router) {
			r.Get("/catalog", ventureHandler.Catalog)
			r.Get("/portfolio", ventureHandler.Portfolio)
			r.Post("/buy", ventureHandler.Buy)
			r.Post("/collect", ventureHandler.Collect)
			r.Post("/maintain", ventureHandler.Maintain)
			r.Post("/repair", ventureHandler.Repair)
			r.Post("/sell", ventureHandler.Sell)
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:         dbPool,
		userService:    userService,
		walletService:  walletService,
		ventureService: ventureService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Health and metrics probes are too chatty to log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
