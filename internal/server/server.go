package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/rasmushaa/renting-vs-owning/internal/calculation"
	"github.com/rasmushaa/renting-vs-owning/internal/config"
	"github.com/rasmushaa/renting-vs-owning/pkg/logger"
)

// Server exposes the calculation engine over HTTP.
type Server struct {
	cfg     *config.ServerConfig
	engine  *calculation.CalculationEngine
	metrics *Metrics
	tracer  trace.Tracer
	version string
}

// New creates a server. A nil engine gets a fresh one that logs through the
// service logger.
func New(cfg *config.ServerConfig, engine *calculation.CalculationEngine, version string) *Server {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
		engine.SetLogger(logger.Calc())
	}
	return &Server{
		cfg:     cfg,
		engine:  engine,
		metrics: NewMetrics(),
		tracer:  otel.Tracer(ServiceName),
		version: version,
	}
}

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Router builds the gin engine with middleware and routes.
func (s *Server) Router() *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Global middleware
	if s.cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger())
	router.Use(s.metrics.Middleware())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", s.Health)
		v1.GET("/example", s.Example)

		v1.POST("/scenario", s.Scenario)
		v1.POST("/scenarios", s.Scenarios)
		v1.POST("/report/:format", s.Report)

		v1.POST("/amortization", s.Amortization)
		v1.POST("/investment", s.Investment)
	}

	if s.cfg.MetricsEnabled {
		router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	return router
}

// Run serves until ctx is cancelled, then shuts down within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         ":" + s.cfg.Port,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "port", s.cfg.Port, "environment", s.cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	// Flush Sentry events before exit
	if s.cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
	return nil
}
